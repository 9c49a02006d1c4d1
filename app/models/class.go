package models

import "github.com/google/uuid"

// TimeSlot is the recurring time of day a class meets at.
type TimeSlot struct {
	Hours   int
	Minutes int
	Period  Period
}

// Before orders time slots by (hours, minutes, period) in that order,
// with the period comparing on its numeric encoding. Hours compare
// first regardless of period, so 6:20PM sorts ahead of 11:50AM.
func (t TimeSlot) Before(other TimeSlot) bool {
	if t.Hours != other.Hours {
		return t.Hours < other.Hours
	}
	if t.Minutes != other.Minutes {
		return t.Minutes < other.Minutes
	}
	return t.Period < other.Period
}

// Class represents a named recurring session with a fixed time slot.
type Class struct {
	ID       uuid.UUID
	Name     string
	TimeSlot TimeSlot
}
