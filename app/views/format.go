package views

import (
	"fmt"
	"time"

	"github.com/xstrengthofonex/edustudio/app/models"
)

// FormatAge returns the number of whole years between dateOfBirth and
// today, counting a year only once its anniversary has passed.
func FormatAge(today, dateOfBirth time.Time) int {
	years := today.Year() - dateOfBirth.Year()
	anniversary := dateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(today) {
		years--
	}
	return years
}

// FormatClassLabel renders a class as "{hours}:{minutes}{AM|PM} {name}",
// with no zero padding on the minutes.
func FormatClassLabel(c models.Class) string {
	return fmt.Sprintf("%d:%d%s %s", c.TimeSlot.Hours, c.TimeSlot.Minutes, formatPeriod(c.TimeSlot.Period), c.Name)
}

func formatPeriod(p models.Period) string {
	switch p {
	case models.AM:
		return "AM"
	case models.PM:
		return "PM"
	default:
		return ""
	}
}

// FormatGender maps a gender to its display label. Unknown values
// render as an empty string rather than failing.
func FormatGender(g models.Gender) string {
	switch g {
	case models.Female:
		return "여"
	case models.Male:
		return "남"
	default:
		return ""
	}
}

// FormatStatus maps a student status to its display label. A student
// with no special status renders as an empty string, as do unknown
// values.
func FormatStatus(s models.Status) string {
	switch s {
	case models.StatusNone:
		return ""
	case models.StatusBreak:
		return "휴원"
	default:
		return ""
	}
}

// FormatJoinDate renders a join date as YYYY-MM-DD.
func FormatJoinDate(t time.Time) string {
	return t.Format("2006-01-02")
}
