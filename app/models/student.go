package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactInfo holds the phone numbers on file for a student. The
// student's own number is optional and defaults to empty.
type ContactInfo struct {
	ParentPhoneNumber  string
	StudentPhoneNumber string
}

// Student represents a person enrolled in zero or more classes, with a
// birth date, status and attendance history. Students are constructed
// once at startup and never mutated.
type Student struct {
	ID          uuid.UUID
	Name        string
	DateOfBirth time.Time
	Gender      Gender
	DateJoined  time.Time
	Status      Status
	Contact     ContactInfo
	Classes     []Class
	Attendances []Attendance
}
