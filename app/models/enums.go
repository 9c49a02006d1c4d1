package models

// Gender defines the possible gender values for a student.
type Gender int

const (
	Female Gender = iota
	Male
)

// Status defines a student's enrollment status.
type Status int

const (
	StatusNone Status = iota
	StatusBreak
)

// Period defines the half of the day a class meets in. The numeric
// encoding (AM=0, PM=1) is the tiebreaker when ordering time slots.
type Period int

const (
	AM Period = iota
	PM
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus int

const (
	Absent AttendanceStatus = iota
	Late
	Present
)
