package models

import "time"

// Attendance represents a single dated record of a student's presence
// status for one class.
type Attendance struct {
	Date   time.Time
	Class  Class
	Status AttendanceStatus
}
