package views

import (
	"math"
	"sort"
	"time"

	"github.com/xstrengthofonex/edustudio/app/models"
)

// ListableStudent is one row of the student list page.
type ListableStudent struct {
	ID      string
	Name    string
	Status  string
	Classes []string
}

// StudentProfile is the header block shared by the detail and
// attendance pages.
type StudentProfile struct {
	ID                string
	Name              string
	ParentPhoneNumber string
	Status            string
}

// StudentDetail is the body of the student detail page.
type StudentDetail struct {
	ID                string
	Name              string
	Age               int
	Gender            string
	ParentPhoneNumber string
	DateJoined        string
	Status            string
	Classes           []string
}

// AttendanceRecord summarises a student's attendance for one class.
type AttendanceRecord struct {
	ClassName   string
	DaysAbsent  int
	DaysLate    int
	DaysPresent int
	TotalDays   int
	Percentage  int
}

// BuildStudentListView maps students to list rows, one per student,
// preserving the input order.
func BuildStudentListView(students []models.Student) []ListableStudent {
	rows := make([]ListableStudent, 0, len(students))
	for _, s := range students {
		rows = append(rows, ListableStudent{
			ID:      s.ID.String(),
			Name:    s.Name,
			Status:  FormatStatus(s.Status),
			Classes: sortedClassLabels(s.Classes),
		})
	}
	return rows
}

// BuildStudentProfile maps a student to the shared profile block.
func BuildStudentProfile(s models.Student) StudentProfile {
	return StudentProfile{
		ID:                s.ID.String(),
		Name:              s.Name,
		ParentPhoneNumber: s.Contact.ParentPhoneNumber,
		Status:            FormatStatus(s.Status),
	}
}

// BuildStudentDetail maps a student to the detail page body. The age is
// recomputed from today on every call, never stored.
func BuildStudentDetail(today time.Time, s models.Student) StudentDetail {
	return StudentDetail{
		ID:                s.ID.String(),
		Name:              s.Name,
		Age:               FormatAge(today, s.DateOfBirth),
		Gender:            FormatGender(s.Gender),
		ParentPhoneNumber: s.Contact.ParentPhoneNumber,
		DateJoined:        FormatJoinDate(s.DateJoined),
		Status:            FormatStatus(s.Status),
		Classes:           sortedClassLabels(s.Classes),
	}
}

// BuildAttendanceRecords groups a student's attendances by class and
// summarises each group. Grouping is by class identifier, so classes
// that happen to share a name never merge, and the records come out in
// ascending class-identifier order.
func BuildAttendanceRecords(s models.Student) []AttendanceRecord {
	attendances := make([]models.Attendance, len(s.Attendances))
	copy(attendances, s.Attendances)
	sort.SliceStable(attendances, func(i, j int) bool {
		return attendances[i].Class.ID.String() < attendances[j].Class.ID.String()
	})

	var records []AttendanceRecord
	for start := 0; start < len(attendances); {
		end := start
		for end < len(attendances) && attendances[end].Class.ID == attendances[start].Class.ID {
			end++
		}
		records = append(records, buildClassAttendance(attendances[start].Class, attendances[start:end]))
		start = end
	}
	return records
}

func buildClassAttendance(c models.Class, attendances []models.Attendance) AttendanceRecord {
	record := AttendanceRecord{
		ClassName: FormatClassLabel(c),
		TotalDays: len(attendances),
	}
	for _, a := range attendances {
		switch a.Status {
		case models.Absent:
			record.DaysAbsent++
		case models.Late:
			record.DaysLate++
		case models.Present:
			record.DaysPresent++
		}
	}
	record.Percentage = attendancePercentage(record.DaysPresent, record.DaysLate, record.TotalDays)
	return record
}

// attendancePercentage rounds half away from zero. A total of zero
// days yields 0 rather than dividing by zero.
func attendancePercentage(present, late, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(present+late) / float64(total)))
}

func sortedClassLabels(classes []models.Class) []string {
	sorted := make([]models.Class, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeSlot.Before(sorted[j].TimeSlot)
	})

	labels := make([]string, 0, len(sorted))
	for _, c := range sorted {
		labels = append(labels, FormatClassLabel(c))
	}
	return labels
}
