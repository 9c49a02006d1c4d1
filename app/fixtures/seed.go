package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/xstrengthofonex/edustudio/app/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed returns the office's student roster. Each call builds a fresh
// dataset, so callers can hold it without sharing state.
func Seed() []models.Student {
	class1 := models.Class{
		ID:       uuid.MustParse("aa36e8cf-4cde-4054-b813-511dbca4e08c"),
		Name:     "국체반 Claire",
		TimeSlot: models.TimeSlot{Hours: 6, Minutes: 20, Period: models.PM},
	}
	class2 := models.Class{
		ID:       uuid.MustParse("aade1d34-20d1-4dd5-a302-9b953bb33181"),
		Name:     "우선미 선생님",
		TimeSlot: models.TimeSlot{Hours: 8, Minutes: 10, Period: models.PM},
	}
	class3 := models.Class{
		ID:       uuid.MustParse("9b944a27-889f-45f1-863d-7f1ce4c96f04"),
		Name:     "우선미 선생님",
		TimeSlot: models.TimeSlot{Hours: 8, Minutes: 10, Period: models.PM},
	}

	return []models.Student{
		{
			ID:          uuid.MustParse("8f3f55cf-de69-4e70-82d4-aac0ca82d9ee"),
			Name:        "이채원",
			DateOfBirth: date(2005, time.January, 22),
			Gender:      models.Female,
			DateJoined:  date(2018, time.May, 13),
			Status:      models.StatusNone,
			Contact:     models.ContactInfo{ParentPhoneNumber: "010-2345-6789"},
			Classes:     []models.Class{class1},
			Attendances: []models.Attendance{
				{Date: date(2020, time.June, 1), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 29), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 28), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 27), Class: class1, Status: models.Absent},
				{Date: date(2020, time.May, 26), Class: class1, Status: models.Late},
			},
		},
		{
			ID:          uuid.MustParse("73af91aa-1a88-4fd9-8ffa-b31297d1dcdd"),
			Name:        "김대현",
			DateOfBirth: date(2006, time.March, 1),
			Gender:      models.Male,
			DateJoined:  date(2017, time.February, 2),
			Status:      models.StatusNone,
			Contact:     models.ContactInfo{ParentPhoneNumber: "010-2345-6789"},
			Classes:     []models.Class{class1, class2},
			Attendances: []models.Attendance{
				{Date: date(2020, time.June, 1), Class: class1, Status: models.Present},
				{Date: date(2020, time.June, 1), Class: class2, Status: models.Present},
				{Date: date(2020, time.May, 29), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 29), Class: class2, Status: models.Present},
				{Date: date(2020, time.May, 28), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 28), Class: class2, Status: models.Present},
				{Date: date(2020, time.May, 27), Class: class1, Status: models.Absent},
				{Date: date(2020, time.May, 27), Class: class2, Status: models.Late},
				{Date: date(2020, time.May, 29), Class: class1, Status: models.Present},
				{Date: date(2020, time.May, 26), Class: class1, Status: models.Late},
			},
		},
		{
			ID:          uuid.MustParse("65cb2dc9-95b4-4cb6-987d-78a9db5e2c8b"),
			Name:        "박은경",
			DateOfBirth: date(2003, time.June, 10),
			Gender:      models.Female,
			DateJoined:  date(2016, time.October, 24),
			Status:      models.StatusBreak,
			Contact:     models.ContactInfo{ParentPhoneNumber: "010-2345-6789"},
			Classes:     []models.Class{class3},
			Attendances: []models.Attendance{
				{Date: date(2020, time.June, 1), Class: class3, Status: models.Absent},
				{Date: date(2020, time.May, 29), Class: class3, Status: models.Absent},
				{Date: date(2020, time.May, 28), Class: class3, Status: models.Absent},
				{Date: date(2020, time.May, 27), Class: class3, Status: models.Absent},
				{Date: date(2020, time.May, 26), Class: class3, Status: models.Absent},
			},
		},
	}
}
