package views

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/xstrengthofonex/edustudio/app/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		dob   time.Time
		want  int
	}{
		{name: "born today", today: day(2020, time.June, 1), dob: day(2020, time.June, 1), want: 0},
		{name: "mid year", today: day(2020, time.June, 1), dob: day(2005, time.January, 22), want: 15},
		{name: "day before anniversary", today: day(2020, time.January, 21), dob: day(2005, time.January, 22), want: 14},
		{name: "on anniversary", today: day(2020, time.January, 22), dob: day(2005, time.January, 22), want: 15},
		{name: "day after anniversary", today: day(2020, time.January, 23), dob: day(2005, time.January, 22), want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAge(tt.today, tt.dob))
		})
	}
}

func TestFormatClassLabel(t *testing.T) {
	tests := []struct {
		name  string
		class models.Class
		want  string
	}{
		{
			name: "pm class",
			class: models.Class{
				ID:       uuid.MustParse("aa36e8cf-4cde-4054-b813-511dbca4e08c"),
				Name:     "국체반 Claire",
				TimeSlot: models.TimeSlot{Hours: 6, Minutes: 20, Period: models.PM},
			},
			want: "6:20PM 국체반 Claire",
		},
		{
			name: "am class",
			class: models.Class{
				Name:     "Morning",
				TimeSlot: models.TimeSlot{Hours: 9, Minutes: 30, Period: models.AM},
			},
			want: "9:30AM Morning",
		},
		{
			name: "minutes are not zero padded",
			class: models.Class{
				Name:     "Early",
				TimeSlot: models.TimeSlot{Hours: 8, Minutes: 5, Period: models.AM},
			},
			want: "8:5AM Early",
		},
		{
			name: "unmapped period renders empty",
			class: models.Class{
				Name:     "Odd",
				TimeSlot: models.TimeSlot{Hours: 7, Minutes: 15, Period: models.Period(9)},
			},
			want: "7:15 Odd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClassLabel(tt.class))
		})
	}
}

func TestFormatGender(t *testing.T) {
	assert.Equal(t, "여", FormatGender(models.Female))
	assert.Equal(t, "남", FormatGender(models.Male))
	assert.Equal(t, "", FormatGender(models.Gender(7)))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "", FormatStatus(models.StatusNone))
	assert.Equal(t, "휴원", FormatStatus(models.StatusBreak))
	assert.Equal(t, "", FormatStatus(models.Status(7)))
}

func TestFormatJoinDate(t *testing.T) {
	assert.Equal(t, "2018-05-13", FormatJoinDate(day(2018, time.May, 13)))
}
