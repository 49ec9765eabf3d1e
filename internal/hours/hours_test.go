package hours

import (
	"testing"
	"time"

	"nando-backend/internal/models"
)

func at(day time.Weekday, hour int) time.Time {
	// 2026-08-02 is a Sunday.
	base := time.Date(2026, 8, 2, hour, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(day-base.Weekday()))
}

func TestStatusAt(t *testing.T) {
	tests := []struct {
		name string
		day  time.Weekday
		hour int
		open bool
	}{
		{"sunday opening hour", time.Sunday, 10, true},
		{"sunday before open", time.Sunday, 9, false},
		{"sunday last open hour", time.Sunday, 20, true},
		{"sunday close hour is exclusive", time.Sunday, 21, false},
		{"monday closed all day", time.Monday, 13, false},
		{"tuesday midday", time.Tuesday, 12, true},
		{"wednesday last open hour", time.Wednesday, 21, true},
		{"wednesday close hour is exclusive", time.Wednesday, 22, false},
		{"thursday late open", time.Thursday, 22, true},
		{"saturday close hour is exclusive", time.Saturday, 23, false},
		{"friday before open", time.Friday, 11, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now := at(tc.day, tc.hour)
			if now.Weekday() != tc.day {
				t.Fatalf("test clock broken: wanted %v, got %v", tc.day, now.Weekday())
			}

			status := StatusAt(now)
			if status.IsOpen != tc.open {
				t.Errorf("StatusAt(%v %02d:30): expected open=%v, got %v", tc.day, tc.hour, tc.open, status.IsOpen)
			}

			wantLabel := "Closed Now"
			if tc.open {
				wantLabel = "Open Now"
			}
			if status.Label.EN != wantLabel {
				t.Errorf("Expected label %q, got %q", wantLabel, status.Label.EN)
			}
		})
	}
}

func TestStatusLabelsLocalized(t *testing.T) {
	open := StatusAt(at(time.Friday, 13))
	if open.Label.In(models.LanguageES) != "Abierto Ahora" {
		t.Errorf("Expected Spanish open label, got %q", open.Label.ES)
	}

	closed := StatusAt(at(time.Monday, 13))
	if closed.Label.In(models.LanguageES) != "Cerrado Ahora" {
		t.Errorf("Expected Spanish closed label, got %q", closed.Label.ES)
	}
}

func TestEntryFor_CoversEveryOpenDay(t *testing.T) {
	want := map[time.Weekday][2]int{
		time.Sunday:    {10, 21},
		time.Tuesday:   {12, 22},
		time.Wednesday: {12, 22},
		time.Thursday:  {12, 23},
		time.Friday:    {12, 23},
		time.Saturday:  {12, 23},
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		entry, ok := EntryFor(day)
		expect, open := want[day]
		if ok != open {
			t.Fatalf("EntryFor(%v): expected open=%v, got %v", day, open, ok)
		}
		if !ok {
			continue
		}
		if entry.Open != expect[0] || entry.Close != expect[1] {
			t.Errorf("EntryFor(%v): expected [%d,%d), got [%d,%d)", day, expect[0], expect[1], entry.Open, entry.Close)
		}
	}
}

func TestEntryDisplay(t *testing.T) {
	tests := []struct {
		open, close int
		expected    string
	}{
		{10, 21, "10:00 AM - 9:00 PM"},
		{12, 22, "12:00 PM - 10:00 PM"},
		{12, 23, "12:00 PM - 11:00 PM"},
	}

	for _, tc := range tests {
		e := Entry{Open: tc.open, Close: tc.close}
		if got := e.Display(); got != tc.expected {
			t.Errorf("Display([%d,%d)): expected %q, got %q", tc.open, tc.close, tc.expected, got)
		}
	}
}

func TestDayName(t *testing.T) {
	if DayName(time.Monday).ES != "lunes" {
		t.Errorf("Expected 'lunes', got %q", DayName(time.Monday).ES)
	}
	if DayName(time.Monday).EN != "Monday" {
		t.Errorf("Expected 'Monday', got %q", DayName(time.Monday).EN)
	}
}
