// Package hours is the single source of truth for the restaurant's operating
// hours. Both the live open-now indicator and the reservation validator read
// the same table; earlier site iterations kept two copies that drifted apart.
package hours

import (
	"fmt"
	"time"

	"nando-backend/internal/models"
)

// Entry maps one or more weekdays to an [Open, Close) hour range on the 24h
// clock. Close is exclusive: Close=22 means open until 9:59 PM. Days absent
// from every entry are closed all day.
type Entry struct {
	Days       models.Text    `json:"days"`
	DayIndices []time.Weekday `json:"day_indices"` // Sunday=0 .. Saturday=6
	Open       int            `json:"open"`
	Close      int            `json:"close"`
}

// Schedule is the weekly operating-hours table. Monday is closed.
var Schedule = []Entry{
	{
		Days:       models.Text{ES: "Domingo", EN: "Sunday"},
		DayIndices: []time.Weekday{time.Sunday},
		Open:       10,
		Close:      21,
	},
	{
		Days:       models.Text{ES: "Martes - Miércoles", EN: "Tuesday - Wednesday"},
		DayIndices: []time.Weekday{time.Tuesday, time.Wednesday},
		Open:       12,
		Close:      22,
	},
	{
		Days:       models.Text{ES: "Jueves - Sábado", EN: "Thursday - Saturday"},
		DayIndices: []time.Weekday{time.Thursday, time.Friday, time.Saturday},
		Open:       12,
		Close:      23,
	},
}

var dayNames = map[time.Weekday]models.Text{
	time.Sunday:    {ES: "domingo", EN: "Sunday"},
	time.Monday:    {ES: "lunes", EN: "Monday"},
	time.Tuesday:   {ES: "martes", EN: "Tuesday"},
	time.Wednesday: {ES: "miércoles", EN: "Wednesday"},
	time.Thursday:  {ES: "jueves", EN: "Thursday"},
	time.Friday:    {ES: "viernes", EN: "Friday"},
	time.Saturday:  {ES: "sábado", EN: "Saturday"},
}

// DayName returns the localized name for a weekday.
func DayName(day time.Weekday) models.Text {
	return dayNames[day]
}

// EntryFor returns the schedule entry covering the given weekday. ok is false
// when the restaurant is closed all day.
func EntryFor(day time.Weekday) (Entry, bool) {
	for _, e := range Schedule {
		for _, d := range e.DayIndices {
			if d == day {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Display renders the entry's range for display and error messages,
// e.g. "12:00 PM - 10:00 PM".
func (e Entry) Display() string {
	return fmt.Sprintf("%s - %s", clockLabel(e.Open), clockLabel(e.Close))
}

// Contains reports whether the hour is inside the entry's half-open range.
func (e Entry) Contains(hour int) bool {
	return hour >= e.Open && hour < e.Close
}

func clockLabel(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

// Status is the live open/closed state of the restaurant.
type Status struct {
	IsOpen bool        `json:"is_open"`
	Label  models.Text `json:"label"`
}

var (
	openLabel   = models.Text{ES: "Abierto Ahora", EN: "Open Now"}
	closedLabel = models.Text{ES: "Cerrado Ahora", EN: "Closed Now"}
)

// StatusAt computes the open/closed status for the given time. The caller is
// expected to re-poll at least once a minute since the status is live.
func StatusAt(now time.Time) Status {
	entry, ok := EntryFor(now.Weekday())
	if !ok || !entry.Contains(now.Hour()) {
		return Status{IsOpen: false, Label: closedLabel}
	}
	return Status{IsOpen: true, Label: openLabel}
}
