package report

import "github.com/pfrederiksen/library-events/internal/event"

// LibraryAttendanceRate returns average attendance as a percentage of
// capacity. A library without capacity has a rate of 0.
func LibraryAttendanceRate(averageAttendees float64, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return averageAttendees / float64(capacity) * 100
}

// AttendanceRate returns the attendance of events as a percentage of the
// capacity of the libraries hosting them. Events at unknown libraries or
// libraries without capacity are not counted.
func AttendanceRate(events []event.Event, libs []event.Library) float64 {
	var attendees, capacity int
	for _, e := range events {
		lib, ok := event.FindLibrary(libs, e.Library)
		if !ok || lib.Capacity <= 0 {
			continue
		}
		attendees += e.TotalAttendees()
		capacity += lib.Capacity
	}

	if capacity == 0 {
		return 0
	}
	return float64(attendees) / float64(capacity) * 100
}
