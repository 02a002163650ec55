package report

import (
	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/filter"
	"github.com/pfrederiksen/library-events/internal/stats"
)

// Limits bounds the ranked and recent lists of the views.
type Limits struct {
	Recent        int // events on the dashboard
	TopCategories int
	ProfileRecent int // events per library profile
}

// DefaultLimits returns the limits used by the original dashboards.
func DefaultLimits() Limits {
	return Limits{Recent: 5, TopCategories: 5, ProfileRecent: 3}
}

// LibraryCard is the dashboard tile of one library.
type LibraryCard struct {
	Library   event.Library `json:"library"`
	Events    int           `json:"events"`
	Attendees int           `json:"attendees"`
	Cost      float64       `json:"cost"`
}

// Dashboard summarizes the whole collection.
type Dashboard struct {
	Summary       stats.Summary        `json:"summary"`
	Upcoming      int                  `json:"upcoming"`
	Recent        []event.Event        `json:"recent"`
	TopCategories []stats.GroupSummary `json:"topCategories"`
	Libraries     []LibraryCard        `json:"libraries"`
}

// BuildDashboard computes the dashboard for events as of today.
func BuildDashboard(events []event.Event, libs []event.Library, today event.Date, limits Limits) Dashboard {
	byName := make(map[string]stats.GroupSummary, len(libs))
	for _, g := range stats.ByLibrary(events, libs, true) {
		byName[g.Key] = g
	}

	cards := make([]LibraryCard, 0, len(libs))
	for _, lib := range libs {
		g := byName[lib.Name]
		cards = append(cards, LibraryCard{
			Library:   lib,
			Events:    g.EventCount,
			Attendees: g.TotalAttendees,
			Cost:      g.TotalCost,
		})
	}

	return Dashboard{
		Summary:       stats.Summarize(events),
		Upcoming:      stats.CountUpcoming(events, today),
		Recent:        stats.Recent(events, limits.Recent),
		TopCategories: stats.TopN(stats.ByCategory(events, false), stats.MetricEventCount, limits.TopCategories),
		Libraries:     cards,
	}
}

// Profile describes one library and the events hosted there.
type Profile struct {
	Library        event.Library        `json:"library"`
	Summary        stats.Summary        `json:"summary"`
	Upcoming       int                  `json:"upcoming"`
	Categories     []stats.GroupSummary `json:"categories"`
	Recent         []event.Event        `json:"recent"`
	AttendanceRate float64              `json:"attendanceRate"`
}

// LibraryProfiles builds a profile for every known library, in library
// order, including libraries without events.
func LibraryProfiles(events []event.Event, libs []event.Library, today event.Date, limits Limits) []Profile {
	profiles := make([]Profile, 0, len(libs))
	for _, lib := range libs {
		hosted := (&filter.Filter{Libraries: []string{lib.Name}}).Apply(events)
		summary := stats.Summarize(hosted)

		profiles = append(profiles, Profile{
			Library:        lib,
			Summary:        summary,
			Upcoming:       stats.CountUpcoming(hosted, today),
			Categories:     stats.ByCategory(hosted, false),
			Recent:         stats.Recent(hosted, limits.ProfileRecent),
			AttendanceRate: LibraryAttendanceRate(summary.AverageAttendees, lib.Capacity),
		})
	}
	return profiles
}

// Reports is the filtered analytics page.
type Reports struct {
	Filter         *filter.Filter       `json:"filter,omitempty"`
	Shown          int                  `json:"shown"`
	Total          int                  `json:"total"`
	Summary        stats.Summary        `json:"summary"`
	Libraries      []stats.GroupSummary `json:"libraries"`
	Categories     []stats.GroupSummary `json:"categories"`
	Months         []stats.GroupSummary `json:"months"`
	Funding        []stats.GroupSummary `json:"funding"`
	AttendanceRate float64              `json:"attendanceRate"`
}

// BuildReports narrows events with f and reduces the result. Groups without
// events are left out. A nil f matches everything.
func BuildReports(events []event.Event, libs []event.Library, f *filter.Filter) Reports {
	matched := f.Apply(events)

	return Reports{
		Filter:         f.Clone(),
		Shown:          len(matched),
		Total:          len(events),
		Summary:        stats.Summarize(matched),
		Libraries:      stats.ByLibrary(matched, libs, false),
		Categories:     stats.ByCategory(matched, false),
		Months:         stats.ByMonth(matched),
		Funding:        stats.ByFunding(matched, false),
		AttendanceRate: AttendanceRate(matched, libs),
	}
}

// EventList is the filtered event table.
type EventList struct {
	Events []event.Event `json:"events"`
	Shown  int           `json:"shown"`
	Total  int           `json:"total"`
}

// ListEvents narrows events with f, keeping stored order.
func ListEvents(events []event.Event, f *filter.Filter) EventList {
	matched := f.Apply(events)
	if matched == nil {
		matched = []event.Event{}
	}
	return EventList{Events: matched, Shown: len(matched), Total: len(events)}
}
