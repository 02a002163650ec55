// Package filter narrows event collections for the reporting views.
//
// A Filter has independently optional criteria, combined with AND:
//   - Text: case-insensitive substring of the title or the description
//   - Libraries: event library is one of the names (empty = all)
//   - Categories: event category is one of the names (empty = all)
//   - DateFrom / DateTo: inclusive calendar-date bounds
//
// The events list uses single selections (one library, one category); the
// reports page uses sets. Both are the same Filter, single selections being
// singleton sets (see Single).
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Libraries = []string{"Central Library"}
//	f.DateFrom = &from
//
//	matched := f.Apply(events)
//
//	// Save as preset
//	preset := filter.NewPreset("central-q1", f)
package filter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pfrederiksen/library-events/internal/event"
)

// Filter represents event filtering criteria
type Filter struct {
	// Free-text search over title and description
	Text string `json:"text,omitempty"`

	// Exact library names (Event.Library)
	Libraries []string `json:"libraries,omitempty"`

	// Exact category names
	Categories []string `json:"categories,omitempty"`

	// Inclusive date range
	DateFrom *event.Date `json:"dateFrom,omitempty"`
	DateTo   *event.Date `json:"dateTo,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all events until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Libraries:  []string{},
		Categories: []string{},
	}
}

// Single builds the single-selection form of a filter: an empty library or
// category means "all", anything else becomes a one-element set. Dates are
// parsed with event.ParseDate; an empty string leaves that bound open.
func Single(text, library, category, dateFrom, dateTo string) (*Filter, error) {
	f := NewFilter()
	f.Text = text
	if library != "" {
		f.Libraries = []string{library}
	}
	if category != "" {
		f.Categories = []string{category}
	}

	var err error
	if f.DateFrom, err = optionalDate(dateFrom); err != nil {
		return nil, fmt.Errorf("parsing from date: %w", err)
	}
	if f.DateTo, err = optionalDate(dateTo); err != nil {
		return nil, fmt.Errorf("parsing to date: %w", err)
	}
	return f, nil
}

func optionalDate(text string) (*event.Date, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	d, err := event.ParseDate(text)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all events.
func (f *Filter) IsEmpty() bool {
	return f == nil ||
		(f.Text == "" &&
			len(f.Libraries) == 0 &&
			len(f.Categories) == 0 &&
			f.DateFrom == nil &&
			f.DateTo == nil)
}

// Matches checks if an event matches all active filter criteria.
// A nil or empty filter matches all events.
func (f *Filter) Matches(evt event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	if f.Text != "" {
		needle := fold(f.Text)
		if !strings.Contains(fold(evt.Title), needle) && !strings.Contains(fold(evt.Description), needle) {
			return false
		}
	}

	if len(f.Libraries) > 0 && !slices.Contains(f.Libraries, evt.Library) {
		return false
	}

	if len(f.Categories) > 0 && !slices.Contains(f.Categories, evt.Category) {
		return false
	}

	if f.DateFrom != nil && evt.Date.Before(*f.DateFrom) {
		return false
	}

	if f.DateTo != nil && evt.Date.After(*f.DateTo) {
		return false
	}

	return true
}

// fold returns the Unicode case-folded form of s.
// A Caser is stateful, so a fresh one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Apply returns the events that match all criteria, in input order.
// The result never aliases events.
func (f *Filter) Apply(events []event.Event) []event.Event {
	if f.IsEmpty() {
		return slices.Clone(events)
	}

	filtered := make([]event.Event, 0, len(events))
	for _, evt := range events {
		if f.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: `Text: "story" | Libraries: Central Library | From: Jan 1, 2025`
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.Text != "" {
		parts = append(parts, fmt.Sprintf("Text: %q", f.Text))
	}

	if len(f.Libraries) > 0 {
		parts = append(parts, fmt.Sprintf("Libraries: %s", strings.Join(f.Libraries, ", ")))
	}

	if len(f.Categories) > 0 {
		parts = append(parts, fmt.Sprintf("Categories: %s", strings.Join(f.Categories, ", ")))
	}

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Time().Format("Jan 2, 2006")))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Time().Format("Jan 2, 2006")))
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter.
func (f *Filter) Clone() *Filter {
	if f == nil {
		return NewFilter()
	}

	clone := &Filter{
		Text:       f.Text,
		Libraries:  append([]string{}, f.Libraries...),
		Categories: append([]string{}, f.Categories...),
	}

	if f.DateFrom != nil {
		df := *f.DateFrom
		clone.DateFrom = &df
	}

	if f.DateTo != nil {
		dt := *f.DateTo
		clone.DateTo = &dt
	}

	return clone
}
