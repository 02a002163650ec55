package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pfrederiksen/library-events/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByStored  SortOrder = "stored"
	SortByDate    SortOrder = "date"
	SortByLibrary SortOrder = "library"
	SortByTitle   SortOrder = "title"
)

func parseSortOrder(name string) (SortOrder, error) {
	switch s := SortOrder(strings.ToLower(name)); s {
	case SortByStored, SortByDate, SortByLibrary, SortByTitle:
		return s, nil
	case "":
		return SortByStored, nil
	default:
		return "", fmt.Errorf("invalid sort: %s (must be stored, date, library or title)", name)
	}
}

// sortEvents sorts a slice of events based on the specified sort order.
// Stored order is left untouched.
func sortEvents(events []event.Event, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		slices.SortStableFunc(events, compareByDate)
	case SortByLibrary:
		slices.SortStableFunc(events, func(a, b event.Event) int {
			if c := strings.Compare(a.Library, b.Library); c != 0 {
				return c
			}
			// If libraries are equal, sort by date
			return compareByDate(a, b)
		})
	case SortByTitle:
		slices.SortStableFunc(events, func(a, b event.Event) int {
			if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
				return c
			}
			// If titles are equal, sort by date
			return compareByDate(a, b)
		})
	}
}

// compareByDate orders events by date, then by id.
func compareByDate(a, b event.Event) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.ID - b.ID
}
