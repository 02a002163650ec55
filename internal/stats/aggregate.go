package stats

import (
	"fmt"
	"slices"

	"github.com/pfrederiksen/library-events/internal/event"
)

// GroupBy selects the grouping key.
type GroupBy string

const (
	GroupNone     GroupBy = "none"
	GroupLibrary  GroupBy = "library"
	GroupCategory GroupBy = "category"
	GroupMonth    GroupBy = "month"
	GroupFunding  GroupBy = "funding"
)

// AllKey is the key of the single group produced by GroupNone.
const AllKey = "all"

// ParseGroupBy converts a name into a GroupBy.
func ParseGroupBy(name string) (GroupBy, error) {
	switch g := GroupBy(name); g {
	case GroupNone, GroupLibrary, GroupCategory, GroupMonth, GroupFunding:
		return g, nil
	case "":
		return GroupNone, nil
	default:
		return "", fmt.Errorf("unknown grouping %q (must be none, library, category, month or funding)", name)
	}
}

// Options configures Aggregate.
type Options struct {
	By GroupBy

	// Keys is the reference list for library, category and funding grouping.
	// It scopes the groups (events whose key is not listed are left out) and
	// fixes their order. Nil means the fixed enumeration for category and
	// funding, and no groups at all for library.
	Keys []string

	// IncludeEmpty emits a zero group for every reference key without events.
	// Month grouping has no reference calendar and ignores it.
	IncludeEmpty bool
}

// Summary holds the reduced statistics of a whole event set.
type Summary struct {
	TotalEvents      int     `json:"totalEvents"`
	TotalAttendees   int     `json:"totalAttendees"`
	TotalAdults      int     `json:"totalAdults"`
	TotalChildren    int     `json:"totalChildren"`
	TotalCost        float64 `json:"totalCost"`
	AverageAttendees float64 `json:"averageAttendees"`
	AverageCost      float64 `json:"averageCost"`
}

// GroupSummary holds the reduced statistics of one group.
type GroupSummary struct {
	Key              string  `json:"key"`
	EventCount       int     `json:"eventCount"`
	TotalAttendees   int     `json:"totalAttendees"`
	TotalAdults      int     `json:"totalAdults"`
	TotalChildren    int     `json:"totalChildren"`
	TotalCost        float64 `json:"totalCost"`
	AverageAttendees float64 `json:"averageAttendees"`
	AverageCost      float64 `json:"averageCost"`

	// MonthStart is the first day of the month for month groups.
	MonthStart event.Date `json:"-"`
}

// totals accumulates one group.
type totals struct {
	count    int
	adults   int
	children int
	cost     float64
}

func (t *totals) add(e event.Event) {
	t.count++
	t.adults += e.Attendees.Adults
	t.children += e.Attendees.Children
	t.cost += e.Cost
}

func (t totals) group(key string) GroupSummary {
	g := GroupSummary{
		Key:            key,
		EventCount:     t.count,
		TotalAttendees: t.adults + t.children,
		TotalAdults:    t.adults,
		TotalChildren:  t.children,
		TotalCost:      t.cost,
	}
	if t.count > 0 {
		g.AverageAttendees = float64(g.TotalAttendees) / float64(t.count)
		g.AverageCost = t.cost / float64(t.count)
	}
	return g
}

// Summarize reduces events to a single Summary.
func Summarize(events []event.Event) Summary {
	var t totals
	for _, e := range events {
		t.add(e)
	}
	g := t.group(AllKey)
	return Summary{
		TotalEvents:      g.EventCount,
		TotalAttendees:   g.TotalAttendees,
		TotalAdults:      g.TotalAdults,
		TotalChildren:    g.TotalChildren,
		TotalCost:        g.TotalCost,
		AverageAttendees: g.AverageAttendees,
		AverageCost:      g.AverageCost,
	}
}

// Aggregate groups events according to opts and summarizes each group.
func Aggregate(events []event.Event, opts Options) ([]GroupSummary, error) {
	switch opts.By {
	case GroupNone, "":
		var t totals
		for _, e := range events {
			t.add(e)
		}
		return []GroupSummary{t.group(AllKey)}, nil
	case GroupLibrary:
		return byReference(events, opts.Keys, opts.IncludeEmpty, func(e event.Event) string { return e.Library }), nil
	case GroupCategory:
		keys := opts.Keys
		if keys == nil {
			keys = event.Categories()
		}
		return byReference(events, keys, opts.IncludeEmpty, func(e event.Event) string { return e.Category }), nil
	case GroupFunding:
		keys := opts.Keys
		if keys == nil {
			keys = event.FundingSources()
		}
		return byReference(events, keys, opts.IncludeEmpty, func(e event.Event) string { return e.FundingSource }), nil
	case GroupMonth:
		return byMonth(events), nil
	default:
		return nil, fmt.Errorf("unknown grouping %q", opts.By)
	}
}

// ByLibrary groups events by library in the order of libs.
func ByLibrary(events []event.Event, libs []event.Library, includeEmpty bool) []GroupSummary {
	return byReference(events, event.LibraryNames(libs), includeEmpty, func(e event.Event) string { return e.Library })
}

// ByCategory groups events by category in enumeration order.
func ByCategory(events []event.Event, includeEmpty bool) []GroupSummary {
	return byReference(events, event.Categories(), includeEmpty, func(e event.Event) string { return e.Category })
}

// ByFunding groups events by funding source in enumeration order.
func ByFunding(events []event.Event, includeEmpty bool) []GroupSummary {
	return byReference(events, event.FundingSources(), includeEmpty, func(e event.Event) string { return e.FundingSource })
}

// ByMonth groups events by calendar month in chronological order.
func ByMonth(events []event.Event) []GroupSummary {
	return byMonth(events)
}

func byReference(events []event.Event, keys []string, includeEmpty bool, keyOf func(event.Event) string) []GroupSummary {
	acc := make(map[string]*totals, len(keys))
	for _, k := range keys {
		acc[k] = &totals{}
	}

	for _, e := range events {
		if t, ok := acc[keyOf(e)]; ok {
			t.add(e)
		}
	}

	groups := make([]GroupSummary, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		// A duplicated reference key is emitted once
		if seen[k] {
			continue
		}
		seen[k] = true

		t := acc[k]
		if t.count == 0 && !includeEmpty {
			continue
		}
		groups = append(groups, t.group(k))
	}
	return groups
}

func byMonth(events []event.Event) []GroupSummary {
	acc := make(map[string]*totals)
	starts := make(map[string]event.Date)

	for _, e := range events {
		label := e.Date.MonthLabel()
		t, ok := acc[label]
		if !ok {
			t = &totals{}
			acc[label] = t
			starts[label] = e.Date.MonthStart()
		}
		t.add(e)
	}

	groups := make([]GroupSummary, 0, len(acc))
	for label, t := range acc {
		g := t.group(label)
		g.MonthStart = starts[label]
		groups = append(groups, g)
	}

	slices.SortFunc(groups, func(a, b GroupSummary) int {
		return a.MonthStart.Compare(b.MonthStart)
	})
	return groups
}
