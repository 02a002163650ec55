package stats

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pfrederiksen/library-events/internal/event"
)

// Metric names a GroupSummary field to rank by.
type Metric string

const (
	MetricEventCount     Metric = "eventCount"
	MetricTotalAttendees Metric = "totalAttendees"
	MetricTotalCost      Metric = "totalCost"
)

// ParseMetric converts a name into a Metric.
func ParseMetric(name string) (Metric, error) {
	switch m := Metric(name); m {
	case MetricEventCount, MetricTotalAttendees, MetricTotalCost:
		return m, nil
	default:
		return "", fmt.Errorf("unknown metric %q (must be eventCount, totalAttendees or totalCost)", name)
	}
}

// Value returns the metric of g. An unknown metric is 0 for every group.
func (m Metric) Value(g GroupSummary) float64 {
	switch m {
	case MetricEventCount:
		return float64(g.EventCount)
	case MetricTotalAttendees:
		return float64(g.TotalAttendees)
	case MetricTotalCost:
		return g.TotalCost
	default:
		return 0
	}
}

// TopN returns a copy of groups sorted by metric, highest first, truncated
// to n entries. Ties keep their input order. A negative n keeps every group.
func TopN(groups []GroupSummary, metric Metric, n int) []GroupSummary {
	ranked := slices.Clone(groups)
	slices.SortStableFunc(ranked, func(a, b GroupSummary) int {
		return cmp.Compare(metric.Value(b), metric.Value(a))
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []GroupSummary{}
	}
	return ranked
}

// Recent returns up to n events, newest date first. Events on the same day
// keep their input order. A negative n keeps every event.
func Recent(events []event.Event, n int) []event.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b event.Event) int {
		return b.Date.Compare(a.Date)
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []event.Event{}
	}
	return sorted
}

// CountUpcoming counts the events dated today or later.
func CountUpcoming(events []event.Event, today event.Date) int {
	count := 0
	for _, e := range events {
		if e.IsUpcoming(today) {
			count++
		}
	}
	return count
}
