package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/library-events/internal/event"
)

func sampleLibraries() []event.Library {
	return []event.Library{
		{ID: 1, Name: "Central Library", Location: "123 Main Street", Capacity: 200},
		{ID: 2, Name: "Westside Branch", Location: "456 West Avenue", Capacity: 100},
		{ID: 3, Name: "Eastside Branch", Location: "789 East Boulevard", Capacity: 80},
	}
}

func sampleEvents() []event.Event {
	return []event.Event{
		{ID: 1, Library: "Central Library", Category: "Children's Storytime", Date: event.MustParseDate("2024-12-15"),
			Attendees: event.Attendees{Adults: 8, Children: 25}, Cost: 150, FundingSource: event.FundingLibraryBudget},
		{ID: 2, Library: "Westside Branch", Category: "Author Talk", Date: event.MustParseDate("2024-12-20"),
			Attendees: event.Attendees{Adults: 45, Children: 0}, Cost: 500, FundingSource: event.FundingDonation},
		{ID: 3, Library: "Central Library", Category: "Computer Class", Date: event.MustParseDate("2025-01-10"),
			Attendees: event.Attendees{Adults: 20, Children: 0}, Cost: 200, FundingSource: event.FundingLibraryBudget},
		{ID: 4, Library: "Eastside Branch", Category: "Book Club", Date: event.MustParseDate("2025-01-15"),
			Attendees: event.Attendees{Adults: 15, Children: 0}, Cost: 50, FundingSource: event.FundingOther},
		{ID: 5, Library: "Westside Branch", Category: "Workshop", Date: event.MustParseDate("2025-01-20"),
			Attendees: event.Attendees{Adults: 5, Children: 18}, Cost: 300, FundingSource: event.FundingDonation},
	}
}

func keys(groups []GroupSummary) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{}, Summarize([]event.Event{}))
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEvents())

	assert.Equal(t, 5, s.TotalEvents)
	assert.Equal(t, 136, s.TotalAttendees)
	assert.Equal(t, 93, s.TotalAdults)
	assert.Equal(t, 43, s.TotalChildren)
	assert.Equal(t, 1200.0, s.TotalCost)
	assert.InDelta(t, 27.2, s.AverageAttendees, 1e-9)
	assert.InDelta(t, 240.0, s.AverageCost, 1e-9)
}

func TestByLibrary(t *testing.T) {
	groups := ByLibrary(sampleEvents(), sampleLibraries(), false)
	require.Equal(t, []string{"Central Library", "Westside Branch", "Eastside Branch"}, keys(groups))

	central := groups[0]
	assert.Equal(t, 2, central.EventCount)
	assert.Equal(t, 350.0, central.TotalCost)
	assert.Equal(t, 53, central.TotalAttendees)
	assert.Equal(t, 28, central.TotalAdults)
	assert.Equal(t, 25, central.TotalChildren)
	assert.InDelta(t, 26.5, central.AverageAttendees, 1e-9)
	assert.InDelta(t, 175.0, central.AverageCost, 1e-9)
}

func TestByLibrary_EmptyGroups(t *testing.T) {
	libs := append(sampleLibraries(), event.Library{ID: 4, Name: "Northside Branch"})
	events := sampleEvents()[:1]

	without := ByLibrary(events, libs, false)
	assert.Equal(t, []string{"Central Library"}, keys(without))

	with := ByLibrary(events, libs, true)
	require.Equal(t, []string{"Central Library", "Westside Branch", "Eastside Branch", "Northside Branch"}, keys(with))
	assert.Equal(t, GroupSummary{Key: "Northside Branch"}, with[3], "empty group is all zeros")
}

func TestByLibrary_DanglingNamesExcluded(t *testing.T) {
	events := append(sampleEvents(), event.Event{ID: 6, Library: "Old Name Branch", Cost: 999})

	total := 0.0
	for _, g := range ByLibrary(events, sampleLibraries(), true) {
		total += g.TotalCost
	}
	assert.Equal(t, 1200.0, total)
}

func TestByCategory(t *testing.T) {
	groups := ByCategory(sampleEvents(), false)
	assert.Equal(t, []string{"Book Club", "Author Talk", "Children's Storytime", "Workshop", "Computer Class"}, keys(groups))

	all := ByCategory(sampleEvents(), true)
	assert.Equal(t, event.Categories(), keys(all))
}

func TestByFunding(t *testing.T) {
	groups := ByFunding(sampleEvents(), false)
	require.Equal(t, []string{"Library Budget", "Donation", "Other"}, keys(groups))

	assert.Equal(t, 350.0, groups[0].TotalCost)
	assert.Equal(t, 2, groups[1].EventCount)
	assert.Equal(t, 800.0, groups[1].TotalCost)
	assert.Equal(t, 50.0, groups[2].TotalCost)
}

func TestByMonth_Chronological(t *testing.T) {
	events := []event.Event{
		{Date: event.MustParseDate("2025-03-02"), Cost: 1},
		{Date: event.MustParseDate("2024-12-15"), Cost: 2},
		{Date: event.MustParseDate("2025-01-31"), Cost: 3},
		{Date: event.MustParseDate("2024-12-01"), Cost: 4},
		{Date: event.MustParseDate("2025-01-01"), Cost: 5},
		{Date: event.MustParseDate("2024-04-09"), Cost: 6},
	}

	groups := ByMonth(events)
	require.Equal(t, []string{"2024-Apr", "2024-Dec", "2025-Jan", "2025-Mar"}, keys(groups))

	for i := 1; i < len(groups); i++ {
		assert.False(t, groups[i].MonthStart.Before(groups[i-1].MonthStart))
	}
	assert.Equal(t, 6.0, groups[1].TotalCost)
	assert.Equal(t, 8.0, groups[2].TotalCost)
}

func TestByMonth_Empty(t *testing.T) {
	assert.Empty(t, ByMonth(nil))
}

func TestAggregate(t *testing.T) {
	events := sampleEvents()

	t.Run("none yields a single whole-set group", func(t *testing.T) {
		groups, err := Aggregate(events, Options{By: GroupNone})
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, AllKey, groups[0].Key)
		assert.Equal(t, 5, groups[0].EventCount)
	})

	t.Run("none on empty set", func(t *testing.T) {
		groups, err := Aggregate(nil, Options{})
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, 0.0, groups[0].AverageCost)
	})

	t.Run("library needs reference keys", func(t *testing.T) {
		groups, err := Aggregate(events, Options{By: GroupLibrary})
		require.NoError(t, err)
		assert.Empty(t, groups)

		groups, err = Aggregate(events, Options{By: GroupLibrary, Keys: []string{"Westside Branch", "Central Library"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Westside Branch", "Central Library"}, keys(groups))
	})

	t.Run("category defaults to enumeration", func(t *testing.T) {
		groups, err := Aggregate(events, Options{By: GroupCategory, IncludeEmpty: true})
		require.NoError(t, err)
		assert.Len(t, groups, 10)
	})

	t.Run("month", func(t *testing.T) {
		groups, err := Aggregate(events, Options{By: GroupMonth, IncludeEmpty: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-Dec", "2025-Jan"}, keys(groups))
	})

	t.Run("duplicate keys emitted once", func(t *testing.T) {
		groups, err := Aggregate(events, Options{By: GroupFunding, Keys: []string{"Donation", "Donation"}})
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, 2, groups[0].EventCount)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Aggregate(events, Options{By: "weekday"})
		assert.Error(t, err)
	})
}

func TestParseGroupBy(t *testing.T) {
	g, err := ParseGroupBy("month")
	require.NoError(t, err)
	assert.Equal(t, GroupMonth, g)

	g, err = ParseGroupBy("")
	require.NoError(t, err)
	assert.Equal(t, GroupNone, g)

	_, err = ParseGroupBy("year")
	assert.Error(t, err)
}
