// Package report builds the derived views shown to users: the dashboard,
// per-library profiles, the filtered reports page and the event list.
//
// Every view is a pure function of an event snapshot, the known libraries
// and, where relevant, a filter and the current date. Grouping and ranking are
// delegated to internal/stats; narrowing to internal/filter.
package report
