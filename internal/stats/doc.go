// Package stats reduces event collections to summaries.
//
// Aggregate groups events by library, category, funding source or month and
// reduces each group to a GroupSummary; Summarize reduces a whole set. Every
// average is 0 for an empty set. TopN ranks group summaries by a metric with
// a stable descending sort, so ties keep their input order.
//
// Library, category and funding groups come out in the order of their
// reference list (the known libraries, the category enumeration, the
// funding enumeration). Month groups come out in calendar order.
package stats
