package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/report"
	"github.com/pfrederiksen/library-events/internal/stats"
	"github.com/pfrederiksen/library-events/internal/store"
)

func newSummaryCmd(a *app) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Totals and averages of the matching events",
		Args:  cobra.NoArgs,
	}
	filters.bind(cmd)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		f, err := filters.build(s)
		if err != nil {
			return err
		}
		summary := stats.Summarize(f.Apply(s.Events()))

		o := a.out(cmd)
		return o.emit(summary, func() { o.writeSummary(summary) })
	})
	return cmd
}

// groupOptions returns the aggregation options for a grouping, scoping
// library groups to the known libraries.
func groupOptions(by stats.GroupBy, libs []event.Library, includeEmpty bool) stats.Options {
	opts := stats.Options{By: by, IncludeEmpty: includeEmpty}
	if by == stats.GroupLibrary {
		opts.Keys = event.LibraryNames(libs)
	}
	return opts
}

func newReportCmd(a *app) *cobra.Command {
	var (
		filters      filterFlags
		groupBy      string
		includeEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full report, or one grouping with --group-by",
		Long: `Without --group-by, print the reports page: summary, attendance rate and
breakdowns by library, category, month and funding source. With --group-by,
print only that grouping.`,
		Args: cobra.NoArgs,
	}
	filters.bind(cmd)
	cmd.Flags().StringVar(&groupBy, "group-by", "", "Grouping: none, library, category, month or funding")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "Include library/category/funding groups without events")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		f, err := filters.build(s)
		if err != nil {
			return err
		}
		o := a.out(cmd)

		if groupBy == "" {
			r := report.BuildReports(s.Events(), s.Libraries(), f)
			return o.emit(r, func() { o.writeReports(r) })
		}

		by, err := stats.ParseGroupBy(groupBy)
		if err != nil {
			return err
		}
		groups, err := stats.Aggregate(f.Apply(s.Events()), groupOptions(by, s.Libraries(), includeEmpty))
		if err != nil {
			return err
		}
		return o.emit(groups, func() { o.writeGroups("By "+string(by), groups) })
	})
	return cmd
}

func newTopCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		by      string
		metric  string
		n       int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank categories or libraries by a metric",
		Args:  cobra.NoArgs,
	}
	filters.bind(cmd)
	cmd.Flags().StringVar(&by, "by", "category", "Rank: category or library")
	cmd.Flags().StringVar(&metric, "metric", string(stats.MetricEventCount), "Metric: eventCount, totalAttendees or totalCost")
	cmd.Flags().IntVarP(&n, "limit", "n", -1, "Number of entries (default from LIBRARY_EVENTS_TOP_LIMIT)")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		group, err := stats.ParseGroupBy(by)
		if err != nil {
			return err
		}
		if group != stats.GroupCategory && group != stats.GroupLibrary {
			return fmt.Errorf("invalid --by: %s (must be category or library)", by)
		}
		m, err := stats.ParseMetric(metric)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") {
			n = a.cfg.TopLimit
		}

		f, err := filters.build(s)
		if err != nil {
			return err
		}
		groups, err := stats.Aggregate(f.Apply(s.Events()), groupOptions(group, s.Libraries(), false))
		if err != nil {
			return err
		}
		ranked := stats.TopN(groups, m, n)

		o := a.out(cmd)
		return o.emit(ranked, func() {
			o.writeGroups(fmt.Sprintf("Top %s by %s", title(string(group)), m), ranked)
		})
	})
	return cmd
}

func (a *app) limits() report.Limits {
	limits := report.DefaultLimits()
	limits.Recent = a.cfg.RecentLimit
	limits.TopCategories = a.cfg.TopLimit
	return limits
}

func newDashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Overview of all events and libraries",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		today, err := a.referenceDate()
		if err != nil {
			return err
		}
		d := report.BuildDashboard(s.Events(), s.Libraries(), today, a.limits())

		o := a.out(cmd)
		return o.emit(d, func() { o.writeDashboard(d) })
	})
	return cmd
}

func newProfilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Per-library statistics",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		today, err := a.referenceDate()
		if err != nil {
			return err
		}
		profiles := report.LibraryProfiles(s.Events(), s.Libraries(), today, a.limits())

		o := a.out(cmd)
		return o.emit(profiles, func() { o.writeProfiles(profiles) })
	})
	return cmd
}
