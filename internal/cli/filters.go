package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/filter"
	"github.com/pfrederiksen/library-events/internal/store"
)

// filterFlags are the narrowing flags shared by the reporting commands.
type filterFlags struct {
	text       string
	libraries  []string
	categories []string
	from       string
	to         string
	dateRange  string
	preset     string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.text, "text", "", "Match text in title or description (case-insensitive)")
	flags.StringArrayVar(&f.libraries, "library", nil, "Library name (repeatable)")
	flags.StringArrayVar(&f.categories, "category", nil, "Category name (repeatable)")
	flags.StringVar(&f.from, "from", "", "Earliest event date, inclusive")
	flags.StringVar(&f.to, "to", "", "Latest event date, inclusive")
	flags.StringVar(&f.dateRange, "range", "", "Date range: 2025-01, 2025-01-01..2025-01-31, 2025-01-01.. or ..2025-01-31")
	flags.StringVar(&f.preset, "preset", "", "Start from a saved filter preset")
}

// build returns the filter described by the flags. Flags given alongside
// --preset override the preset's corresponding criteria.
func (f *filterFlags) build(s *store.Store) (*filter.Filter, error) {
	result := filter.NewFilter()
	if f.preset != "" {
		p, err := s.Preset(f.preset)
		if err != nil {
			return nil, err
		}
		result = p.Filter.Clone()
	}

	if f.text != "" {
		result.Text = f.text
	}
	if len(f.libraries) > 0 {
		result.Libraries = append([]string{}, f.libraries...)
	}
	if len(f.categories) > 0 {
		result.Categories = append([]string{}, f.categories...)
	}

	if f.dateRange != "" {
		from, to, err := filter.ParseDateRange(f.dateRange)
		if err != nil {
			return nil, fmt.Errorf("invalid --range: %w", err)
		}
		result.DateFrom, result.DateTo = from, to
	}
	if f.from != "" {
		d, err := event.ParseDate(f.from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		result.DateFrom = &d
	}
	if f.to != "" {
		d, err := event.ParseDate(f.to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
		result.DateTo = &d
	}

	return result, nil
}
