package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/library-events/internal/event"
)

var (
	monthPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	rangePattern = regexp.MustCompile(`^(.*?)\s*\.\.\s*(.*)$`)
)

// ParseDateRange parses a date range shorthand into inclusive bounds.
//
// Supported formats:
//   - "2025-01" - the whole month
//   - "2025-01-10" - a single day
//   - "2025-01-01..2025-01-31" - both bounds
//   - "2025-01-01.." or "..2025-01-31" - one open side
//
// A nil bound means that side is unconstrained.
func ParseDateRange(input string) (*event.Date, *event.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	// Format 1: whole month
	if matches := monthPattern.FindStringSubmatch(input); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		if month < 1 || month > 12 {
			return nil, nil, fmt.Errorf("invalid month: %s", matches[2])
		}

		from := event.NewDate(year, time.Month(month), 1)
		// Day 0 of the next month is the last day of this one
		to := event.NewDate(year, time.Month(month)+1, 0)
		return &from, &to, nil
	}

	// Format 2: explicit bounds
	if matches := rangePattern.FindStringSubmatch(input); matches != nil {
		if matches[1] == "" && matches[2] == "" {
			return nil, nil, fmt.Errorf("date range needs at least one bound")
		}

		from, err := optionalDate(matches[1])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date: %w", err)
		}
		to, err := optionalDate(matches[2])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date: %w", err)
		}

		if from != nil && to != nil && from.After(*to) {
			return nil, nil, fmt.Errorf("start date must not be after end date")
		}
		return from, to, nil
	}

	// Format 3: single day
	d, err := event.ParseDate(input)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date range format. Use '2025-01', '2025-01-10' or '2025-01-01..2025-01-31'")
	}
	return &d, &d, nil
}
