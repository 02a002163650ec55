package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/filter"
	"github.com/pfrederiksen/library-events/internal/report"
	"github.com/pfrederiksen/library-events/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// output writes command results in the selected format.
type output struct {
	w       io.Writer
	p       *message.Printer
	format  OutputFormat
	verbose bool
}

func newOutput(w io.Writer, format OutputFormat, verbose bool) *output {
	return &output{
		w:       w,
		p:       message.NewPrinter(language.English),
		format:  format,
		verbose: verbose,
	}
}

// emit writes v as JSON, or calls text for the text format.
func (o *output) emit(v any, text func()) error {
	if o.format == FormatJSON {
		return writeJSON(o.w, v)
	}
	text()
	return nil
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v any) error {
	encoder := codec.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (o *output) printf(format string, args ...any) {
	o.p.Fprintf(o.w, format, args...)
}

func (o *output) money(amount float64) string {
	return o.p.Sprintf("$%.2f", amount)
}

func (o *output) count(n int) string {
	return o.p.Sprintf("%d", n)
}

func (o *output) writeEvent(evt event.Event) {
	o.printf("#%d  %s  %s\n", evt.ID, evt.Date, evt.Title)
	o.printf("     %s | %s | %s attendees | %s (%s)\n",
		evt.Library, evt.Category, o.count(evt.TotalAttendees()), o.money(evt.Cost), evt.FundingSource)
	if o.verbose {
		o.printf("     Adults: %d, Children: %d\n", evt.Attendees.Adults, evt.Attendees.Children)
		if evt.Description != "" {
			o.printf("     %s\n", evt.Description)
		}
	}
}

func (o *output) writeEventList(list report.EventList, f *filter.Filter) {
	if !f.IsEmpty() {
		o.printf("Filter: %s\n\n", f)
	}
	if len(list.Events) == 0 {
		o.printf("No events found.\n")
	}
	for _, evt := range list.Events {
		o.writeEvent(evt)
	}
	o.printf("\nShowing %d of %d events\n", list.Shown, list.Total)
}

func (o *output) writeEventDetail(evt event.Event) {
	o.printf("Event #%d\n", evt.ID)
	o.printf("  Title:       %s\n", evt.Title)
	o.printf("  Library:     %s\n", evt.Library)
	o.printf("  Category:    %s\n", evt.Category)
	o.printf("  Date:        %s\n", evt.Date)
	o.printf("  Attendees:   %s (%d adults, %d children)\n", o.count(evt.TotalAttendees()), evt.Attendees.Adults, evt.Attendees.Children)
	o.printf("  Cost:        %s\n", o.money(evt.Cost))
	o.printf("  Funding:     %s\n", evt.FundingSource)
	if evt.Description != "" {
		o.printf("  Description: %s\n", evt.Description)
	}
}

func (o *output) writeLibraries(libs []event.Library) {
	if len(libs) == 0 {
		o.printf("No libraries found.\n")
		return
	}
	for _, lib := range libs {
		o.printf("#%d  %s  (%s, capacity %s)\n", lib.ID, lib.Name, lib.Location, o.count(lib.Capacity))
	}
}

func (o *output) writeSummary(s stats.Summary) {
	o.printf("Events:            %s\n", o.count(s.TotalEvents))
	o.printf("Attendees:         %s (%s adults, %s children)\n", o.count(s.TotalAttendees), o.count(s.TotalAdults), o.count(s.TotalChildren))
	o.printf("Total cost:        %s\n", o.money(s.TotalCost))
	o.printf("Avg attendees:     %.1f\n", s.AverageAttendees)
	o.printf("Avg cost:          %s\n", o.money(s.AverageCost))
}

func (o *output) writeGroups(title string, groups []stats.GroupSummary) {
	o.printf("%s\n", title)
	if len(groups) == 0 {
		o.printf("  (none)\n")
		return
	}

	width := 0
	for _, g := range groups {
		width = max(width, len(g.Key))
	}
	for _, g := range groups {
		o.printf("  %s  %3d events  %6s attendees  %12s  avg %.1f\n",
			fmt.Sprintf("%-*s", width, g.Key), g.EventCount, o.count(g.TotalAttendees), o.money(g.TotalCost), g.AverageAttendees)
	}
}

func (o *output) writeDashboard(d report.Dashboard) {
	o.printf("Dashboard\n\n")
	o.writeSummary(d.Summary)
	o.printf("Upcoming events:   %s\n\n", o.count(d.Upcoming))

	o.printf("Recent events\n")
	for _, evt := range d.Recent {
		o.printf("  %s  %s (%s)\n", evt.Date, evt.Title, evt.Library)
	}
	o.printf("\n")

	o.writeGroups("Top categories", d.TopCategories)
	o.printf("\nLibraries\n")
	for _, card := range d.Libraries {
		o.printf("  %s: %s events, %s attendees, %s, capacity %s\n",
			card.Library.Name, o.count(card.Events), o.count(card.Attendees), o.money(card.Cost), o.count(card.Library.Capacity))
	}
}

func (o *output) writeProfiles(profiles []report.Profile) {
	for i, p := range profiles {
		if i > 0 {
			o.printf("\n")
		}
		o.printf("%s\n", p.Library.Name)
		o.printf("  Location:        %s\n", p.Library.Location)
		o.printf("  Capacity:        %s\n", o.count(p.Library.Capacity))
		o.printf("  Events:          %s (%s upcoming)\n", o.count(p.Summary.TotalEvents), o.count(p.Upcoming))
		o.printf("  Attendees:       %s (avg %.1f)\n", o.count(p.Summary.TotalAttendees), p.Summary.AverageAttendees)
		o.printf("  Total cost:      %s (avg %s)\n", o.money(p.Summary.TotalCost), o.money(p.Summary.AverageCost))
		o.printf("  Attendance rate: %.1f%%\n", p.AttendanceRate)
		for _, g := range p.Categories {
			o.printf("  - %s: %d\n", g.Key, g.EventCount)
		}
		for _, evt := range p.Recent {
			o.printf("  * %s  %s\n", evt.Date, evt.Title)
		}
	}
}

func (o *output) writeReports(r report.Reports) {
	if !r.Filter.IsEmpty() {
		o.printf("Filter: %s\n", r.Filter)
	}
	o.printf("Showing %d of %d events\n\n", r.Shown, r.Total)
	if r.Shown == 0 {
		o.printf("No events match the filter.\n")
		return
	}

	o.writeSummary(r.Summary)
	o.printf("Attendance rate:   %.1f%%\n\n", r.AttendanceRate)
	o.writeGroups("By library", r.Libraries)
	o.printf("\n")
	o.writeGroups("By category", r.Categories)
	o.printf("\n")
	o.writeGroups("By month", r.Months)
	o.printf("\n")
	o.writeGroups("By funding source", r.Funding)
}

func (o *output) writePresets(presets filter.Presets) {
	if len(presets) == 0 {
		o.printf("No saved presets.\n")
		return
	}
	for _, p := range presets {
		o.printf("%s: %s\n", p.Name, p.Filter)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// title capitalizes a grouping name for headings.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
