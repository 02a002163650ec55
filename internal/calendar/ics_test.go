package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/library-events/internal/event"
)

var testLibraries = []event.Library{
	{ID: 1, Name: "Central Library", Location: "123 Main Street", Capacity: 200},
}

func fixedNow(t *testing.T) {
	t.Helper()
	original := now
	now = func() time.Time { return time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = original })
}

func TestGenerate(t *testing.T) {
	fixedNow(t)

	events := []event.Event{
		{
			ID:            3,
			Title:         "Digital Literacy Workshop",
			Library:       "Central Library",
			Category:      "Computer Class",
			Date:          event.MustParseDate("2025-01-31"),
			Attendees:     event.Attendees{Adults: 20},
			Cost:          200,
			FundingSource: event.FundingLibraryBudget,
			Description:   "Basic computer skills for seniors",
		},
	}

	ics := Generate(events, testLibraries, "Library Events")

	requiredFields := []string{
		"BEGIN:VCALENDAR\r\n",
		"VERSION:2.0\r\n",
		"PRODID:-//Library Events//library-events//EN\r\n",
		"X-WR-CALNAME:Library Events\r\n",
		"BEGIN:VEVENT\r\n",
		"UID:event-3@library-events\r\n",
		"DTSTAMP:20250102T150405Z\r\n",
		"DTSTART;VALUE=DATE:20250131\r\n",
		"DTEND;VALUE=DATE:20250201\r\n",
		"SUMMARY:Digital Literacy Workshop\r\n",
		"LOCATION:Central Library\\, 123 Main Street\r\n", // Comma is escaped
		"CATEGORIES:Computer Class\r\n",
		"END:VEVENT\r\n",
		"END:VCALENDAR\r\n",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %q", field)
		}
	}

	// DESCRIPTION is long enough to be folded
	unfolded := strings.ReplaceAll(ics, "\r\n ", "")
	wantDescription := "DESCRIPTION:Basic computer skills for seniors\\nAttendees: 20 (20 adults\\, 0 children)\\nCost: $200.00 (Library Budget)\r\n"
	if !strings.Contains(unfolded, wantDescription) {
		t.Errorf("unfolded DESCRIPTION should be %q, got:\n%s", wantDescription, unfolded)
	}

	for i, line := range strings.Split(strings.TrimSuffix(ics, "\r\n"), "\r\n") {
		if len(line) > maxLineOctets {
			t.Errorf("line %d has %d octets: %q", i, len(line), line)
		}
	}
}

func TestGenerate_UnknownLibrary(t *testing.T) {
	events := []event.Event{
		{ID: 1, Title: "Pop-up Story Hour", Library: "Mobile Van", Date: event.MustParseDate("2025-05-01")},
	}

	ics := Generate(events, testLibraries, "")

	if !strings.Contains(ics, "LOCATION:Mobile Van\r\n") {
		t.Error("LOCATION should fall back to the library name")
	}
	if strings.Contains(ics, "X-WR-CALNAME:") {
		t.Error("Should not include X-WR-CALNAME when name is empty")
	}
	if strings.Contains(ics, "CATEGORIES:") {
		t.Error("Should not include CATEGORIES when category is empty")
	}
}

func TestGenerate_Bulk(t *testing.T) {
	events := []event.Event{
		{ID: 1, Title: "Event 1", Date: event.MustParseDate("2025-03-15")},
		{ID: 2, Title: "Event 2", Date: event.MustParseDate("2025-04-20")},
		{ID: 3, Title: "Event 3", Date: event.MustParseDate("2025-05-10")},
	}

	ics := Generate(events, nil, "Spring")

	beginCount := strings.Count(ics, "BEGIN:VEVENT")
	endCount := strings.Count(ics, "END:VEVENT")
	if beginCount != 3 || endCount != 3 {
		t.Errorf("Expected 3 VEVENT blocks, got %d begin / %d end", beginCount, endCount)
	}

	for _, uid := range []string{"UID:event-1@", "UID:event-2@", "UID:event-3@"} {
		if !strings.Contains(ics, uid) {
			t.Errorf("Missing %s", uid)
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	if ics := Generate(nil, testLibraries, "Empty"); ics != "" {
		t.Error("No events should return empty string")
	}
}

func TestWriteLine_Folding(t *testing.T) {
	var b strings.Builder
	long := "SUMMARY:" + strings.Repeat("é", 60)
	writeLine(&b, long)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\r\n"), "\r\n")
	if len(lines) < 2 {
		t.Fatalf("expected folded output, got %q", b.String())
	}

	var rebuilt strings.Builder
	for i, line := range lines {
		if len(line) > maxLineOctets {
			t.Errorf("line %d has %d octets", i, len(line))
		}
		if i > 0 {
			if !strings.HasPrefix(line, " ") {
				t.Errorf("continuation line %d should start with a space", i)
			}
			line = line[1:]
		}
		rebuilt.WriteString(line)
	}
	if rebuilt.String() != long {
		t.Errorf("unfolded line = %q, want %q", rebuilt.String(), long)
	}
}

func TestFormatICSTime(t *testing.T) {
	testTime := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	formatted := formatICSTime(testTime)

	expected := "20260315T143000Z"
	if formatted != expected {
		t.Errorf("formatICSTime() = %q, want %q", formatted, expected)
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple text", "Simple text"},
		{"Text with, comma", "Text with\\, comma"},
		{"Text with; semicolon", "Text with\\; semicolon"},
		{"Text with\\backslash", "Text with\\\\backslash"},
		{"Text with\nnewline", "Text with\\nnewline"},
		{"All, special; chars\\\n", "All\\, special\\; chars\\\\\\n"},
		{"Windows\r\nline", "Windows\\nline"},
		{"Bare\rreturn", "Bare\\nreturn"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeICS(tt.input)
			if got != tt.expected {
				t.Errorf("escapeICS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
