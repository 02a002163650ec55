// Package calendar exports events as iCalendar (RFC 5545) data.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pfrederiksen/library-events/internal/event"
)

const (
	ProdID  = "-//Library Events//library-events//EN"
	UIDHost = "library-events"

	// maxLineOctets is the content line limit before folding.
	maxLineOctets = 75
)

// now is replaced in tests.
var now = time.Now

// Generate returns one VCALENDAR holding an all-day VEVENT per event.
// LOCATION is taken from the hosting library when it is known. An empty
// name omits X-WR-CALNAME. No events produce an empty string.
func Generate(events []event.Event, libs []event.Library, name string) string {
	if len(events) == 0 {
		return ""
	}

	var ics strings.Builder
	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, "PRODID:"+ProdID)
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	if name != "" {
		writeLine(&ics, "X-WR-CALNAME:"+escapeICS(name))
	}

	stamp := formatICSTime(now())
	for _, evt := range events {
		writeEvent(&ics, evt, libs, stamp)
	}

	writeLine(&ics, "END:VCALENDAR")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt event.Event, libs []event.Library, stamp string) {
	writeLine(ics, "BEGIN:VEVENT")
	writeLine(ics, fmt.Sprintf("UID:event-%d@%s", evt.ID, UIDHost))
	writeLine(ics, "DTSTAMP:"+stamp)

	// All-day: DTEND is the exclusive following day
	start := evt.Date.Time()
	writeLine(ics, "DTSTART;VALUE=DATE:"+formatICSDate(start))
	writeLine(ics, "DTEND;VALUE=DATE:"+formatICSDate(start.AddDate(0, 0, 1)))

	writeLine(ics, "SUMMARY:"+escapeICS(evt.Title))
	writeLine(ics, "DESCRIPTION:"+escapeICS(describe(evt)))

	location := evt.Library
	if lib, ok := event.FindLibrary(libs, evt.Library); ok && lib.Location != "" {
		location = fmt.Sprintf("%s, %s", lib.Name, lib.Location)
	}
	writeLine(ics, "LOCATION:"+escapeICS(location))

	if evt.Category != "" {
		writeLine(ics, "CATEGORIES:"+escapeICS(evt.Category))
	}
	writeLine(ics, "STATUS:CONFIRMED")
	writeLine(ics, "TRANSP:TRANSPARENT")
	writeLine(ics, "END:VEVENT")
}

func describe(evt event.Event) string {
	var lines []string
	if evt.Description != "" {
		lines = append(lines, evt.Description)
	}
	lines = append(lines,
		fmt.Sprintf("Attendees: %d (%d adults, %d children)", evt.TotalAttendees(), evt.Attendees.Adults, evt.Attendees.Children),
		fmt.Sprintf("Cost: $%.2f (%s)", evt.Cost, evt.FundingSource),
	)
	return strings.Join(lines, "\n")
}

// writeLine writes a CRLF-terminated content line, folding it at
// maxLineOctets without splitting a UTF-8 sequence.
func writeLine(ics *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n ")
		line = line[cut:]
		// Continuation lines start with a space
		limit = maxLineOctets - 1
	}
	ics.WriteString(line)
	ics.WriteString("\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats the calendar date of t as an iCalendar date value
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Bare CRs would break the CRLF line structure
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
