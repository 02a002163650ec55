package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/library-events/internal/event"
)

// column identifies a payload field.
type column int

const (
	colTitle column = iota
	colLibrary
	colCategory
	colDate
	colAdults
	colChildren
	colCost
	colFunding
	colDescription
)

// headers maps normalized header text to columns.
var headers = map[string]column{
	"title":         colTitle,
	"event":         colTitle,
	"library":       colLibrary,
	"branch":        colLibrary,
	"category":      colCategory,
	"date":          colDate,
	"adults":        colAdults,
	"children":      colChildren,
	"cost":          colCost,
	"fundingsource": colFunding,
	"funding":       colFunding,
	"description":   colDescription,
}

// ParseHTML reads the first table in r whose header row has a Title column.
// Header names are matched case-insensitively, ignoring spaces; unrecognized
// columns are ignored. Rows with no text at all are skipped.
func ParseHTML(r io.Reader) ([]event.Payload, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var (
		layout map[int]column
		table  *goquery.Selection
	)
	doc.Find("table").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if l := headerLayout(sel.Find("tr").First()); l != nil {
			layout, table = l, sel
			return false
		}
		return true
	})
	if table == nil {
		return nil, fmt.Errorf("no events table found")
	}

	payloads := make([]event.Payload, 0)
	table.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		var (
			p     event.Payload
			blank = true
		)
		row.Find("td,th").Each(func(i int, cell *goquery.Selection) {
			col, ok := layout[i]
			if !ok {
				return
			}
			text := cellText(cell)
			if text != "" {
				blank = false
			}
			assign(&p, col, text)
		})
		if !blank {
			payloads = append(payloads, p)
		}
	})

	return payloads, nil
}

// headerLayout maps cell positions of row to columns, or returns nil if
// row does not look like an events header.
func headerLayout(row *goquery.Selection) map[int]column {
	layout := make(map[int]column)
	row.Find("td,th").Each(func(i int, cell *goquery.Selection) {
		key := strings.ToLower(strings.Join(strings.Fields(cell.Text()), ""))
		if col, ok := headers[key]; ok {
			layout[i] = col
		}
	})

	for _, col := range layout {
		if col == colTitle {
			return layout
		}
	}
	return nil
}

// cellText returns the cell text with runs of whitespace collapsed.
func cellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}

func assign(p *event.Payload, col column, text string) {
	switch col {
	case colTitle:
		p.Title = text
	case colLibrary:
		p.Library = text
	case colCategory:
		p.Category = text
	case colDate:
		p.Date = text
	case colAdults:
		p.Adults = text
	case colChildren:
		p.Children = text
	case colCost:
		p.Cost = strings.TrimPrefix(strings.ReplaceAll(text, ",", ""), "$")
	case colFunding:
		p.FundingSource = text
	case colDescription:
		p.Description = text
	}
}
