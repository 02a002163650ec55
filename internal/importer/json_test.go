package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/library-events/internal/event"
)

const exported = `[
  {"id": 7, "title": "Author Talk: Local History", "library": "Westside Branch",
   "category": "Author Talk", "date": "2024-12-20",
   "attendees": {"adults": 45, "children": 0}, "cost": 500,
   "fundingSource": "Donation", "description": "Meet local author discussing city heritage"}
]`

func TestParseJSON(t *testing.T) {
	want := event.Payload{
		Title:         "Author Talk: Local History",
		Library:       "Westside Branch",
		Category:      "Author Talk",
		Date:          "2024-12-20",
		Adults:        "45",
		Children:      "0",
		Cost:          "500",
		FundingSource: "Donation",
		Description:   "Meet local author discussing city heritage",
	}

	tests := []struct {
		name  string
		input string
	}{
		{"bare array", exported},
		{"wrapped", `{"libraryEvents": ` + exported + `, "libraries": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, []event.Payload{want}, got)
		})
	}
}

func TestParseJSON_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":       "   ",
		"not json":    "<html>",
		"missing key": `{"libraries": []}`,
		"bad date":    `[{"title": "x", "date": "someday"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
