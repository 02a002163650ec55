package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "whole month", input: "2025-01", wantFrom: "2025-01-01", wantTo: "2025-01-31"},
		{name: "february leap year", input: "2024-02", wantFrom: "2024-02-01", wantTo: "2024-02-29"},
		{name: "december", input: "2024-12", wantFrom: "2024-12-01", wantTo: "2024-12-31"},
		{name: "single day", input: "2025-01-10", wantFrom: "2025-01-10", wantTo: "2025-01-10"},
		{name: "both bounds", input: "2024-12-15..2025-01-15", wantFrom: "2024-12-15", wantTo: "2025-01-15"},
		{name: "spaced bounds", input: "2024-12-15 .. 2025-01-15", wantFrom: "2024-12-15", wantTo: "2025-01-15"},
		{name: "open end", input: "2025-01-01..", wantFrom: "2025-01-01"},
		{name: "open start", input: "..2025-01-01", wantTo: "2025-01-01"},
		{name: "empty", input: "", wantErr: true},
		{name: "no bounds", input: "..", wantErr: true},
		{name: "bad month", input: "2025-13", wantErr: true},
		{name: "reversed", input: "2025-02-01..2025-01-01", wantErr: true},
		{name: "garbage", input: "last week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ParseDateRange(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.wantFrom == "" {
				assert.Nil(t, from)
			} else {
				require.NotNil(t, from)
				assert.Equal(t, tt.wantFrom, from.String())
			}

			if tt.wantTo == "" {
				assert.Nil(t, to)
			} else {
				require.NotNil(t, to)
				assert.Equal(t, tt.wantTo, to.String())
			}
		})
	}
}
