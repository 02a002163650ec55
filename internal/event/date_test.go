package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"iso", "2025-01-10", NewDate(2025, time.January, 10), false},
		{"iso with spaces", "  2024-12-15 ", NewDate(2024, time.December, 15), false},
		{"rfc3339 keeps wall date", "2025-01-10T23:30:00-08:00", NewDate(2025, time.January, 10), false},
		{"us slash", "01/20/2025", NewDate(2025, time.January, 20), false},
		{"short month", "Jan 15, 2025", NewDate(2025, time.January, 15), false},
		{"empty", "", Date{}, true},
		{"garbage", "next tuesday", Date{}, true},
		{"impossible day", "2025-02-30", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestDate_MonthHelpers(t *testing.T) {
	d := NewDate(2024, time.December, 15)

	assert.Equal(t, "2024-Dec", d.MonthLabel())
	assert.Equal(t, "2024-12-01", d.MonthStart().String())
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2025, time.January, 1)
	b := NewDate(2025, time.January, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(NewDate(2025, time.January, 1)))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.January, 20)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-20"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d))

	var zero Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &zero))
	assert.True(t, zero.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`null`), &zero))
	assert.True(t, zero.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`20250120`), &zero))
}
