package filter

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreset_CopiesFilter(t *testing.T) {
	f := &Filter{Libraries: []string{"Central Library"}}
	p := NewPreset("  central ", f)

	f.Libraries[0] = "Westside Branch"

	assert.Equal(t, "central", p.Name)
	assert.Equal(t, []string{"Central Library"}, p.Filter.Libraries)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPresets_UpsertFindRemove(t *testing.T) {
	var ps Presets

	ps, err := ps.Upsert(NewPreset("winter", &Filter{DateFrom: datePtr("2024-12-01")}))
	require.NoError(t, err)
	ps, err = ps.Upsert(NewPreset("clubs", &Filter{Categories: []string{"Book Club"}}))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	created := ps[0].CreatedAt
	replacement := NewPreset("WINTER", &Filter{DateFrom: datePtr("2024-11-01")})
	replacement.CreatedAt = created.Add(time.Hour)

	ps, err = ps.Upsert(replacement)
	require.NoError(t, err)
	require.Len(t, ps, 2, "names match case-insensitively")
	assert.Equal(t, created, ps[0].CreatedAt, "creation time is kept")
	assert.Equal(t, "2024-11-01", ps[0].Filter.DateFrom.String())

	found, ok := ps.Find("clubs")
	require.True(t, ok)
	assert.Equal(t, []string{"Book Club"}, found.Filter.Categories)

	ps, ok = ps.Remove("clubs")
	assert.True(t, ok)
	assert.Len(t, ps, 1)

	_, ok = ps.Remove("missing")
	assert.False(t, ok)

	_, err = ps.Upsert(Preset{})
	assert.Error(t, err)
}

func TestPreset_JSONKeys(t *testing.T) {
	p := NewPreset("winter", &Filter{DateFrom: datePtr("2024-12-01"), DateTo: datePtr("2025-02-28")})

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &raw))
	assert.Contains(t, raw, "createdAt")
	assert.Contains(t, raw, "updatedAt")

	f, ok := raw["filter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2024-12-01", f["dateFrom"])
	assert.Equal(t, "2025-02-28", f["dateTo"])
}
