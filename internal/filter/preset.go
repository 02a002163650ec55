package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Preset represents a saved filter configuration
type Preset struct {
	Name      string    `json:"name"`
	Filter    *Filter   `json:"filter"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPreset creates a new preset with the given name and a copy of f.
// Created and Updated timestamps are set to the current time.
func NewPreset(name string, f *Filter) Preset {
	now := time.Now().UTC()
	return Preset{
		Name:      strings.TrimSpace(name),
		Filter:    f.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Presets is an ordered list of saved presets with unique names.
type Presets []Preset

// Find returns the preset named name.
func (ps Presets) Find(name string) (Preset, bool) {
	i := ps.index(name)
	if i < 0 {
		return Preset{}, false
	}
	return ps[i], true
}

// Upsert adds p, or replaces the filter of the preset with the same name
// while keeping its creation time.
func (ps Presets) Upsert(p Preset) (Presets, error) {
	if p.Name == "" {
		return ps, fmt.Errorf("preset name cannot be empty")
	}

	out := slices.Clone(ps)
	if i := out.index(p.Name); i >= 0 {
		p.CreatedAt = out[i].CreatedAt
		out[i] = p
		return out, nil
	}
	return append(out, p), nil
}

// Remove deletes the preset named name. It reports whether one existed.
func (ps Presets) Remove(name string) (Presets, bool) {
	i := ps.index(name)
	if i < 0 {
		return ps, false
	}
	return slices.Delete(slices.Clone(ps), i, i+1), true
}

func (ps Presets) index(name string) int {
	return slices.IndexFunc(ps, func(p Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
}
