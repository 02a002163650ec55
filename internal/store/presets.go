package store

import (
	domainerrors "github.com/pfrederiksen/library-events/internal/errors"
	"github.com/pfrederiksen/library-events/internal/filter"
)

// Presets returns the saved filter presets.
func (s *Store) Presets() (filter.Presets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets, err := s.collections.LoadPresets()
	if err != nil {
		return nil, domainerrors.Persistence("load presets", err)
	}
	return presets, nil
}

// Preset returns the preset named name, compared case-insensitively.
func (s *Store) Preset(name string) (filter.Preset, error) {
	presets, err := s.Presets()
	if err != nil {
		return filter.Preset{}, err
	}
	p, ok := presets.Find(name)
	if !ok {
		return filter.Preset{}, domainerrors.NotFoundf("preset %q not found", name)
	}
	return p, nil
}

// SavePreset stores f under name, replacing any preset with the same name.
func (s *Store) SavePreset(name string, f *filter.Filter) (filter.Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.collections.LoadPresets()
	if err != nil {
		return filter.Preset{}, domainerrors.Persistence("load presets", err)
	}

	p := filter.NewPreset(name, f)
	presets, err = presets.Upsert(p)
	if err != nil {
		return filter.Preset{}, domainerrors.Validation(err.Error())
	}
	s.count("presets", "save")

	if err := s.persist("presets", func() error { return s.collections.SavePresets(presets) }); err != nil {
		return p, err
	}
	saved, _ := presets.Find(p.Name)
	return saved, nil
}

// DeletePreset removes the preset named name.
func (s *Store) DeletePreset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.collections.LoadPresets()
	if err != nil {
		return domainerrors.Persistence("load presets", err)
	}

	presets, ok := presets.Remove(name)
	if !ok {
		return domainerrors.NotFoundf("preset %q not found", name)
	}
	s.count("presets", "delete")
	return s.persist("presets", func() error { return s.collections.SavePresets(presets) })
}
