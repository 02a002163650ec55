package storage

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/filter"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Collections reads and writes the typed collections on a Backend.
type Collections struct {
	backend Backend
}

// NewCollections wraps backend.
func NewCollections(backend Backend) *Collections {
	return &Collections{backend: backend}
}

// Backend returns the wrapped backend.
func (c *Collections) Backend() Backend {
	return c.backend
}

// LoadEvents loads the event collection. found is false when nothing has
// ever been saved under the key; an empty saved collection is found.
func (c *Collections) LoadEvents() (events []event.Event, found bool, err error) {
	found, err = c.load(KeyEvents, &events)
	return events, found, err
}

// SaveEvents overwrites the event collection.
func (c *Collections) SaveEvents(events []event.Event) error {
	return c.save(KeyEvents, nonNil(events))
}

// LoadLibraries loads the library collection. See LoadEvents for found.
func (c *Collections) LoadLibraries() (libs []event.Library, found bool, err error) {
	found, err = c.load(KeyLibraries, &libs)
	return libs, found, err
}

// SaveLibraries overwrites the library collection.
func (c *Collections) SaveLibraries(libs []event.Library) error {
	return c.save(KeyLibraries, nonNil(libs))
}

// LoadPresets loads the saved filter presets. A missing key is no presets.
func (c *Collections) LoadPresets() (filter.Presets, error) {
	var presets filter.Presets
	if _, err := c.load(KeyPresets, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// SavePresets overwrites the saved filter presets.
func (c *Collections) SavePresets(presets filter.Presets) error {
	return c.save(KeyPresets, nonNil(presets))
}

func (c *Collections) load(key string, target any) (bool, error) {
	data, err := c.backend.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("loading %s: %w", key, err)
	}

	// An empty value is treated like a missing one
	if len(data) == 0 {
		return false, nil
	}

	if err := codec.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return true, nil
}

func (c *Collections) save(key string, value any) error {
	data, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := c.backend.Put(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// nonNil keeps an empty collection encoded as [] rather than null.
func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
