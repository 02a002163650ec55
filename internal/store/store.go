package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	domainerrors "github.com/pfrederiksen/library-events/internal/errors"
	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/logger"
	"github.com/pfrederiksen/library-events/internal/storage"
)

// Store is the single owner of the event and library collections.
type Store struct {
	mu          sync.RWMutex
	collections *storage.Collections
	events      []event.Event
	libraries   []event.Library

	log     *logger.Logger
	metrics *logger.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithMetrics sets the metrics tracker that receives operation counters.
func WithMetrics(m *logger.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Open loads both collections from c, seeding any that have never been saved.
// When a seeded collection cannot be saved the store is still returned,
// holding the seed in memory, together with a Persistence error.
func Open(c *storage.Collections, opts ...Option) (*Store, error) {
	s := &Store{
		collections: c,
		log:         logger.Default(),
		metrics:     logger.DefaultMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := s.reload()
	if !loaded {
		return nil, err
	}
	return s, err
}

// Reload replaces the in-memory collections with the persisted ones. A load
// failure leaves the current collections untouched. A failure to save a
// seeded collection keeps the seed in memory and returns the error.
func (s *Store) Reload() error {
	_, err := s.reload()
	return err
}

func (s *Store) reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, eventsFound, err := s.collections.LoadEvents()
	if err != nil {
		return false, domainerrors.Persistence("load events", err)
	}
	libraries, librariesFound, err := s.collections.LoadLibraries()
	if err != nil {
		return false, domainerrors.Persistence("load libraries", err)
	}

	var seedErr error
	if !eventsFound {
		events = SeedEvents()
		if err := s.persist("events", func() error { return s.collections.SaveEvents(events) }); err != nil {
			seedErr = err
		} else {
			s.log.Info("Seeded sample events", logger.Fields{"count": len(events)})
		}
	}
	if !librariesFound {
		libraries = SeedLibraries()
		if err := s.persist("libraries", func() error { return s.collections.SaveLibraries(libraries) }); err != nil {
			if seedErr == nil {
				seedErr = err
			}
		} else {
			s.log.Info("Seeded sample libraries", logger.Fields{"count": len(libraries)})
		}
	}

	s.events = events
	s.libraries = libraries
	s.updateGauges()
	return true, seedErr
}

// Events returns a copy of the event collection in stored order.
func (s *Store) Events() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// Libraries returns a copy of the library collection in stored order.
func (s *Store) Libraries() []event.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.libraries)
}

// Event returns the event with the given id.
func (s *Store) Event(id int) (event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.events, func(e event.Event) bool { return e.ID == id })
	if i < 0 {
		return event.Event{}, domainerrors.NotFoundf("event %d not found", id)
	}
	return s.events[i], nil
}

// Library returns the library with the given id.
func (s *Store) Library(id int) (event.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.libraries, func(l event.Library) bool { return l.ID == id })
	if i < 0 {
		return event.Library{}, domainerrors.NotFoundf("library %d not found", id)
	}
	return s.libraries[i], nil
}

// CreateEvent validates p, assigns the next id and appends the event.
func (s *Store) CreateEvent(p event.Payload) (event.Event, error) {
	evt, err := p.ToEvent()
	if err != nil {
		return event.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evt.ID = nextID(s.events, eventID)
	s.events = append(s.events, evt)
	s.count("events", "create")
	return evt, s.saveEvents()
}

// UpdateEvent replaces every field of event id with p, keeping the id.
func (s *Store) UpdateEvent(id int, p event.Payload) (event.Event, error) {
	evt, err := p.ToEvent()
	if err != nil {
		return event.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.events, func(e event.Event) bool { return e.ID == id })
	if i < 0 {
		return event.Event{}, domainerrors.NotFoundf("event %d not found", id)
	}

	evt.ID = id
	s.events[i] = evt
	s.count("events", "update")
	return evt, s.saveEvents()
}

// DeleteEvent removes event id. An unknown id is not an error; the
// collection is persisted either way.
func (s *Store) DeleteEvent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = slices.DeleteFunc(s.events, func(e event.Event) bool { return e.ID == id })
	s.count("events", "delete")
	return s.saveEvents()
}

// CreateLibrary validates p, assigns the next id and appends the library.
func (s *Store) CreateLibrary(p event.LibraryPayload) (event.Library, error) {
	lib, err := p.ToLibrary()
	if err != nil {
		return event.Library{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lib.ID = nextID(s.libraries, libraryID)
	s.libraries = append(s.libraries, lib)
	s.count("libraries", "create")
	return lib, s.saveLibraries()
}

// UpdateLibrary replaces every field of library id with p, keeping the id.
// Events keep the library name they were recorded with.
func (s *Store) UpdateLibrary(id int, p event.LibraryPayload) (event.Library, error) {
	lib, err := p.ToLibrary()
	if err != nil {
		return event.Library{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.libraries, func(l event.Library) bool { return l.ID == id })
	if i < 0 {
		return event.Library{}, domainerrors.NotFoundf("library %d not found", id)
	}

	if old := s.libraries[i].Name; old != lib.Name {
		s.log.Warn("Library renamed; existing events keep the old name", logger.Fields{
			"id":   id,
			"from": old,
			"to":   lib.Name,
		})
	}

	lib.ID = id
	s.libraries[i] = lib
	s.count("libraries", "update")
	return lib, s.saveLibraries()
}

// DeleteLibrary removes library id. Like DeleteEvent it is lenient.
func (s *Store) DeleteLibrary(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.libraries = slices.DeleteFunc(s.libraries, func(l event.Library) bool { return l.ID == id })
	s.count("libraries", "delete")
	return s.saveLibraries()
}

// saveEvents must be called with mu held.
func (s *Store) saveEvents() error {
	events := s.events
	return s.persist("events", func() error { return s.collections.SaveEvents(events) })
}

// saveLibraries must be called with mu held.
func (s *Store) saveLibraries() error {
	libraries := s.libraries
	return s.persist("libraries", func() error { return s.collections.SaveLibraries(libraries) })
}

func (s *Store) persist(entity string, save func() error) error {
	start := time.Now()
	err := save()
	s.metrics.RecordTiming("storage.persist", time.Since(start))
	s.updateGauges()

	if err != nil {
		s.metrics.IncrCounter(fmt.Sprintf("store.%s.persist_errors", entity))
		s.log.Error("Failed to persist collection", logger.Fields{"entity": entity}, err)
		return domainerrors.Persistence("save "+entity, err)
	}
	return nil
}

func (s *Store) count(entity, op string) {
	s.metrics.IncrCounter(fmt.Sprintf("store.%s.%s", entity, op))
}

func (s *Store) updateGauges() {
	s.metrics.SetGauge("store.events.count", float64(len(s.events)))
	s.metrics.SetGauge("store.libraries.count", float64(len(s.libraries)))
}

func eventID(e event.Event) int     { return e.ID }
func libraryID(l event.Library) int { return l.ID }

// nextID returns one more than the largest id in items, or 1 when empty.
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if n := id(item); n >= next {
			next = n + 1
		}
	}
	return next
}
