// Package storage persists the event and library collections.
//
// Persisted state is a small key-value layout: each collection is one JSON
// array stored under a fixed key (libraryEvents, libraries, filterPresets).
// Every save overwrites the whole collection; there are no partial writes.
//
// A Backend stores raw values. Four backends are available: Dir keeps one
// <key>.json file per collection (default location ~/.local/share/library-events/),
// Badger and SQLite keep the values in an embedded database, and Memory keeps
// them in process for tests and dry runs. Collections encodes and decodes the
// typed records on top of any Backend.
package storage
