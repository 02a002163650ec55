// Package store owns the canonical event and library collections.
//
// A Store loads both collections from a storage backend when opened, seeding
// sample data on a fresh install, and writes the whole collection back after
// every mutation. Mutations are serialized by a single-writer lock; readers
// receive copies.
//
// Errors carry the kinds defined in internal/errors:
//   - Validation when a payload is rejected
//   - NotFound when an update or lookup names an unknown id
//   - Persistence when the backend write fails. The in-memory change is kept
//     and the mutated record is returned alongside the error.
package store
