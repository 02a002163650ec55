// Package importer reads event records from external sources.
//
// ParseHTML extracts rows from an HTML events table whose header names the
// event columns, Fetch downloads such a page over HTTP, and ParseJSON reads
// a previously exported libraryEvents collection. Every importer yields raw
// payloads; validation and id assignment happen when the payloads are
// created through the store.
package importer
