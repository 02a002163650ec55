// Package cli implements the command-line interface for library-events.
//
// The cli package provides the Cobra-based CLI for recording library events
// and libraries, narrowing them with filter flags or saved presets, and
// printing summaries, grouped reports, rankings, the dashboard and library
// profiles as text or JSON. It also imports events from HTML tables or JSON
// dumps and exports them as JSON or iCalendar. It coordinates the config,
// storage, store and report packages.
package cli
