package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/calendar"
	domainerrors "github.com/pfrederiksen/library-events/internal/errors"
	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/importer"
	"github.com/pfrederiksen/library-events/internal/logger"
	"github.com/pfrederiksen/library-events/internal/storage"
	"github.com/pfrederiksen/library-events/internal/store"
)

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Created  []event.Event     `json:"created"`
	Rejected []RejectedPayload `json:"rejected"`
}

// RejectedPayload is an imported row that failed validation.
type RejectedPayload struct {
	Row     int           `json:"row"`
	Payload event.Payload `json:"payload"`
	Error   string        `json:"error"`
}

func newImportCmd(a *app) *cobra.Command {
	var htmlFile, jsonFile, url string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import events from an HTML table or a JSON export",
		Long: `Import events from an HTML page holding an events table (--html or --url)
or from a JSON export (--json). Imported events get new ids; rows that fail
validation are reported and skipped.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringVar(&htmlFile, "html", "", "HTML file with an events table")
	cmd.Flags().StringVar(&url, "url", "", "URL of a page with an events table")
	cmd.Flags().StringVar(&jsonFile, "json", "", "JSON export file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("html", "url", "json")
	cmd.MarkFlagsOneRequired("html", "url", "json")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		var (
			payloads []event.Payload
			err      error
		)
		switch {
		case htmlFile != "":
			err = readFile(cmd, htmlFile, func(r io.Reader) error {
				payloads, err = importer.ParseHTML(r)
				return err
			})
		case url != "":
			payloads, err = importer.NewFetcher().Fetch(cmd.Context(), url)
		default:
			err = readFile(cmd, jsonFile, func(r io.Reader) error {
				payloads, err = importer.ParseJSON(r)
				return err
			})
		}
		if err != nil {
			return fmt.Errorf("importing events: %w", err)
		}

		result := ImportResult{Created: []event.Event{}, Rejected: []RejectedPayload{}}
		for i, p := range payloads {
			evt, err := s.CreateEvent(p)
			switch {
			case domainerrors.Is(err, domainerrors.ErrValidation):
				result.Rejected = append(result.Rejected, RejectedPayload{Row: i + 1, Payload: p, Error: describeError(err)})
				continue
			case err != nil:
				return err
			}
			result.Created = append(result.Created, evt)
		}

		logger.Info("Imported events", logger.Fields{
			"created":  len(result.Created),
			"rejected": len(result.Rejected),
		})

		o := a.out(cmd)
		return o.emit(result, func() {
			for _, evt := range result.Created {
				o.printf("Created event #%d: %s\n", evt.ID, evt.Title)
			}
			for _, r := range result.Rejected {
				o.printf("Skipped row %d (%s): %s", r.Row, r.Payload.Title, r.Error)
			}
			o.printf("\nImported %d of %d events\n", len(result.Created), len(payloads))
		})
	})
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		ics     bool
		name    string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching events as JSON or iCalendar",
		Long: `Export the matching events. The default is a JSON document holding the
libraryEvents and libraries collections, readable by import --json. With --ics
the events are written as an iCalendar file of all-day events.`,
		Args: cobra.NoArgs,
	}
	filters.bind(cmd)
	cmd.Flags().BoolVar(&ics, "ics", false, "Write iCalendar instead of JSON")
	cmd.Flags().StringVar(&name, "name", "Library Events", "Calendar name for --ics")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default stdout)")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		f, err := filters.build(s)
		if err != nil {
			return err
		}
		events := f.Apply(s.Events())
		libs := s.Libraries()

		w := cmd.OutOrStdout()
		if outFile != "" {
			file, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer file.Close()
			w = file
		}

		if ics {
			_, err = io.WriteString(w, calendar.Generate(events, libs, name))
		} else {
			err = writeJSON(w, map[string]any{
				storage.KeyEvents:    events,
				storage.KeyLibraries: libs,
			})
		}
		if err != nil {
			return fmt.Errorf("writing export: %w", err)
		}

		logger.Debug("Exported events", logger.Fields{"count": len(events), "ics": ics})
		return nil
	})
	return cmd
}

// readFile calls fn with the named file, or stdin for "-".
func readFile(cmd *cobra.Command, path string, fn func(io.Reader) error) error {
	if path == "-" {
		return fn(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}
