package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/config"
	domainerrors "github.com/pfrederiksen/library-events/internal/errors"
	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/logger"
	"github.com/pfrederiksen/library-events/internal/storage"
	"github.com/pfrederiksen/library-events/internal/store"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitValidation  = 2
	ExitNotFound    = 3
	ExitPersistence = 4
)

// app holds the persistent flags and the per-invocation state.
type app struct {
	dataDir string
	backend string
	format  string
	today   string
	verbose bool

	cfg     config.Config
	metrics *logger.Metrics
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "library-events",
		Short: "Track library programs, attendance and costs",
		Long: `A CLI tool to record events held at library branches and report on them.
Events and libraries are stored locally; every report can be narrowed with
filter flags or a saved preset.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Define flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", "", "Data directory (default from LIBRARY_EVENTS_DATA_DIR)")
	flags.StringVar(&a.backend, "backend", "", "Storage backend: file, badger, sqlite or memory")
	flags.StringVar(&a.format, "format", "text", "Output format: text or json")
	flags.StringVar(&a.today, "today", "", "Reference date for upcoming counts (YYYY-MM-DD)")
	flags.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging")
	_ = flags.MarkHidden("today")

	cmd.AddCommand(
		newEventsCmd(a),
		newLibrariesCmd(a),
		newSummaryCmd(a),
		newReportCmd(a),
		newTopCmd(a),
		newDashboardCmd(a),
		newProfilesCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newPresetCmd(a),
	)

	return cmd
}

// runFunc is a command body that receives an open store.
type runFunc func(cmd *cobra.Command, args []string, s *store.Store) error

// withStore opens the store for the duration of fn.
func (a *app) withStore(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := a.outputFormat(); err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if a.dataDir != "" {
			cfg.DataDir = a.dataDir
		}
		if a.backend != "" {
			cfg.Backend = storage.Kind(a.backend)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		a.cfg = cfg

		level := cfg.Level()
		if a.verbose {
			level = logger.LevelDebug
		}
		log := logger.New(level, cmd.ErrOrStderr())
		logger.SetDefault(log)
		a.metrics = logger.NewMetrics()

		log.Debug("Opening store", logger.Fields{
			"data_dir": cfg.DataDir,
			"backend":  string(cfg.Backend),
		})

		backend, err := storage.Open(cfg.Backend, cfg.DataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		defer func() {
			if err := backend.Close(); err != nil {
				log.Error("Failed to close storage", nil, err)
			}
		}()

		s, openErr := store.Open(storage.NewCollections(backend), store.WithLogger(log), store.WithMetrics(a.metrics))
		if s == nil {
			return openErr
		}
		if openErr != nil {
			log.Warn("Continuing with unsaved sample data", logger.Fields{"error": openErr.Error()})
		}

		runErr := fn(cmd, args, s)
		if runErr == nil {
			runErr = openErr
		}

		if a.verbose {
			if err := writeJSON(cmd.ErrOrStderr(), a.metrics.GetSnapshot()); err != nil {
				log.Warn("Failed to write metrics", logger.Fields{"error": err.Error()})
			}
		}
		return runErr
	}
}

func (a *app) outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(a.format))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", a.format)
	}
	return format, nil
}

// out returns the writer for command results.
func (a *app) out(cmd *cobra.Command) *output {
	format, _ := a.outputFormat()
	return newOutput(cmd.OutOrStdout(), format, a.verbose)
}

// referenceDate returns --today or the current date.
func (a *app) referenceDate() (event.Date, error) {
	if a.today == "" {
		return event.Today(), nil
	}
	d, err := event.ParseDate(a.today)
	if err != nil {
		return event.Date{}, fmt.Errorf("invalid --today: %w", err)
	}
	return d, nil
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch domainerrors.CodeOf(err) {
	case domainerrors.CodeValidation:
		return ExitValidation
	case domainerrors.CodeNotFound:
		return ExitNotFound
	case domainerrors.CodePersistence:
		return ExitPersistence
	default:
		return ExitError
	}
}

// describeError renders err with any per-field validation details.
func describeError(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v\n", err)

	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) {
		if fields, ok := domainErr.Details.(map[string]string); ok {
			for _, name := range sortedKeys(fields) {
				fmt.Fprintf(&b, "  %s %s\n", name, fields[name])
			}
		}
	}
	return b.String()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, describeError(err))
		os.Exit(exitCode(err))
	}
}
