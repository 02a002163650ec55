package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/report"
	"github.com/pfrederiksen/library-events/internal/store"
)

func newEventsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List and edit events",
	}
	cmd.AddCommand(
		newEventsListCmd(a),
		newEventsShowCmd(a),
		newEventsAddCmd(a),
		newEventsUpdateCmd(a),
		newEventsDeleteCmd(a),
	)
	return cmd
}

func newEventsListCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		sortBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events matching the filter flags",
		Args:  cobra.NoArgs,
	}
	filters.bind(cmd)
	cmd.Flags().StringVar(&sortBy, "sort", "stored", "Sort order: stored, date, library or title")

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		order, err := parseSortOrder(sortBy)
		if err != nil {
			return err
		}
		f, err := filters.build(s)
		if err != nil {
			return err
		}

		list := report.ListEvents(s.Events(), f)
		sortEvents(list.Events, order)

		o := a.out(cmd)
		return o.emit(list, func() { o.writeEventList(list, f) })
	})
	return cmd
}

func newEventsShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		evt, err := s.Event(id)
		if err != nil {
			return err
		}

		o := a.out(cmd)
		return o.emit(evt, func() { o.writeEventDetail(evt) })
	})
	return cmd
}

// eventFlags are the payload fields of add and update.
type eventFlags struct {
	payload event.Payload
}

func (f *eventFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.payload.Title, "title", "", "Event title")
	flags.StringVar(&f.payload.Library, "library", "", "Library name")
	flags.StringVar(&f.payload.Category, "category", "", "Event category")
	flags.StringVar(&f.payload.Date, "date", "", "Event date (YYYY-MM-DD)")
	flags.StringVar(&f.payload.Adults, "adults", "", "Adult attendees")
	flags.StringVar(&f.payload.Children, "children", "", "Child attendees")
	flags.StringVar(&f.payload.Cost, "cost", "", "Event cost")
	flags.StringVar(&f.payload.FundingSource, "funding", "", "Funding source: Library Budget, Donation or Other")
	flags.StringVar(&f.payload.Description, "description", "", "Event description")
}

// overlay copies the flags the user set onto base.
func (f *eventFlags) overlay(cmd *cobra.Command, base event.Payload) event.Payload {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("title", &base.Title, f.payload.Title)
	set("library", &base.Library, f.payload.Library)
	set("category", &base.Category, f.payload.Category)
	set("date", &base.Date, f.payload.Date)
	set("adults", &base.Adults, f.payload.Adults)
	set("children", &base.Children, f.payload.Children)
	set("cost", &base.Cost, f.payload.Cost)
	set("funding", &base.FundingSource, f.payload.FundingSource)
	set("description", &base.Description, f.payload.Description)
	return base
}

func newEventsAddCmd(a *app) *cobra.Command {
	var fields eventFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new event",
		Args:  cobra.NoArgs,
	}
	fields.bind(cmd)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		evt, err := s.CreateEvent(fields.payload)
		if evt.ID == 0 {
			return err
		}

		o := a.out(cmd)
		if emitErr := o.emit(evt, func() { o.printf("Created event #%d: %s\n", evt.ID, evt.Title) }); emitErr != nil {
			return emitErr
		}
		return err
	})
	return cmd
}

func newEventsUpdateCmd(a *app) *cobra.Command {
	var fields eventFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace an event; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
	}
	fields.bind(cmd)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		current, err := s.Event(id)
		if err != nil {
			return err
		}

		evt, err := s.UpdateEvent(id, fields.overlay(cmd, event.PayloadOf(current)))
		if evt.ID == 0 {
			return err
		}

		o := a.out(cmd)
		if emitErr := o.emit(evt, func() { o.printf("Updated event #%d: %s\n", evt.ID, evt.Title) }); emitErr != nil {
			return emitErr
		}
		return err
	})
	return cmd
}

func newEventsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := s.DeleteEvent(id); err != nil {
			return err
		}

		o := a.out(cmd)
		return o.emit(map[string]int{"deleted": id}, func() { o.printf("Deleted event #%d\n", id) })
	})
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}
