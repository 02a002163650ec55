package cli

import (
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/store"
)

func newLibrariesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "libraries",
		Aliases: []string{"library"},
		Short:   "List and edit library branches",
	}
	cmd.AddCommand(
		newLibrariesListCmd(a),
		newLibrariesAddCmd(a),
		newLibrariesUpdateCmd(a),
		newLibrariesDeleteCmd(a),
	)
	return cmd
}

func newLibrariesListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List libraries",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		libs := s.Libraries()
		o := a.out(cmd)
		return o.emit(libs, func() { o.writeLibraries(libs) })
	})
	return cmd
}

func bindLibraryFlags(cmd *cobra.Command, p *event.LibraryPayload) {
	cmd.Flags().StringVar(&p.Name, "name", "", "Library name")
	cmd.Flags().StringVar(&p.Location, "location", "", "Street address")
	cmd.Flags().StringVar(&p.Capacity, "capacity", "", "Seating capacity")
}

func newLibrariesAddCmd(a *app) *cobra.Command {
	var payload event.LibraryPayload

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a library",
		Args:  cobra.NoArgs,
	}
	bindLibraryFlags(cmd, &payload)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		lib, err := s.CreateLibrary(payload)
		if lib.ID == 0 {
			return err
		}

		o := a.out(cmd)
		if emitErr := o.emit(lib, func() { o.printf("Created library #%d: %s\n", lib.ID, lib.Name) }); emitErr != nil {
			return emitErr
		}
		return err
	})
	return cmd
}

func newLibrariesUpdateCmd(a *app) *cobra.Command {
	var payload event.LibraryPayload

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a library; unset flags keep their current values",
		Long: `Replace a library; unset flags keep their current values.
Events refer to libraries by name, so renaming a library leaves its existing
events under the old name.`,
		Args: cobra.ExactArgs(1),
	}
	bindLibraryFlags(cmd, &payload)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		current, err := s.Library(id)
		if err != nil {
			return err
		}

		next := event.LibraryPayloadOf(current)
		if cmd.Flags().Changed("name") {
			next.Name = payload.Name
		}
		if cmd.Flags().Changed("location") {
			next.Location = payload.Location
		}
		if cmd.Flags().Changed("capacity") {
			next.Capacity = payload.Capacity
		}

		lib, err := s.UpdateLibrary(id, next)
		if lib.ID == 0 {
			return err
		}

		o := a.out(cmd)
		if emitErr := o.emit(lib, func() { o.printf("Updated library #%d: %s\n", lib.ID, lib.Name) }); emitErr != nil {
			return emitErr
		}
		return err
	})
	return cmd
}

func newLibrariesDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a library; its events are kept",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := s.DeleteLibrary(id); err != nil {
			return err
		}

		o := a.out(cmd)
		return o.emit(map[string]int{"deleted": id}, func() { o.printf("Deleted library #%d\n", id) })
	})
	return cmd
}
