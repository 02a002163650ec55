package cli

import (
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/library-events/internal/filter"
	"github.com/pfrederiksen/library-events/internal/store"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage saved filter presets",
	}
	cmd.AddCommand(
		newPresetSaveCmd(a),
		newPresetListCmd(a),
		newPresetDeleteCmd(a),
	)
	return cmd
}

func newPresetSaveCmd(a *app) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the filter flags under NAME",
		Args:  cobra.ExactArgs(1),
	}
	filters.bind(cmd)

	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		f, err := filters.build(s)
		if err != nil {
			return err
		}
		p, err := s.SavePreset(args[0], f)
		if err != nil {
			return err
		}

		o := a.out(cmd)
		return o.emit(p, func() { o.printf("Saved preset %q: %s\n", p.Name, p.Filter) })
	})
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, _ []string, s *store.Store) error {
		presets, err := s.Presets()
		if err != nil {
			return err
		}
		if presets == nil {
			presets = filter.Presets{}
		}

		o := a.out(cmd)
		return o.emit(presets, func() { o.writePresets(presets) })
	})
	return cmd
}

func newPresetDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.withStore(func(cmd *cobra.Command, args []string, s *store.Store) error {
		if err := s.DeletePreset(args[0]); err != nil {
			return err
		}

		o := a.out(cmd)
		return o.emit(map[string]string{"deleted": args[0]}, func() { o.printf("Deleted preset %q\n", args[0]) })
	})
	return cmd
}
