package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/saves"
)

func newRescanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "rescan [index|range|name]",
		Short:             "Recompute save sizes",
		GroupID:           GroupSaves,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSaveArg,
		Long: `Recompute the size and file count of saves and rewrite their sidecars.

Listings trust each save's sidecar. Rescan after changing a save's files
by hand. Without an argument every save is rescanned.`,
		Example: `  noita-saves rescan        # All saves
  noita-saves rescan 2..3   # Saves 2 and 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)

			l, err := loadListing(ctx, a)
			if err != nil {
				return err
			}
			list := l.saves
			if len(args) > 0 {
				if list, err = saves.ResolveRange(l.saves, args[0]); err != nil {
					return err
				}
			}

			updated, err := a.rescan(ctx, list)
			out := output.FromContext(ctx)
			for _, s := range updated {
				out.Printf("%s: %s, %s\n", s.Name, format.Size(s.Stat.Size), format.Count(s.Stat.Count))
			}
			return err
		},
	}

	return cmd
}
