package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/saves"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "delete <index|range|name>",
		Short:             "Delete saves",
		Aliases:           []string{"rm"},
		GroupID:           GroupSaves,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSaveArg,
		Long: `Delete one save or a range of saves from the store.

A range is written start..end with 1-based inclusive bounds; either side
may be left out. Deletion stops at the first save that cannot be removed.`,
		Example: `  noita-saves delete 3       # Delete the third save
  noita-saves delete 2..4    # Delete saves 2, 3 and 4
  noita-saves delete ..2     # Delete the two oldest saves
  noita-saves delete 5.. -f  # Delete from the fifth on without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)

			l, err := loadListing(ctx, a)
			if err != nil {
				return err
			}
			list, err := saves.ResolveRange(l.saves, args[0])
			if err != nil {
				return err
			}

			if err := confirmed(newAsker(), force, fmt.Sprintf("Delete %s?", describeSaves(list))); err != nil {
				return err
			}
			if err := a.delete(ctx, list); err != nil {
				return err
			}
			output.FromContext(ctx).Done("Deleted %s", describeSaves(list))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")

	return cmd
}
