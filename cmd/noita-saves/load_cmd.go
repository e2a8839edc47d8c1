package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/output"
)

func newLoadCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "load [index|name]",
		Short:             "Replace the current save with a stored one",
		GroupID:           GroupSaves,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSaveArg,
		Long: `Replace the game's current save with a copy of a stored save.

Close the game first. Without an argument, asks which save to load; when
input is not a terminal, loads the most recent save.

If the current progress matches no stored save it would be lost, so load
asks for confirmation unless --force is given.`,
		Example: `  noita-saves load 3             # Load the third save
  noita-saves load "Before boss" # Load by name
  noita-saves load boss          # Fuzzy name match
  noita-saves load -f            # Load the last save without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)

			l, err := loadListing(ctx, a)
			if err != nil {
				return err
			}

			ask := newAsker()
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			s, err := pickSave(token, l, ask)
			if err != nil {
				return err
			}

			if losesProgress(l) && !force {
				a.term.Warn("The current progress matches no save and will be lost.")
				if err := confirmed(ask, false, "Load anyway?"); err != nil {
					return err
				}
			}

			if err := a.load(ctx, s); err != nil {
				return err
			}
			output.FromContext(ctx).Done("Loaded %q", s.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask before discarding unsaved progress")

	return cmd
}
