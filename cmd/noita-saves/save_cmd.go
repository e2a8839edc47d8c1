package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/output"
)

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "save [name]",
		Short:   "Copy the current save into the store",
		GroupID: GroupSaves,
		Args:    cobra.ArbitraryArgs,
		Long: `Copy the game's current save into the store under a new name.

Quit the game first. Names may contain letters, digits, spaces and ( ) = + -.
Multiple arguments are joined with spaces.`,
		Example: `  noita-saves save "Before boss"
  noita-saves save Before boss   # Same as above
  noita-saves save               # Ask for the name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)
			if err := a.cfg.RequirePaths(); err != nil {
				return err
			}

			name, err := askName(strings.Join(args, " "), newAsker())
			if err != nil {
				return err
			}
			s, err := a.save(ctx, name)
			if err != nil {
				return err
			}

			log.FromContext(ctx).Debug("saved", "path", s.Path)
			output.FromContext(ctx).Done("Saved %q (%s, %s)", s.Name, format.Size(s.Stat.Size), format.Count(s.Stat.Count))
			return nil
		},
	}

	return cmd
}
