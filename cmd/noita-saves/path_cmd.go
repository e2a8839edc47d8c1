package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/saves"
)

func newPathCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:               "path [index|name]",
		Short:             "Print the directory of a save",
		GroupID:           GroupUtility,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSaveArg,
		Long: `Print the directory of a stored save, or of the current save when no
argument is given.`,
		Example: `  noita-saves path            # Current save
  noita-saves path 2          # Second save
  cd "$(noita-saves path 2)"
  noita-saves path 2 --copy   # Also copy to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)

			path := a.store.CurrentPath
			if len(args) > 0 {
				l, err := loadListing(ctx, a)
				if err != nil {
					return err
				}
				s, err := saves.Resolve(l.saves, args[0])
				if err != nil {
					return err
				}
				path = s.Path
			} else if err := a.cfg.RequirePaths(); err != nil {
				return err
			}

			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			output.FromContext(ctx).Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the path to the clipboard")

	return cmd
}
