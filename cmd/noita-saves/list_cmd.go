package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/ui/static"
)

// saveDisplay is the JSON shape of one listed save.
type saveDisplay struct {
	Index   int  `json:"index"`
	Current bool `json:"current"`
	saves.Save
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List saves",
		Aliases: []string{"ls"},
		GroupID: GroupSaves,
		Args:    cobra.NoArgs,
		Long: `List the saves in the store, oldest first.

The save matching the current progress is marked. Sizes come from each
save's stat sidecar; run "noita-saves rescan" if they look stale.`,
		Example: `  noita-saves list          # Table of saves
  noita-saves list --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			l, err := loadListing(ctx, appFromContext(ctx))
			if err != nil {
				return err
			}

			if jsonOutput {
				rows := make([]saveDisplay, len(l.saves))
				for i, s := range l.saves {
					rows[i] = saveDisplay{Index: i + 1, Current: saves.IsCurrent(s, l.current), Save: s}
				}
				return out.JSON(rows)
			}

			if len(l.saves) == 0 {
				out.Println("No saves")
				return nil
			}
			out.Print(static.RenderSaves(l.saves, l.current))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
