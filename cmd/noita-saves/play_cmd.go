package main

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "play",
		Short:   "Start the game",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Start Noita with the command configured under [game] in the config
file. The default launches it through Steam.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFromContext(cmd.Context()).play(cmd.Context())
		},
	}

	return cmd
}
