package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/output"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Println(versionString())
			return nil
		},
	}
}
