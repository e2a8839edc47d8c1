package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose and repair configuration and store issues.

Checks:
- Configured directories exist
- No sidecar sits inside the live save
- Every save has a readable, up-to-date stat sidecar

Examples:
  noita-saves doctor          # Check for issues
  noita-saves doctor --fix    # Auto-fix recoverable issues`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFromContext(ctx)
			if err := a.cfg.RequirePaths(); err != nil {
				return err
			}
			return doctor.Run(ctx, a.store, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Auto-fix recoverable issues")

	return cmd
}
