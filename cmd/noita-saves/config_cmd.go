package main

import (
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/config"
	"github.com/kiria-f/noita-saves/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage noita-saves configuration.

The config file lives in the user config directory, e.g.
~/.config/noita-saves/config.toml. NOITA_SAVES_DIR and NOITA_CURRENT_SAVE
override the paths it sets; flags override both.`,
		Example: `  noita-saves config init   # Create default config
  noita-saves config show   # Show effective config
  noita-saves config path   # Print the config file location`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  noita-saves config init      # Create config
  noita-saves config init -f   # Overwrite existing config
  noita-saves config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if stdout {
				out.Print(config.DefaultContent())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Done("Created config file: %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content, err := config.Encode(*appFromContext(ctx).cfg)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Print(content)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}
