package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/config"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/term"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

var (
	// Global flags
	verbose     bool
	savesDir    string
	currentSave string
	theme       string

	// Loaded before flags are parsed; flags are merged in PersistentPreRunE
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupSaves   = "saves"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command. Without a subcommand it starts the
// interactive session.
var rootCmd = &cobra.Command{
	Use:   "noita-saves",
	Short: "Save manager for Noita",
	Long: `noita-saves snapshots, restores and deletes named copies of Noita's
save directory.

Without a subcommand it starts an interactive session that lists the saves
and reads commands like "s Before boss", "l 3" or "d 2..4".`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := appFromContext(ctx)
		if err := a.cfg.RequirePaths(); err != nil {
			return err
		}
		e := newLineEditor(ctx)
		defer e.Close(ctx)
		return runSession(ctx, a, e)
	},
}

// setup merges flags into the config, applies the theme and stores the
// terminal, logger and app in the command's context. The interactive
// session owns stdout; subcommands draw progress on stderr so their stdout
// stays pipeable.
func setup(cmd *cobra.Command) error {
	merged, err := config.Merge(cfg, config.Overrides{
		SavesDir:    savesDir,
		CurrentSave: currentSave,
		Theme:       theme,
	})
	if err != nil {
		return err
	}
	styles.Init(merged.Theme)

	f := os.Stderr
	if cmd == cmd.Root() {
		f = os.Stdout
	}
	t := term.New(colorWriter(f), term.WithInteractive(isTTY(f)))

	ctx := cmd.Context()
	ctx = term.WithTerminal(ctx, t)
	ctx = log.WithLogger(ctx, log.New(t.DebugWriter(), verbose || merged.Debug))
	ctx = withApp(ctx, newApp(merged, t))
	cmd.SetContext(ctx)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, colorWriter(os.Stdout))

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error:"), err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'noita-saves -h' for help")
		os.Exit(1)
	}
}

// colorWriter downsamples colors to what the terminal behind f supports and
// strips them when f is not a terminal.
func colorWriter(f *os.File) io.Writer {
	return colorprofile.NewWriter(f, os.Environ())
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&savesDir, "saves-dir", "", "Directory holding the named saves (overrides config)")
	rootCmd.PersistentFlags().StringVar(&currentSave, "current-save", "", "The game's live save directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Color theme: default, dracula, nord or none")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSaves, Title: "Save Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Save commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newRescanCmd())

	// Utility commands
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
