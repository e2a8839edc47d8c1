package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables overriding the directory settings.
const (
	EnvSavesDir    = "NOITA_SAVES_DIR"
	EnvCurrentSave = "NOITA_CURRENT_SAVE"
)

// DefaultFramerate caps progress bar redraws per second.
const DefaultFramerate = 30

// ThemeNames lists the accepted theme.name values.
var ThemeNames = []string{"default", "dracula", "nord", "none"}

// GameConfig holds the command used to start the game
type GameConfig struct {
	Command []string `toml:"command"`
}

// ProgressConfig holds progress bar settings
type ProgressConfig struct {
	Framerate int `toml:"framerate"`
}

// ThemeConfig holds UI theme/color configuration
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset name: "default", "dracula", "nord", "none"
	Primary string `toml:"primary"` // optional override of the preset's primary color
	Accent  string `toml:"accent"`  // optional override of the preset's accent color
}

// Config holds the noita-saves configuration
type Config struct {
	SavesDir    string         `toml:"saves_dir"`
	CurrentSave string         `toml:"current_save"`
	Debug       bool           `toml:"debug"`
	Game        GameConfig     `toml:"game"`
	Progress    ProgressConfig `toml:"progress"`
	Theme       ThemeConfig    `toml:"theme"`
}

// Default returns the default configuration for the running platform
func Default() Config {
	d := PlatformDefaults(os.Getenv)
	return Config{
		SavesDir:    d.SavesDir,
		CurrentSave: d.CurrentSave,
		Game: GameConfig{
			Command: d.GameCommand,
		},
		Progress: ProgressConfig{
			Framerate: DefaultFramerate,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && (path[:2] == "~/" || path[:2] == `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the location of the config file
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "noita-saves", "config.toml"), nil
}

// Load reads the config file and applies environment overrides.
// Returns Default() with overrides if the file doesn't exist (no error).
// Returns error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return finish(Default(), os.Getenv)
	}
	return LoadFile(path, os.Getenv)
}

// LoadFile reads config from path, using getenv for environment overrides.
func LoadFile(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(cfg, getenv)
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding over the defaults keeps unset keys at their default value.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return finish(cfg, getenv)
}

// finish applies env overrides, validates and expands paths.
func finish(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv(EnvSavesDir); v != "" {
		cfg.SavesDir = v
	}
	if v := getenv(EnvCurrentSave); v != "" {
		cfg.CurrentSave = v
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	var err error
	if cfg.SavesDir, err = expandPath(cfg.SavesDir); err != nil {
		return Default(), fmt.Errorf("expand saves_dir: %w", err)
	}
	if cfg.CurrentSave, err = expandPath(cfg.CurrentSave); err != nil {
		return Default(), fmt.Errorf("expand current_save: %w", err)
	}

	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}

	return cfg, nil
}

// Validate checks paths and enum values.
func (c *Config) Validate() error {
	if err := ValidatePath(c.SavesDir, "saves_dir"); err != nil {
		return err
	}
	if err := ValidatePath(c.CurrentSave, "current_save"); err != nil {
		return err
	}
	if c.Progress.Framerate < 0 {
		return fmt.Errorf("invalid progress.framerate %d: must not be negative", c.Progress.Framerate)
	}
	if c.Theme.Name != "" && !slices.Contains(ThemeNames, c.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q: must be one of %s", c.Theme.Name, strings.Join(ThemeNames, ", "))
	}
	return nil
}

// RequirePaths reports an error when either directory is still unknown,
// which happens on platforms without a default and no configuration.
func (c *Config) RequirePaths() error {
	if c.SavesDir == "" {
		return fmt.Errorf("saves_dir is not configured: set it in the config file or via %s", EnvSavesDir)
	}
	if c.CurrentSave == "" {
		return fmt.Errorf("current_save is not configured: set it in the config file or via %s", EnvCurrentSave)
	}
	return nil
}

const defaultConfig = `# noita-saves configuration

# Directory holding one subdirectory per named save.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Overridden by the NOITA_SAVES_DIR environment variable.
# saves_dir = "~/Games/Noita/Nolla_Games_Noita_Saves"

# The game's live save directory (save00).
# Overridden by the NOITA_CURRENT_SAVE environment variable.
# current_save = "~/Games/Noita/Nolla_Games_Noita/save00"

# Print debug lines (progress redraw counts, cache misses).
# debug = false

# Command used by "play" to start the game.
# [game]
# command = ["steam", "steam://rungameid/881100"]

# Progress bar settings.
[progress]
# Maximum redraws per second; 0 redraws on every step.
framerate = 30

# Colors: "default", "dracula", "nord" or "none".
# primary and accent override single colors of the preset.
[theme]
name = "default"
# primary = "#88c0d0"
# accent = "#b48ead"
`

// DefaultContent returns the commented default config file.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, initAt(path, force)
}

func initAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// Encode renders cfg as TOML, used by "config show".
func Encode(cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
