// Package config handles loading and validation of noita-saves configuration.
//
// Configuration is read from config.toml inside the user configuration
// directory (os.UserConfigDir, e.g. ~/.config/noita-saves/config.toml) with
// environment variable overrides for the two directory settings.
//
// # Configuration Sources (highest priority first)
//
//   - --saves-dir / --current-save flags (see [Overrides])
//   - NOITA_SAVES_DIR env var: store of named saves
//   - NOITA_CURRENT_SAVE env var: the live save the game reads (save00)
//   - Config file settings
//   - Platform defaults (see [PlatformDefaults])
//
// # Key Settings
//
//   - saves_dir: Directory holding one subdirectory per named save
//   - current_save: The game's live save directory
//   - debug: Print debug lines (redraw counts, cache misses)
//   - game.command: Argv used by "play" to start the game
//   - progress.framerate: Max progress bar redraws per second (0 = unthrottled)
//   - theme.name: Color preset ("default", "dracula", "nord" or "none")
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
