package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/kiria-f/noita-saves/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // progress bar, titles
	Accent  color.Color // current save, prompt arrow
	Success color.Color // banner border, done lines
	Error   color.Color // error border
	Muted   color.Color // details and brackets
	Normal  color.Color // standard text
	Info    color.Color // debug border
	Warning color.Color // warning border
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("44"),  // cyan
		Warning: lipgloss.Color("214"), // orange
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
		Info:    lipgloss.Color("#8be9fd"), // cyan
		Warning: lipgloss.Color("#ffb86c"), // orange
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
		Muted:   lipgloss.Color("#4c566a"), // nord3
		Normal:  lipgloss.Color("#d8dee9"), // nord4
		Info:    lipgloss.Color("#81a1c1"), // nord9
		Warning: lipgloss.Color("#d08770"), // nord12
	}

	// NoneTheme disables all colors
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

var presets = map[string]*Theme{
	"default": &DefaultTheme,
	"dracula": &DraculaTheme,
	"nord":    &NordTheme,
	"none":    &NoneTheme,
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init initializes the theme from config.
// Call this after loading config and before displaying any UI.
// Unknown names fall back to the default theme; config validation
// reports them before this point.
func Init(cfg config.ThemeConfig) {
	theme := DefaultTheme
	if p := GetPreset(cfg.Name); p != nil {
		theme = *p
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}

	currentTheme = theme
	applyTheme(theme)
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
}

// GetPreset returns a theme preset by name, or nil if not found
func GetPreset(name string) *Theme {
	return presets[name]
}
