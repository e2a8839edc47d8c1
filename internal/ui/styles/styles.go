// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the terminal session, the progress bar,
// the static tables and the prompts.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette of the active theme. Updated by Init.
var (
	// Primary is the main accent color (progress bar start, titles)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for the current save and prompts
	Accent color.Color = DefaultTheme.Accent

	// Success is used for the welcome banner and completed operations
	Success color.Color = DefaultTheme.Success

	// Error is used for error messages
	Error color.Color = DefaultTheme.Error

	// Muted is used for secondary details (sizes, dates, brackets)
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color
	Normal color.Color = DefaultTheme.Normal

	// Info is used for debug output
	Info color.Color = DefaultTheme.Info

	// Warning is used for confirmations that may lose progress
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
