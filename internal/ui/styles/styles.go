// Package styles provides shared lipgloss styles for tortest output.
//
// This package centralizes color definitions so tables, prompts and the
// check report stay visually consistent.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI.
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent highlights the selected item in prompts (pink)
	Accent = lipgloss.Color("212")

	// Success is used for passing checks (green)
	Success = lipgloss.Color("82")

	// Error is used for failing checks and error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for secondary text like table headers (gray)
	Muted = lipgloss.Color("240")
)

// Common styles.
var (
	// Header styles table column headers
	Header = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	// Label styles field names in detail views
	Label = lipgloss.NewStyle().Foreground(Muted)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)
