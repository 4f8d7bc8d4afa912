// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("4")   // Blue
	ColorHead    = lipgloss.Color("12")  // Bright blue
	ColorDanger  = lipgloss.Color("1")   // Red (dimmer)
	ColorMuted   = lipgloss.Color("245") // Light gray
)

// Styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	// Branch name in the head line
	HeadRefStyle = lipgloss.NewStyle().
			Foreground(ColorHead)

	// Diagnostic notes and open errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
