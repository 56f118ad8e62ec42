package site

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	goldColor   = lipgloss.Color("#d4a762")
	inkColor    = lipgloss.Color("#1a1a1a")
	paperColor  = lipgloss.Color("#f9fafb")
	mutedColor  = lipgloss.Color("245")
	textColor   = lipgloss.Color("252")
	dimColor    = lipgloss.Color("240")
	errorColor  = lipgloss.Color("196")
	shadeColor  = lipgloss.Color("236")
	overlayTint = lipgloss.Color("233")

	// Nav bar
	navBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(dimColor)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(goldColor)

	navItemStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(inkColor).
			Background(goldColor).
			Bold(true).
			Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Background(shadeColor).
			Foreground(textColor)

	// Page content
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(goldColor).
			MarginBottom(1)

	paragraphStyle = lipgloss.NewStyle().
			Foreground(textColor)

	calloutStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(goldColor).
			PaddingLeft(2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(inkColor).
			Background(goldColor).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(dimColor).
			Foreground(mutedColor)

	accentStyle = lipgloss.NewStyle().
			Foreground(goldColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(dimColor).
			PaddingTop(1)

	// Lightbox
	lightboxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(goldColor).
			Padding(1, 2)

	lightboxButtonStyle = lipgloss.NewStyle().
				Foreground(paperColor).
				Bold(true)

	// Status line
	statusStyle = lipgloss.NewStyle().
			Foreground(goldColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)
)
