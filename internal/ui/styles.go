// Package ui holds the lipgloss styles for the zen TUI.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed      = lipgloss.Color("#FF5F5F")
	ColorLightRed = lipgloss.Color("#FF8787")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGold     = lipgloss.Color("#D7AF5F")
	ColorGray     = lipgloss.Color("#666666")
	ColorDimGray  = lipgloss.Color("#444444")
	ColorWhite    = lipgloss.Color("#FFFFFF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	GroupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(0, 1)

	HexagramNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGold)

	LineStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	MovingLineStyle = lipgloss.NewStyle().
			Foreground(ColorLightRed).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	FallbackBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)
)
