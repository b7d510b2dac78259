package ui

import "charm.land/lipgloss/v2"

// Color palette - warm orange for browsing, dark red for destruction
var (
	ColorSelectAccent = lipgloss.Color("#CA7C5E") // Warm orange
	ColorDeleteAccent = lipgloss.Color("#370603") // Dark red
	ColorText         = lipgloss.Color("#FFFFFF") // White
)

// Accent styles render the cursor row, list header, and status bar in the
// current mode's color.
var (
	SelectAccentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorSelectAccent)

	DeleteAccentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorDeleteAccent)
)

// Divider styles color the vertical line between the panes.
var (
	SelectDividerStyle = lipgloss.NewStyle().
				Foreground(ColorSelectAccent)

	DeleteDividerStyle = lipgloss.NewStyle().
				Foreground(ColorDeleteAccent)
)

// MarkerStyle colors the selection marker on non-cursor rows in delete mode.
var MarkerStyle = lipgloss.NewStyle().
	Foreground(ColorDeleteAccent)

// BannerStyle renders the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSelectAccent)

// AccentStyle returns the accent style for the current mode.
func AccentStyle(deleteMode bool) lipgloss.Style {
	if deleteMode {
		return DeleteAccentStyle
	}
	return SelectAccentStyle
}

// DividerStyle returns the divider style for the current mode.
func DividerStyle(deleteMode bool) lipgloss.Style {
	if deleteMode {
		return DeleteDividerStyle
	}
	return SelectDividerStyle
}
