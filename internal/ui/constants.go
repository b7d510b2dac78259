// Package ui renders the dashboard: session list, detail pane, status bar,
// and banner. Every renderer is a pure function of its inputs and the
// target dimensions; all state lives in the app package.
package ui

// Layout constants for pane sizing
const (
	// MinWidth and MinHeight are the smallest terminal ccsm will try to
	// render; below this only a notice is shown.
	MinWidth  = 20
	MinHeight = 3

	// DetailMinTotalWidth is the terminal width below which the detail
	// pane is hidden and the list takes the full width.
	DetailMinTotalWidth = 60

	// ListWidthPercent is the share of the terminal width given to the
	// list pane when the detail pane is visible.
	ListWidthPercent = 60

	// StatusBarHeight is the height of the status bar in lines.
	StatusBarHeight = 1

	// ListHeaderHeight is the header row of the list pane.
	ListHeaderHeight = 1

	// MarkerWidth is the width of the "[x] " selection marker column in
	// delete mode.
	MarkerWidth = 4

	// MinCommandWidth is the narrowest the latest-command column gets
	// before the row is simply cut off.
	MinCommandWidth = 10

	// DetailRecentCommands is how many commands the detail pane shows.
	DetailRecentCommands = 5

	// ColumnGap is the spacing between list columns.
	ColumnGap = 2
)
