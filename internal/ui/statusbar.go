package ui

import "github.com/jshelley/ccsm/internal/format"

// Key hint strings per mode.
const (
	selectHints = " MODE: SELECT  |  ↑/↓ Navigate  |  Enter: Resume session  |  C: Copy ID  |  D: Delete mode  |  Q: Quit"
	deleteHints = " MODE: DELETE  |  ↑/↓ Navigate  |  Tab: Toggle select  |  Enter: Delete selected  |  S: Select mode  |  Q: Quit"
)

// RenderStatusBar renders the bottom bar. A non-empty message overrides the
// mode key hints, for transient feedback and the delete confirmation prompt.
func RenderStatusBar(deleteMode bool, message string, width int) string {
	text := selectHints
	if deleteMode {
		text = deleteHints
	}
	if message != "" {
		text = " " + message
	}
	return AccentStyle(deleteMode).Render(format.Pad(text, width))
}
