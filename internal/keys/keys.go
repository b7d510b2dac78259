// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "j", "q", "y" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up   = tea.KeyPressMsg{Code: tea.KeyUp}.String()   // "up"
	Down = tea.KeyPressMsg{Code: tea.KeyDown}.String() // "down"
)

// Action keys
var (
	Enter  = tea.KeyPressMsg{Code: tea.KeyEnter}.String()  // "enter"
	Tab    = tea.KeyPressMsg{Code: tea.KeyTab}.String()    // "tab"
	Escape = tea.KeyPressMsg{Code: tea.KeyEscape}.String() // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
)
