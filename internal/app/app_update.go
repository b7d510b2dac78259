package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jshelley/ccsm/internal/clipboard"
	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/keys"
	"github.com/jshelley/ccsm/internal/launch"
	"github.com/jshelley/ccsm/internal/logger"
	"github.com/jshelley/ccsm/internal/ui"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		m.enrichCursor()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// The confirmation prompt consumes every key. Only an explicit "y"
	// proceeds; anything else cancels and keeps the marked sessions.
	if m.confirming {
		m.confirming = false
		m.message = ""
		if key == "y" || key == "Y" {
			m = m.doDelete()
		}
		return m, nil
	}

	// Transient messages clear on the next keypress.
	m.message = ""

	if len(m.sessions) == 0 {
		if key == "q" || key == "Q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == ModeDelete {
		return m.handleDeleteKey(key)
	}
	return m.handleSelectKey(key)
}

func (m Model) handleSelectKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		m.enrichCursor()
	case keys.Down, "j":
		if m.cursor < len(m.sessions)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		m.enrichCursor()
	case "d", "D":
		m.mode = ModeDelete
	case "q", "Q":
		return m, tea.Quit
	case "c", "C":
		m = m.copySessionID()
	case keys.Enter:
		s := m.sessions[m.cursor]
		if !launch.ProjectDirExists(s) {
			m.message = fmt.Sprintf("Error: Directory '%s' no longer exists.", s.ProjectPath)
			return m, nil
		}
		m.launchTarget = s
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleDeleteKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		m.enrichCursor()
	case keys.Down, "j":
		if m.cursor < len(m.sessions)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		m.enrichCursor()
	case keys.Tab:
		id := m.sessions[m.cursor].SessionID
		if _, ok := m.selected[id]; ok {
			delete(m.selected, id)
		} else {
			m.selected[id] = struct{}{}
		}
	case "s", "S":
		m.mode = ModeSelect
		m.selected = make(map[string]struct{})
	case "q", "Q":
		return m, tea.Quit
	case keys.Enter:
		if len(m.selected) == 0 {
			m.message = "No sessions selected."
			return m, nil
		}
		m.confirming = true
		m.message = fmt.Sprintf("Delete %d session(s)? [y/N]", len(m.selected))
	}
	return m, nil
}

// doDelete removes the marked sessions from the history log, deletes their
// artifacts, and reloads the list. A failed log rewrite leaves everything
// untouched and surfaces as a status message.
func (m Model) doDelete() Model {
	count := len(m.selected)

	if _, err := history.DeleteSessionsFromHistory(m.dataDir, m.selected); err != nil {
		logger.Error("history rewrite failed: %v", err)
		m.message = fmt.Sprintf("Error: %v", err)
		return m
	}

	for _, s := range m.sessions {
		if _, ok := m.selected[s.SessionID]; ok {
			history.DeleteSessionFiles(m.dataDir, s.ProjectPath, s.SessionID, logger.Warn)
		}
	}

	sessions, err := history.LoadSessions(m.dataDir, logger.Warn)
	if err != nil {
		logger.Warn("reload after delete: %v", err)
		sessions = nil
	}
	m.sessions = sessions

	m.selected = make(map[string]struct{})
	m.mode = ModeSelect
	m.enrichedID = ""
	if m.cursor >= len(m.sessions) {
		m.cursor = max(0, len(m.sessions)-1)
	}
	m.scrollOffset = 0
	m.ensureCursorVisible()
	m.enrichCursor()

	m.message = fmt.Sprintf("Deleted %d session(s).", count)
	return m
}

func (m Model) copySessionID() Model {
	id := m.sessions[m.cursor].SessionID
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable: %v", err)
		m.message = "Error: clipboard unavailable."
		return m
	}
	if err := clipboard.WriteText(id); err != nil {
		logger.Warn("clipboard write failed: %v", err)
		m.message = "Error: clipboard write failed."
		return m
	}
	m.message = fmt.Sprintf("Copied %s to clipboard.", m.sessions[m.cursor].ShortID())
	return m
}

// ensureCursorVisible adjusts the scroll offset minimally so the cursor row
// stays within the visible window.
func (m *Model) ensureCursorVisible() {
	l := m.layout()
	dataHeight := l.paneHeight - ui.ListHeaderHeight
	if dataHeight < 1 {
		dataHeight = 1
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+dataHeight {
		m.scrollOffset = m.cursor - dataHeight + 1
	}
}

// enrichCursor loads the detail file for the session under the cursor, once.
func (m *Model) enrichCursor() {
	if len(m.sessions) == 0 || m.cursor >= len(m.sessions) {
		return
	}
	s := m.sessions[m.cursor]
	if m.enrichedID == s.SessionID {
		return
	}
	history.LoadSessionDetail(m.dataDir, s)
	m.enrichedID = s.SessionID
}
