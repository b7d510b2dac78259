package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jshelley/ccsm/internal/ui"
)

// View renders the dashboard. This is the core Bubble Tea view function.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	l := m.layout()
	if l.tooSmall {
		return "Terminal too small"
	}

	deleteMode := m.mode == ModeDelete

	var banner string
	if l.showBanner {
		banner = ui.RenderBanner(m.width)
	}

	if len(m.sessions) == 0 {
		empty := lipgloss.Place(
			m.width, l.paneHeight,
			lipgloss.Center, lipgloss.Center,
			"No Claude Code sessions found.",
		)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			banner+empty,
			ui.RenderStatusBar(deleteMode, "Q: Quit", m.width),
		)
	}

	list := ui.RenderList(m.sessions, m.cursor, m.scrollOffset, deleteMode, m.selected, l.listWidth, l.paneHeight)

	panes := list
	if l.showDetail {
		panes = lipgloss.JoinHorizontal(
			lipgloss.Top,
			list,
			ui.RenderDivider(deleteMode, l.paneHeight),
			ui.RenderDetail(m.sessions[m.cursor], l.detailWidth, l.paneHeight),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		banner+panes,
		ui.RenderStatusBar(deleteMode, m.message, m.width),
	)
}
