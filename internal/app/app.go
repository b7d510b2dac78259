// Package app implements the interactive dashboard as a Bubble Tea model.
//
// The model is a two-pane browser over the aggregated session list. SELECT
// mode navigates and resumes sessions; DELETE mode marks sessions and, after
// a confirmation prompt, removes them from the history log and deletes their
// on-disk artifacts. All rendering is derived from the model state, so View
// never touches the filesystem; enrichment and deletion happen in Update.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/ui"
)

// Mode is the dashboard interaction mode.
type Mode int

const (
	ModeSelect Mode = iota
	ModeDelete
)

func (m Mode) String() string {
	if m == ModeDelete {
		return "DELETE"
	}
	return "SELECT"
}

// Model holds the full dashboard state.
type Model struct {
	dataDir  string
	sessions []*history.Session

	mode         Mode
	cursor       int
	scrollOffset int
	selected     map[string]struct{}
	confirming   bool
	message      string

	// enrichedID tracks which session has had its detail file loaded, so
	// cursor movement only reads from disk once per session.
	enrichedID string

	width  int
	height int

	// launchTarget is set when the user resumes a session; the program
	// quits and the caller performs the exec handoff.
	launchTarget *history.Session
}

// New builds the initial dashboard model over an aggregated session list.
func New(dataDir string, sessions []*history.Session) Model {
	return Model{
		dataDir:  dataDir,
		sessions: sessions,
		mode:     ModeSelect,
		selected: make(map[string]struct{}),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// LaunchTarget returns the session the user chose to resume, if any. The
// caller inspects this after the program exits to perform the handoff.
func (m Model) LaunchTarget() *history.Session {
	return m.launchTarget
}

// layout describes how the current terminal size is carved up.
type layout struct {
	tooSmall     bool
	showBanner   bool
	bannerHeight int
	paneHeight   int
	listWidth    int
	detailWidth  int
	showDetail   bool
}

func (m Model) layout() layout {
	var l layout
	if m.width < ui.MinWidth || m.height < ui.MinHeight {
		l.tooSmall = true
		return l
	}

	l.showBanner = ui.ShowBanner(m.height)
	if l.showBanner {
		l.bannerHeight = ui.BannerHeight
	}
	l.paneHeight = m.height - ui.StatusBarHeight - l.bannerHeight

	l.showDetail = m.width >= ui.DetailMinTotalWidth
	if l.showDetail {
		l.listWidth = max(ui.MinWidth, m.width*ui.ListWidthPercent/100)
		l.detailWidth = m.width - l.listWidth - 1
	} else {
		l.listWidth = m.width
	}
	return l
}
