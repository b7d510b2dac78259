package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jshelley/ccsm/internal/format"
	"github.com/jshelley/ccsm/internal/history"
)

var listHeaders = []string{"Project", "ID", "Modified", "Created", "Last message"}

// RenderList renders the scrollable session list. The first row is a header
// in the mode accent color. In delete mode each row is prefixed with a
// selection marker and the header row with matching blank space.
func RenderList(sessions []*history.Session, cursor, scrollOffset int, deleteMode bool, selected map[string]struct{}, width, height int) string {
	accent := AccentStyle(deleteMode)

	markerWidth := 0
	if deleteMode {
		markerWidth = MarkerWidth
	}
	contentWidth := width - markerWidth

	dataHeight := height - ListHeaderHeight

	type row struct {
		index    int
		project  string
		id       string
		modified string
		created  string
		command  string
	}
	var visible []row
	for i := 0; i < dataHeight; i++ {
		idx := scrollOffset + i
		if idx >= len(sessions) {
			break
		}
		s := sessions[idx]
		project := s.ProjectPath
		if j := strings.LastIndex(project, "/"); j >= 0 {
			project = project[j+1:]
		}
		visible = append(visible, row{
			index:    idx,
			project:  project,
			id:       s.ShortID(),
			modified: format.Time(s.LastActiveAt),
			created:  format.Time(s.CreatedAt),
			command:  strings.TrimSpace(s.LatestCommand),
		})
	}

	// Column widths grow to fit the visible data; the command column
	// absorbs whatever space remains.
	colWidths := make([]int, 4)
	for i := 0; i < 4; i++ {
		colWidths[i] = runewidth.StringWidth(listHeaders[i])
	}
	for _, r := range visible {
		colWidths[0] = max(colWidths[0], runewidth.StringWidth(r.project))
		colWidths[1] = max(colWidths[1], runewidth.StringWidth(r.id))
		colWidths[2] = max(colWidths[2], runewidth.StringWidth(r.modified))
		colWidths[3] = max(colWidths[3], runewidth.StringWidth(r.created))
	}

	fixedUsed := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3] + ColumnGap*4
	cmdMax := max(MinCommandWidth, contentWidth-fixedUsed)

	gap := strings.Repeat(" ", ColumnGap)
	buildLine := func(project, id, modified, created, command string) string {
		line := format.Pad(project, colWidths[0]) + gap +
			format.Pad(id, colWidths[1]) + gap +
			format.Pad(modified, colWidths[2]) + gap +
			format.Pad(created, colWidths[3]) + gap +
			command
		return format.Pad(line, contentWidth)
	}

	var lines []string

	header := buildLine(listHeaders[0], listHeaders[1], listHeaders[2], listHeaders[3], listHeaders[4])
	if deleteMode {
		header = strings.Repeat(" ", markerWidth) + header
	}
	lines = append(lines, accent.Render(header))

	for i := 0; i < dataHeight; i++ {
		if i >= len(visible) {
			lines = append(lines, strings.Repeat(" ", width))
			continue
		}
		r := visible[i]
		isCursor := r.index == cursor

		line := buildLine(
			format.Truncate(r.project, colWidths[0]),
			r.id, r.modified, r.created,
			format.Truncate(r.command, cmdMax),
		)

		if deleteMode {
			marker := "[ ] "
			if _, ok := selected[sessions[r.index].SessionID]; ok {
				marker = "[x] "
			}
			if isCursor {
				line = accent.Render(marker + line)
			} else {
				line = MarkerStyle.Render(marker) + line
			}
		} else if isCursor {
			line = accent.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RenderDivider renders the vertical line between the list and detail panes.
func RenderDivider(deleteMode bool, height int) string {
	style := DividerStyle(deleteMode)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = style.Render("│")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
