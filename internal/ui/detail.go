package ui

import (
	"fmt"
	"strings"

	"github.com/jshelley/ccsm/internal/format"
	"github.com/jshelley/ccsm/internal/history"
)

// RenderDetail renders the detail view for one session: project path, full
// session ID, timestamps, the most recent commands, and todos.
func RenderDetail(s *history.Session, width, height int) string {
	contentWidth := width - 2 // 1-char padding on each side

	var lines []string
	line := func(text string) {
		if len(lines) >= height {
			return
		}
		lines = append(lines, " "+format.Pad(text, contentWidth)+" ")
	}

	line("Project:")
	line("  " + s.ProjectPath)
	line("")

	line("Session ID:")
	line("  " + s.SessionID)
	line("")

	line("Created:")
	line("  " + format.Time(s.CreatedAt))
	line("")
	line("Last active:")
	line("  " + format.Time(s.LastActiveAt))
	line("")

	line("Latest commands:")
	recent := s.Commands
	if len(recent) > DetailRecentCommands {
		recent = recent[len(recent)-DetailRecentCommands:]
	}
	if len(recent) > 0 {
		for i := len(recent) - 1; i >= 0; i-- {
			n := len(recent) - i
			cmd := format.Truncate(strings.TrimSpace(recent[i]), contentWidth-6)
			line(fmt.Sprintf("  %d. %s", n, cmd))
		}
	} else {
		line("  (none)")
	}
	line("")

	line("Todos:")
	if len(s.Todos) > 0 {
		for _, todo := range s.Todos {
			line("  - " + format.Truncate(todo, contentWidth-4))
		}
	} else {
		line("  (none)")
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
