// Package history aggregates Claude Code's history.jsonl into session
// records, enriches them from per-session files, and deletes sessions from
// both the log and the filesystem.
package history

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/format"
	"github.com/jshelley/ccsm/internal/paths"
)

// scanBufferSize bounds a single history line. Prompts can be large but a
// line past this size is not something we can render anyway.
const scanBufferSize = 1024 * 1024

// WarnFunc receives non-fatal diagnostics (malformed lines, artifact
// removal failures). Non-interactive commands point this at stderr; the
// TUI points it at the log file since stderr is unusable under the
// alternate screen.
type WarnFunc func(format string, args ...any)

// entry mirrors one history.jsonl line. Pointer fields distinguish a
// missing key from a zero value; validation happens once, here at the
// parse boundary.
type entry struct {
	SessionID *string `json:"sessionId"`
	Timestamp *int64  `json:"timestamp"`
	Display   *string `json:"display"`
	Project   *string `json:"project"`
}

// complete reports whether every required field is present and non-empty.
// Entries missing fields are common (other tools append partial records)
// and are skipped without a diagnostic.
func (e *entry) complete() bool {
	return e.SessionID != nil && *e.SessionID != "" &&
		e.Timestamp != nil && *e.Timestamp != 0 &&
		e.Display != nil && *e.Display != "" &&
		e.Project != nil && *e.Project != ""
}

// LoadSessions reads history.jsonl under dataDir, aggregates entries by
// sessionId, and returns sessions sorted by last activity, most recent
// first. Malformed lines are reported through warn and skipped; a missing
// or unreadable history file is fatal.
func LoadSessions(dataDir string, warn WarnFunc) ([]*Session, error) {
	historyPath := paths.HistoryPath(dataDir)

	f, err := os.Open(historyPath)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, apperrors.HistoryNotFound(historyPath)
		case os.IsPermission(err):
			return nil, apperrors.HistoryUnreadable(historyPath, err)
		default:
			return nil, apperrors.E(apperrors.Op("history.Load"), apperrors.KindIO, err)
		}
	}
	defer f.Close()

	groups := make(map[string][]*entry)
	var order []string // session ids in first-seen order, for stable ties

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e entry
		if err := json.Unmarshal(line, &e); err != nil {
			if warn != nil {
				warn("Skipping malformed JSON on line %d of %s", lineno, historyPath)
			}
			continue
		}
		if !e.complete() {
			continue
		}

		id := *e.SessionID
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], &e)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.E(apperrors.Op("history.Load"), apperrors.KindIO, err)
	}

	sessions := make([]*Session, 0, len(order))
	for _, id := range order {
		group := groups[id]
		sort.SliceStable(group, func(i, j int) bool {
			return *group[i].Timestamp < *group[j].Timestamp
		})

		commands := make([]string, len(group))
		for i, e := range group {
			commands[i] = *e.Display
		}

		sessions = append(sessions, &Session{
			SessionID:     id,
			ProjectPath:   *group[0].Project,
			CreatedAt:     format.MsToTime(*group[0].Timestamp),
			LastActiveAt:  format.MsToTime(*group[len(group)-1].Timestamp),
			LatestCommand: commands[len(commands)-1],
			Commands:      commands,
			Todos:         []string{},
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].LastActiveAt.After(sessions[j].LastActiveAt)
	})
	return sessions, nil
}

// Resolve finds a session by full or prefix session id match. Returns nil
// when nothing matches.
func Resolve(sessions []*Session, id string) *Session {
	if id == "" {
		return nil
	}
	for _, s := range sessions {
		if s.SessionID == id || len(id) < len(s.SessionID) && s.SessionID[:len(id)] == id {
			return s
		}
	}
	return nil
}
