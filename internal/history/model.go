package history

import "time"

// Session is a group of history entries sharing a sessionId, representing
// one continuous Claude Code usage period.
type Session struct {
	SessionID     string
	ProjectPath   string
	CreatedAt     time.Time
	LastActiveAt  time.Time
	LatestCommand string
	Commands      []string // oldest to newest
	Todos         []string // populated by LoadSessionDetail, empty until then
}

// ShortID returns the first 8 characters of the session ID for display.
func (s *Session) ShortID() string {
	if len(s.SessionID) <= 8 {
		return s.SessionID
	}
	return s.SessionID[:8]
}
