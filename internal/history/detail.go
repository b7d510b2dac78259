package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jshelley/ccsm/internal/paths"
)

// LoadSessionDetail reads the session's own .jsonl file and fills in its
// todo list. Enrichment is best effort: a missing, unreadable, or
// malformed file leaves the session unchanged, never an error. Returns the
// same session for chaining.
func LoadSessionDetail(dataDir string, s *Session) *Session {
	path := paths.SessionFilePath(dataDir, s.ProjectPath, s.SessionID)

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	var todos []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record struct {
			Todos []any `json:"todos"`
		}
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}

		for _, item := range record.Todos {
			todos = append(todos, todoText(item))
		}
	}

	s.Todos = dedupe(todos)
	return s
}

// todoText extracts a display string from a todo item, which may be a
// plain string or an object carrying content/text/title.
func todoText(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"content", "text", "title"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// dedupe removes duplicate strings preserving first occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
