// Package paths locates the Claude Code data directory and the files
// within it that ccsm reads and rewrites.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// HistoryFile is the name of the event log inside the data directory.
const HistoryFile = "history.jsonl"

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "CLAUDE_DATA_DIR"

// DataDir returns the Claude data directory. Honors the CLAUDE_DATA_DIR
// environment variable, defaulting to ~/.claude.
func DataDir() string {
	if env := os.Getenv(EnvDataDir); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Relative fallback keeps everything in one place even when
		// the home directory cannot be resolved.
		return ".claude"
	}
	return filepath.Join(home, ".claude")
}

// HistoryPath returns the full path to history.jsonl under dataDir.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, HistoryFile)
}

// ProjectSlug converts a project path like "/Users/foo/bar" to the
// directory name Claude Code uses for it: "-Users-foo-bar".
func ProjectSlug(projectPath string) string {
	return strings.ReplaceAll(projectPath, "/", "-")
}

// SessionFilePath returns the per-session detail file:
// <dataDir>/projects/<slug>/<sessionID>.jsonl
func SessionFilePath(dataDir, projectPath, sessionID string) string {
	return filepath.Join(dataDir, "projects", ProjectSlug(projectPath), sessionID+".jsonl")
}

// ProjectDir returns the artifact directory for a project:
// <dataDir>/projects/<slug>
func ProjectDir(dataDir, projectPath string) string {
	return filepath.Join(dataDir, "projects", ProjectSlug(projectPath))
}
