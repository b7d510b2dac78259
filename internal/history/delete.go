package history

import (
	"bufio"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/paths"
)

// FindSessionArtifacts walks the data directory and returns every file or
// directory whose name contains the session id, excluding history.jsonl
// itself (the rewrite handles that). The match is deliberately
// substring-based to catch artifact naming variants; callers must apply
// the containment check before deleting anything it returns. Results are
// sorted for consistent ordering.
func FindSessionArtifacts(dataDir, sessionID string) []string {
	var matches []string

	filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree, skip it like the rest of the walk.
			return nil
		}
		if path == dataDir {
			return nil
		}
		name := d.Name()
		if !strings.Contains(name, sessionID) {
			return nil
		}
		if !d.IsDir() && name == paths.HistoryFile {
			return nil
		}
		matches = append(matches, path)
		return nil
	})

	sort.Strings(matches)
	return matches
}

// DeleteSessionsFromHistory removes every history.jsonl line whose
// sessionId is in the given set, using an atomic temp-file-then-rename
// rewrite: readers only ever see the old or the new complete file. Lines
// that are blank, malformed, or missing a sessionId are always kept.
// Returns the number of lines removed.
func DeleteSessionsFromHistory(dataDir string, sessionIDs map[string]struct{}) (int, error) {
	historyPath := paths.HistoryPath(dataDir)

	f, err := os.Open(historyPath)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return 0, apperrors.HistoryNotFound(historyPath)
		case os.IsPermission(err):
			return 0, apperrors.HistoryUnreadable(historyPath, err)
		default:
			return 0, apperrors.E(apperrors.Op("history.Rewrite"), apperrors.KindIO, err)
		}
	}
	defer f.Close()

	var kept []string
	removed := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)
	for scanner.Scan() {
		line := scanner.Text()

		var probe struct {
			SessionID string `json:"sessionId"`
		}
		if json.Unmarshal([]byte(line), &probe) != nil {
			kept = append(kept, line)
			continue
		}
		if _, drop := sessionIDs[probe.SessionID]; drop && probe.SessionID != "" {
			removed++
		} else {
			kept = append(kept, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, apperrors.E(apperrors.Op("history.Rewrite"), apperrors.KindIO, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(historyPath), paths.HistoryFile+".tmp-*")
	if err != nil {
		return 0, apperrors.HistoryRewriteFailed(historyPath, err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	writeErr := func() error {
		for _, line := range kept {
			if _, err := w.WriteString(line); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return tmp.Close()
	}()
	if writeErr != nil {
		tmp.Close()
		os.Remove(tmpPath) // best effort, original is untouched
		return 0, apperrors.HistoryRewriteFailed(historyPath, writeErr)
	}

	if err := os.Rename(tmpPath, historyPath); err != nil {
		os.Remove(tmpPath)
		return 0, apperrors.HistoryRewriteFailed(historyPath, err)
	}
	return removed, nil
}

// DeleteSessionFiles removes all filesystem artifacts of a session:
//
//  1. the per-session .jsonl file under projects/<slug>/
//  2. the per-session directory next to it, if present
//  3. any other file or directory under dataDir whose name contains the
//     session id, after re-confirming the resolved path is still inside
//     dataDir (a match resolving outside is a false positive, not ours to
//     delete)
//  4. the project directory itself, once no .jsonl files remain in it
//
// Individual removal failures are reported through warn and do not stop
// the remaining removals. Returns the paths actually removed.
func DeleteSessionFiles(dataDir, projectPath, sessionID string, warn WarnFunc) []string {
	var deleted []string
	remove := func(path string, isDir bool) bool {
		var err error
		if isDir {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			if warn != nil {
				warn("Could not delete %s: %v", path, err)
			}
			return false
		}
		deleted = append(deleted, path)
		return true
	}

	// 1. Primary per-session file.
	sessionFile := paths.SessionFilePath(dataDir, projectPath, sessionID)
	if info, err := os.Stat(sessionFile); err == nil && !info.IsDir() {
		remove(sessionFile, false)
	}

	// 2. Sibling directory with the same name, minus the extension.
	sessionDir := strings.TrimSuffix(sessionFile, ".jsonl")
	if info, err := os.Stat(sessionDir); err == nil && info.IsDir() {
		remove(sessionDir, true)
	}

	// 3. Stray artifacts anywhere under the data root.
	already := make(map[string]struct{}, len(deleted))
	for _, p := range deleted {
		already[p] = struct{}{}
	}
	rootResolved, err := filepath.EvalSymlinks(dataDir)
	if err != nil {
		rootResolved = filepath.Clean(dataDir)
	}
	for _, artifact := range FindSessionArtifacts(dataDir, sessionID) {
		if _, done := already[artifact]; done {
			continue
		}
		if !containedIn(rootResolved, artifact) {
			continue
		}
		info, err := os.Lstat(artifact)
		if err != nil {
			continue // already gone, e.g. inside a directory removed above
		}
		remove(artifact, info.IsDir())
	}

	// 4. Project directory, if it holds no session files anymore.
	projectDir := paths.ProjectDir(dataDir, projectPath)
	if info, err := os.Stat(projectDir); err == nil && info.IsDir() {
		remaining, _ := filepath.Glob(filepath.Join(projectDir, "*.jsonl"))
		if len(remaining) == 0 {
			remove(projectDir, true)
		}
	}

	return deleted
}

// containedIn reports whether path, after resolving symlinks, still lives
// under root. This is the safety gate for the substring-based artifact
// search.
func containedIn(resolvedRoot, path string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(resolvedRoot, resolved)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
