package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/paths"
)

func writeHistory(t *testing.T, lines ...map[string]any) string {
	t.Helper()
	dataDir := t.TempDir()
	var b strings.Builder
	for _, line := range lines {
		raw, err := json.Marshal(line)
		if err != nil {
			t.Fatal(err)
		}
		b.Write(raw)
		b.WriteString("\n")
	}
	if err := os.WriteFile(paths.HistoryPath(dataDir), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(paths.EnvDataDir, dataDir)
	return dataDir
}

func entry(id string, ts int64, display, project string) map[string]any {
	return map[string]any{
		"sessionId": id,
		"timestamp": ts,
		"display":   display,
		"project":   project,
	}
}

func TestDebugFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"ls", "launch", "delete"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLsTable(t *testing.T) {
	writeHistory(t,
		entry("aaaa1111-2222-3333-4444-555566667777", 2000, "newer command", "/home/user/alpha"),
		entry("bbbb1111-2222-3333-4444-555566667777", 1000, "older command", "/home/user/beta"),
	)

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	if err := runLs(c, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Session ID") || !strings.Contains(lines[0], "Last Modified") {
		t.Errorf("header = %q", lines[0])
	}

	// Most recently active session first, IDs truncated to 8 chars.
	if !strings.HasPrefix(lines[1], "aaaa1111 ") {
		t.Errorf("first row = %q, want aaaa1111 first", lines[1])
	}
	if strings.Contains(out, "aaaa1111-2222") {
		t.Errorf("ls should print short ids:\n%s", out)
	}
	if !strings.Contains(lines[2], "/home/user/beta") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestLsTruncatesLongCommands(t *testing.T) {
	writeHistory(t,
		entry("aaaa1111-2222-3333-4444-555566667777", 1000, strings.Repeat("x", 80), "/home/user/alpha"),
	)

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	if err := runLs(c, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), strings.Repeat("x", 51)) {
		t.Errorf("command should truncate to 50 columns:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "…") {
		t.Errorf("truncated command should end with ellipsis:\n%s", buf.String())
	}
}

func TestLsEmpty(t *testing.T) {
	writeHistory(t)

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	if err := runLs(c, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty history should print nothing to stdout, got %q", buf.String())
	}
}

func TestLaunchUnknownSession(t *testing.T) {
	writeHistory(t,
		entry("aaaa1111-2222-3333-4444-555566667777", 1000, "cmd", "/home/user/alpha"),
	)

	err := runLaunch(&cobra.Command{}, []string{"ffff0000"})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if !apperrors.Is(err, apperrors.KindNotFound) {
		t.Errorf("kind = %v, want NotFound", apperrors.GetKind(err))
	}
}

func TestLaunchResolvesPrefix(t *testing.T) {
	writeHistory(t,
		entry("aaaa1111-2222-3333-4444-555566667777", 1000, "cmd", "/nonexistent/project/path"),
	)

	// The prefix resolves; the missing project directory is reported next.
	err := runLaunch(&cobra.Command{}, []string{"aaaa1111"})
	if err == nil {
		t.Fatal("expected error for missing project directory")
	}
	if !strings.Contains(err.Error(), "/nonexistent/project/path") {
		t.Errorf("error = %v, want project path mentioned", err)
	}
}
