package paths

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonorsEnvOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/claude-test")
	if got := DataDir(); got != "/tmp/claude-test" {
		t.Errorf("DataDir() = %q, want /tmp/claude-test", got)
	}
}

func TestDataDirDefaultsToHome(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	got := DataDir()
	if filepath.Base(got) != ".claude" {
		t.Errorf("DataDir() = %q, want a .claude directory", got)
	}
}

func TestHistoryPath(t *testing.T) {
	got := HistoryPath("/data")
	if got != filepath.Join("/data", "history.jsonl") {
		t.Errorf("HistoryPath = %q", got)
	}
}

func TestProjectSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/Users/foo/bar", "-Users-foo-bar"},
		{"/home/dev/my-project", "-home-dev-my-project"},
		{"relative/path", "relative-path"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ProjectSlug(c.in); got != c.want {
			t.Errorf("ProjectSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSessionFilePath(t *testing.T) {
	got := SessionFilePath("/data", "/Users/foo/bar", "abc-123")
	want := filepath.Join("/data", "projects", "-Users-foo-bar", "abc-123.jsonl")
	if got != want {
		t.Errorf("SessionFilePath = %q, want %q", got, want)
	}
}

func TestProjectDir(t *testing.T) {
	got := ProjectDir("/data", "/Users/foo/bar")
	want := filepath.Join("/data", "projects", "-Users-foo-bar")
	if got != want {
		t.Errorf("ProjectDir = %q, want %q", got, want)
	}
}
