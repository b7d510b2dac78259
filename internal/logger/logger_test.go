package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLog(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("hello %s", "world")
	Warn("something %d", 42)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Errorf("Expected 'hello world' in log, got: %s", content)
	}
	if !strings.Contains(content, "something 42") {
		t.Errorf("Expected 'something 42' in log, got: %s", content)
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("invisible")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "invisible") {
		t.Error("Debug message logged despite info level")
	}
}

func TestSetDebugEnablesDebugLevel(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	SetDebug(true)
	Debug("now visible")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "now visible") {
		t.Error("Debug message missing after SetDebug(true)")
	}
}

func TestInitTwiceIsNoop(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := Init(first); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("Second Init failed: %v", err)
	}

	Info("where am I")
	Close()

	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("Second Init should not have created a new log file")
	}
	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("Failed to read first log file: %v", err)
	}
	if !strings.Contains(string(data), "where am I") {
		t.Error("Message missing from original log file")
	}
}
