package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// inLogSandbox runs setupLogging against a scratch working directory
func inLogSandbox(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	inLogSandbox(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected nil file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected no %s directory without debug, got err=%v", logDir, err)
	}
}

func TestSetupLoggingWritesStartLine(t *testing.T) {
	inLogSandbox(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	log.Printf("encounter seed=%d", 42)
	f.Close()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", logFileName, err)
	}
	text := string(data)
	if !strings.Contains(text, "logging started") {
		t.Errorf("Expected start line, got %q", text)
	}
	if !strings.Contains(text, "encounter seed=42") {
		t.Errorf("Expected game line after start, got %q", text)
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Expected logger detached from the terminal")
	}
}

func TestSetupLoggingRotatesOversizedLog(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", logDir, err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed oversized log: %v", err)
	}

	before := time.Now().Truncate(time.Second)
	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer f.Close()
	after := time.Now()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", logDir, err)
	}

	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected 1 rotated file, got %v", rotated)
	}

	name := rotated[0]
	if !strings.HasPrefix(name, "shuriken-") || !strings.HasSuffix(name, ".log") {
		t.Fatalf("Expected shuriken-<timestamp>.log, got %s", name)
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, "shuriken-"), ".log")
	at, err := time.ParseInLocation("20060102-150405", stamp, time.Local)
	if err != nil {
		t.Fatalf("Expected timestamp suffix, got %q: %v", stamp, err)
	}
	if at.Before(before) || at.After(after) {
		t.Errorf("Expected rotation time within [%v, %v], got %v", before, after, at)
	}

	info, err := os.Stat(filepath.Join(logDir, name))
	if err != nil {
		t.Fatalf("Failed to stat rotated log: %v", err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated log to keep %d bytes, got %d", maxLogSize+1, info.Size())
	}

	info, err = os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat fresh log: %v", err)
	}
	if info.Size() == 0 || info.Size() > maxLogSize {
		t.Errorf("Expected fresh log holding only the start line, got %d bytes", info.Size())
	}
}

func TestSetupLoggingKeepsSmallLog(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", logDir, err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous session\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	f.Close()

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("Expected no rotation below the limit, got %d files", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous session\n") {
		t.Errorf("Expected append to existing log, got %q", data)
	}
}
