package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRedirectToFile(t *testing.T) {
	l, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "out.log")

	if err := l.RedirectToFile(path); err != nil {
		t.Fatalf("redirecting: %v", err)
	}
	l.Logf("to the file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "to the file") {
		t.Fatalf("expected message in log file, got: %q", data)
	}
	if strings.Contains(buf.String(), "to the file") {
		t.Fatalf("message reached the previous destination: %q", buf.String())
	}
}

func TestRedirectAppends(t *testing.T) {
	l, _ := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "out.log")
	if err := os.WriteFile(path, []byte("existing line\n"), 0o644); err != nil {
		t.Fatalf("seeding log file: %v", err)
	}

	if err := l.RedirectToFile(path); err != nil {
		t.Fatalf("redirecting: %v", err)
	}
	l.Logf("appended line")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "existing line") || !strings.Contains(out, "appended line") {
		t.Fatalf("expected both lines in log file, got: %q", out)
	}
}

func TestRedirectFailureKeepsDestination(t *testing.T) {
	l, buf := newTestLogger(t)
	bad := filepath.Join(t.TempDir(), "missing", "out.log")

	if err := l.RedirectToFile(bad); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
	l.Logf("still here")

	if !strings.Contains(buf.String(), "still here") {
		t.Fatalf("expected message on the previous destination, got: %q", buf.String())
	}
}

func TestRedirectTwiceSwitchesFiles(t *testing.T) {
	l, _ := newTestLogger(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := l.RedirectToFile(first); err != nil {
		t.Fatalf("redirecting to first: %v", err)
	}
	l.Logf("one")
	if err := l.RedirectToFile(second); err != nil {
		t.Fatalf("redirecting to second: %v", err)
	}
	l.Logf("two")

	firstData, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("reading first file: %v", err)
	}
	secondData, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("reading second file: %v", err)
	}
	if !strings.Contains(string(firstData), "one") || strings.Contains(string(firstData), "two") {
		t.Fatalf("first file has wrong contents: %q", firstData)
	}
	if !strings.Contains(string(secondData), "two") {
		t.Fatalf("second file has wrong contents: %q", secondData)
	}
}

func TestRestoreStderrRevertsToDefault(t *testing.T) {
	l, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "out.log")

	if err := l.RedirectToFile(path); err != nil {
		t.Fatalf("redirecting: %v", err)
	}
	l.Logf("in file")
	l.RestoreStderr()
	l.Logf("back home")

	if !strings.Contains(buf.String(), "back home") {
		t.Fatalf("expected message on the default destination, got: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "back home") {
		t.Fatalf("message reached the closed log file: %q", data)
	}
}

func TestRestoreStderrTwice(t *testing.T) {
	l, buf := newTestLogger(t)

	// Without a redirect both calls are no-ops.
	l.RestoreStderr()
	l.RestoreStderr()

	path := filepath.Join(t.TempDir(), "out.log")
	if err := l.RedirectToFile(path); err != nil {
		t.Fatalf("redirecting: %v", err)
	}
	l.RestoreStderr()
	l.RestoreStderr() // second call after a redirect must also be a no-op

	l.Logf("alive")
	if !strings.Contains(buf.String(), "alive") {
		t.Fatalf("expected message after repeated restores, got: %q", buf.String())
	}
}

func TestCloseReleasesFile(t *testing.T) {
	l, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "out.log")

	if err := l.RedirectToFile(path); err != nil {
		t.Fatalf("redirecting: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	l.Logf("after close")
	if !strings.Contains(buf.String(), "after close") {
		t.Fatalf("expected message on the default destination, got: %q", buf.String())
	}
}
