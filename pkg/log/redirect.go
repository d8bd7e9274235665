package log

import (
	"fmt"
	"io"
	"os"
)

// RedirectToFile switches output to path, opened in append mode and created
// if absent. On failure the error is returned and the previous destination
// stays active. On success a previously redirected file is closed first, so
// repeated redirects never leak handles.
func (l *Logger) RedirectToFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.std.SetOutput(f)
	return nil
}

// RestoreStderr switches output back to the default destination, closing
// the redirect file. Calling it without an active redirect is a no-op, so
// it is safe to call twice.
func (l *Logger) RestoreStderr() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	_ = l.file.Close()
	l.file = nil
	l.std.SetOutput(l.fallback)
}

// SetOutput replaces the default destination with w and routes output there,
// closing any active redirect file. Tests use this to capture lines in a
// buffer; RestoreStderr afterwards reverts to w, not the real stderr. A nil
// writer is ignored.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
	l.fallback = w
	l.std.SetOutput(w)
}

// Close releases the redirect file if one is open and falls back to the
// default destination. The Logger remains usable.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.std.SetOutput(l.fallback)
	return err
}
