// Package tail reads and streams log files written by this module's log
// package. It classifies lines by their warning marker; debug and normal
// lines are unmarked on disk and indistinguishable after the fact.
package tail

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Line is one log line read from a file.
type Line struct {
	Text    string
	Warning bool
}

// Stats counts lines by kind.
type Stats struct {
	Total    int
	Warnings int
}

// prefixRe matches the timestamp and process prefix the underlying console
// logger writes: "2006/01/02 15:04:05.000000 tag[pid] ".
var prefixRe = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)? (?:\S+\[\d+\] )?`)

// SplitPrefix separates the console-logger prefix from the line body. Lines
// without a recognizable prefix come back with an empty prefix.
func SplitPrefix(text string) (prefix, body string) {
	loc := prefixRe.FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	return text[:loc[1]], text[loc[1]:]
}

func classify(text string) Line {
	_, body := SplitPrefix(text)
	return Line{Text: text, Warning: strings.HasPrefix(body, "WARNING: ")}
}

// Count tallies lines by kind.
func Count(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		s.Total++
		if l.Warning {
			s.Warnings++
		}
	}
	return s
}

// Last returns the final n lines of the file at path. A non-positive n
// returns every line.
func Last(path string, n int) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string
	scanner := bufio.NewScanner(file)
	// Increase buffer size for long log lines
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}

	start := 0
	if n > 0 && len(texts) > n {
		start = len(texts) - n
	}
	texts = texts[start:]

	lines := make([]Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, classify(t))
	}
	return lines, nil
}

// Follow streams lines appended to path until ctx is cancelled. Delivery is
// driven by filesystem write events, with a polling fallback every poll for
// filesystems that drop events; a non-positive poll defaults to 2s. Lines
// already in the file are skipped.
func Follow(ctx context.Context, path string, poll time.Duration, out chan<- Line) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seeking to end: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching log file: %w", err)
	}

	if poll <= 0 {
		poll = 2 * time.Second
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	var pending []byte
	chunk := make([]byte, 4096)

	// drain reads whatever has been appended and sends complete lines,
	// keeping a trailing partial line for the next round.
	drain := func() error {
		for {
			n, err := file.Read(chunk)
			if n > 0 {
				pending = append(pending, chunk[:n]...)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("reading log file: %w", err)
			}
			if n == 0 {
				break
			}
		}
		for {
			i := bytes.IndexByte(pending, '\n')
			if i < 0 {
				break
			}
			text := string(pending[:i])
			pending = pending[i+1:]
			if text == "" {
				continue
			}
			select {
			case out <- classify(text):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := drain(); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return err
				}
			}
		case <-ticker.C:
			if err := drain(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			return fmt.Errorf("watching log file: %w", err)
		}
	}
}
