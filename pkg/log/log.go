package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Tier classifies a log line. Debug lines are gated; normal and warning
// lines always emit.
type Tier int

const (
	Debug Tier = iota
	Normal
	Warning
)

// warningMark is the literal marker prepended to warning-tier lines.
const warningMark = "WARNING: "

// EnvDebug is the environment variable consulted for the gate's initial
// value. Only the exact string "YES" counts; anything else, including an
// unset variable, leaves debug output disabled.
const EnvDebug = "DLOG_DEBUG"

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case Debug:
		return "debug"
	case Normal:
		return "normal"
	case Warning:
		return "warning"
	}
	return "tier(" + strconv.Itoa(int(t)) + ")"
}

// ParseTier maps a tier name to its Tier value.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "debug":
		return Debug, nil
	case "normal":
		return Normal, nil
	case "warning":
		return Warning, nil
	}
	return Normal, fmt.Errorf("unknown tier %q", s)
}

// Logger emits annotated lines through a standard library logger, which
// supplies the timestamp and "tag[pid]" prefix. The zero value is not
// usable; construct with New.
type Logger struct {
	mu       sync.Mutex
	enabled  bool
	std      *log.Logger
	fallback io.Writer // destination RestoreStderr returns to
	file     *os.File  // open redirect target, nil while on fallback
}

// New returns a Logger writing to standard error. The tag appears in every
// line's process prefix; an empty tag defaults to the executable name. The
// debug gate starts from the environment (see EnvDebug).
func New(tag string) *Logger {
	if tag == "" {
		tag = filepath.Base(os.Args[0])
	}
	prefix := tag + "[" + strconv.Itoa(os.Getpid()) + "] "
	return &Logger{
		enabled:  envEnabled(),
		std:      log.New(os.Stderr, prefix, log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix),
		fallback: os.Stderr,
	}
}

func envEnabled() bool {
	return os.Getenv(EnvDebug) == "YES"
}

// SetEnabled turns debug-tier output on or off. Normal and warning output
// is unaffected. Last write wins.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Enabled reports whether debug-tier output currently emits.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Emit writes one line at the given tier with fmt.Sprintf semantics. A zero
// Origin means no call-site annotation; pass Here() or HereFunc() to
// annotate. Debug-tier calls return before formatting when the gate is off.
// Write failures are swallowed: emission never fails observably.
func (l *Logger) Emit(tier Tier, origin Origin, format string, args ...any) {
	if tier == Debug && debugElided {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if tier == Debug && !l.enabled {
		return
	}
	l.write(tier, origin, fmt.Sprintf(format, args...))
}

// write assembles the line body: tier marker, origin, message.
// Callers hold l.mu.
func (l *Logger) write(tier Tier, origin Origin, msg string) {
	var b strings.Builder
	if tier == Warning {
		b.WriteString(warningMark)
	}
	if !origin.IsZero() {
		b.WriteString(origin.String())
		b.WriteByte(' ')
	}
	b.WriteString(msg)
	_ = l.std.Output(2, b.String())
}

// Debugf emits an unannotated debug-tier line if the gate is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	l.Emit(Debug, Origin{}, format, args...)
}

// Logf emits an unannotated normal-tier line.
func (l *Logger) Logf(format string, args ...any) {
	l.Emit(Normal, Origin{}, format, args...)
}

// Warnf emits an unannotated warning-tier line.
func (l *Logger) Warnf(format string, args ...any) {
	l.Emit(Warning, Origin{}, format, args...)
}
