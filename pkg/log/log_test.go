package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// helper: a logger with a fixed tag writing into a buffer, gate off
func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := New("dlogtest")
	l.SetOutput(buf)
	l.SetEnabled(false) // tests flip the gate explicitly
	return l, buf
}

func TestNormalEmitsWithGateOff(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Logf("hello world")
	out := buf.String()

	if !strings.Contains(out, "hello world") {
		t.Fatalf("expected message in output, got: %q", out)
	}
	if !strings.Contains(out, "dlogtest[") {
		t.Fatalf("expected process prefix in output, got: %q", out)
	}
}

func TestWarningEmitsWithGateOff(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Warnf("attention needed")

	if !strings.Contains(buf.String(), "WARNING: attention needed") {
		t.Fatalf("expected marked warning in output, got: %q", buf.String())
	}
}

func TestDebugGate(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Debugf("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Fatalf("debug message appeared while the gate is off")
	}

	l.SetEnabled(true)
	l.Debugf("visible now")
	if !strings.Contains(buf.String(), "visible now") {
		t.Fatalf("expected debug message after enabling the gate; got: %q", buf.String())
	}
}

func TestSetEnabledLastWriteWins(t *testing.T) {
	l, buf := newTestLogger(t)

	l.SetEnabled(true)
	l.SetEnabled(false)

	if l.Enabled() {
		t.Fatal("gate reports enabled after SetEnabled(false)")
	}
	l.Debugf("still hidden")
	if strings.Contains(buf.String(), "still hidden") {
		t.Fatalf("debug message appeared after the gate was turned back off")
	}
}

func TestDebugLineHasNoMarker(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetEnabled(true)

	l.Debugf("checking in")
	out := buf.String()

	if strings.Contains(out, "WARNING") {
		t.Fatalf("debug line carries a warning marker: %q", out)
	}
	if !strings.Contains(out, "checking in") {
		t.Fatalf("expected debug message in output, got: %q", out)
	}
}

func TestEmitExplicitOrigin(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Emit(Normal, Origin{File: "Foo.m", Line: 42, Func: "bar"}, "x=%d", 5)
	line := strings.TrimRight(buf.String(), "\n")

	if !strings.HasSuffix(line, "Foo.m:42 (bar) x=5") {
		t.Fatalf("expected line ending in annotated message, got: %q", line)
	}
}

func TestEmitOriginWithoutFunc(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Emit(Normal, Origin{File: "Foo.m", Line: 42}, "x=%d", 5)
	line := strings.TrimRight(buf.String(), "\n")

	if !strings.HasSuffix(line, "Foo.m:42 x=5") {
		t.Fatalf("expected line ending in file:line message, got: %q", line)
	}
}

func TestWarningMarkerPrecedesOrigin(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Emit(Warning, Origin{File: "Foo.m", Line: 42, Func: "bar"}, "boom")

	if !strings.Contains(buf.String(), "WARNING: Foo.m:42 (bar) boom") {
		t.Fatalf("expected marker before origin, got: %q", buf.String())
	}
}

// recordingArg notices when it gets formatted.
type recordingArg struct {
	called *bool
}

func (r recordingArg) String() string {
	*r.called = true
	return "arg"
}

func TestDebugSkipsFormattingWhenGated(t *testing.T) {
	l, _ := newTestLogger(t)

	called := false
	l.Debugf("value: %s", recordingArg{&called})

	if called {
		t.Fatal("message was formatted while the debug gate was off")
	}
}

func TestEnvGateDefault(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"YES", true},
		{"yes", false},
		{"Yes", false},
		{"1", false},
		{"true", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run("value="+tc.value, func(t *testing.T) {
			t.Setenv(EnvDebug, tc.value)
			l := New("envtest")
			if l.Enabled() != tc.want {
				t.Fatalf("gate for %s=%q: got %v, want %v", EnvDebug, tc.value, l.Enabled(), tc.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

// Emission is fire and forget: write failures are swallowed, never
// surfaced or turned into panics.
func TestWriteErrorsSwallowed(t *testing.T) {
	l := New("failtest")
	l.SetOutput(failingWriter{})
	l.SetEnabled(true)

	l.Debugf("goes nowhere")
	l.Logf("goes nowhere")
	l.Warnf("goes nowhere")
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"debug", Debug, false},
		{"normal", Normal, false},
		{"warning", Warning, false},
		{"WARN", Normal, true},
		{"", Normal, true},
	}
	for _, tc := range cases {
		got, err := ParseTier(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseTier(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTier(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTier(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTierString(t *testing.T) {
	for tier, want := range map[Tier]string{Debug: "debug", Normal: "normal", Warning: "warning"} {
		if got := tier.String(); got != want {
			t.Fatalf("Tier(%d).String() = %q, want %q", int(tier), got, want)
		}
	}
}
