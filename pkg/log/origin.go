package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Origin identifies the source location a line was emitted from. The zero
// value means "no annotation".
type Origin struct {
	File string
	Line int
	Func string
}

// Here returns the caller's file and line, with the file shortened to its
// base name. Evaluate it at the call site you want annotated:
//
//	l.Emit(log.Warning, log.Here(), "checksum mismatch")
func Here() Origin {
	return callerOrigin(2, false)
}

// HereFunc is Here plus the bare name of the enclosing function.
func HereFunc() Origin {
	return callerOrigin(2, true)
}

// IsZero reports whether o carries no location.
func (o Origin) IsZero() bool {
	return o == Origin{}
}

// String renders "file:line" or "file:line (func)"; empty for the zero
// value.
func (o Origin) String() string {
	if o.IsZero() {
		return ""
	}
	s := o.File + ":" + strconv.Itoa(o.Line)
	if o.Func != "" {
		s += " (" + o.Func + ")"
	}
	return s
}

func callerOrigin(skip int, withFunc bool) Origin {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Origin{File: "???"}
	}
	o := Origin{File: filepath.Base(file), Line: line}
	if withFunc {
		if fn := runtime.FuncForPC(pc); fn != nil {
			o.Func = shortFuncName(fn.Name())
		}
	}
	return o
}

// shortFuncName strips the package path and name from a runtime function
// name: "github.com/x/y/pkg.(*T).Flush" becomes "(*T).Flush".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
