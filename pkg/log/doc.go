// Package log is a small convenience layer over the Go standard library
// logger. It annotates lines with the call site, gates debug output behind a
// runtime switch, and can redirect everything it writes to a file.
//
// Key Features
//
//   - Three tiers: Debug, Normal and Warning. Warning lines carry a literal
//     "WARNING: " marker so they stand out in a busy log; debug and normal
//     lines are unmarked.
//   - Optional call-site annotation: Here() captures file:line, HereFunc()
//     additionally captures the enclosing function name.
//   - Debug output is off unless enabled at runtime (SetEnabled) or through
//     the DLOG_DEBUG environment variable. Normal and warning output always
//     emits.
//   - Output can be redirected to an append-mode file (RedirectToFile) and
//     switched back to standard error (RestoreStderr).
//   - Uses the standard library *log.Logger* under the hood, which supplies
//     the timestamp and a "tag[pid]" process prefix on every line.
//
// Non-Goals
//
//   - Structured / JSON logging
//   - Levels beyond the three tiers
//   - Log rotation, fan-out to multiple destinations, or async buffering
//   - Shipping logs over the network
//
// Keeping the surface minimal is the point: this package exists to make
// printf-style console logging pleasant, not to be a logging framework.
//
// Basic Usage
//
//	import (
//		"github.com/rubiojr/dlog/pkg/log"
//	)
//
//	func main() {
//		log.SetEnabled(true) // or run with DLOG_DEBUG=YES
//
//		log.Logf("starting up")
//		log.Debugf("config: %+v", cfg) // only with the gate enabled
//		log.Warnf("disk space low: %d%%", pct)
//
//		// Annotated emission captures the call site.
//		log.Emit(log.Warning, log.HereFunc(), "retrying in %s", delay)
//	}
//
// Dedicated instances work the same way and keep their own gate and
// destination:
//
//	l := log.New("worker")
//	l.Logf("spawned")
//
// Output Routing
//
//	if err := log.RedirectToFile("/tmp/app.log"); err != nil {
//		// the previous destination is still active
//	}
//	defer log.RestoreStderr()
//
// Line Format
//
// The underlying logger prefixes every line with a microsecond timestamp and
// the process tag. The body is assembled as tier marker, origin, message:
//
//	2025/03/09 10:31:02.123456 app[4242] WARNING: sync.go:87 (flush) slow commit: 2.3s
//
// Thread Safety
//
// All operations on a Logger are safe for concurrent use; a single mutex
// serializes gate changes, destination swaps and writes. Emission is not a
// hot path here and is not meant to be one.
//
// Testing
//
// Tests can call SetOutput with a bytes.Buffer and assert on the captured
// lines; RestoreStderr then reverts to that buffer, not the real stderr.
//
// Release Builds
//
// Building with the dlog_nodebug tag compiles debug-tier emission out
// entirely; the calls remain but reduce to no-ops the compiler removes.
package log
