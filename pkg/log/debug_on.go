//go:build !dlog_nodebug

package log

// Debug-tier emission is compiled in by default; the runtime gate decides
// whether it prints.
const debugElided = false
