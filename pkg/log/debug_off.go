//go:build dlog_nodebug

package log

// Built with the dlog_nodebug tag: debug-tier emits reduce to constant
// no-ops the compiler removes.
const debugElided = true
