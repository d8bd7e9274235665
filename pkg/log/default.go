package log

import "io"

// std is the package-level logger backing the package functions. It is
// created at process start, so the environment gate is read once, up front.
var std = New("")

// Default returns the package-level logger. Use it when a *Logger is needed
// but constructing one is not worth the ceremony.
func Default() *Logger {
	return std
}

// SetEnabled turns debug-tier output on or off for the default logger.
func SetEnabled(enabled bool) {
	std.SetEnabled(enabled)
}

// Enabled reports the default logger's debug gate.
func Enabled() bool {
	return std.Enabled()
}

// SetOutput replaces the default logger's destination. See Logger.SetOutput.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// RedirectToFile redirects the default logger to path. See
// Logger.RedirectToFile.
func RedirectToFile(path string) error {
	return std.RedirectToFile(path)
}

// RestoreStderr reverts the default logger to its default destination.
func RestoreStderr() {
	std.RestoreStderr()
}

// Close releases the default logger's redirect file, if any.
func Close() error {
	return std.Close()
}

// Emit writes one line through the default logger. See Logger.Emit.
func Emit(tier Tier, origin Origin, format string, args ...any) {
	std.Emit(tier, origin, format, args...)
}

// Debugf emits a debug-tier line through the default logger.
func Debugf(format string, args ...any) {
	std.Emit(Debug, Origin{}, format, args...)
}

// Logf emits a normal-tier line through the default logger.
func Logf(format string, args ...any) {
	std.Emit(Normal, Origin{}, format, args...)
}

// Warnf emits a warning-tier line through the default logger.
func Warnf(format string, args ...any) {
	std.Emit(Warning, Origin{}, format, args...)
}
