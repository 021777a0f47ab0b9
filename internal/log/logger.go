package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelPrefixes = map[level]string{
	levelDebug: "\033[37m[DBG]\033[0m", // White
	levelInfo:  "\033[36m[INF]\033[0m", // Cyan
	levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
	levelError: "\033[31m[ERR]\033[0m", // Red
}

var (
	mu          sync.Mutex
	verbose     = false
	forceStderr = false
	stdout      io.Writer = os.Stdout
	stderr      io.Writer = os.Stderr
)

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetForceStderr redirects all levels to stderr. Useful when stdout is
// reserved for machine-readable output (e.g. generated artifacts).
func SetForceStderr(f bool) {
	mu.Lock()
	forceStderr = f
	mu.Unlock()
}

// SetOutput overrides both output streams. Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	stdout = w
	stderr = w
	mu.Unlock()
}

// Debugf logs a debug message if verbose logging is enabled.
func Debugf(format string, args ...interface{}) {
	if IsVerbose() {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits with a non-zero status.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(lvl level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	out := stdout
	if forceStderr || lvl >= levelError {
		out = stderr
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", levelPrefixes[lvl], fmt.Sprintf(format, args...))
}
