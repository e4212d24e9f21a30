// FILE: utility.go
package dayroll

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "dayroll: ") {
		format = "dayroll: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// Level converts level string to numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error)", levelStr)
	}
}

// callerLocation returns the source file and line of the caller at the
// given skip distance. Unknown call sites yield ("unknown", 0).
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// DefaultLogDir returns the platform log directory for the given
// application identifier. The second return value is false on platforms
// without a conventional per-user log location; callers should treat
// that as "file output unavailable" rather than an error.
func DefaultLogDir(appID string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appID), true
	case "linux", "freebsd", "openbsd", "netbsd":
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, appID, "logs"), true
		}
		return filepath.Join(home, ".local", "state", appID, "logs"), true
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, appID, "logs"), true
		}
		return filepath.Join(home, "AppData", "Local", appID, "logs"), true
	default:
		return "", false
	}
}

// internalLog handles writing internal engine diagnostics to stderr, if enabled.
// This side channel is intentionally separate from the structured log since
// the log plumbing may not be ready during startup rotation.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "dayroll: " prefix
	if !strings.HasPrefix(format, "dayroll: ") {
		format = "dayroll: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
