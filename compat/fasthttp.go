// FILE: dayroll/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lakefield/dayroll"
)

// FastHTTPAdapter wraps dayroll.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	scope         *dayroll.Scoped
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *dayroll.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		scope:         logger.Named("fasthttp"),
		defaultLevel:  dayroll.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		detected := a.levelDetector(msg)
		if detected != 0 {
			level = detected
		}
	}

	switch level {
	case dayroll.LevelTrace:
		a.scope.Trace(msg)
	case dayroll.LevelDebug:
		a.scope.Debug(msg)
	case dayroll.LevelWarn:
		a.scope.Warn(msg)
	case dayroll.LevelError:
		a.scope.Error(msg)
	default:
		a.scope.Info(msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return dayroll.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return dayroll.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return dayroll.LevelDebug
	}

	return dayroll.LevelInfo
}
