// FILE: dayroll/logger.go
package dayroll

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the core struct that encapsulates the log lifecycle engine:
// line formatting, startup and runtime rotation, and sink fan-out
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex
	formatter     atomic.Pointer[Formatter] // swapped on reconfigure, read by every dispatch
}

// NewLogger creates a new Logger instance with default settings
func NewLogger() *Logger {
	l := &Logger{}

	l.currentConfig.Store(DefaultConfig())
	l.formatter.Store(NewFormatter(defaultConfig.SourceRoot, defaultConfig.EnableColor))

	l.state.IsInitialized.Store(false)
	l.state.Disabled.Store(false)
	l.state.ShutdownCalled.Store(false)
	l.state.RotationDisabled.Store(false)
	l.state.TotalEvents.Store(0)
	l.state.TotalRotations.Store(0)
	l.state.TotalDeletions.Store(0)
	l.state.ConsoleWriter.Store(sink{w: io.Discard})
	l.state.UIHook.Store(uiHook{})

	return l
}

// ApplyConfig applies a validated configuration to the engine.
// This is the primary way applications should configure the logger.
// When file output is enabled, the log directory is created if missing and
// startup rotation runs before the append handle is opened, so stale
// content from an earlier day is archived rather than appended to.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg)
}

// ApplyConfigString applies string key-value overrides to the current
// configuration. Each override should be in the format "key=value".
func (l *Logger) ApplyConfigString(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// SetUIHook installs a callback receiving every formatted line, intended
// for a host UI surface. A nil hook removes it.
func (l *Logger) SetUIHook(fn func(line string)) {
	l.state.UIHook.Store(uiHook{fn: fn})
}

// Named returns a scoped logger whose events carry the given target as
// their logger name, constructed once per module or component and passed
// or captured where needed
func (l *Logger) Named(target string) *Scoped {
	return &Scoped{logger: l, target: target}
}

// Trace logs a message at trace level
func (l *Logger) Trace(args ...any) {
	l.log(LevelTrace, l.getConfig().DefaultTarget, 2, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(args ...any) {
	l.log(LevelDebug, l.getConfig().DefaultTarget, 2, args...)
}

// Info logs a message at info level
func (l *Logger) Info(args ...any) {
	l.log(LevelInfo, l.getConfig().DefaultTarget, 2, args...)
}

// Warn logs a message at warning level
func (l *Logger) Warn(args ...any) {
	l.log(LevelWarn, l.getConfig().DefaultTarget, 2, args...)
}

// Error logs a message at error level
func (l *Logger) Error(args ...any) {
	l.log(LevelError, l.getConfig().DefaultTarget, 2, args...)
}

// Handle ingests an externally constructed event, running it through the
// rotation check, the formatter, and sink fan-out. This is the inbound
// interface for collaborators that build their own events.
func (l *Logger) Handle(e Event) {
	if !l.state.IsInitialized.Load() || l.state.Disabled.Load() {
		return
	}
	if e.Level < l.getConfig().Level {
		return
	}
	l.dispatch(e)
}

// Shutdown closes the engine. The append handle is synced and closed;
// subsequent events are dropped. Safe to call multiple times.
func (l *Logger) Shutdown() error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.state.Disabled.Store(true)
	l.state.IsInitialized.Store(false)

	var finalErr error
	cfPtr := l.state.CurrentFile.Load()
	if cfPtr != nil {
		if f, ok := cfPtr.(*os.File); ok && f != nil {
			if err := f.Sync(); err != nil {
				finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file '%s' during shutdown: %w", f.Name(), err))
			}
			if err := f.Close(); err != nil {
				finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s' during shutdown: %w", f.Name(), err))
			}
			l.state.CurrentFile.Store((*os.File)(nil))
		}
	}

	return finalErr
}

// Scoped is a named logging context bound to a Logger. It replaces
// per-scope identity macros with an ordinary value: construct one per
// component and call its level methods.
type Scoped struct {
	logger *Logger
	target string
}

// Trace logs a message at trace level under the scoped target
func (s *Scoped) Trace(args ...any) {
	s.logger.log(LevelTrace, s.target, 2, args...)
}

// Debug logs a message at debug level under the scoped target
func (s *Scoped) Debug(args ...any) {
	s.logger.log(LevelDebug, s.target, 2, args...)
}

// Info logs a message at info level under the scoped target
func (s *Scoped) Info(args ...any) {
	s.logger.log(LevelInfo, s.target, 2, args...)
}

// Warn logs a message at warning level under the scoped target
func (s *Scoped) Warn(args ...any) {
	s.logger.log(LevelWarn, s.target, 2, args...)
}

// Error logs a message at error level under the scoped target
func (s *Scoped) Error(args ...any) {
	s.logger.log(LevelError, s.target, 2, args...)
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// log builds an event from a level call site and dispatches it
func (l *Logger) log(level int64, target string, skip int, args ...any) {
	if !l.state.IsInitialized.Load() || l.state.Disabled.Load() {
		return
	}
	if level < l.getConfig().Level {
		return
	}

	file, line := callerLocation(skip)
	l.dispatch(Event{
		Time:    time.Now(),
		Level:   level,
		File:    file,
		Line:    line,
		Target:  target,
		Message: renderArgs(args),
	})
}

// dispatch runs the rotation check, formats the event, and fans the line
// out to the configured sinks. Sink failures are reported to the side
// channel and never propagate; logging must not fail the application.
func (l *Logger) dispatch(e Event) {
	// Rotation follows the wall clock, not the event timestamp: an
	// externally injected event may carry any time, and a future-dated one
	// must not advance the rotation date or widen the retention cutoff
	l.checkRotation(time.Now())

	line := l.formatter.Load().Format(e) + "\n"
	l.state.TotalEvents.Add(1)

	if s, ok := l.state.ConsoleWriter.Load().(sink); ok && s.w != nil {
		if _, err := s.w.Write([]byte(line)); err != nil {
			l.internalLog("failed to write to console: %v\n", err)
		}
	}

	cfPtr := l.state.CurrentFile.Load()
	if f, ok := cfPtr.(*os.File); ok && f != nil {
		if _, err := f.Write([]byte(line)); err != nil {
			l.internalLog("failed to write to log file: %v\n", err)
		}
	}

	if h, ok := l.state.UIHook.Load().(uiHook); ok && h.fn != nil {
		h.fn(line)
	}
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()
	l.currentConfig.Store(cfg)

	l.formatter.Store(NewFormatter(cfg.SourceRoot, cfg.EnableColor))

	now := time.Now()

	if cfg.EnableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			l.currentConfig.Store(oldCfg) // Rollback
			return fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
		}

		// Archive yesterday's content before the append handle exists
		l.rotateOnStartup(now)

		logFile, err := l.openLogFile()
		if err != nil {
			l.currentConfig.Store(oldCfg) // Rollback
			return err
		}

		// Close a previous handle if reconfiguring onto a different file
		if prev, ok := l.state.CurrentFile.Load().(*os.File); ok && prev != nil && prev != logFile {
			_ = prev.Sync()
			if err := prev.Close(); err != nil {
				l.internalLog("warning - failed to close old log file: %v\n", err)
			}
		}
		l.state.CurrentFile.Store(logFile)

		l.initRotationState(cfg.Directory, now)
	} else {
		if prev, ok := l.state.CurrentFile.Load().(*os.File); ok && prev != nil {
			_ = prev.Sync()
			if err := prev.Close(); err != nil {
				l.internalLog("warning - failed to close log file during disable: %v\n", err)
			}
		}
		l.state.CurrentFile.Store((*os.File)(nil))
		l.state.Rotation.Store((*rotationState)(nil))
	}

	if cfg.EnableConsole {
		var writer io.Writer
		if cfg.ConsoleTarget == "stderr" {
			writer = os.Stderr
		} else {
			writer = os.Stdout
		}
		l.state.ConsoleWriter.Store(sink{w: writer})
	} else {
		l.state.ConsoleWriter.Store(sink{w: io.Discard})
	}

	l.state.IsInitialized.Store(true)
	l.state.ShutdownCalled.Store(false)
	l.state.Disabled.Store(false)

	return nil
}

// openLogFile opens the active log file for appending
func (l *Logger) openLogFile() (*os.File, error) {
	fullPath := l.activeFilePath()

	file, err := os.OpenFile(fullPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open/create log file '%s': %w", fullPath, err)
	}
	return file, nil
}
