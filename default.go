// --- File: default.go ---
package dayroll

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyConfigString applies "key=value" overrides to the default logger
func ApplyConfigString(overrides ...string) error {
	return defaultLogger.ApplyConfigString(overrides...)
}

// SetUIHook installs the host UI callback on the default logger
func SetUIHook(fn func(line string)) {
	defaultLogger.SetUIHook(fn)
}

// Named returns a scoped logger bound to the default logger
func Named(target string) *Scoped {
	return defaultLogger.Named(target)
}

// Trace logs a message at trace level
func Trace(args ...any) {
	defaultLogger.log(LevelTrace, defaultLogger.getConfig().DefaultTarget, 2, args...)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.log(LevelDebug, defaultLogger.getConfig().DefaultTarget, 2, args...)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.log(LevelInfo, defaultLogger.getConfig().DefaultTarget, 2, args...)
}

// Warn logs a message at warning level
func Warn(args ...any) {
	defaultLogger.log(LevelWarn, defaultLogger.getConfig().DefaultTarget, 2, args...)
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.log(LevelError, defaultLogger.getConfig().DefaultTarget, 2, args...)
}

// Handle ingests an externally constructed event into the default logger
func Handle(e Event) {
	defaultLogger.Handle(e)
}

// Shutdown closes the default logger
func Shutdown() error {
	return defaultLogger.Shutdown()
}
