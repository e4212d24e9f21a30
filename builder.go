// FILE: dayroll/builder.go
package dayroll

// Builder provides a fluent API for building engine configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the log level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Name sets the base name of the active log file.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// SourceRoot sets the prefix stripped from source paths in output.
func (b *Builder) SourceRoot(root string) *Builder {
	b.cfg.SourceRoot = root
	return b
}

// DefaultTarget sets the logger name used for unscoped events.
func (b *Builder) DefaultTarget(target string) *Builder {
	b.cfg.DefaultTarget = target
	return b
}

// EnableColor controls level colorization.
func (b *Builder) EnableColor(enable bool) *Builder {
	b.cfg.EnableColor = enable
	return b
}

// EnableConsole enables mirroring lines to stdout/stderr.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for console output.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// EnableFile controls file output and, with it, all rotation.
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// Example usage:
// logger, err := dayroll.NewBuilder().
//
//	Directory("/var/log/app").
//	LevelString("debug").
//	EnableConsole(true).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("Logger initialized successfully")
//
// }
