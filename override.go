// FILE: dayroll/override.go
package dayroll

import (
	"strconv"
	"strings"
)

// applyConfigField sets a single Config field from its string form.
// Keys match the toml tags of Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		// Accept either a numeric level or a level name
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = n
			return nil
		}
		n, err := Level(value)
		if err != nil {
			return err
		}
		cfg.Level = n

	case "name":
		cfg.Name = value

	case "directory":
		cfg.Directory = value

	case "extension":
		cfg.Extension = value

	case "source_root":
		cfg.SourceRoot = value

	case "default_target":
		cfg.DefaultTarget = value

	case "enable_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("enable_color must be a bool: %s", value)
		}
		cfg.EnableColor = b

	case "enable_console":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("enable_console must be a bool: %s", value)
		}
		cfg.EnableConsole = b

	case "console_target":
		cfg.ConsoleTarget = value

	case "enable_file":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("enable_file must be a bool: %s", value)
		}
		cfg.EnableFile = b

	case "internal_errors_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("internal_errors_to_stderr must be a bool: %s", value)
		}
		cfg.InternalErrorsToStderr = b

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}

// combineConfigErrors merges override errors into a single error
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmtErrorf("invalid overrides: %s", strings.Join(msgs, "; "))
}
