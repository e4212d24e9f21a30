// FILE: dayroll/retention.go
package dayroll

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sweepExpired deletes archives in dir whose embedded date is more than
// retentionDays older than today. Both naming schemes are recognized:
// date-only and date-plus-time. Files matching neither are left untouched,
// as is anything dated exactly at the retention boundary. Per-file delete
// failures are reported and do not abort the sweep.
func (l *Logger) sweepExpired(dir string, today time.Time) {
	c := l.getConfig()

	prefix := c.Name + "_"
	suffix := ""
	if c.Extension != "" {
		suffix = "." + c.Extension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.internalLog("failed to read log directory '%s' for retention sweep: %v\n", dir, err)
		return
	}

	cutoff := dateOnly(today)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		if len(stamp) < len(dateLayout) {
			continue
		}
		date, err := time.ParseInLocation(dateLayout, stamp[:len(dateLayout)], time.Local)
		if err != nil {
			continue
		}
		if !validClockRemainder(stamp[len(dateLayout):]) {
			continue
		}

		// Strictly older than the window; an archive dated exactly
		// retentionDays ago is kept
		if !date.AddDate(0, 0, retentionDays).Before(cutoff) {
			continue
		}

		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			l.internalLog("failed to remove expired archive '%s': %v\n", path, err)
			continue
		}
		l.state.TotalDeletions.Add(1)
	}
}

// validClockRemainder reports whether the part of an archive stamp after
// the date matches either scheme: empty (date-only) or "_HH-MM-SS".
func validClockRemainder(rest string) bool {
	if rest == "" {
		return true
	}
	if len(rest) != 1+len(clockLayout) || rest[0] != '_' {
		return false
	}
	_, err := time.Parse(clockLayout, rest[1:])
	return err == nil
}
