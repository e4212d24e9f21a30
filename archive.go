// FILE: dayroll/archive.go
package dayroll

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// activeFilePath returns the full path to the active log file
func (l *Logger) activeFilePath() string {
	c := l.getConfig()

	filename := c.Name
	if c.Extension != "" {
		filename = c.Name + "." + c.Extension
	}

	return filepath.Join(c.Directory, filename)
}

// archiveFilePath builds the archive path for the given date. A non-empty
// clock suffix produces the time-suffixed naming scheme.
func (l *Logger) archiveFilePath(dir string, date time.Time, clock string) string {
	c := l.getConfig()

	name := c.Name + "_" + date.Format(dateLayout)
	if clock != "" {
		name += "_" + clock
	}
	if c.Extension != "" {
		name += "." + c.Extension
	}

	return filepath.Join(dir, name)
}

// normalizeSizedArchives renames size-triggered archives for the given date
// so each filename reflects when its content begins rather than when the
// size trigger fired: the earliest chunk moves to midnight, every later
// chunk to the previous chunk's original timestamp. Returns the last
// original timestamp, to be used as the content-start suffix of the still
// accumulating active file. Returns false if nothing matched, or the
// earliest chunk already sits at midnight (a second call is a no-op).
func (l *Logger) normalizeSizedArchives(dir string, date time.Time) (string, bool) {
	c := l.getConfig()

	prefix := c.Name + "_" + date.Format(dateLayout) + "_"
	suffix := ""
	if c.Extension != "" {
		suffix = "." + c.Extension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.internalLog("failed to read log directory '%s' for normalization: %v\n", dir, err)
		return "", false
	}

	var clocks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		clock := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		if len(clock) != len(clockLayout) {
			continue
		}
		if _, err := time.Parse(clockLayout, clock); err != nil {
			continue
		}
		clocks = append(clocks, clock)
	}

	if len(clocks) == 0 {
		return "", false
	}

	// Lexicographic order of HH-MM-SS is chronological order
	sort.Strings(clocks)

	if clocks[0] == midnightSuffix {
		return "", false
	}

	// Rename earliest to latest so each target slot is vacated before it is
	// reused as the next file's destination
	prev := midnightSuffix
	last := ""
	for _, clock := range clocks {
		oldPath := filepath.Join(dir, prefix+clock+suffix)
		newPath := filepath.Join(dir, prefix+prev+suffix)
		if err := os.Rename(oldPath, newPath); err != nil {
			// Stop the chain: continuing would rename onto a still occupied slot
			l.internalLog("failed to rename archive '%s' to '%s': %v\n", oldPath, newPath, err)
			break
		}
		prev = clock
		last = clock
	}

	if last == "" {
		return "", false
	}
	return last, true
}
