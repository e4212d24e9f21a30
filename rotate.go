// FILE: dayroll/rotate.go
package dayroll

import (
	"io"
	"os"
	"sync"
	"time"
)

// rotationState is the process-wide shared state of runtime rotation.
// Created once after startup rotation completes; absence (a nil pointer in
// State.Rotation) means runtime checks are a no-op, which is the normal
// case when no log directory exists.
type rotationState struct {
	mu   sync.Mutex
	date time.Time // Midnight of the last observed day, local time
	dir  string
}

// dateOnly truncates t to local midnight
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rotateOnStartup archives stale content of the active log file before the
// append handle is opened. All failures are non-fatal; they are reported to
// the side channel and startup continues. The retention sweep runs
// unconditionally, even when there is no active file.
func (l *Logger) rotateOnStartup(now time.Time) {
	c := l.getConfig()
	dir := c.Directory
	active := l.activeFilePath()

	if _, err := os.Stat(active); err == nil {
		l.rotateStaleFile(active, dir, now)
	} else if !os.IsNotExist(err) {
		l.internalLog("failed to stat active log file '%s': %v\n", active, err)
	}

	l.sweepExpired(dir, now)
}

// rotateStaleFile decides whether the existing active file belongs to an
// earlier day and archives it by rename if so.
func (l *Logger) rotateStaleFile(active, dir string, now time.Time) {
	last, ok := lastDate(active)
	if !ok {
		// Content present but no parseable date; preserving it has no value,
		// truncate so the sink keeps appending to the same name
		if err := os.Truncate(active, 0); err != nil {
			l.internalLog("failed to truncate undated log file '%s': %v\n", active, err)
		} else {
			l.internalLog("warning - no date found in '%s', file truncated\n", active)
		}
		return
	}

	if !last.Before(dateOnly(now)) {
		return // Still today's file
	}

	clock, _ := l.normalizeSizedArchives(dir, last)
	target := l.archiveFilePath(dir, last, clock)
	if _, err := os.Stat(target); err == nil {
		l.internalLog("warning - archive '%s' already exists, skipping rotation\n", target)
		return
	}

	if err := os.Rename(active, target); err != nil {
		l.internalLog("failed to archive log file '%s' to '%s': %v\n", active, target, err)
		return
	}
	l.state.TotalRotations.Add(1)
}

// initRotationState publishes the rotation state after startup rotation.
// Runtime checks stay disabled until this runs.
func (l *Logger) initRotationState(dir string, now time.Time) {
	l.state.Rotation.Store(&rotationState{
		date: dateOnly(now),
		dir:  dir,
	})
}

// checkRotation runs at the top of every formatting pass. The fast path is
// a single lock acquisition and date comparison with no I/O. On a day
// boundary it normalizes the previous day's size archives, copies the
// active file into a previous-day archive, truncates it in place, and
// sweeps expired archives. Copy-and-truncate is used instead of rename
// because the append handle to the active file is held open elsewhere and
// would not follow a rename.
func (l *Logger) checkRotation(now time.Time) {
	rsVal := l.state.Rotation.Load()
	rs, _ := rsVal.(*rotationState)
	if rs == nil || l.state.RotationDisabled.Load() {
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	// A panic mid-rotation would leave the directory state unknown; degrade
	// to a permanent no-op for the rest of the process instead of taking
	// down the host application on the next event
	defer func() {
		if r := recover(); r != nil {
			l.state.RotationDisabled.Store(true)
			l.internalLog("panic during rotation, rotation disabled: %v\n", r)
		}
	}()

	today := dateOnly(now)
	if !rs.date.Before(today) {
		return
	}

	prev := rs.date
	// Advance regardless of the copy outcome below, so a persistent write
	// failure costs one missed rotation instead of a retry per event
	rs.date = today

	clock, _ := l.normalizeSizedArchives(rs.dir, prev)
	target := l.archiveFilePath(rs.dir, prev, clock)
	active := l.activeFilePath()

	if _, err := os.Stat(target); err == nil {
		l.internalLog("warning - archive '%s' already exists, skipping day rotation\n", target)
	} else if err := l.copyTruncate(active, target); err != nil {
		l.internalLog("day rotation of '%s' failed: %v\n", active, err)
	} else {
		l.state.TotalRotations.Add(1)
	}

	l.sweepExpired(rs.dir, today)
}

// copyTruncate copies src into a newly created dst, then truncates src to
// empty. dst creation is exclusive so an existing archive is never
// overwritten.
func (l *Logger) copyTruncate(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmtErrorf("failed to open '%s' for archiving: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmtErrorf("failed to create archive '%s': %w", dst, err)
	}

	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return fmtErrorf("failed to copy '%s' to '%s': %w", src, dst, copyErr)
	}
	if closeErr != nil {
		return fmtErrorf("failed to close archive '%s': %w", dst, closeErr)
	}

	if err := os.Truncate(src, 0); err != nil {
		return fmtErrorf("failed to truncate '%s' after archiving: %w", src, err)
	}
	return nil
}
