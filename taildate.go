// FILE: dayroll/taildate.go
package dayroll

import (
	"bytes"
	"io"
	"os"
	"time"
)

// lastDate extracts the calendar date of the last well-formed timestamped
// line in the file at path, reading at most tailReadSize bytes from the end.
// Returns false if the file is empty, unreadable, or contains no line
// beginning with a 10-character ISO date.
func lastDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return time.Time{}, false
	}

	offset := info.Size() - tailReadSize
	if offset < 0 {
		offset = 0
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return time.Time{}, false
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		return time.Time{}, false
	}

	// A mid-file seek point lands inside an earlier line; everything up to
	// and including the first newline is a truncated fragment
	if offset > 0 {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			return time.Time{}, false
		}
		buf = buf[idx+1:]
	}

	// Scan lines from the end; trailing continuation lines (multi-line
	// error traces and the like) carry no timestamp and are skipped
	lines := bytes.Split(buf, []byte{'\n'})
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSuffix(lines[i], []byte{'\r'})
		if len(line) < len(dateLayout) {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, string(line[:len(dateLayout)]), time.Local)
		if err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}
