// FILE: dayroll/type.go
package dayroll

import (
	"io"
	"time"
)

// Origin identifies which side of the host application produced an event
type Origin string

const (
	OriginBackend  Origin = "Backend"
	OriginFrontend Origin = "Frontend"
)

// Event is a single log event as received from the host application.
// Immutable once constructed; consumed exactly once by the formatter.
type Event struct {
	Time    time.Time
	Level   int64
	File    string // Source file path of the call site
	Line    int
	Target  string // Statically-known logger name of the emitting scope
	Message string
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// uiHook is the optional host UI surface callback, wrapped for atomic storage
type uiHook struct {
	fn func(line string)
}
