// FILE: dayroll/constant.go
package dayroll

// Log level constants
const (
	LevelTrace int64 = -8
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// frontendSep separates an embedded logger name from the message body in
// events originating from a host UI surface
const frontendSep = '\x1f'

// Fixed column widths of the formatted line
const (
	levelWidth  = 5
	loggerWidth = 20
	originWidth = 8
	pathWidth   = 30
)

// timestampLayout renders local time with millisecond precision and a
// mandatory-sign UTC offset
const timestampLayout = "2006-01-02T15:04:05.000-07:00"

// timestampPlaceholder replaces an unformattable timestamp
const timestampPlaceholder = "????-??-??T??:??:??.???+??:??"

// Archive filename layouts
const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15-04-05"
	midnightSuffix = "00-00-00"
)

// tailReadSize is how many bytes are read from the end of the active file
// when recovering its last written date
const tailReadSize = 4096

// retentionDays is the archive retention window; archives strictly older
// are deleted
const retentionDays = 30
