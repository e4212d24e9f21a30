// FILE: dayroll/format.go
package dayroll

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/lakefield/dayroll/textfit"
)

// Formatter renders one Event into the fixed-column text line:
// {ts} {level:5} [{logger:20}] ({origin:8}: {path:30}: {line:>4}): {message}
// It is a pure function of the event and its own configuration; it does not
// know about sinks or rotation.
type Formatter struct {
	sourceRoot  string
	color       bool
	levelStyles map[int64]lipgloss.Style
}

// NewFormatter creates a formatter. sourceRoot is stripped from the front
// of source paths before width fitting; color controls level colorization.
func NewFormatter(sourceRoot string, color bool) *Formatter {
	return &Formatter{
		sourceRoot: sourceRoot,
		color:      color,
		levelStyles: map[int64]lipgloss.Style{
			LevelTrace: lipgloss.NewStyle().Faint(true),
			LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		},
	}
}

// Format renders the event as a single line without trailing newline
func (f *Formatter) Format(e Event) string {
	origin, logger, message := splitOrigin(e.Target, e.Message)

	path := e.File
	if f.sourceRoot != "" {
		path = strings.TrimPrefix(path, f.sourceRoot)
	}

	var b strings.Builder
	b.WriteString(f.formatTimestamp(e.Time))
	b.WriteByte(' ')
	b.WriteString(f.formatLevel(e.Level))
	b.WriteString(" [")
	b.WriteString(textfit.Fit(logger, loggerWidth))
	b.WriteString("] (")
	b.WriteString(textfit.Fit(string(origin), originWidth))
	b.WriteString(": ")
	b.WriteString(textfit.FitPath(path, pathWidth))
	b.WriteString(": ")
	b.WriteString(fmt.Sprintf("%4d", e.Line))
	b.WriteString("): ")
	b.WriteString(message)
	return b.String()
}

// splitOrigin derives origin and logger name from the raw message. A
// message containing the embedded separator came from the frontend and
// carries its own logger name before the separator; anything else is
// backend-originated under the event's statically-known target.
func splitOrigin(target, message string) (Origin, string, string) {
	if idx := strings.IndexRune(message, frontendSep); idx >= 0 {
		return OriginFrontend, message[:idx], message[idx+1:]
	}
	return OriginBackend, target, message
}

// formatTimestamp renders local time with millisecond precision and a
// mandatory-sign offset; a zero time falls back to the placeholder rather
// than rendering a bogus epoch
func (f *Formatter) formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return timestampPlaceholder
	}
	return t.Local().Format(timestampLayout)
}

// formatLevel fits the level tag to its column and colorizes per severity
func (f *Formatter) formatLevel(level int64) string {
	tag := textfit.Fit(levelToString(level), levelWidth)
	if !f.color {
		return tag
	}
	if style, ok := f.levelStyles[level]; ok {
		return style.Render(tag)
	}
	return tag
}

// levelToString converts the numeric level to its tag
func levelToString(level int64) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// renderArgs converts log call arguments to a space-separated message.
// Scalar types convert directly; everything else is delegated to spew for
// a compact, deterministic dump.
func renderArgs(args []any) string {
	var buf []byte
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its string representation
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timestampLayout)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers, slices: delegate to spew
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
