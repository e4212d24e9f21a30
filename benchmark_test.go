package dayroll

import (
	"testing"
	"time"
)

func BenchmarkFormat(b *testing.B) {
	f := NewFormatter("", false)
	e := Event{
		Time:    time.Now(),
		Level:   LevelInfo,
		File:    "internal/server/handler.go",
		Line:    42,
		Target:  "app",
		Message: "request served in 12ms",
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.Format(e)
	}
}

func BenchmarkInfoToFile(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Directory = b.TempDir()
	cfg.EnableConsole = false
	cfg.EnableColor = false

	logger := NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		b.Fatal(err)
	}
	defer logger.Shutdown()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

func BenchmarkRenderArgs(b *testing.B) {
	args := []any{"user", 42, "active", true, 3.14}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = renderArgs(args)
	}
}
