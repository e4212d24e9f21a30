// FILE: dayroll/rotate_test.go
package dayroll

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileOnlyConfig(dir string) *Config {
	cfg := DefaultConfig()
	cfg.Directory = dir
	cfg.EnableConsole = false
	cfg.EnableColor = false
	return cfg
}

func datedLine(date, msg string) string {
	return date + "T10:00:00.000+00:00 INFO  [app                 ] (Backend : main.go                       :   42): " + msg + "\n"
}

func TestStartupArchivesStaleFile(t *testing.T) {
	tmpDir := t.TempDir()
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	stale := datedLine(yesterday, "from yesterday")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log.log"), []byte(stale), 0644))

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(newFileOnlyConfig(tmpDir)))
	defer logger.Shutdown()

	assert.Equal(t, stale, readArchive(t, tmpDir, "log_"+yesterday+".log"))
	assert.Equal(t, uint64(1), logger.state.TotalRotations.Load())

	// A fresh active file was opened in its place
	info, err := os.Stat(filepath.Join(tmpDir, "log.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestStartupLeavesTodaysFile(t *testing.T) {
	tmpDir := t.TempDir()
	today := time.Now().Format(dateLayout)
	current := datedLine(today, "still today")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log.log"), []byte(current), 0644))

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(newFileOnlyConfig(tmpDir)))
	defer logger.Shutdown()

	assert.Equal(t, current, readArchive(t, tmpDir, "log.log"))
	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
}

func TestStartupTruncatesUndatedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log.log"), []byte("no timestamps in here\n"), 0644))

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(newFileOnlyConfig(tmpDir)))
	defer logger.Shutdown()

	info, err := os.Stat(filepath.Join(tmpDir, "log.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
}

func TestStartupUsesSizeArchiveSuffix(t *testing.T) {
	tmpDir := t.TempDir()
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log_"+yesterday+"_09-00-00.log"), []byte("early chunk"), 0644))
	stale := datedLine(yesterday, "late chunk")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log.log"), []byte(stale), 0644))

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(newFileOnlyConfig(tmpDir)))
	defer logger.Shutdown()

	// The earlier chunk normalized to midnight; the active file took the
	// suffix its content actually begins at
	assert.Equal(t, "early chunk", readArchive(t, tmpDir, "log_"+yesterday+"_00-00-00.log"))
	assert.Equal(t, stale, readArchive(t, tmpDir, "log_"+yesterday+"_09-00-00.log"))
}

func TestStartupSkipsOnArchiveCollision(t *testing.T) {
	tmpDir := t.TempDir()
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log_"+yesterday+".log"), []byte("already archived"), 0644))
	stale := datedLine(yesterday, "would collide")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "log.log"), []byte(stale), 0644))

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(newFileOnlyConfig(tmpDir)))
	defer logger.Shutdown()

	assert.Equal(t, "already archived", readArchive(t, tmpDir, "log_"+yesterday+".log"))
	assert.Equal(t, stale, readArchive(t, tmpDir, "log.log"))
	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
}

func TestRuntimeRotationOnDayChange(t *testing.T) {
	logger, tmpDir := createTestLogger(t)
	defer logger.Shutdown()

	logger.Info("written before midnight")
	today := time.Now().Format(dateLayout)

	logger.checkRotation(time.Now().AddDate(0, 0, 1))

	archived := readArchive(t, tmpDir, "log_"+today+".log")
	assert.Contains(t, archived, "written before midnight")
	assert.Equal(t, uint64(1), logger.state.TotalRotations.Load())

	// Active file truncated in place, append handle still valid
	info, err := os.Stat(filepath.Join(tmpDir, "log.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())

	logger.Info("after the boundary")
	assert.Contains(t, readArchive(t, tmpDir, "log.log"), "after the boundary")
}

func TestRuntimeRotationSameDayNoOp(t *testing.T) {
	logger, tmpDir := createTestLogger(t)
	defer logger.Shutdown()

	logger.Info("first")
	logger.checkRotation(time.Now())
	logger.checkRotation(time.Now())

	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
	assert.Contains(t, readArchive(t, tmpDir, "log.log"), "first")
}

func TestRuntimeRotationOncePerDay(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Shutdown()

	tomorrow := time.Now().AddDate(0, 0, 1)
	logger.checkRotation(tomorrow)
	rotations := logger.state.TotalRotations.Load()

	// Later events on the same new day do not rotate again
	logger.checkRotation(tomorrow.Add(time.Hour))
	assert.Equal(t, rotations, logger.state.TotalRotations.Load())
}

func TestRuntimeRotationDisabledFlag(t *testing.T) {
	logger, tmpDir := createTestLogger(t)
	defer logger.Shutdown()

	logger.state.RotationDisabled.Store(true)
	logger.checkRotation(time.Now().AddDate(0, 0, 1))

	today := time.Now().Format(dateLayout)
	assert.NoFileExists(t, filepath.Join(tmpDir, "log_"+today+".log"))
	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
}

func TestRuntimeRotationWithoutState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableFile = false
	cfg.EnableConsole = false

	logger := NewLogger()
	require.NoError(t, logger.ApplyConfig(cfg))
	defer logger.Shutdown()

	// File output disabled, no rotation state published
	assert.NotPanics(t, func() {
		logger.checkRotation(time.Now().AddDate(0, 0, 1))
	})
	assert.Equal(t, uint64(0), logger.state.TotalRotations.Load())
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.Local)
	got := dateOnly(ts)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), got)
}
