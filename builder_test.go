// FILE: dayroll/builder_test.go
package dayroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBuild(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewBuilder().
		Directory(tmpDir).
		Name("svc").
		Extension("txt").
		LevelString("debug").
		SourceRoot("src/").
		DefaultTarget("core").
		EnableColor(false).
		EnableConsole(false).
		Build()
	require.NoError(t, err)
	defer logger.Shutdown()

	cfg := logger.GetConfig()
	assert.Equal(t, tmpDir, cfg.Directory)
	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, "txt", cfg.Extension)
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "src/", cfg.SourceRoot)
	assert.Equal(t, "core", cfg.DefaultTarget)
	assert.False(t, cfg.EnableColor)
	assert.False(t, cfg.EnableConsole)

	logger.Debug("built")
	assert.FileExists(t, tmpDir+"/svc.txt")
}

func TestBuilderInvalidLevelString(t *testing.T) {
	_, err := NewBuilder().LevelString("loud").Build()
	assert.Error(t, err)
}

func TestBuilderErrorSticks(t *testing.T) {
	// A later valid call does not clear an earlier error
	_, err := NewBuilder().
		LevelString("loud").
		Directory(t.TempDir()).
		Build()
	assert.Error(t, err)
}

func TestBuilderValidationFailure(t *testing.T) {
	_, err := NewBuilder().
		Name("").
		Directory(t.TempDir()).
		Build()
	assert.Error(t, err)
}

func TestBuilderFileDisabled(t *testing.T) {
	logger, err := NewBuilder().
		EnableFile(false).
		EnableConsole(false).
		Build()
	require.NoError(t, err)
	defer logger.Shutdown()

	assert.NotPanics(t, func() { logger.Info("nowhere to go") })
}

func TestBuilderConsoleTarget(t *testing.T) {
	logger, err := NewBuilder().
		EnableFile(false).
		ConsoleTarget("stderr").
		Build()
	require.NoError(t, err)
	defer logger.Shutdown()

	assert.Equal(t, "stderr", logger.GetConfig().ConsoleTarget)

	_, err = NewBuilder().
		EnableFile(false).
		ConsoleTarget("syslog").
		Build()
	assert.Error(t, err)
}
