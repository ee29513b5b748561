package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug", "")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info", "")
		require.NoError(t, err)
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevelKeepsDefault", func(t *testing.T) {
		err := Init("production", "loud", "")
		require.NoError(t, err)
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "carousel.log")
	require.NoError(t, Init("development", "info", path))

	Get().Info("slides loaded", zap.Int("count", 3))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slides loaded")
	assert.Contains(t, string(data), `"count": 3`)
}

func TestGet_NopBeforeInit(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())
	Sync()
}
