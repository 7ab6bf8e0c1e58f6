package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountapp/accountapp/config"
)

func TestNew_LevelAndFormat(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Format: "json", Level: "debug"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "chatty"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNew_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := New(config.LogConfig{Level: "info", Dir: dir})
	require.NoError(t, err)

	logger.Info("company opened")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "company opened")
}
