package log_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/log"
)

func TestLoadConfig(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "log.yml")
	content := `
defaultLevel: debug
filters:
  - "debug:store*"
  - "info:aggregate*"
`
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))

	cfg, err := log.LoadConfig(fileName)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.DefaultLevel)
	assert.Len(t, cfg.Filters, 2)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := log.LoadConfig("does-not-exist.yml")
	assert.Error(t, err)
}

func TestNewWithConfig_FiltersByLoggerName(t *testing.T) {
	var buf bytes.Buffer
	cfg := &log.Config{
		DefaultLevel: "debug",
		Filters:      []string{"debug:store*"},
	}
	logger, err := log.NewWithConfig(cfg, &buf, "json")
	require.NoError(t, err)

	logger.Named("store").Debug("visible")
	logger.Named("other").Debug("filtered")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "filtered")
}

func TestNewWithConfig_InvalidLevel(t *testing.T) {
	_, err := log.NewWithConfig(&log.Config{DefaultLevel: "loud"}, nil, "json")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := log.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)

	_, err = log.ParseLevel("bogus")
	assert.Error(t, err)
}
