package logger

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"error":   log.ErrorLevel,
		"warn":    log.WarnLevel,
		"info":    log.InfoLevel,
		"debug":   log.DebugLevel,
		"verbose": log.TraceLevel,
		" DEBUG ": log.DebugLevel,
		"bogus":   log.InfoLevel,
		"":        log.InfoLevel,
	}

	for name, expected := range cases {
		assert.Equal(t, expected, ParseLevel(name), "level %q", name)
	}
}

func TestInitWithConfigWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expiry.log")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	require.NoError(t, InitWithConfig("warn", path))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	log.Info("dropped")
	log.Warn("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped")
}

func TestInitWithConfigBadPath(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	err := InitWithConfig("info", filepath.Join(t.TempDir(), "missing", "dir", "expiry.log"))
	assert.Error(t, err)
}
