package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults are used when the file does not exist", func(t *testing.T) {
		// When: loading a config from a missing file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.False(t, conf.Inline)
		assert.False(t, conf.NoMouse)
		assert.Equal(t, "#FF5F87", conf.Theme.XColor)
		assert.Equal(t, "#5FAFFF", conf.Theme.OColor)
	})

	t.Run("Values are read from the file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, `
log-level: debug
log-file: /tmp/tictactoe.log
inline: true
no-mouse: true
theme:
  x-color: "1"
  o-color: "4"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the file values win over the defaults
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel: "debug",
			LogFile:  "/tmp/tictactoe.log",
			Inline:   true,
			NoMouse:  true,
			Theme:    Theme{XColor: "1", OColor: "4"},
		}, conf)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")
		t.Setenv("TICTACTOE_NO_MOUSE", "true")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.True(t, conf.NoMouse)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := writeConfig(t, "log-level: [unterminated\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "no-mouse: {\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
