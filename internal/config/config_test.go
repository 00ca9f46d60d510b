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
	t.Run("Defaults when no file exists", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:     "warn",
			FirstMover:   "X",
			RelaxedInput: false,
			InitialBoard: "_________",
		}, conf)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("TTT_FIRST_MOVER", "O")
		t.Setenv("TTT_RELAXED_INPUT", "true")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: env values are used
		require.NoError(t, err)
		assert.Equal(t, "O", conf.FirstMover)
		assert.True(t, conf.RelaxedInput)
	})

	t.Run("Reads yaml file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, "log-level: debug\nrelaxed-input: true\ninitial-board: X___O____\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: file values are used and the rest defaulted
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "X___O____", conf.InitialBoard)
		assert.Equal(t, "X", conf.FirstMover)
		assert.True(t, conf.RelaxedInput)
	})

	t.Run("Rejects unknown first mover", func(t *testing.T) {
		path := writeConfig(t, "first-mover: Z\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Rejects malformed initial board", func(t *testing.T) {
		path := writeConfig(t, "initial-board: XX?O_____\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "InitialBoard")
	})

	t.Run("Rejects unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "first-mover: Z\n")

	assert.Panics(t, func() { MustLoad(path) })
}
