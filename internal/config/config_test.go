package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "Base Climate Data", s.InputDir)
	assert.Equal(t, "src/data/Processed Climate Data", s.OutputDir)
	assert.Equal(t, ".nc", s.Extension)
	assert.Equal(t, "time", s.JoinAxis)
	assert.False(t, s.ContinueOnError)
	assert.NoError(t, s.Validate())
}

func TestParse(t *testing.T) {
	t.Run("overrides on top of defaults", func(t *testing.T) {
		s, err := Parse([]byte("input_dir: raw\ncontinue_on_error: true\n"))
		require.NoError(t, err)
		assert.Equal(t, "raw", s.InputDir)
		assert.True(t, s.ContinueOnError)
		// Untouched fields keep defaults.
		assert.Equal(t, ".nc", s.Extension)
		assert.Equal(t, "time", s.JoinAxis)
	})

	t.Run("bad extension", func(t *testing.T) {
		_, err := Parse([]byte("extension: nc\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extension")
	})

	t.Run("empty input dir", func(t *testing.T) {
		_, err := Parse([]byte("input_dir: \"\"\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("input_dir: [\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: processed\njoin_axis: t\n"), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "processed", s.OutputDir)
		assert.Equal(t, "t", s.JoinAxis)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
