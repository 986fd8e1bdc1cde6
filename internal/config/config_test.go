package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trie "github.com/sarthakjha889/go-basic-trie"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trie.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "grapheme", cfg.Segmentation.Mode)
		assert.True(t, cfg.Segmentation.CaseSensitive)
		assert.False(t, cfg.Segmentation.Normalise)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Output.Format)
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, `
segmentation:
  mode: rune
  normalise: true
  case_sensitive: false
log:
  level: debug
output:
  format: yaml
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "rune", cfg.Segmentation.Mode)
		assert.True(t, cfg.Segmentation.Normalise)
		assert.False(t, cfg.Segmentation.CaseSensitive)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("TRIE_OUTPUT_FORMAT", "json")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "segmentation:\n  mode: bytes\n"))
		assert.ErrorContains(t, err, "segmentation mode")

		_, err = Load(writeConfig(t, "output:\n  format: xml\n"))
		assert.ErrorContains(t, err, "output format")

		_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
		assert.ErrorContains(t, err, "log level")
	})
}

func TestSegmentationOptions(t *testing.T) {
	cfg := SegmentationConfig{Mode: "rune", Normalise: true, CaseSensitive: false}
	tr := trie.New(cfg.Options()...)
	tr.Insert("Jürgen")
	assert.True(t, tr.Contains("JURGEN"))

	cfg = SegmentationConfig{Mode: "grapheme", CaseSensitive: true}
	tr = trie.New(cfg.Options()...)
	tr.Insert("Abc")
	assert.False(t, tr.Contains("abc"))
}

func TestLogger(t *testing.T) {
	cfg := LogConfig{Level: "warn"}
	logger := cfg.Logger(os.Stderr)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	cfg = LogConfig{Level: "bogus"}
	assert.Equal(t, zerolog.InfoLevel, cfg.Logger(os.Stderr).GetLevel())
}
