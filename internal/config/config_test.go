package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "mactex", cfg.TeXCask)
	assert.Equal(t, "texstudio", cfg.EditorCask)
	assert.Equal(t, "/Applications/texstudio.app", cfg.EditorAppPath)
	assert.Equal(t, "/Library/TeX/texbin", cfg.TeXBinDir)
	assert.Equal(t, "David CLM", cfg.FontMarker)
	assert.Equal(t, []string{"*.ttf", "*.otf"}, cfg.FontPatterns)
	assert.True(t, strings.HasPrefix(cfg.FontArchiveURL, "https://"))
	assert.True(t, strings.HasSuffix(cfg.FontsDir, filepath.Join("Library", "Fonts")))
	assert.True(t, strings.HasSuffix(cfg.AppSupportDir, filepath.Join("Application Support", "TeXstudio")))
	assert.True(t, strings.HasSuffix(cfg.StatePath, "state.json"))
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"font_marker: Frank Ruehl CLM\nfonts_dir: /tmp/fonts\n",
	), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Frank Ruehl CLM", cfg.FontMarker)
	assert.Equal(t, "/tmp/fonts", cfg.FontsDir)

	// Untouched keys keep their defaults.
	def := Default()
	assert.Equal(t, def.EditorCask, cfg.EditorCask)
	assert.Equal(t, def.FontArchiveURL, cfg.FontArchiveURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fonts_dir: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
