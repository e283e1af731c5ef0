package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))

	require.NotNil(t, st)
	assert.NotNil(t, st.Casks)
	assert.NotNil(t, st.Fonts)
	assert.NotNil(t, st.Configs)
	assert.Empty(t, st.Casks)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	st := Load(path)
	st.Casks["texstudio"] = CaskState{Name: "texstudio", InstalledBySetup: true}
	st.Fonts["David CLM"] = FontState{
		URL:   "https://example.org/culmus.tar.gz",
		Files: []string{"/tmp/DavidCLM.ttf"},
	}
	st.Configs["hebrew-rtl.ini"] = ConfigFileState{
		Path:   "/tmp/hebrew-rtl.ini",
		Backup: "/tmp/hebrew-rtl.ini.bak-20260828-120000",
	}
	Save(path, st)

	got := Load(path)
	assert.Equal(t, st, got)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	st := Load(path)
	require.NotNil(t, st)
	assert.NotNil(t, st.Casks)
	assert.Empty(t, st.Fonts)
}
