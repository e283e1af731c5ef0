package provision

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveArchive spins an HTTP server handing out the tar.gz built from the
// given entries, and points the provisioner's font URL at it.
func serveArchive(t *testing.T, p *Provisioner, files map[string]string) {
	t.Helper()
	archive := filepath.Join(t.TempDir(), "culmus-test.tar.gz")
	writeTarGz(t, archive, files)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, archive)
	}))
	t.Cleanup(srv.Close)

	p.cfg.FontArchiveURL = srv.URL + "/culmus-test.tar.gz"
}

func TestInstallFontsCopiesMatchedFiles(t *testing.T) {
	p := testProvisioner(t)
	serveArchive(t, p, map[string]string{
		"culmus/DavidCLM-Medium.ttf": "david",
		"culmus/MiriamMonoCLM.ttf":   "miriam",
		"culmus/NachlieliCLM.otf":    "nachlieli",
		"culmus/README":              "readme",
	})

	require.NoError(t, p.installFonts())

	// Only font files land in the fonts dir, flattened by base name.
	entries, err := os.ReadDir(p.cfg.FontsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	raw, err := os.ReadFile(filepath.Join(p.cfg.FontsDir, "DavidCLM-Medium.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "david", string(raw))

	_, err = os.Stat(filepath.Join(p.cfg.FontsDir, "README"))
	assert.True(t, os.IsNotExist(err))

	// The run is recorded in state.
	fs, ok := p.st.Fonts[p.cfg.FontMarker]
	require.True(t, ok)
	assert.Equal(t, p.cfg.FontArchiveURL, fs.URL)
	assert.Len(t, fs.Files, 3)
}

func TestInstallFontsFailsOnZeroMatches(t *testing.T) {
	p := testProvisioner(t)
	serveArchive(t, p, map[string]string{
		"culmus/README":  "readme",
		"culmus/LICENSE": "gpl",
	})

	err := p.installFonts()
	require.Error(t, err, "an archive with no font files must not look like success")
	assert.Contains(t, err.Error(), "no files matching")
	assert.Empty(t, p.st.Fonts)
}

func TestInstallFontsDownloadFailure(t *testing.T) {
	p := testProvisioner(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	p.cfg.FontArchiveURL = srv.URL + "/missing.tar.gz"

	err := p.installFonts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestCopyFilePreservesContentAndOverridesMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ttf")
	dst := filepath.Join(dir, "nested", "dst.ttf")
	require.NoError(t, os.WriteFile(src, []byte("glyphs"), 0600))

	require.NoError(t, copyFile(src, dst, 0644))

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "glyphs", string(raw))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
