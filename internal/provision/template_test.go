package provision

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebtex-setup/internal/config"
	"hebtex-setup/internal/state"
)

func testProvisioner(t *testing.T) *Provisioner {
	t.Helper()
	cfg := config.Default()
	cfg.AppSupportDir = filepath.Join(t.TempDir(), "TeXstudio")
	cfg.FontsDir = filepath.Join(t.TempDir(), "Fonts")
	return New(cfg, state.Load(filepath.Join(t.TempDir(), "state.json")))
}

func TestTemplatesShareHeaderAndDifferInBody(t *testing.T) {
	empty := renderDocument(emptyDocumentBody)
	article := renderDocument(articleDocumentBody)

	require.True(t, strings.HasPrefix(empty, documentHeader))
	require.True(t, strings.HasPrefix(article, documentHeader))

	emptyBody := strings.TrimPrefix(empty, documentHeader)
	articleBody := strings.TrimPrefix(article, documentHeader)
	assert.NotEqual(t, emptyBody, articleBody)

	// The article template carries title and author, the empty one does not.
	assert.Contains(t, articleBody, `\maketitle`)
	assert.NotContains(t, emptyBody, `\maketitle`)

	// Both are complete documents.
	for _, doc := range []string{empty, article} {
		assert.Contains(t, doc, `\begin{document}`)
		assert.Contains(t, doc, `\end{document}`)
	}
}

func TestWriteTemplatesMaterializesBothDocuments(t *testing.T) {
	p := testProvisioner(t)

	require.False(t, p.templatesCurrent())
	require.NoError(t, p.writeTemplates())
	assert.True(t, p.templatesCurrent())

	dir := filepath.Join(p.cfg.AppSupportDir, "templates")
	for name, want := range map[string]string{
		emptyTemplateFile:   renderDocument(emptyDocumentBody),
		articleTemplateFile: renderDocument(articleDocumentBody),
	} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(raw))
	}
}

func TestWriteTemplatesIsIdempotent(t *testing.T) {
	p := testProvisioner(t)
	require.NoError(t, p.writeTemplates())

	dir := filepath.Join(p.cfg.AppSupportDir, "templates")
	first, err := os.ReadFile(filepath.Join(dir, articleTemplateFile))
	require.NoError(t, err)

	require.NoError(t, p.writeTemplates())
	second, err := os.ReadFile(filepath.Join(dir, articleTemplateFile))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A second run over current files must not spawn backups.
	backups, err := filepath.Glob(filepath.Join(dir, "*.bak-*"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}
