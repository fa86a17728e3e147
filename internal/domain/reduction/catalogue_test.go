package reduction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogueCompiles(t *testing.T) {
	cat := DefaultCatalogue()
	require.Greater(t, len(cat.Patterns()), 200)

	_, err := NewClauseRemover(cat)
	require.NoError(t, err)
}

func TestLoadCatalogue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogue.yaml")
	doc := "groups:\n  - name: shop_talk\n    patterns:\n      - '\\bper my last email\\b'\n      - '\\bcircling back\\b'\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cat, err := LoadCatalogue(path)
	require.NoError(t, err)
	require.Equal(t, []string{`\bper my last email\b`, `\bcircling back\b`}, cat.Patterns())

	remover, err := NewClauseRemover(cat)
	require.NoError(t, err)
	got, removed := remover.Remove("Circling back, per my last email send the invoice")
	require.Equal(t, "send the invoice", got)
	require.Equal(t, []string{"per my last email", "circling back"}, removed)
}

func TestParseCatalogueErrors(t *testing.T) {
	_, err := ParseCatalogue([]byte("groups: []\n"))
	require.EqualError(t, err, "catalogue has no patterns")

	_, err = ParseCatalogue([]byte("groups: [::"))
	require.Error(t, err)

	_, err = LoadCatalogue(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewClauseRemoverRejectsBadPattern(t *testing.T) {
	_, err := NewClauseRemover(Catalogue{Groups: []PhraseGroup{{Name: "bad", Patterns: []string{`(unclosed`}}}})
	require.Error(t, err)
}
