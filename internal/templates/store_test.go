package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

func writeTemplates(t *testing.T, page, summary string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultPageTemplate), []byte(page), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultSummaryTemplate), []byte(summary), 0o600))
	return root
}

func TestLoad(t *testing.T) {
	root := writeTemplates(t, "<html>{{content}}</html>", `<a href="{{link}}">{{summary}}</a>`)

	store, err := Load(root, DefaultNames())
	require.NoError(t, err)
	require.Equal(t, DefaultPageTemplate, store.Page.Name())
	require.Equal(t, DefaultSummaryTemplate, store.Summary.Name())
}

func TestLoad_MissingTemplate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultPageTemplate), []byte("{{content}}"), 0o600))

	_, err := Load(root, DefaultNames())
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedTemplate(t *testing.T) {
	root := writeTemplates(t, "<html>{{content</html>", "{{summary}}")

	_, err := Load(root, DefaultNames())
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryTemplate))
}

func TestLoad_UnknownSlotFunctionIsInvalid(t *testing.T) {
	_, err := Parse("page", "{{author}}")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryTemplate))
}

func TestLoad_NonUTF8Template(t *testing.T) {
	root := writeTemplates(t, "{{content}}", "\xff\xfe")

	_, err := Load(root, DefaultNames())
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryEncoding))
}

func TestNamesReserved(t *testing.T) {
	names := DefaultNames()
	require.True(t, names.Reserved("template.html"))
	require.True(t, names.Reserved("blog.html"))
	require.False(t, names.Reserved("blogs.html"))
	require.False(t, names.Reserved("index.html"))
}
