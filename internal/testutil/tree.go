package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates files (slash separated relative path -> content) below a
// fresh temporary directory and returns it.
func WriteTree(t testing.TB, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	AddFiles(t, root, files)
	return root
}

// AddFiles writes files below an existing root.
func AddFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), testDirPermissions))
		require.NoError(t, os.WriteFile(path, []byte(content), testFilePermissions))
	}
}

// SiteSource returns a source tree holding the standard page and summary
// templates plus extra files.
func SiteSource(t testing.TB, extra map[string]string) string {
	t.Helper()
	files := map[string]string{
		"template.html": PageTemplate,
		"blog.html":     SummaryTemplate,
	}
	for k, v := range extra {
		files[k] = v
	}
	return WriteTree(t, files)
}

// Templates used by SiteSource.
const (
	PageTemplate    = "<html>{{content}}</html>"
	SummaryTemplate = `<a href="{{link}}">{{summary}}</a>`
)

// ListFiles returns every regular file below root as sorted slash separated
// relative paths. Directories are followed, not listed.
func ListFiles(t testing.TB, root string) []string {
	t.Helper()
	var out []string
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	}))
	sort.Strings(out)
	return out
}

// ListDirs returns every directory strictly below root as sorted slash
// separated relative paths.
func ListDirs(t testing.TB, root string) []string {
	t.Helper()
	var out []string
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	}))
	sort.Strings(out)
	return out
}
