package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// FileAssertions checks the state of a generated tree. Paths are slash
// separated and relative to the base directory.
type FileAssertions struct {
	t       testing.TB
	baseDir string
}

// NewFileAssertions creates a new file assertions helper.
func NewFileAssertions(t testing.TB, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

func (fa *FileAssertions) path(rel string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(rel))
}

// FileExists validates that a regular file exists.
func (fa *FileAssertions) FileExists(rel string) *FileAssertions {
	fa.t.Helper()
	info, err := os.Stat(fa.path(rel))
	require.NoError(fa.t, err, "expected file %s", rel)
	require.False(fa.t, info.IsDir(), "expected %s to be a file", rel)
	return fa
}

// FileNotExists validates that nothing exists at rel.
func (fa *FileAssertions) FileNotExists(rel string) *FileAssertions {
	fa.t.Helper()
	_, err := os.Stat(fa.path(rel))
	require.ErrorIs(fa.t, err, os.ErrNotExist, "expected %s to be absent", rel)
	return fa
}

// DirExists validates that a directory exists.
func (fa *FileAssertions) DirExists(rel string) *FileAssertions {
	fa.t.Helper()
	info, err := os.Stat(fa.path(rel))
	require.NoError(fa.t, err, "expected directory %s", rel)
	require.True(fa.t, info.IsDir(), "expected %s to be a directory", rel)
	return fa
}

// FileEquals validates the exact content of a file.
func (fa *FileAssertions) FileEquals(rel, expected string) *FileAssertions {
	fa.t.Helper()
	require.Equal(fa.t, expected, fa.Content(rel), rel)
	return fa
}

// FileContains validates that a file contains expected content.
func (fa *FileAssertions) FileContains(rel, expected string) *FileAssertions {
	fa.t.Helper()
	require.Contains(fa.t, fa.Content(rel), expected, rel)
	return fa
}

// SameBytes validates that rel holds exactly the bytes of the same path below otherRoot.
func (fa *FileAssertions) SameBytes(otherRoot, rel string) *FileAssertions {
	fa.t.Helper()
	want, err := os.ReadFile(filepath.Join(otherRoot, filepath.FromSlash(rel)))
	require.NoError(fa.t, err)
	got, err := os.ReadFile(fa.path(rel))
	require.NoError(fa.t, err)
	require.Equal(fa.t, want, got, rel)
	return fa
}

// Content reads and returns the content of a file.
func (fa *FileAssertions) Content(rel string) string {
	fa.t.Helper()
	// #nosec G304 -- test helper, paths are controlled by test code
	data, err := os.ReadFile(fa.path(rel))
	require.NoError(fa.t, err)
	return string(data)
}
