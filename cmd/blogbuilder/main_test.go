package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/testutil"
)

func sourceTree(t *testing.T) string {
	t.Helper()
	return testutil.SiteSource(t, map[string]string{"blogs/post1.md": "# Hi\n\nHello world."})
}

func TestRun_UsageOnWrongArgumentCount(t *testing.T) {
	cases := map[string]func(src, dst string) []string{
		"no arguments":    func(string, string) []string { return nil },
		"one argument":    func(src, _ string) []string { return []string{src} },
		"three arguments": func(src, dst string) []string { return []string{src, dst, "extra"} },
	}
	for name, argsFor := range cases {
		t.Run(name, func(t *testing.T) {
			src := sourceTree(t)
			dst := filepath.Join(t.TempDir(), "out")
			var stdout, stderr bytes.Buffer

			code := run(argsFor(src, dst), &stdout, &stderr)

			require.NotEqual(t, 0, code)
			require.Equal(t, usageLine+"\n", stdout.String())
			_, err := os.Stat(dst)
			require.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestRun_GeneratesSite(t *testing.T) {
	src := sourceTree(t)
	dst := t.TempDir()
	reportPath := filepath.Join(t.TempDir(), "report.json")
	metricsPath := filepath.Join(t.TempDir(), "blogbuilder.prom")
	var stdout, stderr bytes.Buffer

	code := run([]string{src, dst, "--report", reportPath, "--metrics-file", metricsPath}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Empty(t, stdout.String())

	testutil.NewFileAssertions(t, dst).
		FileContains("blogs.html", `<h1>Recent Blogs</h1><a href="/blogs/post1.html">`).
		FileContains("blogs/post1.html", "<p>Hello world.</p>")
	require.FileExists(t, reportPath)
	textfile, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(textfile), "blogbuilder_posts_total 1")
}

func TestRun_ConfigFile(t *testing.T) {
	src := sourceTree(t)
	dst := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "blogbuilder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site:\n  index_file: index.html\n  index_heading: \"<h2>Latest</h2>\"\nlogging:\n  format: json\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"-c", cfgPath, src, dst}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	index := testutil.NewFileAssertions(t, dst).FileNotExists("blogs.html").Content("index.html")
	require.True(t, strings.HasPrefix(index, "<html><h2>Latest</h2>"))
	require.Contains(t, stderr.String(), `"msg":"Site generation completed"`)
}

func TestRun_FailureExitsNonZero(t *testing.T) {
	src := testutil.WriteTree(t, map[string]string{"blog.html": "{{summary}}"})
	var stdout, stderr bytes.Buffer

	code := run([]string{src, t.TempDir()}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Error: [filesystem]")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site:\n  document_ext: .html\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", cfgPath, sourceTree(t), t.TempDir()}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Error: [config]")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--version"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.NotEmpty(t, strings.TrimSpace(stdout.String()))
	require.NotContains(t, stdout.String(), usageLine)
}
