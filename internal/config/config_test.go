package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "blogs", cfg.Site.PostsDir)
	require.Equal(t, "blogs.html", cfg.Site.IndexFile)
	require.Equal(t, "<h1>Recent Blogs</h1>", cfg.Site.IndexHeading)
	require.Equal(t, "template.html", cfg.Site.PageTemplate)
	require.Equal(t, "blog.html", cfg.Site.SummaryTemplate)
	require.Equal(t, ".md", cfg.Site.DocumentExt)
	require.Equal(t, ".html", cfg.Site.PageExt)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Logging.Format)
	require.False(t, cfg.Markdown.FrontMatter)
	require.NoError(t, ValidateConfig(cfg))
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("BLOG_HEADING", "<h2>Posts</h2>")
	path := filepath.Join(t.TempDir(), "blogbuilder.yaml")
	content := `
site:
  posts_dir: posts
  index_file: posts.html
  index_heading: "${BLOG_HEADING}"
  document_ext: markdown
markdown:
  extensions: [" GFM ", footnote]
  unsafe: true
logging:
  level: DEBUG
  format: Json
metrics:
  textfile: /tmp/blogbuilder.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "posts", cfg.Site.PostsDir)
	require.Equal(t, "posts.html", cfg.Site.IndexFile)
	require.Equal(t, "<h2>Posts</h2>", cfg.Site.IndexHeading)
	require.Equal(t, ".markdown", cfg.Site.DocumentExt)
	require.Equal(t, "template.html", cfg.Site.PageTemplate)
	require.Equal(t, []string{"gfm", "footnote"}, cfg.Markdown.Extensions)
	require.True(t, cfg.Markdown.Unsafe)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)
	require.Equal(t, "/tmp/blogbuilder.prom", cfg.Metrics.Textfile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "site: [", "unmarshal config"},
		{"nested posts dir", "site:\n  posts_dir: a/b\n", "site.posts_dir"},
		{"same extensions", "site:\n  document_ext: .html\n", "must differ"},
		{"index without page ext", "site:\n  index_file: blogs.htm\n", "must end with"},
		{"same templates", "site:\n  page_template: t.html\n  summary_template: t.html\n", "must differ"},
		{"unknown extension", "markdown:\n  extensions: [mermaid]\n", "markdown.extensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeConfig_UnknownEnumsWarn(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud", Format: "xml"}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 2)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestLogLevelSlogLevel(t *testing.T) {
	require.Equal(t, "DEBUG", NormalizeLogLevel("debug").SlogLevel().String())
	require.Equal(t, "WARN", NormalizeLogLevel("Warning").SlogLevel().String())
	require.Equal(t, "ERROR", NormalizeLogLevel("error").SlogLevel().String())
	require.Equal(t, "INFO", NormalizeLogLevel("").SlogLevel().String())
}

func TestTemplateNamesAndMarkdownOptions(t *testing.T) {
	cfg := Default()
	cfg.Markdown.Extensions = []string{"table"}
	cfg.Markdown.Unsafe = true

	names := cfg.TemplateNames()
	require.Equal(t, "template.html", names.Page)
	require.Equal(t, "blog.html", names.Summary)

	opts := cfg.MarkdownOptions()
	require.Equal(t, []string{"table"}, opts.Extensions)
	require.True(t, opts.Unsafe)
}

func TestValidateConfig_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Site.PostsDir = "../posts"
	cfg.Site.PageExt = "htm"
	cfg.Site.SummaryTemplate = cfg.Site.PageTemplate

	err := ValidateConfig(cfg)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	require.ErrorContains(t, err, "field 'site.posts_dir'")
	require.ErrorContains(t, err, "field 'site.page_ext'")
	require.ErrorContains(t, err, "field 'site.summary_template'")
}
