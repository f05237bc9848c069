package config

import (
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// Site layout defaults.
const (
	DefaultPostsDir     = "blogs"
	DefaultIndexFile    = "blogs.html"
	DefaultIndexHeading = "<h1>Recent Blogs</h1>"
	DefaultIndexTitle   = "Recent Blogs"
	DefaultDocumentExt  = ".md"
	DefaultPageExt      = ".html"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles site layout defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	s := &cfg.Site
	setDefault(&s.PostsDir, DefaultPostsDir)
	setDefault(&s.IndexFile, DefaultIndexFile)
	setDefault(&s.IndexHeading, DefaultIndexHeading)
	setDefault(&s.IndexTitle, DefaultIndexTitle)
	setDefault(&s.PageTemplate, templates.DefaultPageTemplate)
	setDefault(&s.SummaryTemplate, templates.DefaultSummaryTemplate)
	setDefault(&s.DocumentExt, DefaultDocumentExt)
	setDefault(&s.PageExt, DefaultPageExt)
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (LoggingDefaultApplier) Domain() string { return "logging" }

func (LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

var defaultAppliers = []DefaultApplier{
	SiteDefaultApplier{},
	LoggingDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("%s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
