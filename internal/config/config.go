// Package config loads the optional YAML configuration of a generation run.
//
// Every field has a default that reproduces the standard site layout, so a
// run without a configuration file behaves exactly like one with an empty file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Config is the root configuration document.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Report   ReportConfig   `yaml:"report"`
}

// SiteConfig names the files and directories that shape the generated site.
type SiteConfig struct {
	PostsDir        string `yaml:"posts_dir"`        // directory name marking the posts subtree
	IndexFile       string `yaml:"index_file"`       // aggregated index written at the output root
	IndexHeading    string `yaml:"index_heading"`    // HTML placed once before the summaries
	IndexTitle      string `yaml:"index_title"`      // title slot of the index page
	PageTemplate    string `yaml:"page_template"`    // page wrapper template under the source root
	SummaryTemplate string `yaml:"summary_template"` // post-summary template under the source root
	DocumentExt     string `yaml:"document_ext"`     // extension of Markdown documents
	PageExt         string `yaml:"page_ext"`         // extension of generated pages
}

// MarkdownConfig selects the goldmark dialect.
type MarkdownConfig struct {
	Extensions  []string `yaml:"extensions,omitempty"`
	Unsafe      bool     `yaml:"unsafe"`
	FrontMatter bool     `yaml:"front_matter"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// ReportConfig controls persistence of the build report.
type ReportConfig struct {
	File string `yaml:"file,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		// Defaults never fail on an empty config.
		panic(err)
	}
	return cfg
}

// Load reads configPath, expands ${VAR} references, then normalizes, defaults
// and validates the result. An empty configPath yields Default().
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	if loaded, err := loadEnvFiles(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	} else {
		slog.Debug("Loaded environment variables", "file", loaded)
	}

	// #nosec G304 -- the configuration path is supplied by the operator.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read configuration file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid configuration").
			WithContext("path", configPath).
			Build()
	}
	return cfg, nil
}

// Parse decodes YAML configuration content and runs the normalize, defaults and
// validate passes.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", "warning", w)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}
