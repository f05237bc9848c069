package config

import (
	"errors"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
)

var configValidators = foundation.NewValidatorChain(
	validateBareNames,
	validateExtensions,
	validateSiteConsistency,
	validateMarkdown,
	validateLogging,
)

// ValidateConfig checks a defaulted configuration and reports every problem found.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	return configValidators.Validate(cfg).ToError()
}

func validateBareNames(cfg *Config) foundation.ValidationResult {
	s := cfg.Site
	return checkBareName("site.posts_dir", s.PostsDir).
		Combine(checkBareName("site.index_file", s.IndexFile)).
		Combine(checkBareName("site.page_template", s.PageTemplate)).
		Combine(checkBareName("site.summary_template", s.SummaryTemplate))
}

// checkBareName rejects empty names and anything that is not a single path element.
func checkBareName(field, name string) foundation.ValidationResult {
	if name == "" {
		return foundation.Invalid(foundation.NewValidationError(field, "required", "must not be empty"))
	}
	bare := name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
	return foundation.Check(bare, field, "bare_name", "%q must be a plain file or directory name", name)
}

func validateExtensions(cfg *Config) foundation.ValidationResult {
	return checkExt("site.document_ext", cfg.Site.DocumentExt).
		Combine(checkExt("site.page_ext", cfg.Site.PageExt))
}

func checkExt(field, ext string) foundation.ValidationResult {
	ok := len(ext) >= 2 && strings.HasPrefix(ext, ".") && !strings.ContainsAny(ext, `/\`)
	return foundation.Check(ok, field, "extension", "invalid extension %q", ext)
}

func validateSiteConsistency(cfg *Config) foundation.ValidationResult {
	s := cfg.Site
	return foundation.Check(s.DocumentExt != s.PageExt, "site.page_ext", "distinct",
		"site.document_ext and site.page_ext must differ (both %q)", s.PageExt).
		Combine(foundation.Check(s.PageTemplate != s.SummaryTemplate, "site.summary_template", "distinct",
			"site.page_template and site.summary_template must differ (both %q)", s.PageTemplate)).
		Combine(foundation.Check(strings.HasSuffix(s.IndexFile, s.PageExt), "site.index_file", "page_ext",
			"%q must end with %q", s.IndexFile, s.PageExt))
}

func validateMarkdown(cfg *Config) foundation.ValidationResult {
	_, err := markdown.NewConverter(cfg.MarkdownOptions())
	if err != nil {
		return foundation.Invalid(foundation.NewValidationError("markdown.extensions", "unknown", err.Error()))
	}
	return foundation.Valid()
}

func validateLogging(cfg *Config) foundation.ValidationResult {
	return foundation.OneOf("logging.level", []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError})(cfg.Logging.Level).
		Combine(foundation.OneOf("logging.format", []LogFormat{LogFormatText, LogFormatJSON})(cfg.Logging.Format))
}
