package config

import (
	"fmt"
	"strings"
)

// NormalizationResult collects warnings about coerced values.
type NormalizationResult struct {
	Warnings []string
}

func (r *NormalizationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// NormalizeConfig case-folds enumerations and trims names in place.
func NormalizeConfig(cfg *Config) (*NormalizationResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	res := &NormalizationResult{}

	if raw := string(cfg.Logging.Level); raw != "" {
		if _, err := logLevelNormalizer.NormalizeWithError(raw); err != nil {
			res.warnf("logging.level: %v, using %s", err, LogLevelInfo)
		}
		cfg.Logging.Level = NormalizeLogLevel(raw)
	}
	if raw := string(cfg.Logging.Format); raw != "" {
		if _, err := logFormatNormalizer.NormalizeWithError(raw); err != nil {
			res.warnf("logging.format: %v, using %s", err, LogFormatText)
		}
		cfg.Logging.Format = NormalizeLogFormat(raw)
	}

	s := &cfg.Site
	for _, f := range []*string{&s.PostsDir, &s.IndexFile, &s.IndexTitle, &s.PageTemplate, &s.SummaryTemplate} {
		*f = strings.TrimSpace(*f)
	}
	s.DocumentExt = normalizeExt(s.DocumentExt)
	s.PageExt = normalizeExt(s.PageExt)

	exts := cfg.Markdown.Extensions[:0]
	for _, e := range cfg.Markdown.Extensions {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			exts = append(exts, e)
		}
	}
	cfg.Markdown.Extensions = exts

	return res, nil
}

// normalizeExt accepts "md" as well as ".md".
func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
