package config

import (
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// MarkdownOptions returns the converter options selected by the configuration.
func (c *Config) MarkdownOptions() markdown.Options {
	return markdown.Options{
		Extensions: c.Markdown.Extensions,
		Unsafe:     c.Markdown.Unsafe,
	}
}

// TemplateNames returns the template file names selected by the configuration.
func (c *Config) TemplateNames() templates.Names {
	return templates.Names{
		Page:    c.Site.PageTemplate,
		Summary: c.Site.SummaryTemplate,
	}
}
