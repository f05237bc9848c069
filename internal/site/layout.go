package site

import (
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// Layout holds the naming rules that classify source entries.
type Layout struct {
	PostsDir    string
	DocumentExt string
	PageExt     string
	Templates   templates.Names
	FrontMatter bool
}

// LayoutFromConfig extracts the layout rules from cfg.
func LayoutFromConfig(cfg *config.Config) Layout {
	return Layout{
		PostsDir:    cfg.Site.PostsDir,
		DocumentExt: cfg.Site.DocumentExt,
		PageExt:     cfg.Site.PageExt,
		Templates:   cfg.TemplateNames(),
		FrontMatter: cfg.Markdown.FrontMatter,
	}
}

// entryKind is the classification of one directory entry.
type entryKind int

const (
	kindDirectory entryKind = iota
	kindDocument
	kindReserved
	kindPassthrough
)

func (k entryKind) String() string {
	switch k {
	case kindDirectory:
		return "directory"
	case kindDocument:
		return "document"
	case kindReserved:
		return "reserved"
	default:
		return "passthrough"
	}
}

// classify decides how a non-directory entry is handled. Documents are
// checked first, so a template name never shadows a Markdown file.
func (l Layout) classify(name string) entryKind {
	switch {
	case strings.HasSuffix(name, l.DocumentExt):
		return kindDocument
	case l.Templates.Reserved(name):
		return kindReserved
	default:
		return kindPassthrough
	}
}

// pageName maps a document file name to its page file name.
func (l Layout) pageName(name string) string {
	return strings.TrimSuffix(name, l.DocumentExt) + l.PageExt
}

// marksPosts reports whether a directory named name starts the posts subtree.
func (l Layout) marksPosts(name string) bool {
	return name == l.PostsDir
}
