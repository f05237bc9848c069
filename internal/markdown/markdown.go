// Package markdown converts Markdown documents into HTML fragments with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Options selects the goldmark dialect. The zero value is plain CommonMark with
// raw HTML omitted.
type Options struct {
	// Extensions lists goldmark extensions by name (see ExtensionNames).
	Extensions []string
	// Unsafe passes raw HTML blocks and inline HTML through to the output.
	Unsafe bool
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":            extension.GFM,
	"table":          extension.Table,
	"strikethrough":  extension.Strikethrough,
	"linkify":        extension.Linkify,
	"tasklist":       extension.TaskList,
	"definitionlist": extension.DefinitionList,
	"footnote":       extension.Footnote,
	"typographer":    extension.Typographer,
}

// ExtensionNames returns the accepted extension names in sorted order.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Converter renders Markdown to HTML. It is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a Converter. Unknown extension names are rejected.
func NewConverter(opts Options) (*Converter, error) {
	var exts []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range opts.Extensions {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			return nil, fmt.Errorf("unknown markdown extension %q (valid: %s)", name, strings.Join(ExtensionNames(), ", "))
		}
		seen[key] = struct{}{}
		exts = append(exts, ext)
	}

	engineOptions := []goldmark.Option{goldmark.WithExtensions(exts...)}
	if opts.Unsafe {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return &Converter{md: goldmark.New(engineOptions...)}, nil
}

// RenderDocument converts Markdown source to an HTML fragment without any
// surrounding <html> or <body> element. Malformed Markdown degrades to text;
// an error is only returned if goldmark's renderer fails.
func (c *Converter) RenderDocument(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
