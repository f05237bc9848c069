// Package templates loads the page and post-summary templates of a site and
// renders them with named slots.
//
// Templates use Go text/template syntax. A slot can be referenced either as a
// function ({{content}}) or as a map key ({{.content}}). Slot values are
// inserted verbatim: rendered documents are already HTML and are never escaped.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode/utf8"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Default file names of the two templates, read from the source root.
const (
	DefaultPageTemplate    = "template.html"
	DefaultSummaryTemplate = "blog.html"
)

const missingKeyOption = "missingkey=error"

// Names identifies the template files under the source root.
type Names struct {
	Page    string
	Summary string
}

// DefaultNames returns the standard template file names.
func DefaultNames() Names {
	return Names{Page: DefaultPageTemplate, Summary: DefaultSummaryTemplate}
}

// Reserved reports whether name is one of the template files. Template files
// are never copied into the output tree.
func (n Names) Reserved(name string) bool {
	return name == n.Page || name == n.Summary
}

// Template is a compiled, immutable template. It is safe to share between renders.
type Template struct {
	name string
	tpl  *template.Template
}

// Name returns the file name the template was loaded from.
func (t *Template) Name() string {
	return t.name
}

// Store holds the two templates used for a run.
type Store struct {
	Page    *Template
	Summary *Template
}

// Load reads and compiles both templates from root.
func Load(root string, names Names) (*Store, error) {
	page, err := loadFile(root, names.Page)
	if err != nil {
		return nil, err
	}
	summary, err := loadFile(root, names.Summary)
	if err != nil {
		return nil, err
	}
	return &Store{Page: page, Summary: summary}, nil
}

func loadFile(root, name string) (*Template, error) {
	path := filepath.Join(root, name)
	// #nosec G304 -- template path is built from the configured source root.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read template").
			WithContext("path", path).
			Build()
	}
	if !utf8.Valid(data) {
		return nil, ferrors.EncodingError("template is not valid UTF-8").
			WithContext("path", path).
			Build()
	}
	return Parse(name, string(data))
}

// Parse compiles template source. Malformed source yields a template category error.
func Parse(name, src string) (*Template, error) {
	tpl, err := template.New(name).
		Funcs(unboundSlotFuncs()).
		Option(missingKeyOption).
		Parse(src)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryTemplate, "template is invalid").
			WithContext("template", name).
			Build()
	}
	return &Template{name: name, tpl: tpl}, nil
}

// unboundSlotFuncs declares every slot function so templates parse. Render
// replaces them with functions bound to the slots of one call.
func unboundSlotFuncs() template.FuncMap {
	funcs := make(template.FuncMap, len(knownSlots))
	for _, name := range knownSlots {
		name := name
		funcs[name] = func() (string, error) {
			return "", fmt.Errorf("slot %q is not bound", name)
		}
	}
	return funcs
}
