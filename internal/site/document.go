package site

import (
	"unicode/utf8"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// renderedDocument is the result of converting one Markdown file.
type renderedDocument struct {
	Body  string // HTML fragment before page wrapping
	Title string
	Page  string // Body wrapped in the page template
}

// documentRenderer converts Markdown source into a finished page.
type documentRenderer struct {
	converter   *markdown.Converter
	page        *templates.Template
	frontMatter bool
}

// render converts src, read from path, into a page.
func (r *documentRenderer) render(path string, src []byte) (renderedDocument, error) {
	if !utf8.Valid(src) {
		return renderedDocument{}, errors.EncodingError("document is not valid UTF-8").
			WithContext("path", path).
			Build()
	}

	var title string
	if r.frontMatter {
		fm, body, had, err := frontmatter.Split(src)
		if err != nil {
			return renderedDocument{}, errors.WrapError(err, errors.CategoryEncoding, "split front matter").
				WithContext("path", path).
				Build()
		}
		if had {
			meta, err := frontmatter.Parse(fm)
			if err != nil {
				return renderedDocument{}, errors.WrapError(err, errors.CategoryEncoding, "parse front matter").
					WithContext("path", path).
					Build()
			}
			title = meta.Title
			src = body
		}
	}

	body, err := r.converter.RenderDocument(src)
	if err != nil {
		return renderedDocument{}, errors.WrapError(err, errors.CategoryRender, "convert document").
			WithContext("path", path).
			Build()
	}
	if title == "" {
		title = markdown.ExtractTitle(body)
	}

	page, err := templates.Render(r.page, templates.PageSlots(body, title))
	if err != nil {
		return renderedDocument{}, errors.WrapError(err, errors.CategoryRender, "render page").
			WithContext("path", path).
			Build()
	}
	return renderedDocument{Body: body, Title: title, Page: page}, nil
}
