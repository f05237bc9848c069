package site

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// paragraphClose ends the summary of a post.
const paragraphClose = "</p>"

// DocumentRecord is one post collected during traversal.
type DocumentRecord struct {
	Path  string // destination page path
	Body  string // rendered HTML before page wrapping
	Title string
}

// Collector accumulates DocumentRecords in the order they are added.
type Collector struct {
	records []DocumentRecord
}

// Add appends a record.
func (c *Collector) Add(rec DocumentRecord) {
	c.records = append(c.records, rec)
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	return len(c.records)
}

// Records returns a copy of the collected records.
func (c *Collector) Records() []DocumentRecord {
	out := make([]DocumentRecord, len(c.records))
	copy(out, c.records)
	return out
}

// IndexOptions configures the aggregated index page.
type IndexOptions struct {
	File    string // file name under the destination root
	Heading string // HTML written once before the summaries
	Title   string // title slot of the page template
}

// Summary returns body up to and including the first closing paragraph tag.
// Without one the whole body is the summary.
func Summary(body string) string {
	idx := strings.Index(body, paragraphClose)
	if idx < 0 {
		return body
	}
	return body[:idx+len(paragraphClose)]
}

// LinkPath turns a destination path into a site-root URL path, e.g.
// "<root>/blogs/a.html" becomes "/blogs/a.html".
func LinkPath(destRoot, path string) (string, error) {
	rel, err := filepath.Rel(destRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ferrors.InternalError("post path is outside the destination root").
			WithContext("root", destRoot).
			WithContext("path", path).
			Build()
	}
	return "/" + filepath.ToSlash(rel), nil
}

// RenderIndex renders the index page for records. Records are summarized in order.
func RenderIndex(records []DocumentRecord, destRoot string, store *templates.Store, opts IndexOptions) (string, error) {
	var body strings.Builder
	body.WriteString(opts.Heading)

	for _, rec := range records {
		link, err := LinkPath(destRoot, rec.Path)
		if err != nil {
			return "", err
		}
		fragment, err := templates.Render(store.Summary, templates.SummarySlots(link, Summary(rec.Body), rec.Title))
		if err != nil {
			return "", ferrors.WrapError(err, ferrors.CategoryRender, "render post summary").
				WithContext("path", rec.Path).
				Build()
		}
		body.WriteString(fragment)
	}

	page, err := templates.Render(store.Page, templates.PageSlots(body.String(), opts.Title))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "render index page").
			WithContext("file", opts.File).
			Build()
	}
	return page, nil
}

// BuildIndex renders the index page for records and writes it to opts.File
// under destRoot. It returns the written path.
func BuildIndex(records []DocumentRecord, destRoot string, store *templates.Store, opts IndexOptions) (string, error) {
	page, err := RenderIndex(records, destRoot, store, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(destRoot, opts.File)
	if err := writeFile(path, page); err != nil {
		return "", err
	}
	return path, nil
}
