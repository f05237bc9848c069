package templates

import (
	"fmt"
	"maps"
	"strings"
	"text/template"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Slot names recognized in templates.
const (
	SlotContent = "content"
	SlotTitle   = "title"
	SlotLink    = "link"
	SlotSummary = "summary"

	// Older sites name the summary slots blog_link and blog_content.
	SlotBlogLink    = "blog_link"
	SlotBlogContent = "blog_content"
)

var knownSlots = []string{SlotContent, SlotTitle, SlotLink, SlotSummary, SlotBlogLink, SlotBlogContent}

// Slots is an immutable set of slot values for a single render call.
type Slots struct {
	values map[string]string
}

// PageSlots builds the slots for the page template.
func PageSlots(content, title string) Slots {
	return Slots{values: map[string]string{
		SlotContent: content,
		SlotTitle:   title,
	}}
}

// SummarySlots builds the slots for the post-summary template.
func SummarySlots(link, summary, title string) Slots {
	return Slots{values: map[string]string{
		SlotLink:        link,
		SlotSummary:     summary,
		SlotTitle:       title,
		SlotBlogLink:    link,
		SlotBlogContent: summary,
	}}
}

// Get returns the value of a slot.
func (s Slots) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Render executes t with slots. Referencing a slot that is not in slots is a
// render category error.
func Render(t *Template, slots Slots) (string, error) {
	tpl, err := t.tpl.Clone()
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "clone template").
			WithContext("template", t.name).
			Build()
	}
	// Clone does not carry parse options.
	tpl.Option(missingKeyOption)
	tpl.Funcs(boundSlotFuncs(slots))

	data := maps.Clone(slots.values)
	if data == nil {
		data = map[string]string{}
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "render template").
			WithContext("template", t.name).
			Build()
	}
	return b.String(), nil
}

func boundSlotFuncs(slots Slots) template.FuncMap {
	funcs := make(template.FuncMap, len(knownSlots))
	for _, name := range knownSlots {
		name := name
		funcs[name] = func() (string, error) {
			if v, ok := slots.Get(name); ok {
				return v, nil
			}
			return "", fmt.Errorf("slot %q is not set", name)
		}
	}
	return funcs
}
