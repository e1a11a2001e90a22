package rendering

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jonathan/resume-mining/internal/types"
)

// Fragment is the rendered markup of one resume section
type Fragment string

// FragmentOptions controls how section text is written into markup
type FragmentOptions struct {
	// Sanitize strips tags and escapes HTML-significant characters in
	// headings and list items. Off by default so output matches the
	// published site byte for byte.
	Sanitize bool
}

var strictPolicy = bluemonday.StrictPolicy()

// HeaderLabel returns the display string and CSS token for a section header
func HeaderLabel(header types.SectionHeader) (display, token string) {
	display = strings.ToLower(strings.TrimSpace(string(header)))
	token = strings.ReplaceAll(display, " ", "-")
	return display, token
}

// BuildFragment renders a section as a headed list. Blank lines are dropped.
func BuildFragment(header types.SectionHeader, lines []string, opts FragmentOptions) Fragment {
	display, token := HeaderLabel(header)
	clean := func(s string) string {
		if opts.Sanitize {
			return strictPolicy.Sanitize(s)
		}
		return s
	}

	var sb strings.Builder
	sb.WriteString(`<div class="resume-section"><ul class="desc-list">`)
	sb.WriteString(`<h3 class="` + token + `-header">` + clean(display) + `</h3>`)
	sb.WriteString(`<hr/>`)
	for _, line := range lines {
		item := strings.TrimSpace(line)
		if item == "" {
			continue
		}
		sb.WriteString("<li>" + clean(item) + "</li>")
	}
	sb.WriteString("</ul></div>")

	return Fragment(sb.String())
}
