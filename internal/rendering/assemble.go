package rendering

import (
	"strings"

	"github.com/jonathan/resume-mining/internal/types"
)

// Template slot names filled by Assemble
const (
	SlotResumeSection = "resume_section"
	SlotReferences    = "references"
)

// ReferencesBlock is the static references markup appended to every page
const ReferencesBlock = "<div class='references'>" + types.ReferenceLine + "</div>"

// Renderer renders a named template with a slot context
type Renderer interface {
	Render(name string, ctx map[string]string) (string, error)
}

// BuildContainer concatenates the section fragments inside the resume container
func BuildContainer(doc *types.ResumeDocument, opts FragmentOptions) string {
	var sb strings.Builder
	for _, section := range doc.Sections {
		sb.WriteString(string(BuildFragment(section.Header, section.Lines, opts)))
	}
	return `<div id="resume-container" class="resume-container"> ` + sb.String() + ` </div>`
}

// BuildContext returns the template context for a parsed resume
func BuildContext(doc *types.ResumeDocument, opts FragmentOptions) map[string]string {
	return map[string]string{
		SlotResumeSection: BuildContainer(doc, opts),
		SlotReferences:    ReferencesBlock,
	}
}

// Assemble renders the full site page for doc using the named template
func Assemble(doc *types.ResumeDocument, renderer Renderer, templateName string, opts FragmentOptions) (string, error) {
	if doc == nil || len(doc.Sections) == 0 {
		return "", &RenderError{Message: "resume document has no sections"}
	}

	page, err := renderer.Render(templateName, BuildContext(doc, opts))
	if err != nil {
		return "", &RenderError{
			Message: "failed to render site page",
			Cause:   err,
		}
	}
	return page, nil
}
