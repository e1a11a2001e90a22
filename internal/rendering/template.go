package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// FileRenderer renders templates stored in a directory.
// Slots are referenced as {{.resume_section}} and {{.references}}.
type FileRenderer struct {
	Dir string
}

// NewFileRenderer creates a FileRenderer rooted at dir
func NewFileRenderer(dir string) *FileRenderer {
	return &FileRenderer{Dir: dir}
}

// Render loads the named template and executes it with ctx.
// Slots missing from ctx render as empty strings.
func (r *FileRenderer) Render(name string, ctx map[string]string) (string, error) {
	tmpl, err := r.parseTemplate(name)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, ctx); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses a template file from the renderer's directory
func (r *FileRenderer) parseTemplate(name string) (*template.Template, error) {
	templatePath := filepath.Join(r.Dir, name)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New(name).Option("missingkey=zero").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}
