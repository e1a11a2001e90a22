package rendering

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageSummary describes the resume markup found in a rendered page
type PageSummary struct {
	HasContainer  bool
	Sections      []string // section tokens in document order
	HasReferences bool
}

// InspectPage parses a rendered page and summarizes its resume markup
func InspectPage(page string) (*PageSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}

	container := doc.Find("#resume-container")
	summary := &PageSummary{
		HasContainer:  container.Length() > 0,
		Sections:      []string{},
		HasReferences: doc.Find(".references").Length() > 0,
	}

	container.Find(".resume-section h3").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		summary.Sections = append(summary.Sections, strings.TrimSuffix(class, "-header"))
	})

	return summary, nil
}

// VerifyPage checks that page carries the resume container with the expected sections in order
func VerifyPage(page string, expected []string) error {
	summary, err := InspectPage(page)
	if err != nil {
		return err
	}
	if !summary.HasContainer {
		return &TemplateError{Message: "rendered page is missing the resume container; check the resume_section slot"}
	}
	if !slices.Equal(summary.Sections, expected) {
		return &TemplateError{
			Message: fmt.Sprintf("rendered page has sections %v, want %v", summary.Sections, expected),
		}
	}
	return nil
}
