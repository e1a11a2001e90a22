// Package types provides type definitions for structured data used throughout the resume-mining system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionHeader is a literal resume line that opens a named section.
// Matching is exact, trailing spaces included.
type SectionHeader string

// Recognized section headers, as they appear after normalization.
const (
	HeaderSkills     SectionHeader = "SKILLS AND KNOWLEDGE  "
	HeaderExperience SectionHeader = "EXPERIENCE  "
	HeaderEducation  SectionHeader = "EDUCATION  "
)

// ReferenceLine is the reference-request line stripped from the resume
// before sections are located. The site renders its own references block.
const ReferenceLine = "References Available Upon Request "

// DefaultHeaders returns the headers in the order sections are rendered
func DefaultHeaders() []SectionHeader {
	return []SectionHeader{HeaderSkills, HeaderExperience, HeaderEducation}
}

// Section holds the normalized lines between one header and the next
type Section struct {
	Header SectionHeader `json:"header"`
	Lines  []string      `json:"lines"`
}

// ResumeDocument is a fully parsed resume. Sections follow header order.
type ResumeDocument struct {
	Sections []Section `json:"sections"`
}

// Section returns the section opened by header, if present
func (d *ResumeDocument) Section(header SectionHeader) (Section, bool) {
	if d == nil {
		return Section{}, false
	}
	for _, s := range d.Sections {
		if s.Header == header {
			return s, true
		}
	}
	return Section{}, false
}

// Skills returns the skills section lines
func (d *ResumeDocument) Skills() []string {
	s, _ := d.Section(HeaderSkills)
	return s.Lines
}

// Experience returns the experience section lines
func (d *ResumeDocument) Experience() []string {
	s, _ := d.Section(HeaderExperience)
	return s.Lines
}

// Education returns the education section lines
func (d *ResumeDocument) Education() []string {
	s, _ := d.Section(HeaderEducation)
	return s.Lines
}
