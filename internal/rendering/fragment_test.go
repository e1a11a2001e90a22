package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-mining/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHeaderLabel(t *testing.T) {
	tests := []struct {
		header  types.SectionHeader
		display string
		token   string
	}{
		{types.HeaderSkills, "skills and knowledge", "skills-and-knowledge"},
		{types.HeaderExperience, "experience", "experience"},
		{types.HeaderEducation, "education", "education"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			display, token := HeaderLabel(tt.header)
			assert.Equal(t, tt.display, display)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestBuildFragment_DropsBlankItems(t *testing.T) {
	fragment := string(BuildFragment("SKILLS AND KNOWLEDGE  ", []string{"Python", "  ", "Go", ""}, FragmentOptions{}))

	assert.Equal(t, 2, strings.Count(fragment, "<li>"))
	assert.Contains(t, fragment, "<li>Python</li>")
	assert.Contains(t, fragment, "<li>Go</li>")
	assert.Contains(t, fragment, `class="skills-and-knowledge-header"`)
	assert.Less(t, strings.Index(fragment, "Python"), strings.Index(fragment, "Go"))
}

func TestBuildFragment_ExactMarkup(t *testing.T) {
	fragment := BuildFragment(types.HeaderExperience, []string{" Acme Corp ", " "}, FragmentOptions{})

	expected := `<div class="resume-section"><ul class="desc-list">` +
		`<h3 class="experience-header">experience</h3><hr/>` +
		`<li>Acme Corp</li></ul></div>`
	assert.Equal(t, expected, string(fragment))
}

func TestBuildFragment_NoItems(t *testing.T) {
	fragment := string(BuildFragment(types.HeaderEducation, nil, FragmentOptions{}))

	assert.NotContains(t, fragment, "<li>")
	assert.True(t, strings.HasSuffix(fragment, "<hr/></ul></div>"))
}

func TestBuildFragment_NoEscapingByDefault(t *testing.T) {
	fragment := string(BuildFragment(types.HeaderSkills, []string{"<b>R&D</b>"}, FragmentOptions{}))
	assert.Contains(t, fragment, "<li><b>R&D</b></li>")
}

func TestBuildFragment_Sanitize(t *testing.T) {
	fragment := string(BuildFragment(types.HeaderSkills, []string{"<b>R&D</b>"}, FragmentOptions{Sanitize: true}))

	assert.Contains(t, fragment, "<li>R&amp;D</li>")
	assert.NotContains(t, fragment, "<b>")
	assert.Contains(t, fragment, `<h3 class="skills-and-knowledge-header">skills and knowledge</h3>`)
}
