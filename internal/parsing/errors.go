package parsing

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-mining/internal/types"
)

// MissingSectionError reports section headers that were not found in the resume
type MissingSectionError struct {
	Missing []types.SectionHeader
}

func (e *MissingSectionError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, h := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", string(h))
	}
	return fmt.Sprintf("can't find sections: %s", strings.Join(quoted, ", "))
}

// HeaderOrderError reports a header found before one declared ahead of it
type HeaderOrderError struct {
	Header   types.SectionHeader
	Position int
	After    types.SectionHeader
	AfterPos int
}

func (e *HeaderOrderError) Error() string {
	return fmt.Sprintf("section %q at line %d must come after %q at line %d",
		string(e.Header), e.Position+1, string(e.After), e.AfterPos+1)
}
