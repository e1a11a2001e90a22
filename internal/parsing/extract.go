package parsing

import (
	"slices"

	"github.com/jonathan/resume-mining/internal/types"
)

// RemoveReferenceLine returns lines without the first occurrence of literal.
// The input is left untouched; a missing literal yields an unchanged copy.
func RemoveReferenceLine(lines []string, literal string) []string {
	idx := slices.Index(lines, literal)
	if idx < 0 {
		return slices.Clone(lines)
	}
	out := make([]string, 0, len(lines)-1)
	out = append(out, lines[:idx]...)
	return append(out, lines[idx+1:]...)
}

// ExtractSections partitions lines by the given headers.
// Each header must appear, and the first occurrences must follow the declared order.
func ExtractSections(lines []string, headers []types.SectionHeader) (*types.ResumeDocument, error) {
	positions := make([]int, len(headers))
	var missing []types.SectionHeader
	for i, h := range headers {
		positions[i] = slices.Index(lines, string(h))
		if positions[i] < 0 {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingSectionError{Missing: missing}
	}

	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return nil, &HeaderOrderError{
				Header:   headers[i],
				Position: positions[i],
				After:    headers[i-1],
				AfterPos: positions[i-1],
			}
		}
	}

	doc := &types.ResumeDocument{Sections: make([]types.Section, 0, len(headers))}
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(positions) {
			end = positions[i+1]
		}
		doc.Sections = append(doc.Sections, types.Section{
			Header: h,
			Lines:  slices.Clone(lines[positions[i]+1 : end]),
		})
	}
	return doc, nil
}
