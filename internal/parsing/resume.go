// Package parsing turns plain-text resume content into a sectioned ResumeDocument.
package parsing

import "github.com/jonathan/resume-mining/internal/types"

// Options controls which literals ParseResume looks for
type Options struct {
	Headers       []types.SectionHeader
	ReferenceLine string
}

// DefaultOptions returns the headers and reference line used by the site resume
func DefaultOptions() Options {
	return Options{
		Headers:       types.DefaultHeaders(),
		ReferenceLine: types.ReferenceLine,
	}
}

// Result is the outcome of ParseResume. Exactly one of Document and Err is set.
type Result struct {
	Document *types.ResumeDocument
	Err      error
	// Lines holds the normalized content with the reference line removed,
	// kept so failures can be diagnosed.
	Lines []string
}

// OK reports whether parsing produced a document
func (r Result) OK() bool {
	return r.Err == nil && r.Document != nil
}

// ParseResume normalizes content, drops the reference line and extracts sections
func ParseResume(content string, opts Options) Result {
	if len(opts.Headers) == 0 {
		opts.Headers = types.DefaultHeaders()
	}

	lines := Normalize(SplitLines(content))
	if opts.ReferenceLine != "" {
		lines = RemoveReferenceLine(lines, opts.ReferenceLine)
	}

	doc, err := ExtractSections(lines, opts.Headers)
	if err != nil {
		return Result{Err: err, Lines: lines}
	}
	return Result{Document: doc, Lines: lines}
}
