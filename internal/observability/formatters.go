// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-mining/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeDocument outputs the item count and first items of each section.
func (p *Printer) PrintResumeDocument(doc *types.ResumeDocument) {
	if doc == nil || len(doc.Sections) == 0 {
		return
	}

	var sb strings.Builder
	for i, section := range doc.Sections {
		items := nonBlank(section.Lines)
		sb.WriteString(fmt.Sprintf("%s (%d items)\n", strings.TrimSpace(string(section.Header)), len(items)))

		count := min(len(items), maxItemsToShow)
		for _, item := range items[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
		if i < len(doc.Sections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNormalizedLines outputs every normalized line, quoted so trailing spaces show.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNormalizedLines(lines []string) {
	for i, line := range lines {
		fmt.Fprintf(p.out, "%4d  %q\n", i+1, line)
	}
}

// PrintPublished outputs where the new page and the archive copy were written.
func (p *Printer) PrintPublished(homepage, archived string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Homepage: %s\n", homepage))
	sb.WriteString(fmt.Sprintf("Archive:  %s\n", archived))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", size))
	p.printBox("PUBLISHED", sb.String())
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func nonBlank(lines []string) []string {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
