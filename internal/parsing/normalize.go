package parsing

import "strings"

// lineReplacer maps characters that never carry meaning in a resume line to a single space
var lineReplacer = strings.NewReplacer(
	"\t", " ",
	"\n", " ",
	"?", " ",
	":", " ",
)

// SplitLines splits content into lines, keeping each line's terminator.
// CRLF and lone CR line endings are read as LF.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Normalize returns a copy of lines with tabs, newlines, '?' and ':' replaced by spaces.
// The result always has the same length and order as the input.
func Normalize(lines []string) []string {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = lineReplacer.Replace(line)
	}
	return normalized
}
