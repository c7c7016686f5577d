package report

import (
	"fmt"
	"strings"
)

// Truncate caps text at maxLines lines. When the cap applies it returns the
// kept head and a note describing what was dropped; otherwise the text comes
// back untouched with an empty note. maxLines <= 0 disables truncation.
func Truncate(text string, maxLines int) (string, string) {
	if maxLines <= 0 {
		return text, ""
	}
	lines := splitLines(text)
	if len(lines) <= maxLines {
		return text, ""
	}
	head := strings.Join(lines[:maxLines], "\n")
	note := fmt.Sprintf("Diff truncated after %d lines (total: %d). Consider reviewing the remainder locally.", maxLines, len(lines))
	return head, note
}
