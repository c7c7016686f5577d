package report

import (
	"path/filepath"
	"strings"
)

const unknownFile = "(unknown file)"

// FileChunk is the portion of a unified diff belonging to one file.
// The "diff --git" marker line itself is not part of Content.
type FileChunk struct {
	Filename string
	Content  string
}

// SplitByFile breaks a unified diff into per-file chunks, ordered by first
// appearance. Lines before the first file marker form a preamble chunk.
// Returns nil for empty input.
func SplitByFile(diff string) []FileChunk {
	lines := splitLines(diff)
	var chunks []FileChunk
	var current []string
	header := ""

	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git ") {
			if len(current) > 0 {
				chunks = append(chunks, FileChunk{
					Filename: inferFilename(header, current),
					Content:  strings.Join(current, "\n"),
				})
				current = nil
			}
			header = line
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, FileChunk{
			Filename: inferFilename(header, current),
			Content:  strings.Join(current, "\n"),
		})
	}
	return chunks
}

// inferFilename picks the chunk's file path: the +++ line wins unless it is
// /dev/null (deleted file), then the --- line, then the second path token of
// the "diff --git a/x b/y" marker.
func inferFilename(header string, lines []string) string {
	for _, ln := range lines {
		if strings.HasPrefix(ln, "+++ ") {
			path := strings.TrimSpace(ln[4:])
			if path != "/dev/null" {
				return stripPrefix(path)
			}
			break
		}
	}
	for _, ln := range lines {
		if strings.HasPrefix(ln, "--- ") {
			path := strings.TrimSpace(ln[4:])
			if path != "/dev/null" {
				return stripPrefix(path)
			}
			break
		}
	}
	if strings.HasPrefix(header, "diff --git ") {
		parts := strings.Fields(header)
		if len(parts) >= 4 {
			return stripPrefix(parts[3])
		}
	}
	return unknownFile
}

// stripPrefix drops the a/ or b/ tree prefix used by git diff paths.
func stripPrefix(path string) string {
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}
	return path
}

// splitLines splits on newlines without producing a phantom empty line for
// newline-terminated text.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// FilterExcluded removes whole file sections whose path matches any of the
// exclude globs. Sections without a recognizable path are kept.
func FilterExcluded(diff string, excludes []string) string {
	if len(excludes) == 0 {
		return diff
	}
	var kept []string
	for _, section := range splitSections(diff) {
		path := sectionPath(section)
		if path == "" || !MatchesAny(path, excludes) {
			kept = append(kept, section)
		}
	}
	return strings.Join(kept, "")
}

// splitSections cuts the diff at file markers, keeping each marker line with
// its section.
func splitSections(diff string) []string {
	var sections []string
	var current strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		sections = append(sections, current.String())
	}
	return sections
}

func sectionPath(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(line, "+++ b/") {
			return strings.TrimPrefix(line, "+++ b/")
		}
	}
	return ""
}

// MatchesAny returns true if the path matches any of the given glob patterns.
func MatchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, path)
		if err == nil && matched {
			return true
		}
		clean := strings.TrimPrefix(pattern, "**/")
		if clean != pattern {
			matched, err = filepath.Match(clean, filepath.Base(path))
			if err == nil && matched {
				return true
			}
			matched, err = filepath.Match(clean, path)
			if err == nil && matched {
				return true
			}
		}
	}
	return false
}
