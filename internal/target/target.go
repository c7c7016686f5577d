package target

import (
	"regexp"
	"strconv"
	"strings"
)

// Mode identifies how a target string should be turned into a diff.
type Mode string

const (
	ModePR        Mode = "pr"
	ModeCommitURL Mode = "commit_url"
	ModeCommitSHA Mode = "commit_sha"
	ModeRange     Mode = "range"
	ModeWorktree  Mode = "worktree"
	ModeUnstaged  Mode = "unstaged"
)

// Target is a classified CLI target with its mode-specific fields.
type Target struct {
	Mode   Mode
	Owner  string
	Repo   string
	Number int
	SHA    string
	Range  string
	Raw    string
}

var (
	prURLRe     = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/pull/(\d+)`)
	commitURLRe = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/commit/([0-9a-fA-F]{7,40})`)
)

// Classify decides which retrieval mode applies to a raw target string.
// It never fails: anything unrecognized is treated as a commit-ish and
// left for the git adapter to resolve (or reject).
func Classify(raw string) Target {
	switch raw {
	case "WORKTREE":
		return Target{Mode: ModeWorktree, Raw: raw}
	case "UNSTAGED":
		return Target{Mode: ModeUnstaged, Raw: raw}
	}

	if m := prURLRe.FindStringSubmatch(raw); m != nil {
		num, _ := strconv.Atoi(m[3])
		return Target{
			Mode:   ModePR,
			Owner:  m[1],
			Repo:   m[2],
			Number: num,
			Raw:    raw,
		}
	}
	if m := commitURLRe.FindStringSubmatch(raw); m != nil {
		return Target{
			Mode:  ModeCommitURL,
			Owner: m[1],
			Repo:  m[2],
			SHA:   m[3],
			Raw:   raw,
		}
	}
	if strings.Contains(raw, "..") {
		return Target{Mode: ModeRange, Range: raw, Raw: raw}
	}
	// Anything else is a commit-ish: a SHA, branch, or tag, diffed against
	// its first parent.
	return Target{Mode: ModeCommitSHA, SHA: raw, Raw: raw}
}
