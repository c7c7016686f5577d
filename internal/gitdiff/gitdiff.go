package gitdiff

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// SummaryUnavailable is the placeholder used when a short-stat call fails
// or produces no output.
const SummaryUnavailable = "(summary unavailable)"

// Options controls local diff generation.
type Options struct {
	Repo     string
	Context  int
	WordDiff bool
}

// diffArgs builds the shared git-diff argument prefix: context lines,
// rename detection, optional word-level diff.
func diffArgs(o Options) []string {
	args := []string{"diff", fmt.Sprintf("-U%d", o.Context), "--find-renames"}
	if o.WordDiff {
		args = append(args, "--word-diff=plain")
	}
	return args
}

// Parent resolves the first parent of a commit. A parentless commit yields
// the synthetic "<sha>^" so a later diff fails cleanly instead of crashing
// the run.
func Parent(repo, sha string) (string, error) {
	out, err := run(repo, "rev-list", "--parents", "-n1", sha)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) > 1 {
		return fields[1], nil
	}
	return sha + "^", nil
}

// Diff returns the diff between two commit-ish endpoints. Failures are
// tolerated: whatever git printed comes back as the diff text.
func Diff(lhs, rhs string, o Options) string {
	return runTolerant(o.Repo, append(diffArgs(o), lhs, rhs)...)
}

// Range returns the diff for a revision range. Three-dot ranges are passed
// through as a single expression; two-dot ranges are split at the first ".."
// and diffed endpoint to endpoint.
func Range(rng string, o Options) string {
	if strings.Contains(rng, "...") {
		return runTolerant(o.Repo, append(diffArgs(o), rng)...)
	}
	lhs, rhs, _ := strings.Cut(rng, "..")
	return Diff(lhs, rhs, o)
}

// Worktree returns the diff of the working tree against HEAD.
func Worktree(o Options) string {
	return runTolerant(o.Repo, append(diffArgs(o), "HEAD")...)
}

// Unstaged returns the diff of the working tree against the index.
func Unstaged(o Options) string {
	return runTolerant(o.Repo, diffArgs(o)...)
}

// ShortStat returns a one-line change summary for the given diff arguments,
// or SummaryUnavailable when git fails or prints nothing.
func ShortStat(repo string, args ...string) string {
	out := strings.TrimSpace(runTolerant(repo, append([]string{"diff", "--shortstat"}, args...)...))
	if out == "" {
		return SummaryUnavailable
	}
	return out
}

// Commits lists one-line commit descriptions for a range ("A..B") or a
// single commit-ish, formatted as "short-hash date author — subject".
// Best-effort: failures yield an empty list.
func Commits(repo, rangeOrCommit string) []string {
	const format = "--pretty=format:%h %ad %an — %s"
	var out string
	var err error
	if strings.Contains(rangeOrCommit, "..") {
		out, err = run(repo, "log", "--no-merges", format, "--date=short", rangeOrCommit)
	} else {
		out, err = run(repo, "show", "--no-patch", format, "--date=short", rangeOrCommit)
	}
	if err != nil {
		return nil
	}
	var commits []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			commits = append(commits, line)
		}
	}
	return commits
}

// RepoName returns the basename of the repository root, falling back to the
// basename of the given path when the directory is not a git repository.
func RepoName(repo string) string {
	out, err := run(repo, "rev-parse", "--show-toplevel")
	if err != nil {
		return filepath.Base(repo)
	}
	return filepath.Base(strings.TrimSpace(out))
}

// ResolveShort resolves a commit-ish to its abbreviated hash for output
// naming. Unresolvable refs fall back to the first 7 characters of the ref.
func ResolveShort(repo, ref string) string {
	out, err := run(repo, "rev-parse", "--verify", ref)
	if err != nil {
		return shorten(ref)
	}
	return shorten(strings.TrimSpace(out))
}

func shorten(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

// run executes git in the repo directory and fails on non-zero exit,
// carrying the captured output in the error.
func run(repo string, args ...string) (string, error) {
	out, err := gitOutput(repo, args...)
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, out)
	}
	return out, nil
}

// runTolerant executes git and returns whatever it printed, even on
// failure. Used where partial or empty diff output is acceptable.
func runTolerant(repo string, args ...string) string {
	out, _ := gitOutput(repo, args...)
	return out
}

func gitOutput(repo string, args ...string) (string, error) {
	full := append([]string{"-c", "core.quotepath=false", "-c", "color.ui=never"}, args...)
	cmd := exec.Command("git", full...)
	cmd.Dir = repo
	out, err := cmd.CombinedOutput()
	return string(out), err
}
