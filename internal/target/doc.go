// Package target classifies a raw CLI target string into one of the six
// retrieval modes: GitHub PR URL, GitHub commit URL, commit-ish, revision
// range, worktree-vs-HEAD, or unstaged-vs-index.
//
// Classification is best-effort and never fails; strings that match no
// pattern are treated as commit-ish references and any resolution failure
// is deferred to the git adapter.
package target
