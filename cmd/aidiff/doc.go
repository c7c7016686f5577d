// Aidiff generates a single Markdown file with diffs for a PR, commit,
// revision range, or local working-tree change set, formatted for pasting
// into an AI code-review prompt.
//
// Usage:
//
//	aidiff https://github.com/owner/repo/pull/42   # pull request
//	aidiff https://github.com/owner/repo/commit/ab # commit on GitHub
//	aidiff 4f2a91c                                 # local commit vs parent
//	aidiff origin/main..HEAD                       # revision range
//	aidiff WORKTREE                                # working tree vs HEAD
//	aidiff UNSTAGED                                # working tree vs index
//
// See https://github.com/dshills/aidiff for full documentation.
package main
