// Package gitdiff produces unified diffs and commit metadata from a local
// git repository by shelling out to git.
//
// It covers the four local target modes — commit, range, worktree, and
// unstaged — plus the supporting lookups: first-parent resolution,
// short-stat summaries, commit-log listings, and ref verification. Diff and
// short-stat calls tolerate git failures and return whatever output was
// produced; lookups whose result is required (parent resolution) propagate
// errors.
package gitdiff
