package report

import (
	"fmt"
	"strings"
	"time"
)

// Bundle holds everything an adapter fetched or computed for one target:
// the report title, a one-line change summary, the unified diff, and an
// ordered list of one-line commit descriptions.
type Bundle struct {
	Title   string
	Summary string
	Diff    string
	Commits []string
}

// Params describes one report to assemble.
type Params struct {
	Title          string
	RepoName       string
	TargetLabel    string
	Summary        string
	Diff           string
	Commits        []string
	TruncationNote string
	IncludePrompt  bool
}

// Build assembles the final Markdown document: title heading, metadata,
// optional commit list, summary, per-file diff sections, optional
// truncation notice, optional reviewer prompt.
func Build(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# AI Code Review: %s\n", p.Title)
	fmt.Fprintf(&b, "**Repo:** %s\n**Target:** %s\n**Generated:** %s\n",
		p.RepoName, p.TargetLabel, time.Now().Format("2006-01-02 15:04:05"))

	if len(p.Commits) > 0 {
		b.WriteString("\n## Commits\n")
		for _, c := range p.Commits {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	b.WriteString("\n## Summary of Changes\n")
	b.WriteString(p.Summary + "\n")

	b.WriteString("\n## Diffs\n")
	chunks := SplitByFile(p.Diff)
	if len(chunks) == 0 {
		fmt.Fprintf(&b, "```diff\n%s\n```\n", strings.TrimRight(p.Diff, " \t\n"))
	} else {
		for _, c := range chunks {
			fmt.Fprintf(&b, "### %s\n", c.Filename)
			fmt.Fprintf(&b, "```diff\n%s\n```\n\n", strings.TrimRight(c.Content, " \t\n"))
		}
	}

	if p.TruncationNote != "" {
		fmt.Fprintf(&b, "\n> %s\n", p.TruncationNote)
	}
	if p.IncludePrompt {
		b.WriteString("\n")
		b.WriteString(reviewerPrompt)
	}

	return b.String()
}
