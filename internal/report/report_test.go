package report

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	md := Build(Params{
		Title:         "Commit abc1234",
		RepoName:      "aidiff",
		TargetLabel:   "abc1234",
		Summary:       " 1 file changed, 2 insertions(+), 1 deletion(-)",
		Diff:          twoFileDiff,
		Commits:       []string{"abc1234 2026-01-15 Alice — add helper"},
		IncludePrompt: true,
	})

	for _, want := range []string{
		"# AI Code Review: Commit abc1234\n",
		"**Repo:** aidiff\n",
		"**Target:** abc1234\n",
		"**Generated:** ",
		"## Commits\n- abc1234 2026-01-15 Alice — add helper\n",
		"## Summary of Changes\n 1 file changed, 2 insertions(+), 1 deletion(-)\n",
		"## Diffs\n",
		"### main.go\n```diff\n",
		"### util.go\n",
		"## Prompt\nYou are a senior code reviewer.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q\n---\n%s", want, md)
		}
	}
}

func TestBuild_NoPrompt(t *testing.T) {
	md := Build(Params{Title: "t", Diff: twoFileDiff})
	if strings.Contains(md, "## Prompt") {
		t.Error("prompt section should be omitted")
	}
	if strings.Contains(md, "You are a senior code reviewer") {
		t.Error("prompt text should be omitted")
	}
}

func TestBuild_NoCommits(t *testing.T) {
	md := Build(Params{Title: "t", Diff: twoFileDiff})
	if strings.Contains(md, "## Commits") {
		t.Error("commits section should be omitted when empty")
	}
}

func TestBuild_EmptyDiffFallback(t *testing.T) {
	md := Build(Params{Title: "Working tree vs HEAD", Summary: "(summary unavailable)", Diff: ""})
	if !strings.Contains(md, "```diff\n\n```\n") {
		t.Errorf("empty diff should render one empty fenced block\n---\n%s", md)
	}
}

func TestBuild_TruncationNote(t *testing.T) {
	md := Build(Params{Title: "t", Diff: twoFileDiff, TruncationNote: "Diff truncated after 4 lines (total: 10). Consider reviewing the remainder locally."})
	if !strings.Contains(md, "\n> Diff truncated after 4 lines") {
		t.Error("truncation note should render as a blockquote")
	}
}

func TestReviewerPrompt(t *testing.T) {
	p := ReviewerPrompt()
	if !strings.Contains(p, "Critical, High, Medium, Low") {
		t.Error("prompt should name the review categories")
	}
	if !strings.Contains(p, "1-10") {
		t.Error("prompt should request a quality score")
	}
}
