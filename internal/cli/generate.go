package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/aidiff/internal/config"
	"github.com/dshills/aidiff/internal/gitdiff"
	"github.com/dshills/aidiff/internal/github"
	"github.com/dshills/aidiff/internal/redact"
	"github.com/dshills/aidiff/internal/report"
	"github.com/dshills/aidiff/internal/target"
	"github.com/spf13/cobra"
)

// buildOverrides collects flag values the user actually set, for the config
// merge.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	f := cmd.Flags()
	if f.Changed("context") {
		m["context"] = strconv.Itoa(flagContext)
	}
	if f.Changed("max-lines") {
		m["maxLines"] = strconv.Itoa(flagMaxLines)
	}
	if flagToken != "" {
		m["token"] = flagToken
	}
	if flagWordDiff {
		m["wordDiff"] = "true"
	}
	if flagNoPrompt {
		m["noPrompt"] = "true"
	}
	if flagNoRedact {
		m["noRedact"] = "true"
	}
	if flagExclude != "" {
		m["exclude"] = flagExclude
	}
	return m
}

// runGenerate is the whole pipeline: classify the target, fetch the diff
// bundle, post-process the diff, assemble the report, write the file.
func runGenerate(cmd *cobra.Command, raw string) error {
	cfg, err := config.Load(buildOverrides(cmd))
	if err != nil {
		return err
	}

	tgt := target.Classify(raw)
	opts := gitdiff.Options{Repo: flagRepo, Context: cfg.Context, WordDiff: cfg.WordDiff}

	var bundle report.Bundle
	var targetLabel, defaultOut string
	ctx := context.Background()

	switch tgt.Mode {
	case target.ModePR:
		client := github.NewClient(cfg.Token, cfg.APIURL)
		bundle, err = client.FetchPR(ctx, tgt.Owner, tgt.Repo, tgt.Number)
		if err != nil {
			return err
		}
		targetLabel = fmt.Sprintf("https://github.com/%s/%s/pull/%d", tgt.Owner, tgt.Repo, tgt.Number)
		defaultOut = fmt.Sprintf("diff-pr-%d.md", tgt.Number)

	case target.ModeCommitURL:
		client := github.NewClient(cfg.Token, cfg.APIURL)
		bundle, err = client.FetchCommit(ctx, tgt.Owner, tgt.Repo, tgt.SHA)
		if err != nil {
			return err
		}
		targetLabel = fmt.Sprintf("https://github.com/%s/%s/commit/%s", tgt.Owner, tgt.Repo, tgt.SHA)
		defaultOut = fmt.Sprintf("diff-commit-%s.md", shortRef(tgt.SHA))

	case target.ModeCommitSHA:
		parent, err := gitdiff.Parent(flagRepo, tgt.SHA)
		if err != nil {
			return err
		}
		short := gitdiff.ResolveShort(flagRepo, tgt.SHA)
		bundle = report.Bundle{
			Title:   "Commit " + short,
			Summary: gitdiff.ShortStat(flagRepo, fmt.Sprintf("-U%d", cfg.Context), "--find-renames", parent, tgt.SHA),
			Diff:    gitdiff.Diff(parent, tgt.SHA, opts),
			Commits: gitdiff.Commits(flagRepo, tgt.SHA),
		}
		targetLabel = tgt.SHA
		defaultOut = fmt.Sprintf("diff-commit-%s.md", short)

	case target.ModeRange:
		bundle = report.Bundle{
			Title:   "Range " + tgt.Range,
			Summary: gitdiff.ShortStat(flagRepo, tgt.Range),
			Diff:    gitdiff.Range(tgt.Range, opts),
			Commits: gitdiff.Commits(flagRepo, tgt.Range),
		}
		targetLabel = tgt.Range
		defaultOut = fmt.Sprintf("diff-range-%s.md", sanitizeName(tgt.Range))

	case target.ModeWorktree:
		bundle = report.Bundle{
			Title:   "Working tree vs HEAD",
			Summary: gitdiff.ShortStat(flagRepo, "HEAD"),
			Diff:    gitdiff.Worktree(opts),
		}
		targetLabel = "WORKTREE"

	case target.ModeUnstaged:
		bundle = report.Bundle{
			Title:   "Unstaged changes (working tree vs index)",
			Summary: gitdiff.ShortStat(flagRepo),
			Diff:    gitdiff.Unstaged(opts),
		}
		targetLabel = "UNSTAGED"
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = defaultOut
	}
	if outPath == "" {
		outPath = "ai-review.md"
	}

	diff := bundle.Diff
	if len(cfg.Exclude) > 0 {
		diff = report.FilterExcluded(diff, cfg.Exclude)
	}
	if !cfg.NoRedact {
		diff = redact.Secrets(diff)
	}
	diff, note := report.Truncate(diff, cfg.MaxLines)

	md := report.Build(report.Params{
		Title:          bundle.Title,
		RepoName:       gitdiff.RepoName(flagRepo),
		TargetLabel:    targetLabel,
		Summary:        bundle.Summary,
		Diff:           diff,
		Commits:        bundle.Commits,
		TruncationNote: note,
		IncludePrompt:  !cfg.NoPrompt,
	})

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stdout, "✅ Wrote %s\n", outPath)
	return nil
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeName makes a revision range usable as a filename component.
func sanitizeName(s string) string {
	return strings.Trim(unsafeNameRe.ReplaceAllString(s, "-"), "-")
}

func shortRef(ref string) string {
	if len(ref) > 7 {
		return ref[:7]
	}
	return ref
}
