package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	flagRepo     string
	flagOutput   string
	flagContext  int
	flagWordDiff bool
	flagMaxLines int
	flagToken    string
	flagNoPrompt bool
	flagExclude  string
	flagNoRedact bool
)

var rootCmd = &cobra.Command{
	Use:   "aidiff <target>",
	Short: "Bundle a code change into one Markdown file for AI review",
	Long: `aidiff turns a pull request, commit, revision range, or local change set
into a single self-contained Markdown document ready to paste into an AI
code-review prompt.

Targets:
  https://github.com/<owner>/<repo>/pull/<n>     pull request
  https://github.com/<owner>/<repo>/commit/<sha> commit on GitHub
  <sha> | <branch> | <tag>                       local commit vs first parent
  A..B | A...B                                   local revision range
  WORKTREE                                       working tree vs HEAD
  UNSTAGED                                       working tree vs index`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagRepo, "repo", "r", ".", "Local repo path (for local targets)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output Markdown file (default: auto-named per target)")
	rootCmd.Flags().IntVarP(&flagContext, "context", "c", 3, "Diff context lines")
	rootCmd.Flags().BoolVarP(&flagWordDiff, "word-diff", "w", false, "Use git --word-diff=plain for local diffs")
	rootCmd.Flags().IntVar(&flagMaxLines, "max-lines", 5000, "Truncate diff after N lines (0 disables)")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "GitHub token (default: $GITHUB_TOKEN or $GH_TOKEN)")
	rootCmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "Omit the reviewer prompt section")
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file path globs (comma-separated)")
	rootCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print aidiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "aidiff version %s\n", version)
	},
}

// Run executes the root command and returns the process exit code. Every
// error from the pipeline surfaces here exactly once.
func Run() int {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return 1
	}
	return 0
}
