package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dshills/aidiff/internal/report"
)

const (
	defaultAPIURL = "https://api.github.com"
	userAgent     = "aidiff/1.0"

	acceptJSON = "application/vnd.github+json"
	acceptDiff = "application/vnd.github.v3.diff"

	commitsPerPage = 100
)

// Client provides read access to the GitHub REST API.
type Client struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates a GitHub client. An empty token means anonymous access
// to public repositories; an empty apiURL selects api.github.com.
func NewClient(token, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		token:   token,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}
}

// prMeta is the subset of pull-request metadata the summary needs.
type prMeta struct {
	Title        string `json:"title"`
	Additions    int    `json:"additions"`
	Deletions    int    `json:"deletions"`
	ChangedFiles int    `json:"changed_files"`
}

// commitItem is one entry of a PR commit listing.
type commitItem struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// commitMeta is the single-commit metadata payload.
type commitMeta struct {
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Stats struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
	} `json:"stats"`
	Files []struct {
		Filename string `json:"filename"`
	} `json:"files"`
}

// FetchPR fetches a pull request's metadata, commit list, and unified diff.
func (c *Client) FetchPR(ctx context.Context, owner, repo string, number int) (report.Bundle, error) {
	prURL := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.apiURL, owner, repo, number)

	var meta prMeta
	if err := c.getJSON(ctx, prURL, &meta); err != nil {
		return report.Bundle{}, err
	}
	title := meta.Title
	if title == "" {
		title = fmt.Sprintf("PR #%d", number)
	}

	var commits []string
	for page := 1; ; page++ {
		pageURL := fmt.Sprintf("%s/commits?per_page=%d&page=%d", prURL, commitsPerPage, page)
		var items []commitItem
		if err := c.getJSON(ctx, pageURL, &items); err != nil {
			return report.Bundle{}, err
		}
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			commits = append(commits, fmt.Sprintf("%s %s %s — %s",
				shortSHA(item.SHA),
				dateOnly(item.Commit.Author.Date),
				item.Commit.Author.Name,
				firstLine(item.Commit.Message)))
		}
		if len(items) < commitsPerPage {
			break
		}
	}

	diff, err := c.getRaw(ctx, prURL, acceptDiff)
	if err != nil {
		return report.Bundle{}, err
	}

	return report.Bundle{
		Title:   title,
		Summary: fmt.Sprintf("Files changed: %d, insertions: %d, deletions: %d", meta.ChangedFiles, meta.Additions, meta.Deletions),
		Diff:    diff,
		Commits: commits,
	}, nil
}

// FetchCommit fetches a single commit's metadata and unified diff.
func (c *Client) FetchCommit(ctx context.Context, owner, repo, sha string) (report.Bundle, error) {
	commitURL := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.apiURL, owner, repo, sha)

	var meta commitMeta
	if err := c.getJSON(ctx, commitURL, &meta); err != nil {
		return report.Bundle{}, err
	}

	subject := firstLine(meta.Commit.Message)
	diff, err := c.getRaw(ctx, commitURL, acceptDiff)
	if err != nil {
		return report.Bundle{}, err
	}

	return report.Bundle{
		Title:   fmt.Sprintf("Commit %s — %s", shortSHA(sha), subject),
		Summary: fmt.Sprintf("Files changed: %d, insertions: %d, deletions: %d", len(meta.Files), meta.Stats.Additions, meta.Stats.Deletions),
		Diff:    diff,
		Commits: []string{fmt.Sprintf("%s %s %s — %s", shortSHA(sha), dateOnly(meta.Commit.Author.Date), meta.Commit.Author.Name, subject)},
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	body, err := c.getRaw(ctx, url, acceptJSON)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("parsing response from %s: %w", url, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, url, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP GET failed for %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d GET %s\n%s", resp.StatusCode, url, string(body))
	}
	return string(body), nil
}

// shortSHA abbreviates a commit hash to 7 characters.
func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// dateOnly truncates an RFC 3339 timestamp to its date portion.
func dateOnly(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}

// firstLine returns the subject line of a commit message.
func firstLine(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	return line
}
