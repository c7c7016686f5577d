package target

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Mode
	}{
		{"worktree literal", "WORKTREE", ModeWorktree},
		{"unstaged literal", "UNSTAGED", ModeUnstaged},
		{"pr url", "https://github.com/golang/go/pull/12345", ModePR},
		{"pr url http", "http://github.com/golang/go/pull/1", ModePR},
		{"pr url trailing segments", "https://github.com/golang/go/pull/42/files", ModePR},
		{"commit url", "https://github.com/golang/go/commit/abc1234", ModeCommitURL},
		{"commit url full sha", "https://github.com/o/r/commit/0123456789abcdef0123456789abcdef01234567", ModeCommitURL},
		{"two dot range", "main..feature", ModeRange},
		{"three dot range", "origin/main...HEAD", ModeRange},
		{"short sha", "abc1234", ModeCommitSHA},
		{"full sha", "0123456789abcdef0123456789abcdef01234567", ModeCommitSHA},
		{"branch name fallback", "feature/thing", ModeCommitSHA},
		{"tag fallback", "v1.2.3", ModeCommitSHA},
		{"six hex chars falls back to commit-ish", "abc123", ModeCommitSHA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			if got.Mode != tt.want {
				t.Errorf("Classify(%q).Mode = %q, want %q", tt.raw, got.Mode, tt.want)
			}
		})
	}
}

func TestClassify_PRCaptures(t *testing.T) {
	got := Classify("https://github.com/golang/go/pull/12345")
	if got.Owner != "golang" || got.Repo != "go" || got.Number != 12345 {
		t.Errorf("captures = %q/%q #%d, want golang/go #12345", got.Owner, got.Repo, got.Number)
	}
}

func TestClassify_CommitURLCaptures(t *testing.T) {
	got := Classify("https://github.com/dshills/aidiff/commit/deadbeefcafe")
	if got.Owner != "dshills" || got.Repo != "aidiff" || got.SHA != "deadbeefcafe" {
		t.Errorf("captures = %q/%q %q", got.Owner, got.Repo, got.SHA)
	}
}

func TestClassify_CommitURLShortHex(t *testing.T) {
	// 6 hex chars is below the minimum; falls through to commit-ish.
	got := Classify("https://github.com/o/r/commit/abc12")
	if got.Mode != ModeCommitSHA {
		t.Errorf("Mode = %q, want commit_sha fallback", got.Mode)
	}
}

func TestClassify_RangeCarriesRaw(t *testing.T) {
	got := Classify("v1.0.0..v2.0.0")
	if got.Range != "v1.0.0..v2.0.0" {
		t.Errorf("Range = %q", got.Range)
	}
}

func TestClassify_SHAPreserved(t *testing.T) {
	got := Classify("ABC1234def")
	if got.Mode != ModeCommitSHA || got.SHA != "ABC1234def" {
		t.Errorf("got %q/%q, want commit_sha with sha preserved", got.Mode, got.SHA)
	}
}
