package report

import (
	"strings"
	"testing"
)

const twoFileDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
+import "fmt"
diff --git a/util.go b/util.go
index 3333333..4444444 100644
--- a/util.go
+++ b/util.go
@@ -5,3 +5,4 @@
+func helper() {}
`

func TestSplitByFile(t *testing.T) {
	chunks := SplitByFile(twoFileDiff)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Filename != "main.go" {
		t.Errorf("chunks[0].Filename = %q, want main.go", chunks[0].Filename)
	}
	if chunks[1].Filename != "util.go" {
		t.Errorf("chunks[1].Filename = %q, want util.go", chunks[1].Filename)
	}
	if strings.Contains(chunks[0].Content, "diff --git") {
		t.Error("chunk content should not include the marker line")
	}
	if !strings.Contains(chunks[0].Content, `+import "fmt"`) {
		t.Errorf("chunks[0].Content missing hunk body: %q", chunks[0].Content)
	}
}

func TestSplitByFile_Empty(t *testing.T) {
	if chunks := SplitByFile(""); chunks != nil {
		t.Errorf("got %d chunks for empty diff, want none", len(chunks))
	}
}

func TestSplitByFile_Preamble(t *testing.T) {
	diff := "some preamble line\n" + twoFileDiff
	chunks := SplitByFile(diff)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3 (preamble + 2 files)", len(chunks))
	}
	if chunks[0].Filename != unknownFile {
		t.Errorf("preamble chunk filename = %q, want %q", chunks[0].Filename, unknownFile)
	}
}

func TestInferFilename(t *testing.T) {
	tests := []struct {
		name   string
		header string
		lines  []string
		want   string
	}{
		{
			"new path wins",
			"diff --git a/old.go b/new.go",
			[]string{"--- a/old.go", "+++ b/new.go"},
			"new.go",
		},
		{
			"deleted file falls back to old path",
			"diff --git a/gone.go b/gone.go",
			[]string{"--- a/gone.go", "+++ /dev/null"},
			"gone.go",
		},
		{
			"added file uses new path",
			"diff --git a/added.go b/added.go",
			[]string{"--- /dev/null", "+++ b/added.go"},
			"added.go",
		},
		{
			"header fallback",
			"diff --git a/x.go b/x.go",
			[]string{"Binary files differ"},
			"x.go",
		},
		{
			"nothing yields placeholder",
			"",
			[]string{"just text"},
			unknownFile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferFilename(tt.header, tt.lines)
			if got != tt.want {
				t.Errorf("inferFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripPrefix(t *testing.T) {
	if got := stripPrefix("b/pkg/main.go"); got != "pkg/main.go" {
		t.Errorf("stripPrefix = %q", got)
	}
	if got := stripPrefix("plain.go"); got != "plain.go" {
		t.Errorf("stripPrefix = %q", got)
	}
}

func TestFilterExcluded(t *testing.T) {
	diff := `diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
+import "fmt"
diff --git a/vendor/lib.go b/vendor/lib.go
--- a/vendor/lib.go
+++ b/vendor/lib.go
@@ -1,3 +1,4 @@
+package lib
`
	result := FilterExcluded(diff, []string{"vendor/**"})
	if strings.Contains(result, "vendor/lib.go") {
		t.Error("vendor/lib.go should be excluded")
	}
	if !strings.Contains(result, "main.go") {
		t.Error("main.go should be kept")
	}
}

func TestFilterExcluded_NoPatterns(t *testing.T) {
	if got := FilterExcluded(twoFileDiff, nil); got != twoFileDiff {
		t.Error("no patterns should leave the diff untouched")
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"vendor/lib.go", []string{"vendor/**"}, true},
		{"main.go", []string{"vendor/**"}, false},
		{"foo.gen.go", []string{"**/*.gen.go"}, true},
		{"pkg/foo.gen.go", []string{"**/*.gen.go"}, true},
		{"main.go", []string{"*.go"}, true},
	}
	for _, tt := range tests {
		got := MatchesAny(tt.path, tt.patterns)
		if got != tt.want {
			t.Errorf("MatchesAny(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}
