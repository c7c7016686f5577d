// Package report turns a fetched diff bundle into the final Markdown
// document.
//
// It splits a unified diff into per-file chunks on "diff --git" markers,
// infers each chunk's filename from the +++/---/marker lines, applies an
// optional line-count ceiling, drops sections matching exclude globs, and
// assembles the report with an optional reviewer-instructions block.
package report
