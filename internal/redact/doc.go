// Package redact scrubs secret-looking strings from diff text before it is
// written into a review report.
package redact
