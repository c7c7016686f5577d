// Package cli wires together the Cobra command tree for the aidiff binary.
//
// The root command runs the whole pipeline for one target: classify, fetch
// the diff bundle from GitHub or local git, post-process, assemble the
// Markdown report, and write it. Subcommands manage the config file and
// print the version. Errors from anywhere in the pipeline are printed once,
// with a failure marker, and map to exit code 1.
package cli
