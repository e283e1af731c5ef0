package main

import (
	"os"

	"hebtex-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The hebtex-setup project configures a macOS machine for Hebrew right-to-left
// typesetting in TeXstudio. A single run walks an ordered list of idempotent
// provisioning steps:
//   - Verifies that Homebrew is reachable (hard precondition; nothing runs without it)
//   - Installs the MacTeX distribution and the TeXstudio editor via Homebrew casks,
//     skipping anything already present on the machine
//   - Downloads and registers the Culmus Hebrew font family in the user's font directory
//   - Writes the TeXstudio preference and keybinding files for RTL editing, backing up
//     any pre-existing versions with a timestamp suffix
//   - Materializes two Hebrew document templates from a shared XeLaTeX header
//   - Runs a verification pass ending in a smoke-test compilation of a Hebrew document
//
// Error handling strategy:
//   - A missing package manager or a failed editor install aborts the run with exit
//     status 1; every other problem is a warning, aggregated into a final summary,
//     and leaves the exit status at 0
//   - Each step re-derives its own existence predicate from the filesystem, so
//     repeated runs only perform the work that is actually missing
//
// Integration points:
//   - Shells out to brew, fc-list, kpsewhich, and xelatex and relies on their exit
//     codes and stdout text
//   - Maintains a JSON state file recording what this tool itself installed, used
//     for reporting only; deleting it never changes behavior
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
