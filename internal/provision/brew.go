package provision

import (
	"fmt"
	"os/exec"
	"strings"

	"hebtex-setup/internal/logger"
)

// brewPath resolves the Homebrew binary on PATH. An empty result is the
// hard precondition failure that aborts the whole run.
func brewPath() string {
	path, err := exec.LookPath("brew")
	if err != nil {
		logger.Debug("[DEBUG] brew not resolvable on PATH: %v\n", err)
		return ""
	}
	return path
}

// brewVersion returns the first line of `brew --version`, or an empty
// string when the command fails.
func brewVersion() string {
	out, err := exec.Command("brew", "--version").Output()
	if err != nil {
		return ""
	}
	return firstLine(string(out))
}

// caskInstalled reports whether Homebrew knows the cask as installed.
// `brew list --cask <name>` exits non-zero for casks that are not.
func caskInstalled(name string) bool {
	cmd := exec.Command("brew", "list", "--cask", name)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.Run() == nil
}

// installCask installs a Homebrew cask, returning the command output in
// the error on failure.
func installCask(name string) error {
	cmd := exec.Command("brew", "install", "--cask", name)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("brew install --cask %s failed: %v\nOutput: %s", name, err, output)
	}
	logger.Debug("[DEBUG] brew install --cask %s output:\n%s\n", name, output)
	return nil
}

// firstLine returns the text before the first newline, trimmed. Version
// strings are parsed this way throughout: the tools print the version on
// line one and changelog noise after it.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
