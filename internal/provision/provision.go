// Package provision implements the ordered, independently idempotent steps
// that configure a macOS machine for Hebrew typesetting: Homebrew
// precondition, MacTeX and TeXstudio cask installs, Hebrew font
// registration, editor configuration, template materialization, and a
// final verification pass with a smoke-test compilation.
package provision

import (
	"fmt"
	"os"

	"hebtex-setup/internal/config"
	"hebtex-setup/internal/state"
)

// Provisioner binds the provisioning steps to a configuration and the
// record of what previous runs installed.
type Provisioner struct {
	cfg *config.Config
	st  *state.State
}

// New returns a Provisioner for the given configuration and state.
func New(cfg *config.Config, st *state.State) *Provisioner {
	return &Provisioner{cfg: cfg, st: st}
}

// Steps returns the provisioning pipeline in execution order. Only the
// Homebrew precondition and the editor install are fatal; everything else
// degrades to a warning so one missing optional piece does not abandon the
// rest of the machine setup.
func (p *Provisioner) Steps() []Step {
	return []Step{
		{
			Name:  "homebrew",
			Fatal: true,
			Check: func() (bool, string) {
				if path := brewPath(); path != "" {
					return true, "brew found at " + path
				}
				return false, "Homebrew is not installed or not on PATH; install it from https://brew.sh first"
			},
			// No Run: a missing package manager cannot be fixed here.
		},
		{
			Name: "tex-distribution",
			Check: func() (bool, string) {
				if bin := p.xelatexBin(); bin != "" {
					return true, "xelatex found at " + bin
				}
				return false, "xelatex not on PATH or in " + p.cfg.TeXBinDir + "; open a new shell to refresh PATH"
			},
			Run: func() error {
				return p.installTeX()
			},
		},
		{
			Name:  "editor",
			Fatal: true,
			Check: func() (bool, string) {
				if _, err := os.Stat(p.cfg.EditorAppPath); err == nil {
					return true, p.cfg.EditorAppPath + " present"
				}
				return false, p.cfg.EditorAppPath + " missing"
			},
			Run: func() error {
				if err := installCask(p.cfg.EditorCask); err != nil {
					return err
				}
				p.st.Casks[p.cfg.EditorCask] = state.CaskState{Name: p.cfg.EditorCask, InstalledBySetup: true}
				return nil
			},
		},
		{
			Name: "hebrew-fonts",
			Check: func() (bool, string) {
				if p.fontRegistered() {
					return true, p.cfg.FontMarker + " already registered"
				}
				return false, p.cfg.FontMarker + " not in fc-list output"
			},
			Run: func() error {
				return p.installFonts()
			},
		},
		{
			Name: "editor-config",
			Check: func() (bool, string) {
				if p.configsCurrent() {
					return true, "configuration files current"
				}
				return false, "configuration files missing or outdated"
			},
			Run: func() error {
				return p.writeConfigs()
			},
		},
		{
			Name: "templates",
			Check: func() (bool, string) {
				if p.templatesCurrent() {
					return true, "template documents current"
				}
				return false, "template documents missing or outdated"
			},
			Run: func() error {
				return p.writeTemplates()
			},
		},
	}
}

// installTeX installs the MacTeX cask unless brew already lists it. brew
// listing the cask while xelatex stays unresolvable means the install is
// fine and only the current shell's PATH is stale, so that case is not an
// error; the step's re-check turns it into a warning instead.
func (p *Provisioner) installTeX() error {
	if !caskInstalled(p.cfg.TeXCask) {
		if err := installCask(p.cfg.TeXCask); err != nil {
			return err
		}
		p.st.Casks[p.cfg.TeXCask] = state.CaskState{Name: p.cfg.TeXCask, InstalledBySetup: true}
	}
	return nil
}

// Run executes the full pipeline and returns the per-step results. The
// error is non-nil only on a hard failure (missing Homebrew, failed editor
// install), in which case later steps did not run.
func (p *Provisioner) Run() ([]Result, error) {
	results, err := Execute(p.Steps())
	if err != nil {
		return results, fmt.Errorf("provisioning aborted: %w", err)
	}
	return results, nil
}
