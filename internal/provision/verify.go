package provision

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"hebtex-setup/internal/logger"
)

// smokeDocument is the fixed sample compiled by the smoke test. It uses
// the same header as the generated templates, so a passing compile proves
// the fonts, the Hebrew language support, and the engine all work together.
const smokeDocument = documentHeader + `\begin{document}
בדיקת עשן: אם המסמך הזה הודר בהצלחה, הסביבה מוכנה לעבודה.
\end{document}
`

// texSupportFiles are the style files the templates depend on, resolved
// through kpsewhich during verification.
var texSupportFiles = []string{"polyglossia.sty", "bidi.sty", "fontspec.sty"}

// Verify re-derives every install predicate and finishes with the smoke
// compile. All failures are warnings: verification reports, it never
// aborts. The returned results use the same statuses as provisioning steps
// so the caller can summarize both the same way.
func (p *Provisioner) Verify() []Result {
	logger.Info("[INFO] Running verification pass...\n")
	var results []Result

	check := func(name string, ok bool, okMsg, failMsg string) {
		if ok {
			logger.Ok("[OK] %s: %s\n", name, okMsg)
			results = append(results, Result{Step: name, Status: StatusSatisfied, Message: okMsg})
		} else {
			logger.Warn("[WARN] %s: %s\n", name, failMsg)
			results = append(results, Result{Step: name, Status: StatusSoftFailed, Message: failMsg})
		}
	}

	if v := brewVersion(); v != "" {
		check("verify-brew", true, v, "")
	} else {
		check("verify-brew", false, "", "brew not runnable on PATH")
	}

	if v := p.xelatexVersion(); v != "" {
		check("verify-xelatex", true, v, "")
	} else {
		check("verify-xelatex", false, "", "xelatex not found on PATH or in "+p.cfg.TeXBinDir+"; open a new shell after installing MacTeX")
	}

	for _, cask := range []string{p.cfg.TeXCask, p.cfg.EditorCask} {
		check("verify-cask-"+cask, caskInstalled(cask),
			"installed", "cask not reported installed by brew")
	}

	for _, sty := range texSupportFiles {
		check("verify-"+sty, kpsewhichFinds(sty),
			"found", "not resolvable via kpsewhich")
	}

	check("verify-fonts", p.fontRegistered(),
		p.cfg.FontMarker+" registered", p.cfg.FontMarker+" not in fc-list output")

	if err := p.smokeTest(); err != nil {
		check("verify-compile", false, "", fmt.Sprintf("smoke-test compilation failed: %v", err))
	} else {
		check("verify-compile", true, "Hebrew sample document compiled", "")
	}

	return results
}

// xelatexVersion returns the first line of `xelatex --version`, looking in
// the MacTeX bin directory when PATH does not resolve it (a fresh install
// only reaches PATH in a new shell).
func (p *Provisioner) xelatexVersion() string {
	bin := p.xelatexBin()
	if bin == "" {
		return ""
	}
	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		return ""
	}
	return firstLine(string(out))
}

// xelatexBin resolves the xelatex binary, preferring PATH and falling back
// to the fixed MacTeX bin directory. Empty when neither works.
func (p *Provisioner) xelatexBin() string {
	if path, err := exec.LookPath("xelatex"); err == nil {
		return path
	}
	fixed := filepath.Join(p.cfg.TeXBinDir, "xelatex")
	if _, err := os.Stat(fixed); err == nil {
		return fixed
	}
	return ""
}

// kpsewhichFinds reports whether the TeX file database can resolve the
// given support file.
func kpsewhichFinds(name string) bool {
	out, err := exec.Command("kpsewhich", name).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// smokeTest writes the fixed Hebrew sample document to a temporary
// directory, compiles it non-interactively, and checks both the exit
// status and the produced PDF. The directory is removed regardless of
// outcome.
func (p *Provisioner) smokeTest() error {
	bin := p.xelatexBin()
	if bin == "" {
		return fmt.Errorf("xelatex not available")
	}

	tmpDir, err := os.MkdirTemp("", "hebtex-smoke-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			logger.Warn("[WARN] Failed to remove temp dir %s: %v\n", tmpDir, rerr)
		}
	}()

	texPath := filepath.Join(tmpDir, "smoke.tex")
	if err := os.WriteFile(texPath, []byte(smokeDocument), 0644); err != nil {
		return fmt.Errorf("failed to write sample document: %w", err)
	}

	cmd := exec.Command(bin, "-interaction=nonstopmode", "-halt-on-error", "smoke.tex")
	cmd.Dir = tmpDir
	logger.Debug("[DEBUG] Running command: %s (in %s)\n", strings.Join(cmd.Args, " "), tmpDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Debug("[DEBUG] xelatex output:\n%s\n", output)
		return fmt.Errorf("xelatex exited with error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "smoke.pdf")); err != nil {
		return fmt.Errorf("compilation produced no PDF")
	}
	return nil
}
