package provision

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hebtex-setup/internal/logger"
	"hebtex-setup/internal/state"
)

// backupTimestampFormat is the suffix stamped onto backups of pre-existing
// configuration files. Backups accumulate across runs; nothing prunes them.
const backupTimestampFormat = "20060102-150405"

// The editor configuration payloads. Both follow TeXstudio's plain-text
// syntax and are written verbatim, never parsed: their format is the
// editor's concern, not ours.

// preferencesFile / preferencesPayload: flat directive-per-line settings
// switching the editor into Hebrew RTL mode with the Culmus fonts.
const preferencesFile = "hebrew-rtl.ini"

const preferencesPayload = `Editor/Line-Flow=rtl
Editor/Hack-Render-Mode=1
Editor/Font-Family=David CLM
Editor/Font-Size=14
Editor/Auto-Detect-RTL=true
Internal-PDF-Viewer/Paper-Direction=rtl
Tools/Commands/compile=xelatex -synctex=1 -interaction=nonstopmode %.tex
Tools/Commands/quick=txs:///compile | txs:///view-pdf
Spell/Language=he_IL
Language/Interface=en
`

// keybindingsFile / keybindingsPayload: editor shortcut overrides for
// switching text direction and inserting Hebrew-specific markup.
const keybindingsFile = "hebrew-keybindings.txt"

const keybindingsPayload = `editor/toggle-direction=Ctrl+Shift+D
editor/insert-rl-mark=Ctrl+Shift+R
editor/insert-lr-mark=Ctrl+Shift+L
editor/insert-hebrew-env=Ctrl+Shift+H
main/tools/compile=F5
main/tools/view-pdf=F7
`

// configFiles returns the two configuration payloads keyed by their final
// path under the editor's application-support directory.
func (p *Provisioner) configFiles() map[string]string {
	return map[string]string{
		filepath.Join(p.cfg.AppSupportDir, preferencesFile): preferencesPayload,
		filepath.Join(p.cfg.AppSupportDir, keybindingsFile): keybindingsPayload,
	}
}

// configsCurrent reports whether every configuration file already exists
// with exactly the canonical content.
func (p *Provisioner) configsCurrent() bool {
	for path, content := range p.configFiles() {
		if !fileHasContent(path, content) {
			return false
		}
	}
	return true
}

// writeConfigs materializes the configuration files, backing up any
// existing divergent version with a timestamp suffix first. Files already
// holding the canonical content are left untouched, so repeated runs do
// not churn backups.
func (p *Provisioner) writeConfigs() error {
	for path, content := range p.configFiles() {
		if fileHasContent(path, content) {
			logger.Debug("[DEBUG] Config %s already current\n", path)
			continue
		}
		backup, err := writeFileWithBackup(path, content)
		if err != nil {
			return err
		}
		p.st.Configs[filepath.Base(path)] = state.ConfigFileState{Path: path, Backup: backup}
	}
	return nil
}

// writeFileWithBackup writes content to path, first copying any existing
// file aside with a timestamp suffix. It returns the backup path, empty
// when no prior version existed.
func writeFileWithBackup(path, content string) (string, error) {
	var backup string
	if _, err := os.Stat(path); err == nil {
		backup = fmt.Sprintf("%s.bak-%s", path, time.Now().Format(backupTimestampFormat))
		if err := copyFile(path, backup, 0); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		logger.Info("[INFO] Backed up existing %s to %s\n", filepath.Base(path), filepath.Base(backup))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("[INFO] Wrote %s\n", path)
	return backup, nil
}

// fileHasContent reports whether path exists and holds exactly content.
func fileHasContent(path, content string) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Equal(raw, []byte(content))
}
