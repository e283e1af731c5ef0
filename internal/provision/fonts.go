package provision

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"hebtex-setup/internal/logger"
	"hebtex-setup/internal/state"
)

// fontRegistered reports whether the marker font family appears in the
// fc-list output. fc-list is the font-list query tool MacTeX ships, so it
// is available whenever the TeX step ran.
func (p *Provisioner) fontRegistered() bool {
	out, err := exec.Command("fc-list", ":", "family").Output()
	if err != nil {
		logger.Debug("[DEBUG] fc-list failed: %v\n", err)
		return false
	}
	return strings.Contains(string(out), p.cfg.FontMarker)
}

// installFonts downloads the font archive, extracts it, and copies every
// matching font file into the user font directory. The temporary
// extraction directory is removed unconditionally. Copying zero files out
// of a successfully extracted archive is an explicit error: a silently
// empty copy would mask a renamed or restructured archive.
func (p *Provisioner) installFonts() error {
	tmpDir, err := os.MkdirTemp("", "hebtex-fonts-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			logger.Warn("[WARN] Failed to remove temp dir %s: %v\n", tmpDir, rerr)
		}
	}()

	archivePath := filepath.Join(tmpDir, path.Base(p.cfg.FontArchiveURL))
	logger.Info("[INFO] Downloading font archive %s\n", p.cfg.FontArchiveURL)
	if err := downloadFile(p.cfg.FontArchiveURL, archivePath); err != nil {
		return err
	}

	extracted, err := extractArchive(archivePath, tmpDir)
	if err != nil {
		return fmt.Errorf("failed to extract font archive: %w", err)
	}
	logger.Debug("[DEBUG] Extracted font archive to %s\n", extracted)

	fonts, err := collectFontFiles(extracted, p.cfg.FontPatterns)
	if err != nil {
		return fmt.Errorf("failed to scan extracted archive: %w", err)
	}
	if len(fonts) == 0 {
		return fmt.Errorf("archive %s contained no files matching %v", path.Base(archivePath), p.cfg.FontPatterns)
	}

	if err := os.MkdirAll(p.cfg.FontsDir, 0755); err != nil {
		return fmt.Errorf("failed to create fonts dir %s: %w", p.cfg.FontsDir, err)
	}

	var installed []string
	for _, src := range fonts {
		dst := filepath.Join(p.cfg.FontsDir, filepath.Base(src))
		if err := copyFile(src, dst, 0644); err != nil {
			return fmt.Errorf("failed to copy font %s: %w", filepath.Base(src), err)
		}
		installed = append(installed, dst)
	}
	logger.Info("[INFO] Copied %d font files into %s\n", len(installed), p.cfg.FontsDir)

	p.st.Fonts[p.cfg.FontMarker] = state.FontState{
		URL:   p.cfg.FontArchiveURL,
		Files: installed,
	}
	return nil
}

// copyFile copies a file from src to dst, creating missing directories in
// the destination path. A non-zero modeOverride replaces the source mode.
func copyFile(src, dst string, modeOverride os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	if modeOverride != 0 {
		err = os.Chmod(dst, modeOverride)
	} else if stat, err2 := os.Stat(src); err2 == nil {
		err = os.Chmod(dst, stat.Mode())
	}
	return err
}
