package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every location and identifier the provisioning pipeline
// touches. The zero configuration is never used directly; Default() fills
// in the same hardcoded values the original setup script used, and an
// optional YAML file can override individual fields.
type Config struct {
	// TeXCask and EditorCask are the Homebrew cask names for the TeX
	// distribution and the document editor.
	TeXCask    string `yaml:"tex_cask"`
	EditorCask string `yaml:"editor_cask"`

	// EditorAppPath is the installed application bundle whose presence
	// marks the editor install as already satisfied.
	EditorAppPath string `yaml:"editor_app_path"`

	// TeXBinDir is where MacTeX symlinks its binaries. xelatex is looked
	// up here when PATH has not been refreshed after an install.
	TeXBinDir string `yaml:"tex_bin_dir"`

	// FontArchiveURL is the fixed HTTPS location of the Hebrew font
	// archive. No mirrors, no checksum; matching the original script.
	FontArchiveURL string `yaml:"font_archive_url"`

	// FontMarker is the family name whose presence in the fc-list output
	// means the fonts are already registered.
	FontMarker string `yaml:"font_marker"`

	// FontPatterns are the filename globs copied out of the extracted
	// archive into FontsDir.
	FontPatterns []string `yaml:"font_patterns"`

	// FontsDir is the per-user font directory.
	FontsDir string `yaml:"fonts_dir"`

	// AppSupportDir is the editor's per-user configuration directory,
	// receiving the preference, keybinding, and template files.
	AppSupportDir string `yaml:"app_support_dir"`

	// StatePath is the JSON state file recording what this tool itself
	// installed. Reporting only; predicates stay filesystem-derived.
	StatePath string `yaml:"state_path"`
}

// Default returns the built-in configuration. Running with these values is
// byte-for-byte equivalent to the original hardcoded script.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory none of the per-user paths can exist;
		// fall back to relative paths so the error surfaces at first use.
		home = "."
	}
	return &Config{
		TeXCask:        "mactex",
		EditorCask:     "texstudio",
		EditorAppPath:  "/Applications/texstudio.app",
		TeXBinDir:      "/Library/TeX/texbin",
		FontArchiveURL: "https://downloads.sourceforge.net/project/culmus/culmus/0.133/culmus-0.133.tar.gz",
		FontMarker:     "David CLM",
		FontPatterns:   []string{"*.ttf", "*.otf"},
		FontsDir:       filepath.Join(home, "Library", "Fonts"),
		AppSupportDir:  filepath.Join(home, "Library", "Application Support", "TeXstudio"),
		StatePath:      filepath.Join(home, "Library", "Application Support", "hebtex-setup", "state.json"),
	}
}

// Load returns the default configuration, with fields overridden by the
// YAML file at path when one is given. Only keys present in the file are
// replaced; an empty path returns Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
