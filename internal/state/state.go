package state

import (
	"encoding/json" // JSON encoding and decoding of the state file
	"os"
	"path/filepath"

	"hebtex-setup/internal/logger"
)

// CaskState records a Homebrew cask this tool installed.
// Casks found already present on the machine are never recorded here; the
// filesystem predicate, not this file, decides whether a step is satisfied.
type CaskState struct {
	Name             string `json:"name"`               // Cask name, e.g. "texstudio"
	InstalledBySetup bool   `json:"installed_by_setup"` // True when this tool performed the install
}

// FontState records a font archive this tool downloaded and the files it
// copied into the user font directory.
type FontState struct {
	URL   string   `json:"url"`   // Download URL used
	Files []string `json:"files"` // Installed font file paths
}

// ConfigFileState records a configuration or template file this tool wrote,
// together with the backup taken of any pre-existing version.
type ConfigFileState struct {
	Path   string `json:"path"`             // Written file path
	Backup string `json:"backup,omitempty"` // Timestamped backup of the prior version, if any
}

// State holds the record of everything this tool installed across runs.
// It is advisory: deleting the file never changes provisioning behavior,
// only what the tool can report about its own history.
type State struct {
	Casks   map[string]CaskState       `json:"casks"`
	Fonts   map[string]FontState       `json:"fonts"`
	Configs map[string]ConfigFileState `json:"configs"`
}

// Load reads the saved state from the JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty
// State. Maps are always non-nil so callers can assign without checks.
func Load(path string) *State {
	st := &State{}
	if file, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(file, st)
	}

	if st.Casks == nil {
		st.Casks = make(map[string]CaskState)
	}
	if st.Fonts == nil {
		st.Fonts = make(map[string]FontState)
	}
	if st.Configs == nil {
		st.Configs = make(map[string]ConfigFileState)
	}
	return st
}

// Save writes the given State to a JSON file at the given path, creating
// parent directories as needed. Errors are logged but not propagated: a
// failed state write must not fail a run whose provisioning succeeded.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("[ERROR] Failed to create state directory for %s: %v\n", path, err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))
	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
