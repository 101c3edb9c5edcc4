package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"howett.net/plist"
)

// Alfred stores its global preferences in a binary plist under the user's
// Library directory. The "syncfolder" key in it points at the directory
// holding the Alfred.alfredpreferences bundle, which in turn contains the
// installed workflows.
const preferencesRelPath = "Library/Preferences/com.runningwithcrayons.Alfred-Preferences.plist"

// Swapped out in tests.
var homeDir = homedir.Dir

// SyncDir returns the directory Alfred synchronises its preferences to.
func SyncDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}

	prefsPath := filepath.Join(home, preferencesRelPath)
	f, err := os.Open(prefsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("Alfred doesn't appear to be installed (no preferences at %s)", prefsPath)
		}
		return "", err
	}
	defer f.Close()

	var prefs map[string]interface{}
	if err := plist.NewDecoder(f).Decode(&prefs); err != nil {
		return "", fmt.Errorf("cannot decode Alfred preferences: %w", err)
	}

	folder, _ := prefs["syncfolder"].(string)
	if folder == "" {
		return "", fmt.Errorf("Alfred's synchronisation directory is not set")
	}

	expanded, err := homedir.Expand(folder)
	if err != nil {
		return "", err
	}

	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
		return "", fmt.Errorf("cannot find Alfred's synchronisation directory at %s", expanded)
	}

	return expanded, nil
}

// WorkflowsDir returns the directory Alfred installs workflows into.
func WorkflowsDir() (string, error) {
	sync, err := SyncDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(sync, "Alfred.alfredpreferences", "workflows"), nil
}
