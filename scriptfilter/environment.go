package scriptfilter

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"howett.net/plist"
)

// Environment is the snapshot of the variables Alfred sets for a running
// workflow, see
// https://www.alfredapp.com/help/workflows/script-environment-variables/
type Environment struct {
	// Debug reports whether Alfred's debugger is open for this workflow.
	Debug           bool
	PreferencesFile string
	Version         string
	VersionBuild    string

	WorkflowName     string
	WorkflowVersion  string
	WorkflowBundleID string
	WorkflowUID      string

	// Cache and data directories for the workflow. Empty until Alfred
	// creates them on first use.
	WorkflowCache string
	WorkflowData  string
}

// FromEnv reads Alfred's variables from the process environment. It returns
// nil when the process is not running under Alfred.
func FromEnv() *Environment {
	if os.Getenv("alfred_version") == "" {
		return nil
	}

	return &Environment{
		Debug:            os.Getenv("alfred_debug") == "1",
		PreferencesFile:  os.Getenv("alfred_preferences"),
		Version:          os.Getenv("alfred_version"),
		VersionBuild:     os.Getenv("alfred_version_build"),
		WorkflowName:     os.Getenv("alfred_workflow_name"),
		WorkflowVersion:  os.Getenv("alfred_workflow_version"),
		WorkflowBundleID: os.Getenv("alfred_workflow_bundleid"),
		WorkflowUID:      os.Getenv("alfred_workflow_uid"),
		WorkflowCache:    expandOrEmpty(os.Getenv("alfred_workflow_cache")),
		WorkflowData:     expandOrEmpty(os.Getenv("alfred_workflow_data")),
	}
}

func expandOrEmpty(path string) string {
	if path == "" {
		return ""
	}
	if expanded, err := homedir.Expand(path); err == nil {
		return expanded
	}
	return path
}

// Preferences decodes Alfred's preferences bundle plist into a generic map.
func (e *Environment) Preferences() (map[string]interface{}, error) {
	f, err := os.Open(e.PreferencesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open Alfred preferences: %w", err)
	}
	defer f.Close()

	var prefs map[string]interface{}
	if err := plist.NewDecoder(f).Decode(&prefs); err != nil {
		return nil, fmt.Errorf("cannot decode Alfred preferences: %w", err)
	}
	return prefs, nil
}
