package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"howett.net/plist"
)

// infoPlist builds the Info.plist object graph for a freshly scaffolded
// workflow: a script-filter input wired to a copy-to-clipboard output, with
// the vendored directory on the PYTHONPATH so the script finds its
// dependencies without touching the system interpreter.
func infoPlist(opts ScaffoldOptions) map[string]interface{} {
	scriptUID := uuid.NewString()
	clipboardUID := uuid.NewString()

	return map[string]interface{}{
		"name":        opts.Name,
		"description": opts.Description,
		"bundleid":    opts.BundleID,
		"createdby":   opts.Author,
		"webaddress":  opts.Website,
		"version":     "0.0.1",
		"variables": map[string]interface{}{
			"PYTHONPATH": ".:vendored",
		},
		"uidata": []interface{}{},
		"connections": map[string]interface{}{
			scriptUID: []interface{}{
				map[string]interface{}{"destinationuid": clipboardUID},
			},
		},
		"objects": []interface{}{
			map[string]interface{}{
				"uid":  clipboardUID,
				"type": "alfred.workflow.output.clipboard",
				"config": map[string]interface{}{
					"clipboardtext": "{query}",
				},
			},
			map[string]interface{}{
				"uid":  scriptUID,
				"type": "alfred.workflow.input.scriptfilter",
				"config": map[string]interface{}{
					"keyword":    opts.Keyword,
					"scriptfile": "workflow.py",
					// Keyword should be followed by whitespace.
					"withspace": true,
					// Argument optional.
					"argumenttype":   1,
					"title":          "Search",
					"runningsubtext": "Loading...",
					// External script.
					"type": 8,
					// Terminate the previous run when a new one starts.
					"queuemode": 2,
					"queuedelayimmediatelyinitially": true,
					// Don't set argv when the query is empty.
					"argumenttreatemptyqueryasnil": true,
				},
			},
		},
	}
}

func writeInfoPlist(path string, opts ScaffoldOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := plist.NewEncoderForFormat(f, plist.XMLFormat)
	enc.Indent("\t")
	return enc.Encode(infoPlist(opts))
}

func readInfoPlist(projectRoot string) (map[string]interface{}, error) {
	f, err := os.Open(filepath.Join(projectRoot, "workflow", "Info.plist"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var info map[string]interface{}
	if err := plist.NewDecoder(f).Decode(&info); err != nil {
		return nil, fmt.Errorf("cannot decode Info.plist: %w", err)
	}
	return info, nil
}

// projectName returns the workflow name recorded in Info.plist, falling back
// to the project directory's name.
func projectName(projectRoot string) (string, error) {
	info, err := readInfoPlist(projectRoot)
	if err != nil {
		return "", err
	}
	if name, _ := info["name"].(string); name != "" {
		return name, nil
	}
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

// IsProjectRoot reports whether dir is the root of a scaffolded workflow
// project, i.e. contains workflow/Info.plist.
func IsProjectRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "workflow", "Info.plist"))
	return err == nil
}
