package workflow

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
)

// LinkOptions control how the workflow is linked into Alfred.
type LinkOptions struct {
	// Relink removes an existing link and creates a fresh one.
	Relink bool
	// SamePath reuses the previous link path when relinking.
	SamePath bool
}

// Link creates a symlink to the project's workflow directory in Alfred's
// workflows directory and returns the link path. If a link already exists it
// is left alone unless Relink is set, which makes the operation idempotent.
func Link(projectRoot string, opts LinkOptions) (string, error) {
	wfDir := filepath.Join(projectRoot, "workflow")

	fi, err := os.Stat(wfDir)
	if err != nil {
		return "", fmt.Errorf("%s doesn't exist", wfDir)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory", wfDir)
	}

	workflows, err := WorkflowsDir()
	if err != nil {
		return "", err
	}

	return linkInto(workflows, wfDir, opts)
}

func linkInto(workflowsDir, wfDir string, opts LinkOptions) (string, error) {
	existing, err := findLink(workflowsDir, wfDir)
	if err != nil {
		return "", err
	}

	if existing != "" {
		if !opts.Relink {
			debugf("found existing link: %s", existing)
			return existing, nil
		}
		debugf("removing existing link: %s", existing)
		if err := os.Remove(existing); err != nil {
			return "", err
		}
	}

	linkPath := existing
	if !opts.SamePath || existing == "" {
		linkPath = filepath.Join(workflowsDir, "user.workflow."+strings.ToUpper(uuid.NewString()))
	}

	debugf("creating link: %s -> %s", linkPath, wfDir)
	if err := os.Symlink(wfDir, linkPath); err != nil {
		return "", err
	}

	// A link pointing at nothing is worse than no link.
	if _, err := os.Stat(linkPath); err != nil {
		os.Remove(linkPath)
		return "", fmt.Errorf("link %s does not resolve to %s", linkPath, wfDir)
	}

	return linkPath, nil
}

// findLink scans Alfred's workflows directory for a symlink resolving to
// target and returns its path, or "" if there is none.
func findLink(workflowsDir, target string) (string, error) {
	entries, err := os.ReadDir(workflowsDir)
	if err != nil {
		return "", fmt.Errorf("cannot find workflow directory: %w", err)
	}

	want := resolvePath(target)
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		linkPath := filepath.Join(workflowsDir, entry.Name())
		dst, err := os.Readlink(linkPath)
		if err != nil {
			continue
		}
		if expanded, err := homedir.Expand(dst); err == nil {
			dst = expanded
		}
		if !filepath.IsAbs(dst) {
			dst = filepath.Join(workflowsDir, dst)
		}
		if resolvePath(dst) == want {
			return linkPath, nil
		}
	}

	return "", nil
}

func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}
