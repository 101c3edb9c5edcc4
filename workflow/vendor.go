package workflow

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Vendor downloads the dependencies from the project's requirements.txt into
// workflow/vendored, so the workflow runs without touching the system
// interpreter's site-packages. With upgrade set, already-vendored packages
// are upgraded to the newest allowed versions.
func Vendor(projectRoot string, upgrade bool) error {
	vendored := filepath.Join(projectRoot, "workflow", "vendored")
	if err := os.MkdirAll(vendored, 0o755); err != nil {
		return err
	}

	args := []string{
		"-m", "pip", "install",
		"-r", filepath.Join(projectRoot, "requirements.txt"),
		"--target=" + vendored,
	}
	if upgrade {
		args = append(args, "--upgrade")
	}

	python := pythonExecutable()
	debugf("running pip: %s %s", python, strings.Join(args, " "))

	cmd := exec.Command(python, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to download dependencies: %w", err)
	}
	return nil
}

// pythonExecutable returns the interpreter used to run pip. PYFRED_PYTHON
// overrides the default for unusual installs.
func pythonExecutable() string {
	if python := os.Getenv("PYFRED_PYTHON"); python != "" {
		return python
	}
	return "python3"
}
