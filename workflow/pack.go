package workflow

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Development artifacts that have no business in a distributed workflow.
var packageExclusions = map[string]bool{
	"requirements.txt": true,
	".idea":            true,
	".vscode":          true,
	".git":             true,
	".DS_Store":        true,
}

// Archive zips the project's workflow directory into
// dist/<name>.alfredworkflow and returns the archive path. Re-running
// replaces the previous archive.
func Archive(projectRoot string) (string, error) {
	name, err := projectName(projectRoot)
	if err != nil {
		return "", err
	}

	distDir := filepath.Join(projectRoot, "dist")
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return "", err
	}

	outPath := filepath.Join(distDir, name+".alfredworkflow")
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	wfDir := filepath.Join(projectRoot, "workflow")

	err = filepath.WalkDir(wfDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == wfDir {
			return nil
		}
		if packageExclusions[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(wfDir, path)
		if err != nil {
			return err
		}

		debugf("adding to package: %s", rel)
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		return "", err
	}

	if err := zw.Close(); err != nil {
		return "", err
	}
	return outPath, nil
}
