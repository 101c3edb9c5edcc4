package workflow

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/go-git/go-git/v5"
)

//go:embed all:template
var templateFS embed.FS

// ScaffoldOptions describe the workflow to create.
type ScaffoldOptions struct {
	// Name of the workflow; becomes the project directory name.
	Name string
	// Keyword that triggers the workflow in Alfred.
	Keyword string
	// BundleID identifies the workflow, usually in reverse-DNS notation.
	BundleID    string
	Author      string
	Website     string
	Description string
	// InitGit creates a git repository in the new project.
	InitGit bool
}

func (o ScaffoldOptions) validate() error {
	if o.Name == "" {
		return fmt.Errorf("workflow name must not be empty")
	}
	if o.Name != filepath.Base(o.Name) {
		return fmt.Errorf("workflow name must not contain path separators: %q", o.Name)
	}
	if o.Keyword == "" {
		return fmt.Errorf("keyword must not be empty")
	}
	if o.BundleID == "" {
		return fmt.Errorf("bundle ID must not be empty")
	}
	return nil
}

// Scaffold creates a new workflow project under parentDir and returns its
// path. It refuses to touch an existing directory; nothing is written before
// that check succeeds.
func Scaffold(parentDir string, opts ScaffoldOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	dest := filepath.Join(parentDir, opts.Name)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("cannot create workflow: %s already exists", dest)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		return "", err
	}

	debugf("copying template to %s", dest)
	if err := copyTemplate(sub, dest, opts); err != nil {
		return "", fmt.Errorf("cannot create workflow: %w", err)
	}

	debugf("creating Info.plist")
	if err := writeInfoPlist(filepath.Join(dest, "workflow", "Info.plist"), opts); err != nil {
		return "", err
	}

	script := filepath.Join(dest, "workflow", "workflow.py")
	debugf("adding +x permission to %s", script)
	if fi, err := os.Stat(script); err == nil {
		if err := os.Chmod(script, fi.Mode()|0o111); err != nil {
			return "", err
		}
	}

	if opts.InitGit {
		debugf("initialising git repository")
		if _, err := git.PlainInit(dest, false); err != nil {
			log.Println("failed to create git repository, ignoring:", err)
		}
	}

	return dest, nil
}

// copyTemplate renders every file of the template filesystem into dest. Both
// file contents and file names are template documents with access to the
// scaffold options.
func copyTemplate(fsys fs.FS, dest string, opts ScaffoldOptions) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name, err := render("path", path, opts)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(string(name)))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		rendered, err := render(path, string(content), opts)
		if err != nil {
			return err
		}

		debugf("writing %s", target)
		return os.WriteFile(target, rendered, 0o644)
	})
}

func render(name, text string, opts ScaffoldOptions) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("bad template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("cannot render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
