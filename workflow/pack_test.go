package workflow

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

func packTestProject(t *testing.T) string {
	t.Helper()
	dir, err := Scaffold(t.TempDir(), testOptions())
	qt.Assert(t, err, qt.IsNil)

	// Sprinkle in things the packager must leave out.
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "workflow", ".DS_Store"), []byte("junk"), 0o644), qt.IsNil)
	qt.Assert(t, os.MkdirAll(filepath.Join(dir, "workflow", ".idea"), 0o755), qt.IsNil)
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "workflow", ".idea", "project.iml"), []byte("ide"), 0o644), qt.IsNil)

	// And something the packager must keep.
	qt.Assert(t, os.MkdirAll(filepath.Join(dir, "workflow", "vendored", "dep"), 0o755), qt.IsNil)
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "workflow", "vendored", "dep", "__init__.py"), []byte("pass\n"), 0o644), qt.IsNil)

	return dir
}

func archiveMembers(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	qt.Assert(t, err, qt.IsNil)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestArchive(t *testing.T) {
	dir := packTestProject(t)

	out, err := Archive(dir)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, out, qt.Equals, filepath.Join(dir, "dist", "amazing.alfredworkflow"))

	qt.Check(t, archiveMembers(t, out), qt.DeepEquals, []string{
		"Info.plist",
		"vendored/dep/__init__.py",
		"workflow.py",
	})
}

func TestArchiveIsReproducible(t *testing.T) {
	dir := packTestProject(t)

	first, err := Archive(dir)
	qt.Assert(t, err, qt.IsNil)
	firstMembers := archiveMembers(t, first)

	second, err := Archive(dir)
	qt.Assert(t, err, qt.IsNil)

	qt.Check(t, second, qt.Equals, first)
	qt.Check(t, archiveMembers(t, second), qt.DeepEquals, firstMembers)
}

func TestProjectName(t *testing.T) {
	dir := packTestProject(t)

	name, err := projectName(dir)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, name, qt.Equals, "amazing")

	t.Run("without-info-plist", func(t *testing.T) {
		_, err := projectName(t.TempDir())
		qt.Check(t, err, qt.IsNotNil)
	})
}

func TestIsProjectRoot(t *testing.T) {
	dir := packTestProject(t)
	qt.Check(t, IsProjectRoot(dir), qt.IsTrue)
	qt.Check(t, IsProjectRoot(t.TempDir()), qt.IsFalse)
}
