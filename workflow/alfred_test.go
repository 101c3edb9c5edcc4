package workflow

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"howett.net/plist"
)

// fakeHome points the package at a temporary home directory and restores the
// real lookup when the test finishes.
func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	orig := homeDir
	homeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { homeDir = orig })
	return home
}

func writePreferences(t *testing.T, home string, prefs map[string]interface{}) {
	t.Helper()
	path := filepath.Join(home, preferencesRelPath)
	qt.Assert(t, os.MkdirAll(filepath.Dir(path), 0o755), qt.IsNil)

	f, err := os.Create(path)
	qt.Assert(t, err, qt.IsNil)
	defer f.Close()
	// Alfred writes its preferences as a binary plist.
	qt.Assert(t, plist.NewEncoderForFormat(f, plist.BinaryFormat).Encode(prefs), qt.IsNil)
}

func TestSyncDir(t *testing.T) {
	t.Run("not-installed", func(t *testing.T) {
		fakeHome(t)
		_, err := SyncDir()
		qt.Check(t, err, qt.ErrorMatches, "Alfred doesn't appear to be installed.*")
	})

	t.Run("syncfolder-not-set", func(t *testing.T) {
		home := fakeHome(t)
		writePreferences(t, home, map[string]interface{}{"appearance": "dark"})
		_, err := SyncDir()
		qt.Check(t, err, qt.ErrorMatches, "Alfred's synchronisation directory is not set")
	})

	t.Run("syncfolder-missing", func(t *testing.T) {
		home := fakeHome(t)
		writePreferences(t, home, map[string]interface{}{
			"syncfolder": filepath.Join(home, "does-not-exist"),
		})
		_, err := SyncDir()
		qt.Check(t, err, qt.ErrorMatches, "cannot find Alfred's synchronisation directory.*")
	})

	t.Run("resolves", func(t *testing.T) {
		home := fakeHome(t)
		sync := filepath.Join(home, "Dropbox", "Alfred")
		qt.Assert(t, os.MkdirAll(sync, 0o755), qt.IsNil)
		writePreferences(t, home, map[string]interface{}{"syncfolder": sync})

		got, err := SyncDir()
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, got, qt.Equals, sync)
	})
}

func TestWorkflowsDir(t *testing.T) {
	home := fakeHome(t)
	sync := filepath.Join(home, "Alfred")
	qt.Assert(t, os.MkdirAll(sync, 0o755), qt.IsNil)
	writePreferences(t, home, map[string]interface{}{"syncfolder": sync})

	got, err := WorkflowsDir()
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, got, qt.Equals, filepath.Join(sync, "Alfred.alfredpreferences", "workflows"))
}
