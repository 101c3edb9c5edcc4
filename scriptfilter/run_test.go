package scriptfilter

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRun(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	t.Run("writes-output", func(t *testing.T) {
		fn := func(scriptPath string, args []string, env *Environment) (*Output, error) {
			qt.Check(t, scriptPath, qt.Equals, "./workflow")
			qt.Check(t, args, qt.DeepEquals, []string{"hello"})
			return &Output{Items: Items{{Title: "Hello Alfred!"}}}, nil
		}

		var buf bytes.Buffer
		err := run(fn, "./workflow", []string{"hello"}, nil, &buf)
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, buf.String(), qt.Equals, `{"items":[{"title":"Hello Alfred!"}]}`+"\n")
	})

	t.Run("propagates-handler-error", func(t *testing.T) {
		fn := func(string, []string, *Environment) (*Output, error) {
			return nil, fmt.Errorf("boom")
		}
		err := run(fn, "x", nil, nil, &bytes.Buffer{})
		qt.Check(t, err, qt.ErrorMatches, "boom")
	})

	t.Run("rejects-nil-output", func(t *testing.T) {
		fn := func(string, []string, *Environment) (*Output, error) {
			return nil, nil
		}
		err := run(fn, "x", nil, nil, &bytes.Buffer{})
		qt.Check(t, err, qt.ErrorMatches, "handler returned no output")
	})

	t.Run("rejects-invalid-output", func(t *testing.T) {
		fn := func(string, []string, *Environment) (*Output, error) {
			return &Output{Items: Items{{}}}, nil
		}
		err := run(fn, "x", nil, nil, &bytes.Buffer{})
		qt.Check(t, err, qt.ErrorMatches, "item title must be set")
	})

	t.Run("receives-environment", func(t *testing.T) {
		env := &Environment{Debug: true, WorkflowName: "test"}
		fn := func(_ string, _ []string, got *Environment) (*Output, error) {
			qt.Check(t, got, qt.Equals, env)
			return &Output{Items: Items{{Title: "ok"}}}, nil
		}
		err := run(fn, "x", nil, env, &bytes.Buffer{})
		qt.Check(t, err, qt.IsNil)
	})
}
