package scriptfilter

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Handler is the entry point of a script filter. It receives the path the
// script was invoked as, the arguments Alfred passed after it, and the Alfred
// environment (nil outside Alfred).
type Handler func(scriptPath string, args []string, env *Environment) (*Output, error)

// Run invokes fn once and writes its output to stdout. Any error terminates
// the process with a non-zero status; Alfred shows the log output in its
// debugger. Debug logging is enabled when Alfred's debugger is open, or when
// running outside Alfred entirely.
func Run(fn Handler) {
	env := FromEnv()
	if err := run(fn, os.Args[0], os.Args[1:], env, os.Stdout); err != nil {
		log.Fatalln("script filter failed:", err)
	}
}

func run(fn Handler, scriptPath string, args []string, env *Environment, w io.Writer) error {
	if env != nil && !env.Debug {
		log.SetOutput(io.Discard)
	}

	log.Println("running workflow script:", scriptPath)
	log.Println("arguments:", args)

	out, err := fn(scriptPath, args, env)
	if err != nil {
		return err
	}
	if out == nil {
		return fmt.Errorf("handler returned no output")
	}

	return out.Emit(w)
}
