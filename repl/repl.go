package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/elbeno/blisp/lisp"
	"github.com/elbeno/blisp/parser/reader"
)

// DefaultPrompt is printed before each line of input.
const DefaultPrompt = "blisp> "

// RunRepl runs a simple repl.  Each line is fully read, evaluated and
// printed before the next line is accepted; a line producing no result
// prints nothing, and the loop always proceeds to the next line
// regardless of a line's outcome.  The loop terminates on end-of-input.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)
	lisp.InitializeUserEnv(env)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		v := reader.Read("repl", string(line))
		if v == nil {
			continue
		}
		if v.Type == lisp.LError {
			errln(v)
			continue
		}
		r := env.Eval(v)
		if r.Type == lisp.LError {
			errln(r)
			continue
		}
		fmt.Println(r)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
