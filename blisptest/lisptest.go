// Package blisptest provides a table-driven harness for evaluator tests.
package blisptest

import (
	"testing"

	"github.com/elbeno/blisp/lisp"
	"github.com/elbeno/blisp/parser/reader"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in a shared environment.  Result is the printed form of
// the evaluated expression; errors compare against their diagnostic text
// and a line producing no form compares against the empty string.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewTestEnv returns a base environment for use in tests.
func NewTestEnv() *lisp.LEnv {
	env := lisp.NewEnv(nil)
	lisp.InitializeUserEnv(env)
	return env
}

// RunTestSuite runs each TestSequence in tests on isolated environments.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := NewTestEnv()
		for j, expr := range test.TestSequence {
			v := reader.Read("test", expr.Expr)
			result := ""
			if v != nil {
				if r := env.Eval(v); r != nil {
					result = r.String()
				}
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)",
					i, test.Name, j, expr.Result, result)
			}
		}
	}
}
