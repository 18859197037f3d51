package reader

import (
	"testing"

	"github.com/elbeno/blisp/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		text string
		typ  lisp.LType
		out  string
	}{
		{"42", lisp.LNumber, "42"},
		{"007", lisp.LNumber, "7"},
		{"true", lisp.LBool, "true"},
		{"false", lisp.LBool, "false"},
		{"nil", lisp.LSymbol, "nil"},
		{"foo", lisp.LSymbol, "foo"},
		{"-5", lisp.LSymbol, "-5"},
		{"set!", lisp.LSymbol, "set!"},
		{`"hello"`, lisp.LString, `"hello"`},
		{"()", lisp.LNil, "nil"},
		{"(+ 1 2)", lisp.LList, "(+ 1 2)"},
		{"(let (x 5) (+ x 1))", lisp.LList, "(let (x 5) (+ x 1))"},
		{"(a (b (c)))", lisp.LList, "(a (b (c)))"},
		{"(a ())", lisp.LList, "(a nil)"}, // only an empty parsed list folds to nil
		{"~@", lisp.LSymbol, "~@"},
		{"'", lisp.LSymbol, "'"},
		{"42 43 44", lisp.LNumber, "42"}, // trailing tokens are ignored
	}
	for _, test := range tests {
		v := Read("test", test.text)
		require.NotNil(t, v, "text: %q", test.text)
		assert.Equal(t, test.typ, v.Type, "text: %q", test.text)
		assert.Equal(t, test.out, v.String(), "text: %q", test.text)
	}
}

func TestReadNoForm(t *testing.T) {
	assert.Nil(t, Read("test", ""))
	assert.Nil(t, Read("test", "   \t "))
	assert.Nil(t, Read("test", "; just a comment"))
	assert.Nil(t, Read("test", "  ; just a comment"))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		text string
		msg  string
	}{
		{"(", "test[0]: unterminated read (list)"},
		{"(+ 1 2", "test[5]: unterminated read (list)"},
		{"(a (b c)", "test[7]: unterminated read (list)"},
		{"(1 ; comment eats the close paren )", "test[3]: unterminated read (list)"},
		{"99999999999999999999", "test[0]: bad number: 99999999999999999999"},
	}
	for _, test := range tests {
		v := Read("test", test.text)
		require.NotNil(t, v, "text: %q", test.text)
		require.Equal(t, lisp.LError, v.Type, "text: %q", test.text)
		assert.EqualError(t, lisp.GoError(v), test.msg, "text: %q", test.text)
	}
}

func TestReadStringEscapes(t *testing.T) {
	tests := []struct {
		text    string
		decoded string
	}{
		{`"a\nb"`, "a\nb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		{`"a\qb"`, "aqb"}, // unrecognized escapes pass the character through
		{`""`, ""},
	}
	for _, test := range tests {
		v := Read("test", test.text)
		require.NotNil(t, v, "text: %q", test.text)
		require.Equal(t, lisp.LString, v.Type, "text: %q", test.text)
		assert.Equal(t, test.decoded, v.Str, "text: %q", test.text)
	}
}

// Printing a form and re-reading the printed text yields a form with the
// same print output.
func TestReadPrintRoundTrip(t *testing.T) {
	tests := []string{
		"42",
		"true",
		"false",
		"nil",
		"foo",
		`"hello\nworld"`,
		"()",
		"(+ 1 2)",
		"(let (x 5) (+ x (* 2 3)))",
		`(concat "a\"b" "c")`,
	}
	for _, text := range tests {
		v := Read("test", text)
		require.NotNil(t, v, "text: %q", text)
		w := Read("test", v.String())
		require.NotNil(t, w, "printed: %q", v.String())
		assert.Equal(t, v.String(), w.String(), "text: %q", text)
	}
}
