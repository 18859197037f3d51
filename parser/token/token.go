package token

import "fmt"

// Token is a lexeme scanned from source text.  Text always contains the
// matched source text verbatim (string tokens keep their quote delimiters).
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used for the blisp lexer/reader.
const (
	INVALID Type = iota
	EOF

	// Atomic expressions & literals
	ATOM
	STRING

	COMMENT

	// The two-character quasiquote-splice marker ``~@''.  Scanned as its
	// own token even though no reader rule consumes it specially.
	SPLICE

	// Delimiters
	PAREN_L
	PAREN_R

	// Any other single structural character: brackets, braces, tilde, at,
	// caret, quote, backquote.
	MARK

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		EOF:     "EOF",
		ATOM:    "atom",
		STRING:  "string",
		COMMENT: ";",
		SPLICE:  "~@",
		PAREN_L: "(",
		PAREN_R: ")",
		MARK:    "mark",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location identifies where in a source line a token begins.
type Location struct {
	File string
	Pos  int
}

func (loc *Location) String() string {
	return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
}
