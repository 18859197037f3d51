// Package lexer converts a line of source text into an ordered token
// sequence in a single regular-grammar pass.  Scanning never fails; source
// text that matches no alternative is dropped.
package lexer

import (
	"regexp"

	"github.com/elbeno/blisp/parser/token"
)

// tokenPattern lists the lexical alternatives in priority order.  Leading
// whitespace and commas are separators and are not emitted.
const tokenPattern = `[\s,]*` +
	`(~@` + // quasiquote-splice marker
	`|[\[\]{}()~@^'` + "`" + `]` + // single structural characters
	`|"(?:\\.|[^\\"])*"` + // string, including both delimiters
	`|;.*` + // comment through end of line
	`|[^\s\[\]{}();,^'` + "`" + `"]+` + // atom
	`)`

var tokenRE = regexp.MustCompile(tokenPattern)

// Scan tokenizes one line of text.  Tokens appear in left-to-right source
// order.  The returned sequence never contains an EOF token; the reader
// synthesizes one when it runs off the end.
func Scan(file, text string) []*token.Token {
	var toks []*token.Token
	for _, m := range tokenRE.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			continue
		}
		lexeme := text[start:end]
		toks = append(toks, &token.Token{
			Type:   classify(lexeme),
			Text:   lexeme,
			Source: &token.Location{File: file, Pos: start},
		})
	}
	return toks
}

func classify(lexeme string) token.Type {
	if lexeme == "~@" {
		return token.SPLICE
	}
	switch lexeme[0] {
	case '(':
		return token.PAREN_L
	case ')':
		return token.PAREN_R
	case '"':
		return token.STRING
	case ';':
		return token.COMMENT
	case '[', ']', '{', '}', '~', '@', '^', '\'', '`':
		return token.MARK
	default:
		return token.ATOM
	}
}
