// Package reader turns token sequences into forms by recursive descent.
package reader

import (
	"strconv"
	"strings"

	"github.com/elbeno/blisp/lisp"
	"github.com/elbeno/blisp/parser/lexer"
	"github.com/elbeno/blisp/parser/token"
)

// Read parses one line of text into at most one form.  It returns nil for
// blank or comment-only input and an error value for read errors.  Tokens
// trailing a complete form are ignored.
func Read(name, text string) *lisp.LVal {
	p := New(lexer.Scan(name, text))
	for p.expect(token.COMMENT) {
	}
	if p.expect(token.EOF) {
		return nil
	}
	return p.ParseExpression()
}

// Parser is a cursor over a token sequence.  Tokens are consumed left to
// right and never rewound.
type Parser struct {
	tokens []*token.Token
	curr   *token.Token
	peek   *token.Token
}

// New initializes and returns a new Parser reading from tokens.
func New(tokens []*token.Token) *Parser {
	p := &Parser{tokens: tokens}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

func (p *Parser) ParseExpression() *lisp.LVal {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.PAREN_L:
		return p.ParseList()
	case token.STRING:
		return p.ParseLiteralString()
	case token.ATOM:
		return p.ParseAtom()
	case token.EOF:
		p.ReadToken()
		return p.errorf("unterminated read")
	default:
		// Close parens, structural marks and the splice marker read as
		// verbatim symbols.
		p.ReadToken()
		return lisp.Symbol(p.Token().Text)
	}
}

func (p *Parser) ParseList() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf("invalid list: %v", p.PeekType())
	}
	var cells []*lisp.LVal
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			return p.errorf("unterminated read (list)")
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		cells = append(cells, x)
	}
	if len(cells) == 0 {
		// An empty parsed list folds to nil.
		return lisp.Nil()
	}
	return lisp.List(cells)
}

func (p *Parser) ParseLiteralString() *lisp.LVal {
	if !p.expect(token.STRING) {
		return p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	// The lexer includes both quote delimiters in the token text.  Escape
	// sequences are decoded exactly once, here.
	return lisp.String(unescapeString(text[1 : len(text)-1]))
}

func (p *Parser) ParseAtom() *lisp.LVal {
	if !p.expect(token.ATOM) {
		return p.errorf("invalid atom: %v", p.PeekType())
	}
	text := p.Token().Text
	if isDigit(text[0]) {
		x, err := strconv.Atoi(text)
		if err != nil {
			return p.errorf("bad number: %s", text)
		}
		return lisp.Number(x)
	}
	switch text {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	return lisp.Symbol(text)
}

// ReadToken advances the cursor, returning the consumed token.  Reading
// past the end of the sequence produces EOF tokens.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	if len(p.tokens) > 0 {
		p.peek = p.tokens[0]
		p.tokens = p.tokens[1:]
	} else {
		// The EOF token inherits the last token's location so that
		// errors reported at end-of-input can still be located.
		eof := &token.Token{Type: token.EOF}
		if p.curr != nil {
			eof.Source = p.curr.Source
		}
		p.peek = eof
	}
	return p.curr
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next unconsumed token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next unconsumed token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

// errorf returns an error value whose message is prefixed with the
// location of the most recently consumed token.
func (p *Parser) errorf(format string, v ...interface{}) *lisp.LVal {
	if tok := p.Token(); tok != nil && tok.Source != nil {
		return lisp.Errorf("%s: "+format, append([]interface{}{tok.Source}, v...)...)
	}
	return lisp.Errorf(format, v...)
}

func unescapeString(s string) string {
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			buf.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			buf.WriteByte('\n')
		default:
			// Unrecognized escapes pass the escaped character through.
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
