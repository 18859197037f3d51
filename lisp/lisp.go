package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LBool
	LNumber
	LString
	LSymbol
	LList
	LFun
	LError
	numLTypes
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LBool:    "bool",
	LNumber:  "number",
	LString:  "string",
	LSymbol:  "symbol",
	LList:    "list",
	LFun:     "function",
	LError:   "error",
}

func (t LType) String() string {
	if t >= numLTypes {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is a native function that backs a builtin LFun.  It fetches its
// operands out of env, which holds the function's formal parameters bound
// to evaluated arguments.
type LBuiltin func(env *LEnv) *LVal

// LVal is a lisp form.  Once constructed an LVal is never mutated;
// evaluation produces new values or references to existing ones.
type LVal struct {
	Type  LType
	Num   int
	Str   string  // string and symbol text
	Err   error   // error values
	Cells []*LVal // list elements

	// Fields for function values.  Formals is shared by lambdas and
	// builtins; exactly one of Body and Builtin is set.
	Formals *LVal
	Body    *LVal
	Builtin LBuiltin
}

// Nil returns an LVal representing nil, the value of an empty list.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	v := &LVal{Type: LBool}
	if b {
		v.Num = 1
	}
	return v
}

// Number returns an LVal representing the number x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// String returns an LVal representing the string s.  The text must already
// have escape sequences decoded; the reader decodes them once at
// construction.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// List returns an LVal representing a list with the given elements.
func List(cells []*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Lambda returns an anonymous function with the given formal parameters
// and body.  The returned function does not retain the environment it was
// defined in; its body resolves free symbols against the environment
// chain active at the call site.
func Lambda(formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
	}
}

// Fun returns a builtin function backed by the native function fn.
func Fun(formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Builtin: fn,
	}
}

// Formals returns a list of symbols to use as a function's formal
// parameter list.
func Formals(names ...string) *LVal {
	cells := make([]*LVal, len(names))
	for i, name := range names {
		cells[i] = Symbol(name)
	}
	return List(cells)
}

// Error returns an LVal representing the error err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// Errorf returns an error LVal with a formatted message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Err:  fmt.Errorf(format, v...),
	}
}

// GoError returns the Go error held by an error LVal, or nil for any
// other value.
func GoError(v *LVal) error {
	if v == nil || v.Type != LError {
		return nil
	}
	return v.Err
}

// IsTruthy returns false only for nil and the boolean false.  Every other
// form counts as true in a conditional.
func (v *LVal) IsTruthy() bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Num != 0
	default:
		return true
	}
}

// SymbolEq returns true if v is the symbol with the given name.
func (v *LVal) SymbolEq(name string) bool {
	return v.Type == LSymbol && v.Str == name
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "nil"
	case LBool:
		if v.Num != 0 {
			return "true"
		}
		return "false"
	case LNumber:
		return strconv.Itoa(v.Num)
	case LString:
		return `"` + escapeString(v.Str) + `"`
	case LSymbol:
		return v.Str
	case LList:
		return exprString(v, "(", ")")
	case LFun:
		if v.Builtin != nil {
			return "<builtin function>"
		}
		return "<function>"
	case LError:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

func escapeString(s string) string {
	var buf strings.Builder
	for _, c := range s {
		switch c {
		case '\n':
			buf.WriteString(`\n`)
		case '\\', '"':
			buf.WriteByte('\\')
			buf.WriteRune(c)
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
