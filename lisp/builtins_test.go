package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builtins fetch their operands back out of the call environment by
// parameter name, sharing the lambda calling convention.
func TestBuiltinCallingConvention(t *testing.T) {
	env := newTestEnv()
	add := env.Get("+")
	require.Equal(t, LFun, add.Type)
	v := env.Call(add, []*LVal{Number(2), Number(3)})
	require.Equal(t, LNumber, v.Type)
	assert.Equal(t, 5, v.Num)
}

func TestBuiltinTypeErrors(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		name string
		a, b *LVal
		msg  string
	}{
		{"+", Number(1), String("a"), `don't know how to add 1 and "a"`},
		{"-", Nil(), Number(1), "don't know how to subtract nil and 1"},
		{"*", Bool(true), Number(2), "don't know how to multiply true and 2"},
		{"/", Number(1), Symbol("x"), "unbound symbol: x"},
		{"%", String("z"), Number(2), `don't know how to mod "z" and 2`},
	}
	for _, test := range tests {
		fun := env.Get(test.name)
		require.Equal(t, LFun, fun.Type)
		v := env.Call(fun, []*LVal{test.a, test.b})
		require.Equal(t, LError, v.Type, "op %s", test.name)
		assert.EqualError(t, GoError(v), test.msg, "op %s", test.name)
	}
}

func TestBuiltinDivideByZero(t *testing.T) {
	env := newTestEnv()
	for _, name := range []string{"/", "%"} {
		fun := env.Get(name)
		require.Equal(t, LFun, fun.Type)
		v := env.Call(fun, []*LVal{Number(7), Number(0)})
		require.Equal(t, LError, v.Type, "op %s", name)
		assert.EqualError(t, GoError(v), "division by zero", "op %s", name)
	}
}

func TestBuiltinArithmetic(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		name string
		a, b int
		out  int
	}{
		{"+", 2, 3, 5},
		{"-", 10, 4, 6},
		{"*", 3, 3, 9},
		{"/", 7, 2, 3},
		{"/", -7, 2, -3},
		{"%", 7, 3, 1},
		{"%", -7, 3, -1},
	}
	for _, test := range tests {
		fun := env.Get(test.name)
		require.Equal(t, LFun, fun.Type)
		v := env.Call(fun, []*LVal{Number(test.a), Number(test.b)})
		require.Equal(t, LNumber, v.Type, "op %s", test.name)
		assert.Equal(t, test.out, v.Num, "(%s %d %d)", test.name, test.a, test.b)
	}
}
