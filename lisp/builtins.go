package lisp

// LBuiltinDef is a built-in function definition.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv) *LVal {
	return fun.fun(env)
}

var langBuiltins = []*langBuiltin{
	{"+", Formals("a", "b"), builtinAdd},
	{"-", Formals("a", "b"), builtinSub},
	{"*", Formals("a", "b"), builtinMul},
	{"/", Formals("a", "b"), builtinDiv},
	{"%", Formals("a", "b"), builtinMod},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	return funs
}

func builtinAdd(env *LEnv) *LVal {
	return numericOp(env, "add", func(a, b int) int { return a + b })
}

func builtinSub(env *LEnv) *LVal {
	return numericOp(env, "subtract", func(a, b int) int { return a - b })
}

func builtinMul(env *LEnv) *LVal {
	return numericOp(env, "multiply", func(a, b int) int { return a * b })
}

func builtinDiv(env *LEnv) *LVal {
	return divideOp(env, "divide", func(a, b int) int { return a / b })
}

func builtinMod(env *LEnv) *LVal {
	return divideOp(env, "mod", func(a, b int) int { return a % b })
}

// numericOp fetches the operands a and b bound in the call environment
// and combines them with fn.  Arithmetic wraps on overflow.
func numericOp(env *LEnv, op string, fn func(a, b int) int) *LVal {
	a := env.Get("a")
	b := env.Get("b")
	if a.Type != LNumber || b.Type != LNumber {
		return Errorf("don't know how to %s %v and %v", op, a, b)
	}
	return Number(fn(a.Num, b.Num))
}

// divideOp is numericOp for operations that require a nonzero right
// operand.
func divideOp(env *LEnv, op string, fn func(a, b int) int) *LVal {
	a := env.Get("a")
	b := env.Get("b")
	if a.Type != LNumber || b.Type != LNumber {
		return Errorf("don't know how to %s %v and %v", op, a, b)
	}
	if b.Num == 0 {
		return Errorf("division by zero")
	}
	return Number(fn(a.Num, b.Num))
}
