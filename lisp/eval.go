package lisp

// Special form names.  These are reserved at the syntax level; a list
// whose head is literally one of these symbols dispatches to the
// corresponding rule without consulting the environment, so they cannot
// be shadowed by ordinary bindings.
const (
	symLet    = "let"
	symIf     = "if"
	symLambda = "lambda"
	symSet    = "set!"
)

// Eval evaluates v in the context (scope) of env and returns the
// resulting LVal.  A nil form evaluates to nil (a no-op).  Failures are
// returned as error values; Eval emits no diagnostics itself.
func (env *LEnv) Eval(v *LVal) *LVal {
	if v == nil {
		return nil
	}
	switch v.Type {
	case LSymbol:
		return env.Get(v.Str)
	case LList:
		return env.evalList(v)
	default:
		// nil, booleans, numbers, strings, functions and errors are
		// self-evaluating.
		return v
	}
}

func (env *LEnv) evalList(v *LVal) *LVal {
	if len(v.Cells) == 0 {
		// The reader folds () to nil; an empty list only appears when
		// constructed directly.
		return Nil()
	}
	head := v.Cells[0]
	switch {
	case head.SymbolEq(symLet):
		return opLet(env, v.Cells[1:])
	case head.SymbolEq(symIf):
		return opIf(env, v.Cells[1:])
	case head.SymbolEq(symLambda):
		return opLambda(env, v.Cells[1:])
	case head.SymbolEq(symSet):
		return opSet(env, v.Cells[1:])
	}

	f := env.Eval(head)
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return Errorf("don't know how to evaluate %v", head)
	}
	return env.Call(f, v.Cells[1:])
}

// Call applies fun to the unevaluated argument forms args.  Arguments are
// evaluated eagerly, left to right, in env (the caller's environment); a
// failing argument aborts the application.  The parameter bindings live
// in a fresh child scope that is discarded when the call returns.
func (env *LEnv) Call(fun *LVal, args []*LVal) *LVal {
	if len(args) != len(fun.Formals.Cells) {
		return Errorf("not enough arguments to function, expecting %d, got %d",
			len(fun.Formals.Cells), len(args))
	}
	fenv := NewEnv(env)
	for i, sym := range fun.Formals.Cells {
		arg := env.Eval(args[i])
		if arg.Type == LError {
			return arg
		}
		fenv.Put(sym.String(), arg)
	}
	if fun.Builtin != nil {
		return fun.Builtin(fenv)
	}
	return fenv.Eval(fun.Body)
}

// (let (name expr) body)
func opLet(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 {
		return Errorf("wrong number of arguments to let, expecting 2, got %d", len(args))
	}
	bind := args[0]
	if bind.Type != LList {
		return Errorf("first argument to let must be a list")
	}
	if len(bind.Cells) != 2 {
		return Errorf("too many elements in let binding list")
	}
	// The bound expression is evaluated in the calling environment; only
	// the body sees the new binding.
	val := env.Eval(bind.Cells[1])
	if val.Type == LError {
		return val
	}
	letenv := NewEnv(env)
	letenv.Put(bind.Cells[0].String(), val)
	return letenv.Eval(args[1])
}

// (if condition then else)
func opIf(env *LEnv, args []*LVal) *LVal {
	if len(args) != 3 {
		return Errorf("wrong number of arguments to if, expecting 3, got %d", len(args))
	}
	cond := env.Eval(args[0])
	if cond.Type == LError {
		return cond
	}
	if cond.IsTruthy() {
		return env.Eval(args[1])
	}
	return env.Eval(args[2])
}

// (lambda (param ...) body)
func opLambda(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 {
		return Errorf("wrong number of arguments to lambda, expecting 2, got %d", len(args))
	}
	if args[0].Type != LList {
		return Errorf("first argument to lambda must be a list")
	}
	formals := make([]*LVal, len(args[0].Cells))
	for i, f := range args[0].Cells {
		formals[i] = Symbol(f.String())
	}
	// TODO: close over values in env (lexical scope)
	return Lambda(List(formals), args[1])
}

// (set! symbol expr)
func opSet(env *LEnv, args []*LVal) *LVal {
	if len(args) != 2 {
		return Errorf("wrong number of arguments to set!, expecting 2, got %d", len(args))
	}
	if args[0].Type != LSymbol {
		return Errorf("first argument to set! must be a symbol")
	}
	val := env.Eval(args[1])
	if val.Type == LError {
		return val
	}
	env.Put(args[0].Str, val)
	return val
}
