package lisp

// LEnv is a lisp environment, one scope in a chain linked by parent
// references.  The chain is strictly a chain, never a graph; the root
// scope is the base environment and has no parent.
type LEnv struct {
	Scope  map[string]*LVal
	Parent *LEnv
}

// NewEnv initializes and returns a new LEnv whose lookups fall through to
// parent.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
}

// Get resolves the name k against env, walking outward from the innermost
// scope.  An unresolved name produces an error value.
func (env *LEnv) Get(k string) *LVal {
	v, ok := env.Scope[k]
	if ok {
		return v
	}
	if env.Parent != nil {
		return env.Parent.Get(k)
	}
	return Errorf("unbound symbol: %s", k)
}

// Put binds k to v in env.  Binding insertion is append-only per scope: a
// name already bound in env keeps its prior value and the new value is
// dropped.  Shadowing a parent scope's binding works normally.
func (env *LEnv) Put(k string, v *LVal) {
	if _, ok := env.Scope[k]; ok {
		return
	}
	env.Scope[k] = v
}

// InitializeUserEnv pre-populates env as a base environment, binding nil
// and the arithmetic builtins.  The environment is otherwise an ordinary
// value with no implicit global lifetime; the driver constructs one and
// passes it to the evaluator.
func InitializeUserEnv(env *LEnv) {
	env.Put("nil", Nil())
	env.AddBuiltins()
}

// AddBuiltins binds the given funs to their names in env.  When called
// with no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		env.Put(f.Name(), Fun(f.Formals(), f.Eval))
	}
}
