package core

// evalCall handles List([head, ...args]) once it's been determined head
// does not name a special form: macro interception, keyword-as-accessor,
// and function application.
func evalCall(list *List, env *Environment) (Value, error) {
	headForm := list.First()
	argForms := list.Rest().ToSlice()

	// Macro call interception: arguments are never evaluated in the
	// caller before expansion.
	if headSym, ok := headForm.(Symbol); ok {
		if resolved, found := lookupSymbol(headSym, env); found {
			if macro, ok := resolved.(*Macro); ok {
				expansion, err := expandMacro(macro, argForms)
				if err != nil {
					return nil, err
				}
				return Eval(expansion, env)
			}
		}
	}

	head, err := Eval(headForm, env)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(argForms))
	for i, a := range argForms {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if kw, ok := head.(Keyword); ok && len(args) == 1 {
		if m, ok := args[0].(*Map); ok {
			if v, ok := m.Get(string(kw)); ok {
				return v, nil
			}
			return Nil{}, nil
		}
	}

	switch fn := head.(type) {
	case *Native:
		return fn.Fn(args, env)
	case *UserDefined:
		return callUserDefined(fn, headForm, args)
	case *Macro:
		return nil, typeError("macros must be expanded at the call site, got bare %s", fn.Name)
	default:
		return nil, typeError("cannot call non-function value of type %s", typeName(head))
	}
}

// Apply invokes fn with already-evaluated args. Used by built-ins
// (apply, map, filter, reduce) that call a function value with no
// syntactic head symbol, so self-reference injection has nothing to
// bind and is skipped.
func Apply(fn Value, args []Value, env *Environment) (Value, error) {
	switch f := fn.(type) {
	case *Native:
		return f.Fn(args, env)
	case *UserDefined:
		return callUserDefined(f, nil, args)
	case *Macro:
		return nil, typeError("macros cannot be applied as functions, got %s", f.Name)
	default:
		return nil, typeError("cannot apply non-function value of type %s", typeName(fn))
	}
}

func lookupSymbol(sym Symbol, env *Environment) (Value, bool) {
	if v, ok := env.Get(sym); ok {
		return v, true
	}
	return env.GetWithAliases(sym)
}

func callUserDefined(fn *UserDefined, headForm Value, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, arityError("function expects %d arguments, got %d", len(fn.Params), len(args))
	}

	recursionDepth++
	if recursionDepth > MaxRecursionDepth {
		recursionDepth--
		return nil, recursionLimitError(MaxRecursionDepth)
	}
	defer func() { recursionDepth-- }()

	child := WithParent(fn.Env)

	// Self-reference injection: bind the short name of the call target
	// (the part after the last "/", or the whole symbol if unqualified)
	// to the resolved function, so recursion through a qualified or
	// aliased call still works by short name inside the body. Self
	// binds first so that a parameter of the same name wins, per the
	// spec's resolution of the injection-vs-shadowing ambiguity.
	if headSym, ok := headForm.(Symbol); ok {
		_, shortName, hasSlash := headSym.Qualified()
		if !hasSlash {
			shortName = string(headSym)
		}
		if shortName != "" {
			child.Set(Symbol(shortName), fn)
		}
	}

	for i, p := range fn.Params {
		child.Set(p, args[i])
	}

	return Eval(fn.Body, child)
}
