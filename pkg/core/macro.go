package core

// expandMacro performs call-site expansion: bind each parameter to the
// unevaluated argument form in a child frame over the macro's defining
// env, then evaluate the body to produce the expansion. The caller is
// responsible for evaluating the expansion in its own environment.
func expandMacro(macro *Macro, argForms []Value) (Value, error) {
	if len(argForms) != len(macro.Params) {
		return nil, arityError("macro %s expects %d arguments, got %d", macro.Name, len(macro.Params), len(argForms))
	}
	macroEnv := WithParent(macro.Env)
	for i, p := range macro.Params {
		macroEnv.Set(p, argForms[i])
	}
	return Eval(macro.Body, macroEnv)
}

// evalMacroexpandForm implements the (macroexpand form) special form: a
// read-only expansion that does not run the macro's side effects beyond
// what its own quasiquote requires.
func evalMacroexpandForm(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("macroexpand requires exactly 1 argument, got %d", args.Count())
	}
	return Macroexpand(args.First(), env)
}

// Macroexpand expands form once if its head resolves to a Macro. If
// form is (quote F), F is expanded instead. When the macro body's root
// is (quasiquote F), that quasiquote is evaluated with the macro's
// parameters bound; otherwise symbolic substitution replaces any Symbol
// matching a parameter name with the corresponding (unevaluated)
// argument form, recursing through List and Vector.
func Macroexpand(form Value, env *Environment) (Value, error) {
	list, ok := form.(*List)
	if ok && list.Count() == 2 {
		if head, ok := list.First().(Symbol); ok && head == "quote" {
			return Macroexpand(list.Rest().First(), env)
		}
	}
	if !ok || list.IsEmpty() {
		return form, nil
	}
	headSym, ok := list.First().(Symbol)
	if !ok {
		return form, nil
	}
	resolved, found := env.Get(headSym)
	if !found {
		resolved, found = env.GetWithAliases(headSym)
	}
	macro, ok := resolved.(*Macro)
	if !found || !ok {
		return form, nil
	}
	argForms := list.Rest().ToSlice()
	if len(argForms) != len(macro.Params) {
		return nil, arityError("macro %s expects %d arguments, got %d", macro.Name, len(macro.Params), len(argForms))
	}

	if bodyList, ok := macro.Body.(*List); ok && bodyList.Count() == 2 {
		if bodyHead, ok := bodyList.First().(Symbol); ok && bodyHead == "quasiquote" {
			macroEnv := WithParent(macro.Env)
			for i, p := range macro.Params {
				macroEnv.Set(p, argForms[i])
			}
			return quasiquoteExpand(bodyList.Rest().First(), macroEnv)
		}
	}

	bindings := make(map[Symbol]Value, len(macro.Params))
	for i, p := range macro.Params {
		bindings[p] = argForms[i]
	}
	return substitute(macro.Body, bindings), nil
}

func substitute(form Value, bindings map[Symbol]Value) Value {
	switch v := form.(type) {
	case Symbol:
		if repl, ok := bindings[v]; ok {
			return repl
		}
		return v
	case *List:
		if v.IsEmpty() {
			return v
		}
		items := v.ToSlice()
		out := make([]Value, len(items))
		for i, item := range items {
			out[i] = substitute(item, bindings)
		}
		return NewList(out...)
	case *Vector:
		out := make([]Value, len(v.elements))
		for i, item := range v.elements {
			out[i] = substitute(item, bindings)
		}
		return NewVector(out...)
	default:
		return form
	}
}
