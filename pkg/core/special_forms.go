package core

import "os"

func evalSpecialForm(sym Symbol, args *List, env *Environment) (Value, error) {
	switch sym {
	case "def":
		return evalDef(args, env)
	case "defn":
		return evalDefn(args, env)
	case "defmacro":
		return evalDefmacro(args, env)
	case "fn":
		return evalFn(args, env)
	case "if":
		return evalIf(args, env)
	case "do":
		return evalDo(args, env)
	case "and":
		return evalAnd(args, env)
	case "or":
		return evalOr(args, env)
	case "let":
		return evalLet(args, env)
	case "letrec":
		return evalLetrec(args, env)
	case "quote":
		return evalQuote(args, env)
	case "quasiquote":
		return evalQuasiquote(args, env)
	case "macroexpand":
		return evalMacroexpandForm(args, env)
	case "load":
		return evalLoad(args, env)
	case "ns":
		return evalNs(args, env)
	case "require":
		return evalRequire(args, env)
	default:
		return nil, arityError("unknown special form %s", sym)
	}
}

func evalDef(args *List, env *Environment) (Value, error) {
	if args.Count() != 2 {
		return nil, arityError("def requires exactly 2 arguments, got %d", args.Count())
	}
	name, ok := args.First().(Symbol)
	if !ok {
		return nil, typeError("def requires a symbol name, got %s", typeName(args.First()))
	}
	val, err := Eval(args.Rest().First(), env)
	if err != nil {
		return nil, err
	}
	env.SetNamespaced(name, val)
	return val, nil
}

// evalDefn is equivalent to (def name (fn params-vec body)).
func evalDefn(args *List, env *Environment) (Value, error) {
	if args.Count() != 3 {
		return nil, arityError("defn requires exactly 3 arguments, got %d", args.Count())
	}
	name, ok := args.First().(Symbol)
	if !ok {
		return nil, typeError("defn requires a symbol name, got %s", typeName(args.First()))
	}
	fnArgs := NewList(args.Rest().ToSlice()...)
	fnVal, err := evalFn(fnArgs, env)
	if err != nil {
		return nil, err
	}
	if ud, ok := fnVal.(*UserDefined); ok {
		ud.Name = string(name)
	}
	env.SetNamespaced(name, fnVal)
	return fnVal, nil
}

func evalDefmacro(args *List, env *Environment) (Value, error) {
	if args.Count() != 3 {
		return nil, arityError("defmacro requires exactly 3 arguments, got %d", args.Count())
	}
	name, ok := args.First().(Symbol)
	if !ok {
		return nil, typeError("defmacro requires a symbol name, got %s", typeName(args.First()))
	}
	params, err := parseParams(args.Rest().First())
	if err != nil {
		return nil, err
	}
	body := args.Rest().Rest().First()
	macro := &Macro{Name: string(name), Params: params, Body: body, Env: env}
	env.SetNamespaced(name, macro)
	return macro, nil
}

func evalFn(args *List, env *Environment) (Value, error) {
	if args.Count() != 2 {
		return nil, arityError("fn requires exactly 2 arguments, got %d", args.Count())
	}
	params, err := parseParams(args.First())
	if err != nil {
		return nil, err
	}
	body := args.Rest().First()
	return &UserDefined{Params: params, Body: body, Env: env}, nil
}

func parseParams(v Value) ([]Symbol, error) {
	vec, ok := v.(*Vector)
	if !ok {
		return nil, typeError("parameter list must be a vector, got %s", typeName(v))
	}
	params := make([]Symbol, vec.Count())
	for i, e := range vec.elements {
		sym, ok := e.(Symbol)
		if !ok {
			return nil, typeError("parameter must be a symbol, got %s", typeName(e))
		}
		params[i] = sym
	}
	return params, nil
}

func evalIf(args *List, env *Environment) (Value, error) {
	n := args.Count()
	if n != 2 && n != 3 {
		return nil, arityError("if requires 2 or 3 arguments, got %d", n)
	}
	cond, err := Eval(args.First(), env)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return Eval(args.Rest().First(), env)
	}
	if n == 3 {
		return Eval(args.Rest().Rest().First(), env)
	}
	return Nil{}, nil
}

func evalDo(args *List, env *Environment) (Value, error) {
	if args.IsEmpty() {
		return nil, arityError("do requires at least 1 body expression")
	}
	return EvalAll(args.ToSlice(), env)
}

func evalAnd(args *List, env *Environment) (Value, error) {
	if args.IsEmpty() {
		return Bool(true), nil
	}
	var result Value = Bool(true)
	for cur := args; cur != nil; cur = cur.tail {
		v, err := Eval(cur.head, env)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func evalOr(args *List, env *Environment) (Value, error) {
	if args.IsEmpty() {
		return Nil{}, nil
	}
	var result Value = Nil{}
	for cur := args; cur != nil; cur = cur.tail {
		v, err := Eval(cur.head, env)
		if err != nil {
			return nil, err
		}
		if IsTruthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func evalLet(args *List, env *Environment) (Value, error) {
	if args.Count() != 2 {
		return nil, arityError("let requires exactly 2 arguments, got %d", args.Count())
	}
	bindingsVec, ok := args.First().(*Vector)
	if !ok {
		return nil, typeError("let bindings must be a vector, got %s", typeName(args.First()))
	}
	if bindingsVec.Count()%2 != 0 {
		return nil, arityError("let bindings must have an even number of forms")
	}
	child := WithParent(env)
	for i := 0; i < bindingsVec.Count(); i += 2 {
		name, ok := bindingsVec.elements[i].(Symbol)
		if !ok {
			return nil, typeError("let binding key must be a symbol, got %s", typeName(bindingsVec.elements[i]))
		}
		val, err := Eval(bindingsVec.elements[i+1], child)
		if err != nil {
			return nil, err
		}
		child.Set(name, val)
	}
	return Eval(args.Rest().First(), child)
}

// evalLetrec pre-binds every name to Uninitialized, evaluates each RHS
// in order and updates the slot, then evaluates the body, permitting
// mutually recursive closures.
func evalLetrec(args *List, env *Environment) (Value, error) {
	if args.Count() != 2 {
		return nil, arityError("letrec requires exactly 2 arguments, got %d", args.Count())
	}
	bindingsVec, ok := args.First().(*Vector)
	if !ok {
		return nil, typeError("letrec bindings must be a vector, got %s", typeName(args.First()))
	}
	type pair struct {
		name Symbol
		expr Value
	}
	pairs := make([]pair, bindingsVec.Count())
	for i, elem := range bindingsVec.elements {
		pairVec, ok := elem.(*Vector)
		if !ok || pairVec.Count() != 2 {
			return nil, typeError("letrec binding must be a 2-element vector [name expr]")
		}
		name, ok := pairVec.elements[0].(Symbol)
		if !ok {
			return nil, typeError("letrec binding key must be a symbol, got %s", typeName(pairVec.elements[0]))
		}
		pairs[i] = pair{name: name, expr: pairVec.elements[1]}
	}

	child := WithParent(env)
	for _, p := range pairs {
		child.Set(p.name, Uninitialized{})
	}
	for _, p := range pairs {
		val, err := Eval(p.expr, child)
		if err != nil {
			return nil, err
		}
		child.Update(p.name, val)
	}
	return Eval(args.Rest().First(), child)
}

func evalQuote(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("quote requires exactly 1 argument, got %d", args.Count())
	}
	return args.First(), nil
}

func evalNs(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("ns requires exactly 1 argument, got %d", args.Count())
	}
	sym, ok := args.First().(Symbol)
	if !ok {
		return nil, typeError("ns requires a symbol, got %s", typeName(args.First()))
	}
	env.SetNamespace(string(sym))
	return sym, nil
}

func evalLoad(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("load requires exactly 1 argument, got %d", args.Count())
	}
	pathVal, err := Eval(args.First(), env)
	if err != nil {
		return nil, err
	}
	path, ok := pathVal.(Str)
	if !ok {
		return nil, typeError("load requires a string path, got %s", typeName(pathVal))
	}
	return loadFile(string(path), env)
}

func loadFile(path string, env *Environment) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioFailureError("failed to read %s: %v", path, err)
	}
	forms, err := ReadAll(string(data))
	if err != nil {
		return nil, err
	}
	return EvalAll(forms, env)
}

// evalRequire resolves a.b.c to std/a/b/c.lisp, loads it unless already
// loaded, and records an alias when [:as alias] is present.
func evalRequire(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("require requires exactly 1 argument, got %d", args.Count())
	}
	spec := args.First()

	var nsForm Value
	var alias string
	switch s := spec.(type) {
	case *List:
		if s.IsEmpty() {
			return nil, typeError("require expects a namespace symbol or [ns :as alias] vector")
		}
		nsForm = s.First()
	case *Vector:
		if s.Count() < 1 {
			return nil, typeError("require vector must name a namespace")
		}
		nsForm = s.elements[0]
		for i := 1; i+1 < s.Count(); i += 2 {
			key, _ := s.elements[i].(Keyword)
			if key == "as" {
				if aliasSym, ok := s.elements[i+1].(Symbol); ok {
					alias = string(aliasSym)
				}
			}
		}
	default:
		nsForm = spec
	}

	nsName, err := requireSymbolName(nsForm)
	if err != nil {
		return nil, err
	}

	path := namespacePath(nsName)
	if !env.IsNamespaceLoaded(nsName) {
		if _, err := loadFile(path, env); err != nil {
			return nil, namespaceLoadError(path, err)
		}
		env.AddLoadedNamespace(nsName)
	}
	if alias != "" {
		env.AddAlias(alias, nsName)
	}
	return Symbol(nsName), nil
}

func requireSymbolName(v Value) (string, error) {
	switch s := v.(type) {
	case Symbol:
		return string(s), nil
	case *List:
		if s.Count() == 2 {
			if head, ok := s.First().(Symbol); ok && head == "quote" {
				return requireSymbolName(s.Rest().First())
			}
		}
	}
	return "", typeError("require expects a namespace symbol, got %s", typeName(v))
}

func namespacePath(dotted string) string {
	path := "std/"
	for i := 0; i < len(dotted); i++ {
		if dotted[i] == '.' {
			path += "/"
		} else {
			path += string(dotted[i])
		}
	}
	return path + ".lisp"
}
