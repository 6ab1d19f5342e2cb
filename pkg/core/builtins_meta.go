package core

func setupMetaProgramming(env *Environment) {
	native := func(name string, fn func([]Value, *Environment) (Value, error)) {
		env.Set(Symbol(name), &Native{Name: name, Fn: fn})
	}

	typePredicate := func(name string, test func(Value) bool) {
		native(name, func(args []Value, _ *Environment) (Value, error) {
			if len(args) != 1 {
				return nil, arityError("%s requires exactly 1 argument, got %d", name, len(args))
			}
			return Bool(test(args[0])), nil
		})
	}

	typePredicate("nil?", func(v Value) bool { _, ok := v.(Nil); return ok })
	typePredicate("true?", func(v Value) bool { b, ok := v.(Bool); return ok && bool(b) })
	typePredicate("false?", func(v Value) bool { b, ok := v.(Bool); return ok && !bool(b) })
	typePredicate("some?", func(v Value) bool { _, ok := v.(Nil); return !ok })
	typePredicate("string?", func(v Value) bool { _, ok := v.(Str); return ok })
	typePredicate("number?", func(v Value) bool { _, ok := v.(Number); return ok })
	typePredicate("symbol?", func(v Value) bool { _, ok := v.(Symbol); return ok })
	typePredicate("keyword?", func(v Value) bool { _, ok := v.(Keyword); return ok })
	typePredicate("vector?", func(v Value) bool { _, ok := v.(*Vector); return ok })
	typePredicate("list?", func(v Value) bool { _, ok := v.(*List); return ok })
	typePredicate("map?", func(v Value) bool { _, ok := v.(*Map); return ok })
	typePredicate("fn?", func(v Value) bool { _, ok := v.(Function); return ok })
	typePredicate("empty?", func(v Value) bool {
		switch t := v.(type) {
		case Nil:
			return true
		case *List:
			return t.IsEmpty()
		case *Vector:
			return t.Count() == 0
		case *Map:
			return t.Count() == 0
		case Str:
			return len(t) == 0
		default:
			return false
		}
	})

	native("identity", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("identity requires exactly 1 argument, got %d", len(args))
		}
		return args[0], nil
	})

	native("eval", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("eval requires exactly 1 argument, got %d", len(args))
		}
		return Eval(args[0], env)
	})

	native("macroexpand", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("macroexpand requires exactly 1 argument, got %d", len(args))
		}
		return Macroexpand(args[0], env)
	})

	native("read-string", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-string requires exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("read-string expects a string, got %s", typeName(args[0]))
		}
		return Read(string(s))
	})

	native("read-all-string", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-all-string requires exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("read-all-string expects a string, got %s", typeName(args[0]))
		}
		forms, err := ReadAll(string(s))
		if err != nil {
			return nil, err
		}
		return NewList(forms...), nil
	})

	native("throw", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("throw requires exactly 1 argument, got %d", len(args))
		}
		if s, ok := args[0].(Str); ok {
			return nil, typeError("%s", string(s))
		}
		return nil, typeError("%s", args[0].String())
	})

	native("apply", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("apply requires exactly 2 arguments, got %d", len(args))
		}
		var callArgs []Value
		switch coll := args[1].(type) {
		case *List:
			callArgs = coll.ToSlice()
		case *Vector:
			callArgs = coll.elements
		case Nil:
			callArgs = nil
		default:
			return nil, typeError("apply expects a list or vector of arguments, got %s", typeName(args[1]))
		}
		return Apply(args[0], callArgs, env)
	})

	native("constantly", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("constantly requires exactly 1 argument, got %d", len(args))
		}
		value := args[0]
		return &Native{Name: "constantly-fn", Fn: func([]Value, *Environment) (Value, error) {
			return value, nil
		}}, nil
	})

	native("time", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("time requires exactly 1 argument, got %d", len(args))
		}
		return Apply(args[0], nil, env)
	})
}
