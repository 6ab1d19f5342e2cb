package core

func setupCollectionOperations(env *Environment) {
	native := func(name string, fn func([]Value, *Environment) (Value, error)) {
		env.Set(Symbol(name), &Native{Name: name, Fn: fn})
	}

	native("cons", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("cons requires exactly 2 arguments, got %d", len(args))
		}
		switch tail := args[1].(type) {
		case Nil:
			return NewList(args[0]), nil
		case *List:
			return Cons(args[0], tail), nil
		default:
			return nil, typeError("cons requires a list or nil as the second argument, got %s", typeName(args[1]))
		}
	})

	native("first", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("first requires exactly 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case Nil:
			return Nil{}, nil
		case *List:
			return v.First(), nil
		case *Vector:
			if v.Count() == 0 {
				return Nil{}, nil
			}
			return v.elements[0], nil
		default:
			return nil, typeError("first expects a list or vector, got %s", typeName(args[0]))
		}
	})

	native("rest", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("rest requires exactly 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case Nil:
			return Nil{}, nil
		case *List:
			if v.Count() <= 1 {
				return Nil{}, nil
			}
			return v.Rest(), nil
		case *Vector:
			if v.Count() <= 1 {
				return Nil{}, nil
			}
			return NewVector(v.elements[1:]...), nil
		default:
			return nil, typeError("rest expects a list or vector, got %s", typeName(args[0]))
		}
	})

	native("list", func(args []Value, _ *Environment) (Value, error) {
		if len(args) == 0 {
			return Nil{}, nil
		}
		return NewList(args...), nil
	})

	native("concat", func(args []Value, _ *Environment) (Value, error) {
		var all []Value
		for _, a := range args {
			switch v := a.(type) {
			case Nil:
			case *List:
				all = append(all, v.ToSlice()...)
			case *Vector:
				all = append(all, v.elements...)
			default:
				return nil, typeError("concat expects lists, vectors, or nil, got %s", typeName(a))
			}
		}
		if len(all) == 0 {
			return Nil{}, nil
		}
		return NewList(all...), nil
	})

	native("contains?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("contains? requires exactly 2 arguments, got %d", len(args))
		}
		switch coll := args[0].(type) {
		case *Map:
			key, err := mapKeyString(args[1])
			if err != nil {
				return Bool(false), nil
			}
			_, ok := coll.Get(key)
			return Bool(ok), nil
		case *List:
			for cur := coll; cur != nil; cur = cur.tail {
				if Equal(cur.head, args[1]) {
					return Bool(true), nil
				}
			}
			return Bool(false), nil
		case *Vector:
			for _, e := range coll.elements {
				if Equal(e, args[1]) {
					return Bool(true), nil
				}
			}
			return Bool(false), nil
		default:
			return nil, typeError("contains? expects a map, list, or vector, got %s", typeName(args[0]))
		}
	})

	native("get", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("get requires exactly 2 arguments, got %d", len(args))
		}
		m, ok := args[0].(*Map)
		if !ok {
			return nil, typeError("get expects a map, got %s", typeName(args[0]))
		}
		key, err := mapKeyString(args[1])
		if err != nil {
			return Nil{}, nil
		}
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		return Nil{}, nil
	})

	native("assoc", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 3 {
			return nil, arityError("assoc requires exactly 3 arguments, got %d", len(args))
		}
		m, ok := args[0].(*Map)
		if !ok {
			return nil, typeError("assoc expects a map, got %s", typeName(args[0]))
		}
		key, err := mapKeyString(args[1])
		if err != nil {
			return nil, err
		}
		clone := m.Clone()
		clone.Set(key, args[2])
		return clone, nil
	})

	native("dissoc", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("dissoc requires exactly 2 arguments, got %d", len(args))
		}
		m, ok := args[0].(*Map)
		if !ok {
			return nil, typeError("dissoc expects a map, got %s", typeName(args[0]))
		}
		key, err := mapKeyString(args[1])
		if err != nil {
			return nil, err
		}
		clone := m.Clone()
		clone.Delete(key)
		return clone, nil
	})

	native("merge", func(args []Value, _ *Environment) (Value, error) {
		result := NewMap()
		for _, a := range args {
			m, ok := a.(*Map)
			if !ok {
				return nil, typeError("merge expects maps, got %s", typeName(a))
			}
			for _, k := range m.keys {
				v, _ := m.Get(k)
				result.Set(k, v)
			}
		}
		return result, nil
	})

	native("hash-map", func(args []Value, _ *Environment) (Value, error) {
		return NewMapWithPairs(args...)
	})

	native("keys", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("keys requires exactly 1 argument, got %d", len(args))
		}
		m, ok := args[0].(*Map)
		if !ok {
			return nil, typeError("keys expects a map, got %s", typeName(args[0]))
		}
		out := make([]Value, m.Count())
		for i, k := range m.keys {
			out[i] = Keyword(k)
		}
		if len(out) == 0 {
			return Nil{}, nil
		}
		return NewList(out...), nil
	})

	native("vals", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("vals requires exactly 1 argument, got %d", len(args))
		}
		m, ok := args[0].(*Map)
		if !ok {
			return nil, typeError("vals expects a map, got %s", typeName(args[0]))
		}
		out := make([]Value, m.Count())
		for i, k := range m.keys {
			out[i], _ = m.Get(k)
		}
		if len(out) == 0 {
			return Nil{}, nil
		}
		return NewList(out...), nil
	})

	native("count", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("count requires exactly 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case Nil:
			return Number(0), nil
		case *List:
			return Number(v.Count()), nil
		case *Vector:
			return Number(v.Count()), nil
		case *Map:
			return Number(v.Count()), nil
		case Str:
			return Number(len(v)), nil
		default:
			return nil, typeError("count expects a collection, got %s", typeName(args[0]))
		}
	})

	native("nth", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("nth requires exactly 2 arguments, got %d", len(args))
		}
		idx, ok := args[1].(Number)
		if !ok {
			return nil, typeError("nth expects a numeric index, got %s", typeName(args[1]))
		}
		i := int(idx)
		switch v := args[0].(type) {
		case *List:
			items := v.ToSlice()
			if i < 0 || i >= len(items) {
				return nil, typeError("nth index %d out of bounds", i)
			}
			return items[i], nil
		case *Vector:
			val, ok := v.Get(i)
			if !ok {
				return nil, typeError("nth index %d out of bounds", i)
			}
			return val, nil
		default:
			return nil, typeError("nth expects a list or vector, got %s", typeName(args[0]))
		}
	})

	native("conj", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, arityError("conj requires at least 1 argument, got %d", len(args))
		}
		switch coll := args[0].(type) {
		case Nil:
			return NewList(args[1:]...), nil
		case *List:
			result := coll
			for _, v := range args[1:] {
				result = Cons(v, result)
			}
			return result, nil
		case *Vector:
			return NewVector(append(append([]Value{}, coll.elements...), args[1:]...)...), nil
		default:
			return nil, typeError("conj expects a list, vector, or nil, got %s", typeName(args[0]))
		}
	})

	native("map", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("map requires exactly 2 arguments, got %d", len(args))
		}
		items, err := sequenceElements(args[1])
		if err != nil {
			return nil, err
		}
		out := make([]Value, len(items))
		for i, item := range items {
			v, err := Apply(args[0], []Value{item}, env)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		if len(out) == 0 {
			return Nil{}, nil
		}
		return NewList(out...), nil
	})

	native("filter", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("filter requires exactly 2 arguments, got %d", len(args))
		}
		items, err := sequenceElements(args[1])
		if err != nil {
			return nil, err
		}
		var out []Value
		for _, item := range items {
			v, err := Apply(args[0], []Value{item}, env)
			if err != nil {
				return nil, err
			}
			if IsTruthy(v) {
				out = append(out, item)
			}
		}
		if len(out) == 0 {
			return Nil{}, nil
		}
		return NewList(out...), nil
	})

	native("reduce", func(args []Value, env *Environment) (Value, error) {
		if len(args) != 3 {
			return nil, arityError("reduce requires exactly 3 arguments, got %d", len(args))
		}
		items, err := sequenceElements(args[2])
		if err != nil {
			return nil, err
		}
		acc := args[1]
		for _, item := range items {
			acc, err = Apply(args[0], []Value{acc, item}, env)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})
}

func sequenceElements(v Value) ([]Value, error) {
	switch t := v.(type) {
	case Nil:
		return nil, nil
	case *List:
		return t.ToSlice(), nil
	case *Vector:
		return t.elements, nil
	default:
		return nil, typeError("expected a list or vector, got %s", typeName(v))
	}
}
