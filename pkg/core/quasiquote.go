package core

func evalQuasiquote(args *List, env *Environment) (Value, error) {
	if args.Count() != 1 {
		return nil, arityError("quasiquote requires exactly 1 argument, got %d", args.Count())
	}
	return quasiquoteExpand(args.First(), env)
}

// quasiquoteExpand walks a form: inside a List, (unquote x) evaluates
// and splices its single result into place, (unquote-splicing x)
// evaluates x (expecting a List or Vector) and splices every element in;
// inside a Vector the same two forms are honored element-wise; other
// atoms return themselves unevaluated. Splicing is an enrichment beyond
// spec's stated baseline (the baseline requires only unquote), grounded
// on the teacher's eval_special_forms.go quasiquote walker.
func quasiquoteExpand(form Value, env *Environment) (Value, error) {
	switch v := form.(type) {
	case *List:
		if v.IsEmpty() {
			return v, nil
		}
		if sym, ok := v.First().(Symbol); ok && sym == "unquote" {
			rest := v.Rest()
			if rest.Count() != 1 {
				return nil, arityError("unquote requires exactly 1 argument, got %d", rest.Count())
			}
			return Eval(rest.First(), env)
		}
		items, err := quasiquoteExpandList(v.ToSlice(), env)
		if err != nil {
			return nil, err
		}
		return NewList(items...), nil
	case *Vector:
		items, err := quasiquoteExpandList(v.elements, env)
		if err != nil {
			return nil, err
		}
		return NewVector(items...), nil
	default:
		return form, nil
	}
}

func quasiquoteExpandList(elements []Value, env *Environment) ([]Value, error) {
	var result []Value
	for _, elem := range elements {
		if splice, ok := elem.(*List); ok && !splice.IsEmpty() {
			if sym, ok := splice.First().(Symbol); ok && sym == "unquote-splicing" {
				rest := splice.Rest()
				if rest.Count() != 1 {
					return nil, arityError("unquote-splicing requires exactly 1 argument, got %d", rest.Count())
				}
				spliced, err := Eval(rest.First(), env)
				if err != nil {
					return nil, err
				}
				switch s := spliced.(type) {
				case *List:
					result = append(result, s.ToSlice()...)
				case *Vector:
					result = append(result, s.elements...)
				case Nil:
					// splicing nil contributes nothing
				default:
					return nil, typeError("unquote-splicing requires a list or vector, got %s", typeName(spliced))
				}
				continue
			}
		}
		expanded, err := quasiquoteExpand(elem, env)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded)
	}
	return result, nil
}
