package core

// MaxRecursionDepth bounds active user-function invocations, grounded on
// the original interpreter's thread-local RECURSION_DEPTH counter.
const MaxRecursionDepth = 1000

// recursionDepth tracks active user-function invocations for the
// goroutine evaluating this call path. Evaluation is single-threaded and
// synchronous per the concurrency model, so a package-level counter
// mirrors the original's thread-local storage without needing one
// instance per Environment.
var recursionDepth int

var specialForms = map[Symbol]bool{
	"def": true, "defn": true, "defmacro": true, "fn": true, "if": true,
	"do": true, "and": true, "or": true, "let": true, "letrec": true,
	"quote": true, "quasiquote": true, "macroexpand": true,
	"load": true, "ns": true, "require": true,
}

func isSpecialForm(sym Symbol) bool { return specialForms[sym] }

// Eval evaluates a Value in env and returns its result.
func Eval(expr Value, env *Environment) (Value, error) {
	switch v := expr.(type) {
	case Number, Bool, Nil, Str, Keyword, *IOResource:
		return v, nil
	case Function:
		return v, nil
	case Uninitialized:
		return nil, uninitializedAccessError()
	case Symbol:
		if val, ok := env.Get(v); ok {
			return val, nil
		}
		if val, ok := env.GetWithAliases(v); ok {
			return val, nil
		}
		return nil, undefinedSymbolError(string(v))
	case *Vector:
		results := make([]Value, v.Count())
		for i, item := range v.elements {
			r, err := Eval(item, env)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return NewVector(results...), nil
	case *Map:
		result := NewMap()
		for _, k := range v.keys {
			val, _ := v.Get(k)
			r, err := Eval(val, env)
			if err != nil {
				return nil, err
			}
			result.Set(k, r)
		}
		return result, nil
	case *List:
		if v.IsEmpty() {
			return v, nil
		}
		return evalList(v, env)
	default:
		return nil, typeError("cannot evaluate value of type %T", expr)
	}
}

func evalList(list *List, env *Environment) (Value, error) {
	head := list.First()
	if sym, ok := head.(Symbol); ok && isSpecialForm(sym) {
		return evalSpecialForm(sym, list.Rest(), env)
	}
	return evalCall(list, env)
}

// EvalAll evaluates each form in forms sequentially against env, returning
// the last result; used by load and top-level script execution.
func EvalAll(forms []Value, env *Environment) (Value, error) {
	var result Value = Nil{}
	for _, form := range forms {
		r, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}
