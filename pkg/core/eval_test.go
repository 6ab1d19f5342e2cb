package core

import "testing"

func evalString(t *testing.T, env *Environment, src string) Value {
	t.Helper()
	form, err := Read(src)
	if err != nil {
		t.Fatalf("Read(%q) error: %v", src, err)
	}
	v, err := Eval(form, env)
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", src, err)
	}
	return v
}

func TestEvalArithmetic(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(+ 1 2 3)")
	if n, ok := v.(Number); !ok || n != 6 {
		t.Errorf("(+ 1 2 3) = %v, want 6", v)
	}
}

func TestEvalDefnFactorial(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(defn fact [n] (if (<= n 1) 1 (* n (fact (- n 1)))))")
	v := evalString(t, env, "(fact 5)")
	if n, ok := v.(Number); !ok || n != 120 {
		t.Errorf("(fact 5) = %v, want 120", v)
	}
}

func TestEvalLetSequentialBinding(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(let [a 1 b (+ a 1)] (+ a b))")
	if n, ok := v.(Number); !ok || n != 3 {
		t.Errorf("let result = %v, want 3", v)
	}
}

func TestEvalLetrecMutualRecursion(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, `
		(letrec [[even? (fn [n] (if (= n 0) true (odd? (- n 1))))]
		         [odd? (fn [n] (if (= n 0) false (even? (- n 1))))]]
		  (even? 10))`)
	if b, ok := v.(Bool); !ok || !bool(b) {
		t.Errorf("letrec mutual recursion result = %v, want true", v)
	}
}

func TestEvalDefmacroUnless(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(defmacro my-unless [c body] `(if ~c nil ~body))")
	v := evalString(t, env, "(my-unless false 42)")
	if n, ok := v.(Number); !ok || n != 42 {
		t.Errorf("(my-unless false 42) = %v, want 42", v)
	}
	v = evalString(t, env, "(my-unless true 42)")
	if _, ok := v.(Nil); !ok {
		t.Errorf("(my-unless true 42) = %v, want nil", v)
	}
}

func TestBootstrappedWhenUnless(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(when true 1)")
	if n, ok := v.(Number); !ok || n != 1 {
		t.Errorf("(when true 1) = %v, want 1", v)
	}
	v = evalString(t, env, "(unless false 1)")
	if n, ok := v.(Number); !ok || n != 1 {
		t.Errorf("(unless false 1) = %v, want 1", v)
	}
}

func TestEvalKeywordAsMapAccessor(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(:name {:name \"ada\" :age 30})")
	if s, ok := v.(Str); !ok || s != "ada" {
		t.Errorf("(:name m) = %v, want \"ada\"", v)
	}
}

func TestEvalAnonymousFn(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "((fn [x] (* x x)) 7)")
	if n, ok := v.(Number); !ok || n != 49 {
		t.Errorf("anonymous fn square(7) = %v, want 49", v)
	}
}

func TestEvalMapFilterReduce(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(reduce + 0 (map (fn [x] (* x x)) (filter even? (list 1 2 3 4 5 6))))")
	if n, ok := v.(Number); !ok || n != 56 {
		t.Errorf("map/filter/reduce pipeline = %v, want 56", v)
	}
}

func TestEvalQuasiquoteSplicing(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "`(1 ~@(list 2 3) 4)")
	list, ok := v.(*List)
	if !ok || list.Count() != 4 {
		t.Fatalf("quasiquote splicing result = %v, want a 4-element list", v)
	}
}

func TestEvalSelfReferenceInjectionShadowedByParam(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(defn self [self] self)")
	v := evalString(t, env, "(self 99)")
	if n, ok := v.(Number); !ok || n != 99 {
		t.Errorf("parameter named like the function should shadow self-reference injection: got %v, want 99", v)
	}
}

func TestEvalUndefinedSymbol(t *testing.T) {
	env := NewCoreEnvironment()
	_, err := Eval(Symbol("nonexistent-thing"), env)
	if err == nil {
		t.Fatal("expected an error evaluating an undefined symbol")
	}
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != KindUndefinedSymbol {
		t.Errorf("error = %v, want *EvalError with Kind=UndefinedSymbol", err)
	}
}

func TestEvalArityError(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(defn add2 [a b] (+ a b))")
	_, err := Eval(mustRead(t, "(add2 1)"), env)
	if err == nil {
		t.Fatal("expected an arity error calling add2 with one argument")
	}
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != KindArityError {
		t.Errorf("error = %v, want *EvalError with Kind=ArityError", err)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	env := NewCoreEnvironment()
	_, err := Eval(mustRead(t, "(/ 1 0)"), env)
	if err == nil {
		t.Fatal("expected a divide-by-zero error")
	}
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != KindDivideByZero {
		t.Errorf("error = %v, want *EvalError with Kind=DivideByZero", err)
	}
}

func TestEvalEmptyDoErrors(t *testing.T) {
	env := NewCoreEnvironment()
	_, err := Eval(mustRead(t, "(do)"), env)
	if err == nil {
		t.Fatal("(do) with no body expressions should error")
	}
}

func TestEvalRecursionLimit(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(defn spin [n] (spin (+ n 1)))")
	_, err := Eval(mustRead(t, "(spin 0)"), env)
	if err == nil {
		t.Fatal("unbounded recursion should hit the recursion limit")
	}
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != KindRecursionLimit {
		t.Errorf("error = %v, want *EvalError with Kind=RecursionLimit", err)
	}
}

func mustRead(t *testing.T, src string) Value {
	t.Helper()
	v, err := Read(src)
	if err != nil {
		t.Fatalf("Read(%q) error: %v", src, err)
	}
	return v
}
