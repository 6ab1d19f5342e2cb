package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEvalNsAndSetNamespaced(t *testing.T) {
	env := NewCoreEnvironment()
	evalString(t, env, "(ns shapes)")
	evalString(t, env, "(def pi 3)")
	if got, ok := env.Get(Symbol("shapes/pi")); !ok || got.(Number) != 3 {
		t.Errorf("def after (ns shapes) should qualify as shapes/pi, got %v (ok=%v)", got, ok)
	}
}

func TestEvalLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.lisp")
	if err := os.WriteFile(path, []byte("(def loaded-value 7)"), 0o644); err != nil {
		t.Fatal(err)
	}
	env := NewCoreEnvironment()
	evalString(t, env, `(load "`+path+`")`)
	if got, ok := env.Get(Symbol("user/loaded-value")); !ok || got.(Number) != 7 {
		t.Errorf("(load ...) should define user/loaded-value = 7, got %v (ok=%v)", got, ok)
	}
}

func TestEvalRequireAndAlias(t *testing.T) {
	dir := t.TempDir()
	stdDir := filepath.Join(dir, "std", "strutil")
	if err := os.MkdirAll(stdDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stdDir, "case.lisp"), []byte("(def shout 1)"), 0o644); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	env := NewCoreEnvironment()
	evalString(t, env, "(require [strutil.case :as sc])")
	if !env.IsNamespaceLoaded("strutil.case") {
		t.Error("require should mark strutil.case as loaded")
	}
	if _, ok := env.Get(Symbol("user/shout")); !ok {
		t.Error("required file's top-level def should land in the calling env")
	}
	if target, ok := env.ResolveAlias("sc"); !ok || target != "strutil.case" {
		t.Errorf("ResolveAlias(sc) = (%q, %v), want (strutil.case, true)", target, ok)
	}

	// Re-requiring should be a no-op rather than reloading the file.
	evalString(t, env, "(require [strutil.case :as sc])")
}

func TestEvalQuoteReturnsUnevaluated(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, "(quote (+ 1 2))")
	list, ok := v.(*List)
	if !ok || list.Count() != 3 {
		t.Errorf("(quote (+ 1 2)) = %v, want the unevaluated 3-element list", v)
	}
}
