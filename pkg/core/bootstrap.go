package core

import "os"

// coreMacros are bootstrapped via the language itself rather than wired
// as Go-native special cases, the way the teacher's bootstrap.go loads
// lisp/stdlib/*.lisp over the native environment.
const coreMacros = `
(defmacro when [c body] ` + "`" + `(if ~c ~body nil))
(defmacro unless [c body] ` + "`" + `(if ~c nil ~body))
`

// stdlibSearchPaths mirrors the teacher's relative fallback attempts so
// the interpreter works whether invoked from the repo root or a nested
// cmd/ build directory.
var stdlibSearchPaths = []string{
	"lisp/stdlib/core.lisp",
	"../../lisp/stdlib/core.lisp",
	"../../../lisp/stdlib/core.lisp",
	"./lisp/stdlib/core.lisp",
}

// NewCoreEnvironment builds a root environment with every built-in
// registered but no standard-library lisp source loaded yet.
func NewCoreEnvironment() *Environment {
	env := NewEnvironment()
	setupArithmeticOperations(env)
	setupCollectionOperations(env)
	setupStringOperations(env)
	setupIOOperations(env)
	setupMetaProgramming(env)
	if _, err := EvalAll(mustReadAll(coreMacros), env); err != nil {
		// The bootstrapped macro source is fixed at compile time; a
		// failure here is a defect in this file, not user input.
		panic("cortado: failed to bootstrap core macros: " + err.Error())
	}
	return env
}

func mustReadAll(src string) []Value {
	forms, err := ReadAll(src)
	if err != nil {
		panic("cortado: failed to parse bootstrapped source: " + err.Error())
	}
	return forms
}

// LoadStandardLibrary attempts to load lisp/stdlib/core.lisp from the
// first path that exists, relative to the process working directory,
// silently skipping if none is found — the core ships self-contained
// without it.
func LoadStandardLibrary(env *Environment) error {
	for _, path := range stdlibSearchPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_, err := loadFile(path, env)
		return err
	}
	return nil
}

// CreateDefaultEnv builds the root environment and attempts to load the
// standard library on top of it, matching the core API surface's
// create_default_env.
func CreateDefaultEnv() (*Environment, error) {
	env := NewCoreEnvironment()
	if err := LoadStandardLibrary(env); err != nil {
		return nil, err
	}
	return env, nil
}
