package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinCollections(t *testing.T) {
	env := NewCoreEnvironment()

	v := evalString(t, env, `(cons 1 (list 2 3))`)
	if list, ok := v.(*List); !ok || list.Count() != 3 {
		t.Errorf("cons result = %v, want a 3-element list", v)
	}

	v = evalString(t, env, `(first (list 1 2 3))`)
	if n, ok := v.(Number); !ok || n != 1 {
		t.Errorf("first = %v, want 1", v)
	}

	v = evalString(t, env, `(rest (list 1))`)
	if _, ok := v.(Nil); !ok {
		t.Errorf("rest of a singleton list = %v, want nil", v)
	}

	v = evalString(t, env, `(assoc {:a 1} :b 2)`)
	m, ok := v.(*Map)
	if !ok || m.Count() != 2 {
		t.Fatalf("assoc result = %v, want a 2-entry map", v)
	}

	v = evalString(t, env, `(get {:a 1} :missing)`)
	if _, ok := v.(Nil); !ok {
		t.Errorf("get of a missing key = %v, want nil", v)
	}

	v = evalString(t, env, `(count [1 2 3 4])`)
	if n, ok := v.(Number); !ok || n != 4 {
		t.Errorf("count = %v, want 4", v)
	}

	v = evalString(t, env, `(conj [1 2] 3 4)`)
	vec, ok := v.(*Vector)
	if !ok || vec.Count() != 4 {
		t.Errorf("conj result = %v, want a 4-element vector", v)
	}
}

func TestBuiltinStrings(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, `(str "a" "b" 1)`)
	if s, ok := v.(Str); !ok || s != "ab1" {
		t.Errorf("str result = %v, want \"ab1\"", v)
	}
	v = evalString(t, env, `(string-contains? "hello world" "wor")`)
	if b, ok := v.(Bool); !ok || !bool(b) {
		t.Errorf("string-contains? result = %v, want true", v)
	}
	v = evalString(t, env, `(substring "hello" 1 3)`)
	if s, ok := v.(Str); !ok || s != "el" {
		t.Errorf("substring result = %v, want \"el\"", v)
	}
}

func TestBuiltinIOFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scratch.txt")

	env := NewCoreEnvironment()
	evalString(t, env, `(spit "`+path+`" "payload")`)

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "payload" {
		t.Fatalf("spit did not write the expected file contents: %v, %q", err, data)
	}

	v := evalString(t, env, `(slurp "`+path+`")`)
	if s, ok := v.(Str); !ok || s != "payload" {
		t.Errorf("slurp result = %v, want \"payload\"", v)
	}

	v = evalString(t, env, `(file-exists? "`+path+`")`)
	if b, ok := v.(Bool); !ok || !bool(b) {
		t.Errorf("file-exists? = %v, want true", v)
	}
}

func TestBuiltinReadLinePersistsBufferAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multi-line.txt")
	// Large enough that bufio's first Fill() reads well past the first "\n".
	var content string
	for i := 0; i < 2000; i++ {
		content += "padding-line-to-force-a-big-read\n"
	}
	content = "first\nsecond\n" + content
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env := NewCoreEnvironment()
	evalString(t, env, `(def r (reader "`+path+`"))`)
	v := evalString(t, env, `(read-line r)`)
	if s, ok := v.(Str); !ok || s != "first" {
		t.Fatalf("first read-line = %v, want \"first\"", v)
	}
	v = evalString(t, env, `(read-line r)`)
	if s, ok := v.(Str); !ok || s != "second" {
		t.Fatalf("second read-line = %v, want \"second\" (buffer must persist across calls)", v)
	}
}

func TestBuiltinApply(t *testing.T) {
	env := NewCoreEnvironment()
	v := evalString(t, env, `(apply + (list 1 2 3))`)
	if n, ok := v.(Number); !ok || n != 6 {
		t.Errorf("apply result = %v, want 6", v)
	}
}
