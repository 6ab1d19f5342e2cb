package core

import "testing"

func TestReadAtoms(t *testing.T) {
	cases := []struct {
		input string
		want  Value
	}{
		{"42", Number(42)},
		{"-3.5", Number(-3.5)},
		{`"hello"`, Str("hello")},
		{":kw", Keyword("kw")},
		{"foo", Symbol("foo")},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"nil", Nil{}},
	}
	for _, c := range cases {
		got, err := Read(c.input)
		if err != nil {
			t.Fatalf("Read(%q) error: %v", c.input, err)
		}
		if !Equal(got, c.want) {
			t.Errorf("Read(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestReadListVectorMap(t *testing.T) {
	got, err := Read("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	list, ok := got.(*List)
	if !ok || list.Count() != 3 {
		t.Fatalf("Read((+ 1 2)) = %v, want a 3-element list", got)
	}

	got, err = Read("[1 2 3]")
	if err != nil {
		t.Fatal(err)
	}
	vec, ok := got.(*Vector)
	if !ok || vec.Count() != 3 {
		t.Fatalf("Read([1 2 3]) = %v, want a 3-element vector", got)
	}

	got, err = Read("{:a 1 :b 2}")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(*Map)
	if !ok || m.Count() != 2 {
		t.Fatalf("Read({:a 1 :b 2}) = %v, want a 2-entry map", got)
	}
}

func TestReadQuoteSugarDesugars(t *testing.T) {
	cases := []struct {
		input string
		head  Symbol
	}{
		{"'x", "quote"},
		{"`x", "quasiquote"},
		{"~x", "unquote"},
		{"~@x", "unquote-splicing"},
	}
	for _, c := range cases {
		got, err := Read(c.input)
		if err != nil {
			t.Fatalf("Read(%q) error: %v", c.input, err)
		}
		list, ok := got.(*List)
		if !ok || list.Count() != 2 || list.First() != c.head {
			t.Errorf("Read(%q) = %v, want (%s x)", c.input, got, c.head)
		}
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(""); err == nil {
		t.Error("Read(\"\") should error on empty input")
	}
	if _, err := Read("(+ 1 2"); err == nil {
		t.Error("Read with an unterminated list should error")
	}
	if _, err := Read("1 2"); err == nil {
		t.Error("Read with trailing input after one form should error")
	}
	if _, err := Read(`"unterminated`); err == nil {
		t.Error("Read with an unterminated string should error")
	}
}

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("(def a 1) (def b 2) (+ a b)")
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 3 {
		t.Fatalf("ReadAll returned %d forms, want 3", len(forms))
	}
}

func TestReadCommentsAndCommas(t *testing.T) {
	got, err := Read("(+ 1, 2 ; trailing comment\n)")
	if err != nil {
		t.Fatal(err)
	}
	list := got.(*List)
	if list.Count() != 3 {
		t.Errorf("Read with comments/commas = %v, want a 3-element list", got)
	}
}
