package core

import "testing"

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{Number(42), "42"},
		{Number(-7), "-7"},
		{Number(3.5), "3.5"},
		{Number(0), "0"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("Number(%v).String() = %q, want %q", float64(c.n), got, c.want)
		}
	}
}

func TestStrStringEscaping(t *testing.T) {
	s := Str(`say "hi"\`)
	want := `"say \"hi\"\\"`
	if got := s.String(); got != want {
		t.Errorf("Str.String() = %q, want %q", got, want)
	}
}

func TestSymbolQualified(t *testing.T) {
	sym := Symbol("str/upper")
	ns, name, ok := sym.Qualified()
	if !ok || ns != "str" || name != "upper" {
		t.Errorf("Qualified() = (%q, %q, %v), want (str, upper, true)", ns, name, ok)
	}

	bare := Symbol("foo")
	if _, _, ok := bare.Qualified(); ok {
		t.Error("Qualified() on a bare symbol should report ok=false")
	}
}

func TestEmptyListIsNilReceiverSafe(t *testing.T) {
	var l *List
	if !l.IsEmpty() {
		t.Error("nil *List should be empty")
	}
	if l.Count() != 0 {
		t.Errorf("nil *List.Count() = %d, want 0", l.Count())
	}
	if _, ok := l.First().(Nil); !ok {
		t.Error("nil *List.First() should be Nil")
	}
	if l.Rest() != nil {
		t.Error("nil *List.Rest() should remain nil")
	}
	if l.String() != "()" {
		t.Errorf("nil *List.String() = %q, want ()", l.String())
	}
}

func TestListConsAndToSlice(t *testing.T) {
	l := NewList(Number(1), Number(2), Number(3))
	l2 := Cons(Number(0), l)
	if l2.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", l2.Count())
	}
	slice := l2.ToSlice()
	for i, want := range []Number{0, 1, 2, 3} {
		if slice[i].(Number) != want {
			t.Errorf("slice[%d] = %v, want %v", i, slice[i], want)
		}
	}
}

func TestVectorGet(t *testing.T) {
	v := NewVector(Number(1), Number(2))
	if got, ok := v.Get(0); !ok || got.(Number) != 1 {
		t.Errorf("Get(0) = (%v, %v), want (1, true)", got, ok)
	}
	if _, ok := v.Get(5); ok {
		t.Error("Get(5) should report ok=false on an out-of-range index")
	}
}

func TestMapSetDeleteOrder(t *testing.T) {
	m := NewMap()
	m.Set("a", Number(1))
	m.Set("b", Number(2))
	m.Set("a", Number(3))
	if m.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (re-setting a key shouldn't grow key order)", m.Count())
	}
	if keys := m.Keys(); keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	m.Delete("a")
	if m.Count() != 1 {
		t.Errorf("Count() after Delete = %d, want 1", m.Count())
	}
	if _, ok := m.Get("a"); ok {
		t.Error("deleted key should no longer be present")
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []Value{Number(0), Str(""), Bool(true), NewList(), NewVector()}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Errorf("IsTruthy(%v) = false, want true", v)
		}
	}
	falsy := []Value{Nil{}, Bool(false)}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Errorf("IsTruthy(%v) = true, want false", v)
		}
	}
}
