package core

import (
	"hash/fnv"
	"sort"
)

// Equal implements structural equality. Function and IOResource values
// compare by identity (Function: pointer identity; IOResource: always
// false), matching the original's PartialEq impls.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Keyword:
		y, ok := b.(Keyword)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false
		}
		return equalLists(x, y)
	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.elements) != len(y.elements) {
			return false
		}
		for i := range x.elements {
			if !Equal(x.elements[i], y.elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		y, ok := b.(*Map)
		if !ok || x.Count() != y.Count() {
			return false
		}
		for _, k := range x.keys {
			yv, ok := y.Get(k)
			if !ok || !Equal(x.pairs[k], yv) {
				return false
			}
		}
		return true
	case Uninitialized:
		_, ok := b.(Uninitialized)
		return ok
	case *IOResource:
		return false
	default:
		if _, ok := a.(Function); ok {
			return a == b
		}
		return false
	}
}

func equalLists(a, b *List) bool {
	for a != nil && b != nil {
		if !Equal(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return a == nil && b == nil
}

// HashValue computes a total hash over Value, tagging each variant with a
// discriminant byte before hashing its payload so that distinct variants
// never collide trivially, and sorting map keys so maps hash
// order-independently.
func HashValue(v Value) uint64 {
	h := fnv.New64a()
	hashInto(h, v)
	return h.Sum64()
}

func hashInto(h interface{ Write([]byte) (int, error) }, v Value) {
	write := func(tag byte, s string) {
		h.Write([]byte{tag})
		h.Write([]byte(s))
	}
	switch x := v.(type) {
	case Symbol:
		write(0, string(x))
	case Number:
		write(1, Number(x).String())
	case Bool:
		if x {
			write(2, "1")
		} else {
			write(2, "0")
		}
	case Nil:
		h.Write([]byte{3})
	case Str:
		write(4, string(x))
	case *List:
		h.Write([]byte{5})
		for cur := x; cur != nil; cur = cur.tail {
			hashInto(h, cur.head)
		}
	case *Vector:
		h.Write([]byte{6})
		for _, e := range x.elements {
			hashInto(h, e)
		}
	case *Map:
		h.Write([]byte{7})
		keys := x.Keys()
		sort.Strings(keys)
		for _, k := range keys {
			write(0, k)
			v, _ := x.Get(k)
			hashInto(h, v)
		}
	case Keyword:
		write(8, string(x))
	case Uninitialized:
		h.Write([]byte{11})
	case *IOResource:
		h.Write([]byte{10})
	default:
		h.Write([]byte{9})
	}
}

