package core

import (
	"fmt"
	"strings"
)

func setupStringOperations(env *Environment) {
	native := func(name string, fn func([]Value, *Environment) (Value, error)) {
		env.Set(Symbol(name), &Native{Name: name, Fn: fn})
	}

	display := func(v Value) string {
		if s, ok := v.(Str); ok {
			return string(s)
		}
		return v.String()
	}

	native("str", func(args []Value, _ *Environment) (Value, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(display(a))
		}
		return Str(b.String()), nil
	})

	native("str-length", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("str-length requires exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("str-length expects a string, got %s", typeName(args[0]))
		}
		return Number(len(s)), nil
	})

	native("string-length", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("string-length requires exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("string-length expects a string, got %s", typeName(args[0]))
		}
		return Number(len(s)), nil
	})

	native("string-contains?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("string-contains? requires exactly 2 arguments, got %d", len(args))
		}
		s, ok1 := args[0].(Str)
		sub, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("string-contains? expects strings")
		}
		return Bool(strings.Contains(string(s), string(sub))), nil
	})

	native("string-split", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("string-split requires exactly 2 arguments, got %d", len(args))
		}
		s, ok1 := args[0].(Str)
		sep, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("string-split expects strings")
		}
		parts := strings.Split(string(s), string(sep))
		values := make([]Value, len(parts))
		for i, p := range parts {
			values[i] = Str(p)
		}
		if len(values) == 0 {
			return Nil{}, nil
		}
		return NewList(values...), nil
	})

	native("string-replace", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 3 {
			return nil, arityError("string-replace requires exactly 3 arguments, got %d", len(args))
		}
		s, ok1 := args[0].(Str)
		old, ok2 := args[1].(Str)
		replacement, ok3 := args[2].(Str)
		if !ok1 || !ok2 || !ok3 {
			return nil, typeError("string-replace expects strings")
		}
		return Str(strings.ReplaceAll(string(s), string(old), string(replacement))), nil
	})

	native("string-trim", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("string-trim requires exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("string-trim expects a string, got %s", typeName(args[0]))
		}
		return Str(strings.TrimSpace(string(s))), nil
	})

	native("substring", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 3 {
			return nil, arityError("substring requires exactly 3 arguments, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, typeError("substring expects a string, got %s", typeName(args[0]))
		}
		start, ok1 := args[1].(Number)
		end, ok2 := args[2].(Number)
		if !ok1 || !ok2 {
			return nil, typeError("substring expects numeric start/end")
		}
		i, j := int(start), int(end)
		if i < 0 || j > len(s) || i > j {
			return nil, typeError("substring bounds [%d,%d) out of range for length %d", i, j, len(s))
		}
		return Str(s[i:j]), nil
	})

	native("print", func(args []Value, _ *Environment) (Value, error) {
		var parts []string
		for _, a := range args {
			parts = append(parts, display(a))
		}
		fmt.Print(strings.Join(parts, " "))
		return Nil{}, nil
	})

	native("println", func(args []Value, _ *Environment) (Value, error) {
		var parts []string
		for _, a := range args {
			parts = append(parts, display(a))
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	})

	native("printf", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, arityError("printf requires at least 1 argument, got %d", len(args))
		}
		format, ok := args[0].(Str)
		if !ok {
			return nil, typeError("printf expects a format string, got %s", typeName(args[0]))
		}
		rest := make([]any, len(args)-1)
		for i, a := range args[1:] {
			rest[i] = display(a)
		}
		fmt.Printf(string(format), rest...)
		return Nil{}, nil
	})

	native("prn", func(args []Value, _ *Environment) (Value, error) {
		var parts []string
		for _, a := range args {
			parts = append(parts, a.String())
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	})
}
