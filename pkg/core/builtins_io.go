package core

import (
	"io"
	"os"
	"time"
)

func setupIOOperations(env *Environment) {
	native := func(name string, fn func([]Value, *Environment) (Value, error)) {
		env.Set(Symbol(name), &Native{Name: name, Fn: fn})
	}

	native("now", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 0 {
			return nil, arityError("now requires no arguments, got %d", len(args))
		}
		return Number(time.Now().Unix()), nil
	})

	native("now-ms", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 0 {
			return nil, arityError("now-ms requires no arguments, got %d", len(args))
		}
		return Number(time.Now().UnixMilli()), nil
	})

	native("sleep-ms", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("sleep-ms requires exactly 1 argument, got %d", len(args))
		}
		ms, ok := args[0].(Number)
		if !ok {
			return nil, typeError("sleep-ms expects a number, got %s", typeName(args[0]))
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return Nil{}, nil
	})

	native("slurp", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("slurp requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("slurp expects a string path, got %s", typeName(args[0]))
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return nil, ioFailureError("slurp failed for %s: %v", path, err)
		}
		return Str(data), nil
	})

	native("read-file", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-file requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("read-file expects a string path, got %s", typeName(args[0]))
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return nil, ioFailureError("read-file failed for %s: %v", path, err)
		}
		return Str(data), nil
	})

	native("spit", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("spit requires exactly 2 arguments, got %d", len(args))
		}
		path, ok1 := args[0].(Str)
		content, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("spit expects (path, content) strings")
		}
		if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
			return nil, ioFailureError("spit failed for %s: %v", path, err)
		}
		return Nil{}, nil
	})

	native("write-file", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("write-file requires exactly 2 arguments, got %d", len(args))
		}
		path, ok1 := args[0].(Str)
		content, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("write-file expects (path, content) strings")
		}
		if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
			return nil, ioFailureError("write-file failed for %s: %v", path, err)
		}
		return Nil{}, nil
	})

	native("file-exists?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("file-exists? requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("file-exists? expects a string path, got %s", typeName(args[0]))
		}
		_, err := os.Stat(string(path))
		return Bool(err == nil), nil
	})

	native("directory?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("directory? requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("directory? expects a string path, got %s", typeName(args[0]))
		}
		info, err := os.Stat(string(path))
		if err != nil {
			return Bool(false), nil
		}
		return Bool(info.IsDir()), nil
	})

	native("file-size", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("file-size requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("file-size expects a string path, got %s", typeName(args[0]))
		}
		info, err := os.Stat(string(path))
		if err != nil {
			return nil, ioFailureError("file-size failed for %s: %v", path, err)
		}
		return Number(info.Size()), nil
	})

	native("copy-file", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("copy-file requires exactly 2 arguments, got %d", len(args))
		}
		src, ok1 := args[0].(Str)
		dst, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("copy-file expects (src, dst) strings")
		}
		data, err := os.ReadFile(string(src))
		if err != nil {
			return nil, ioFailureError("copy-file failed reading %s: %v", src, err)
		}
		if err := os.WriteFile(string(dst), data, 0o644); err != nil {
			return nil, ioFailureError("copy-file failed writing %s: %v", dst, err)
		}
		return Nil{}, nil
	})

	native("move-file", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("move-file requires exactly 2 arguments, got %d", len(args))
		}
		src, ok1 := args[0].(Str)
		dst, ok2 := args[1].(Str)
		if !ok1 || !ok2 {
			return nil, typeError("move-file expects (src, dst) strings")
		}
		if err := os.Rename(string(src), string(dst)); err != nil {
			return nil, ioFailureError("move-file failed %s -> %s: %v", src, dst, err)
		}
		return Nil{}, nil
	})

	native("delete-file", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("delete-file requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("delete-file expects a string path, got %s", typeName(args[0]))
		}
		if err := os.Remove(string(path)); err != nil {
			return nil, ioFailureError("delete-file failed for %s: %v", path, err)
		}
		return Nil{}, nil
	})

	native("list-dir", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("list-dir requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("list-dir expects a string path, got %s", typeName(args[0]))
		}
		entries, err := os.ReadDir(string(path))
		if err != nil {
			return nil, ioFailureError("list-dir failed for %s: %v", path, err)
		}
		values := make([]Value, len(entries))
		for i, e := range entries {
			values[i] = Str(e.Name())
		}
		if len(values) == 0 {
			return Nil{}, nil
		}
		return NewList(values...), nil
	})

	native("create-dir", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("create-dir requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("create-dir expects a string path, got %s", typeName(args[0]))
		}
		if err := os.MkdirAll(string(path), 0o755); err != nil {
			return nil, ioFailureError("create-dir failed for %s: %v", path, err)
		}
		return Nil{}, nil
	})

	native("delete-dir", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("delete-dir requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("delete-dir expects a string path, got %s", typeName(args[0]))
		}
		if err := os.RemoveAll(string(path)); err != nil {
			return nil, ioFailureError("delete-dir failed for %s: %v", path, err)
		}
		return Nil{}, nil
	})

	native("reader", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("reader requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("reader expects a string path, got %s", typeName(args[0]))
		}
		f, err := os.Open(string(path))
		if err != nil {
			return nil, ioFailureError("reader failed to open %s: %v", path, err)
		}
		return &IOResource{Kind: IOReader, Handle: f}, nil
	})

	native("writer", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("writer requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("writer expects a string path, got %s", typeName(args[0]))
		}
		f, err := os.Create(string(path))
		if err != nil {
			return nil, ioFailureError("writer failed to open %s: %v", path, err)
		}
		return &IOResource{Kind: IOWriter, Handle: f}, nil
	})

	native("input-stream", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("input-stream requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("input-stream expects a string path, got %s", typeName(args[0]))
		}
		f, err := os.Open(string(path))
		if err != nil {
			return nil, ioFailureError("input-stream failed to open %s: %v", path, err)
		}
		return &IOResource{Kind: IOInputStream, Handle: f}, nil
	})

	native("output-stream", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("output-stream requires exactly 1 argument, got %d", len(args))
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, typeError("output-stream expects a string path, got %s", typeName(args[0]))
		}
		f, err := os.Create(string(path))
		if err != nil {
			return nil, ioFailureError("output-stream failed to open %s: %v", path, err)
		}
		return &IOResource{Kind: IOOutputStream, Handle: f}, nil
	})

	native("read-line", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-line requires exactly 1 argument, got %d", len(args))
		}
		res, ok := args[0].(*IOResource)
		if !ok {
			return nil, typeError("read-line expects a reader resource, got %s", typeName(args[0]))
		}
		res.Lock()
		defer res.Unlock()
		f, ok := res.Handle.(io.Reader)
		if !ok {
			return nil, typeError("read-line expects an opened reader resource")
		}
		br := res.BufferedReader(f)
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return Nil{}, nil
			}
			return nil, ioFailureError("read-line failed: %v", err)
		}
		return Str(trimNewline(line)), nil
	})

	native("copy", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("copy requires exactly 2 arguments, got %d", len(args))
		}
		src, ok1 := args[0].(*IOResource)
		dst, ok2 := args[1].(*IOResource)
		if !ok1 || !ok2 {
			return nil, typeError("copy expects two io-resource values")
		}
		src.Lock()
		defer src.Unlock()
		dst.Lock()
		defer dst.Unlock()
		r, ok := src.Handle.(io.Reader)
		if !ok {
			return nil, typeError("copy source must be readable")
		}
		w, ok := dst.Handle.(io.Writer)
		if !ok {
			return nil, typeError("copy destination must be writable")
		}
		n, err := io.Copy(w, r)
		if err != nil {
			return nil, ioFailureError("copy failed: %v", err)
		}
		return Number(n), nil
	})
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
