package interpreter

import (
	"io"

	"github.com/BastienGermond/jinko/diag"
)

// builtin pairs an implementation with its arity. Builtins go through
// the same call path as user functions, so arity mismatches surface the
// same way.
type builtin struct {
	arity int
	fn    func(c *Context, args []Value) (Value, error)
}

// defaultBuiltins returns the builtin table every Context starts with.
// The names are reserved: registering a user function under one of them
// fails.
func defaultBuiltins() map[string]builtin {
	return map[string]builtin{
		"__builtin_string_len":         {arity: 1, fn: stringLen},
		"__builtin_string_concat":      {arity: 2, fn: stringConcat},
		"__builtin_string_display":     {arity: 1, fn: stringDisplay},
		"__builtin_string_display_err": {arity: 1, fn: stringDisplayErr},
		"__builtin_string_is_empty":    {arity: 1, fn: stringIsEmpty},
		"__builtin_string_equals":      {arity: 2, fn: stringEquals},
		"__builtin_link_with":          {arity: 1, fn: linkWith},
		"__builtin_arg_get":            {arity: 1, fn: argGet},
	}
}

func wantString(name string, arg Value) (string, error) {
	s, ok := arg.(String)
	if !ok {
		return "", diag.New(diag.Interpreter, "'%s' wants a string, got %s", name, arg.Type())
	}
	return s.Value, nil
}

// stringLen returns the length in bytes, matching what a script sees
// when it walks the string with other builtins.
func stringLen(_ *Context, args []Value) (Value, error) {
	s, err := wantString("__builtin_string_len", args[0])
	if err != nil {
		return nil, err
	}
	return Int{Value: int64(len(s))}, nil
}

func stringConcat(_ *Context, args []Value) (Value, error) {
	lhs, err := wantString("__builtin_string_concat", args[0])
	if err != nil {
		return nil, err
	}
	rhs, err := wantString("__builtin_string_concat", args[1])
	if err != nil {
		return nil, err
	}
	return String{Value: lhs + rhs}, nil
}

// stringDisplay writes the string as-is, no trailing newline.
func stringDisplay(c *Context, args []Value) (Value, error) {
	return nil, display(c.stdout, "__builtin_string_display", args[0])
}

func stringDisplayErr(c *Context, args []Value) (Value, error) {
	return nil, display(c.stderr, "__builtin_string_display_err", args[0])
}

func display(w io.Writer, name string, arg Value) error {
	s, err := wantString(name, arg)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return diag.Wrap(diag.IO, err, "writing output")
	}
	return nil
}

func stringIsEmpty(_ *Context, args []Value) (Value, error) {
	s, err := wantString("__builtin_string_is_empty", args[0])
	if err != nil {
		return nil, err
	}
	return Bool{Value: s == ""}, nil
}

func stringEquals(_ *Context, args []Value) (Value, error) {
	lhs, err := wantString("__builtin_string_equals", args[0])
	if err != nil {
		return nil, err
	}
	rhs, err := wantString("__builtin_string_equals", args[1])
	if err != nil {
		return nil, err
	}
	return Bool{Value: lhs == rhs}, nil
}

func linkWith(c *Context, args []Value) (Value, error) {
	path, err := wantString("__builtin_link_with", args[0])
	if err != nil {
		return nil, err
	}
	return nil, c.Link(path)
}

// argGet returns the nth script argument. An out-of-range index yields
// an empty string rather than an error, so scripts can probe for
// optional arguments without a length builtin.
func argGet(c *Context, args []Value) (Value, error) {
	n, ok := args[0].(Int)
	if !ok {
		return nil, diag.New(diag.Interpreter, "'__builtin_arg_get' wants an int, got %s", args[0].Type())
	}
	if n.Value < 0 || n.Value >= int64(len(c.args)) {
		return String{}, nil
	}
	return String{Value: c.args[n.Value]}, nil
}
