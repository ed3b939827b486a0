// Package interpreter executes instruction trees. A Context owns the
// scope stack, the function, type and builtin tables and the set of
// linked libraries; executing an instruction reads the tree and mutates
// only the Context.
package interpreter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
)

// ExternFunc is a callable exported by a linked library.
type ExternFunc func(args []Value) (Value, error)

// Library is a linked foreign library. Lookup resolves an exported
// symbol by the name used at the call site.
type Library interface {
	Name() string
	Lookup(symbol string) (ExternFunc, bool)
}

// Loader turns a library path into a Library. The process-level
// implementation lives in the ffi package; tests substitute their own.
type Loader interface {
	Open(path string) (Library, error)
}

type binding struct {
	value   Value
	mutable bool
}

type scope map[string]*binding

// Context is the runtime state of one interpreter. It accumulates
// monotonically: declarations register, libraries link, scopes push and
// pop, and nothing is ever unregistered.
type Context struct {
	scopes    []scope
	functions map[string]*instruction.FunctionDec
	types     map[string]*instruction.TypeDec
	builtins  map[string]builtin
	libraries []Library
	linked    map[string]bool
	included  map[string]bool

	args   []string
	stdout io.Writer
	stderr io.Writer
	loader Loader
	logger *slog.Logger
	dir    string
}

// Option adjusts a Context at construction.
type Option func(*Context)

// WithArgs supplies the script arguments reachable through
// __builtin_arg_get. The script path itself is not part of them.
func WithArgs(args []string) Option {
	return func(c *Context) { c.args = args }
}

// WithStdout redirects display output.
func WithStdout(w io.Writer) Option {
	return func(c *Context) { c.stdout = w }
}

// WithStderr redirects error display output.
func WithStderr(w io.Writer) Option {
	return func(c *Context) { c.stderr = w }
}

// WithLoader installs the library loader used by __builtin_link_with.
func WithLoader(l Loader) Option {
	return func(c *Context) { c.loader = l }
}

// WithLogger routes execution debug logging somewhere visible.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithScriptPath records the path of the script being run. Includes
// resolve relative to its directory.
func WithScriptPath(path string) Option {
	return func(c *Context) { c.dir = filepath.Dir(path) }
}

// New builds a Context with one open scope and the builtin table
// registered.
func New(opts ...Option) *Context {
	c := &Context{
		scopes:    []scope{{}},
		functions: make(map[string]*instruction.FunctionDec),
		types:     make(map[string]*instruction.TypeDec),
		builtins:  defaultBuiltins(),
		linked:    make(map[string]bool),
		included:  make(map[string]bool),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		dir:       ".",
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ExecuteProgram runs a program block in the current scope, without
// pushing a new one, so successive programs against the same Context
// accumulate state. That is what keeps a REPL session alive across
// lines. The returned value is the program's trailing expression value,
// nil when it has none.
func (c *Context) ExecuteProgram(program *instruction.Block) (Value, error) {
	var last Value
	for i, ins := range program.Instructions {
		v, err := c.Execute(ins)
		if err != nil {
			return nil, err
		}
		if i == len(program.Instructions)-1 && program.HasValue {
			last = v
		}
	}
	return last, nil
}

func (c *Context) pushScope() {
	c.scopes = append(c.scopes, scope{})
}

func (c *Context) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// lookup resolves a name innermost-first.
func (c *Context) lookup(name string) (Value, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i][name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// assign writes a name following the innermost-first rule: the nearest
// existing binding is updated if mutable and refused if not, and only
// an unbound name creates a fresh binding in the innermost scope.
func (c *Context) assign(name string, v Value, mutable bool) error {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		b, ok := c.scopes[i][name]
		if !ok {
			continue
		}
		if !b.mutable {
			return diag.New(diag.Interpreter, "cannot reassign immutable variable '%s'", name)
		}
		b.value = v
		return nil
	}
	c.scopes[len(c.scopes)-1][name] = &binding{value: v, mutable: mutable}
	return nil
}

// bindParam creates a call parameter binding directly in the innermost
// scope. Unlike assign it never reaches outward, so parameters shadow
// whatever the caller had under the same name.
func (c *Context) bindParam(name string, v Value) {
	c.scopes[len(c.scopes)-1][name] = &binding{value: v}
}

// registerFunction records a function declaration. Function, builtin
// and library namespaces are unified at call sites, so colliding with a
// registered function or a builtin is refused here rather than leaving
// the call-time winner unspecified.
func (c *Context) registerFunction(dec *instruction.FunctionDec) error {
	if _, ok := c.builtins[dec.Name]; ok {
		return diag.New(diag.Interpreter, "'%s' is a builtin and cannot be redefined", dec.Name)
	}
	if _, ok := c.functions[dec.Name]; ok {
		return diag.New(diag.Interpreter, "function '%s' is already defined", dec.Name)
	}
	if dec.Ret != nil && !dec.Body.HasValue {
		return diag.New(diag.Interpreter,
			"function '%s' declares a return type but its body has no trailing expression", dec.Name)
	}
	c.functions[dec.Name] = dec
	c.logger.Debug("registered function", "name", dec.Name, "args", len(dec.Args))
	return nil
}

func (c *Context) registerType(dec *instruction.TypeDec) error {
	if _, ok := c.types[dec.Name]; ok {
		return diag.New(diag.Interpreter, "type '%s' is already defined", dec.Name)
	}
	c.types[dec.Name] = dec
	c.logger.Debug("registered type", "name", dec.Name, "fields", len(dec.Fields))
	return nil
}

// Link loads the library at path and adds it to the resolution chain.
// Linking the same path twice is a no-op; libraries resolve in link
// order, so the chain stays deterministic.
func (c *Context) Link(path string) error {
	if c.linked[path] {
		return nil
	}
	if c.loader == nil {
		return diag.New(diag.Interpreter, "no library loader available to link '%s'", path)
	}
	lib, err := c.loader.Open(path)
	if err != nil {
		return diag.Wrap(diag.IO, err, "linking '%s'", path)
	}
	c.libraries = append(c.libraries, lib)
	c.linked[path] = true
	c.logger.Debug("linked library", "path", path, "name", lib.Name())
	return nil
}

// externLookup searches linked libraries in link order.
func (c *Context) externLookup(name string) (ExternFunc, bool) {
	for _, lib := range c.libraries {
		if fn, ok := lib.Lookup(name); ok {
			return fn, true
		}
	}
	return nil, false
}
