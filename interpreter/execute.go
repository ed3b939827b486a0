package interpreter

import (
	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
)

// Execute runs one instruction and returns its value. Statements return
// a nil Value; so do expression-kind instructions that produce nothing,
// like a call to a void function.
func (c *Context) Execute(ins instruction.Instruction) (Value, error) {
	switch node := ins.(type) {
	case *instruction.Constant:
		return constantValue(node), nil

	case *instruction.Variable:
		v, ok := c.lookup(node.Name)
		if !ok {
			return nil, diag.New(diag.Interpreter,
				"undefined variable '%s'%s", node.Name, suggest(node.Name, c.variableNames()))
		}
		return v, nil

	case *instruction.VarAssign:
		v, err := c.Execute(node.Value)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, diag.New(diag.Interpreter, "no value to assign to '%s'", node.Symbol)
		}
		return nil, c.assign(node.Symbol, v, node.Mutable)

	case *instruction.FunctionCall:
		return c.call(node)

	case *instruction.FunctionDec:
		return nil, c.registerFunction(node)

	case *instruction.TypeDec:
		return nil, c.registerType(node)

	case *instruction.TypeInstantiation:
		return c.instantiate(node)

	case *instruction.BinaryOp:
		return c.binaryOp(node)

	case *instruction.Block:
		return c.executeBlock(node)

	case *instruction.Incl:
		return nil, c.include(node)
	}
	return nil, diag.New(diag.Interpreter, "cannot execute: %s", ins.Print())
}

func constantValue(node *instruction.Constant) Value {
	switch node.Type {
	case instruction.ConstChar:
		return Char{Value: node.Char}
	case instruction.ConstString:
		return String{Value: node.Str}
	case instruction.ConstFloat:
		return Float{Value: node.Float}
	default:
		return Int{Value: node.Int}
	}
}

// executeBlock runs a block in a fresh scope, popped again on every exit
// path.
func (c *Context) executeBlock(b *instruction.Block) (Value, error) {
	c.pushScope()
	defer c.popScope()
	return c.executeSeq(b)
}

func (c *Context) executeSeq(b *instruction.Block) (Value, error) {
	var last Value
	for i, ins := range b.Instructions {
		v, err := c.Execute(ins)
		if err != nil {
			return nil, err
		}
		if b.HasValue && i == len(b.Instructions)-1 {
			last = v
		}
	}
	return last, nil
}

// call resolves a name against user functions, then builtins, then
// linked libraries, and invokes the first match. Arguments evaluate
// left to right in the caller's scope before any parameter binds.
func (c *Context) call(node *instruction.FunctionCall) (Value, error) {
	if dec, ok := c.functions[node.Name]; ok {
		if len(node.Args) != len(dec.Args) {
			return nil, diag.New(diag.Interpreter,
				"wrong number of arguments for '%s': expected %d, got %d",
				node.Name, len(dec.Args), len(node.Args))
		}
		args, err := c.evalArgs(node.Args)
		if err != nil {
			return nil, err
		}

		c.pushScope()
		defer c.popScope()
		for i, a := range dec.Args {
			c.bindParam(a.Name, args[i])
		}
		c.logger.Debug("calling function", "name", node.Name, "args", len(args))
		return c.executeSeq(dec.Body)
	}

	if b, ok := c.builtins[node.Name]; ok {
		if len(node.Args) != b.arity {
			return nil, diag.New(diag.Interpreter,
				"wrong number of arguments for '%s': expected %d, got %d",
				node.Name, b.arity, len(node.Args))
		}
		args, err := c.evalArgs(node.Args)
		if err != nil {
			return nil, err
		}
		return b.fn(c, args)
	}

	if fn, ok := c.externLookup(node.Name); ok {
		args, err := c.evalArgs(node.Args)
		if err != nil {
			return nil, err
		}
		v, err := fn(args)
		if err != nil {
			return nil, diag.Wrap(diag.Interpreter, err, "in extern function '%s'", node.Name)
		}
		return v, nil
	}

	return nil, diag.New(diag.Interpreter,
		"unknown function '%s'%s", node.Name, suggest(node.Name, c.callableNames()))
}

func (c *Context) evalArgs(args []instruction.Instruction) ([]Value, error) {
	vals := make([]Value, 0, len(args))
	for _, a := range args {
		v, err := c.Execute(a)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, diag.New(diag.Interpreter, "argument '%s' produces no value", a.Print())
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// instantiate builds an instance of a declared type. The field count
// must match the declaration exactly; on mismatch nothing is built.
func (c *Context) instantiate(node *instruction.TypeInstantiation) (Value, error) {
	dec, ok := c.types[node.TypeName]
	if !ok {
		return nil, diag.New(diag.Interpreter,
			"unknown type '%s'%s", node.TypeName, suggest(node.TypeName, c.typeNames()))
	}
	if len(node.Fields) != len(dec.Fields) {
		return nil, diag.New(diag.Interpreter,
			"wrong number of fields for '%s': expected %d, got %d",
			node.TypeName, len(dec.Fields), len(node.Fields))
	}
	fields, err := c.evalArgs(node.Fields)
	if err != nil {
		return nil, err
	}
	return &Instance{Dec: dec, Fields: fields}, nil
}

func (c *Context) variableNames() []string {
	var names []string
	for _, s := range c.scopes {
		for name := range s {
			names = append(names, name)
		}
	}
	return names
}

func (c *Context) callableNames() []string {
	names := make([]string, 0, len(c.functions)+len(c.builtins))
	for name := range c.functions {
		names = append(names, name)
	}
	for name := range c.builtins {
		names = append(names, name)
	}
	return names
}

func (c *Context) typeNames() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	return names
}
