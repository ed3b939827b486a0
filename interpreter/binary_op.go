package interpreter

import (
	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
)

// binaryOp evaluates both operands, left first, then applies the
// operator. Arithmetic and ordering are defined on int/int and
// float/float; equality on any two primitives of the same type.
func (c *Context) binaryOp(node *instruction.BinaryOp) (Value, error) {
	lhs, err := c.Execute(node.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := c.Execute(node.RHS)
	if err != nil {
		return nil, err
	}
	if lhs == nil || rhs == nil {
		return nil, diag.New(diag.Interpreter, "operand of '%s' produces no value", node.Op)
	}

	switch node.Op {
	case instruction.OpAdd, instruction.OpSub, instruction.OpMul, instruction.OpDiv:
		return arith(node.Op, lhs, rhs)
	case instruction.OpLt, instruction.OpGt, instruction.OpLtEq, instruction.OpGtEq:
		return compare(node.Op, lhs, rhs)
	case instruction.OpEq, instruction.OpNeq:
		return equality(node.Op, lhs, rhs)
	}
	return nil, typeError(node.Op, lhs, rhs)
}

func arith(op instruction.Operator, lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Int:
		r, ok := rhs.(Int)
		if !ok {
			return nil, typeError(op, lhs, rhs)
		}
		if op == instruction.OpDiv && r.Value == 0 {
			return nil, diag.New(diag.Interpreter, "division by zero")
		}
		switch op {
		case instruction.OpAdd:
			return Int{Value: l.Value + r.Value}, nil
		case instruction.OpSub:
			return Int{Value: l.Value - r.Value}, nil
		case instruction.OpMul:
			return Int{Value: l.Value * r.Value}, nil
		default:
			return Int{Value: l.Value / r.Value}, nil
		}
	case Float:
		// Float division follows IEEE semantics, so dividing by zero
		// yields an infinity instead of an error.
		r, ok := rhs.(Float)
		if !ok {
			return nil, typeError(op, lhs, rhs)
		}
		switch op {
		case instruction.OpAdd:
			return Float{Value: l.Value + r.Value}, nil
		case instruction.OpSub:
			return Float{Value: l.Value - r.Value}, nil
		case instruction.OpMul:
			return Float{Value: l.Value * r.Value}, nil
		default:
			return Float{Value: l.Value / r.Value}, nil
		}
	}
	return nil, typeError(op, lhs, rhs)
}

func compare(op instruction.Operator, lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Int:
		if r, ok := rhs.(Int); ok {
			return Bool{Value: ordered(op, l.Value, r.Value)}, nil
		}
	case Float:
		if r, ok := rhs.(Float); ok {
			return Bool{Value: ordered(op, l.Value, r.Value)}, nil
		}
	}
	return nil, typeError(op, lhs, rhs)
}

func ordered[T int64 | float64](op instruction.Operator, l, r T) bool {
	switch op {
	case instruction.OpLt:
		return l < r
	case instruction.OpGt:
		return l > r
	case instruction.OpLtEq:
		return l <= r
	default:
		return l >= r
	}
}

// equality compares primitives of the same type. Instances have no
// defined equality, so comparing them is a type error rather than a
// silent identity check.
func equality(op instruction.Operator, lhs, rhs Value) (Value, error) {
	if _, ok := lhs.(*Instance); ok {
		return nil, diag.New(diag.Interpreter, "cannot compare instances of '%s'", lhs.Type())
	}
	if _, ok := rhs.(*Instance); ok {
		return nil, diag.New(diag.Interpreter, "cannot compare instances of '%s'", rhs.Type())
	}
	if lhs.Type() != rhs.Type() {
		return nil, typeError(op, lhs, rhs)
	}

	eq := lhs == rhs
	if op == instruction.OpNeq {
		eq = !eq
	}
	return Bool{Value: eq}, nil
}

func typeError(op instruction.Operator, lhs, rhs Value) error {
	return diag.New(diag.Interpreter,
		"invalid operands for '%s': %s and %s", op, lhs.Type(), rhs.Type())
}
