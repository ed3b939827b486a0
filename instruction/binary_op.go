package instruction

// BinaryOp applies an operator to two sub-expressions.
type BinaryOp struct {
	Op  Operator
	LHS Instruction
	RHS Instruction
}

func NewBinaryOp(op Operator, lhs, rhs Instruction) *BinaryOp {
	return &BinaryOp{Op: op, LHS: lhs, RHS: rhs}
}

func (b *BinaryOp) Kind() Kind { return Expression }

func (b *BinaryOp) Print() string {
	return b.operandString(b.LHS, false) + " " + b.Op.String() + " " + b.operandString(b.RHS, true)
}

// operandString parenthesizes a child only when leaving the parentheses
// out would regroup the tree on a reparse.
func (b *BinaryOp) operandString(child Instruction, right bool) string {
	s := child.Print()
	op, ok := child.(*BinaryOp)
	if !ok {
		return s
	}
	if op.Op.Precedence() < b.Op.Precedence() ||
		(op.Op.Precedence() == b.Op.Precedence() && right) {
		return "(" + s + ")"
	}
	return s
}

func (b *BinaryOp) isInstruction() {}
