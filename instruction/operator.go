package instruction

// Operator is an expression operator. Parentheses are part of the set
// because the expression parser stacks them alongside real operators; they
// never appear in a built BinaryOp.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpEq
	OpNeq
	OpLeftParen
	OpRightParen
)

// Precedence returns the binding strength of the operator; higher binds
// tighter. Parentheses rank lowest so they never win a reduce comparison.
func (o Operator) Precedence() int {
	switch o {
	case OpMul, OpDiv:
		return 3
	case OpAdd, OpSub:
		return 2
	case OpLt, OpGt, OpLtEq, OpGtEq, OpEq, OpNeq:
		return 1
	default:
		return 0
	}
}

// IsLeftAssociative reports how equal-precedence chains group. Every
// operator is currently left-associative; the method keeps the reduce rule
// written against the general case.
func (o Operator) IsLeftAssociative() bool { return true }

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLtEq:
		return "<="
	case OpGtEq:
		return ">="
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLeftParen:
		return "("
	case OpRightParen:
		return ")"
	default:
		return "?"
	}
}

// OperatorFor maps an operator's source text to its Operator.
func OperatorFor(text string) (Operator, bool) {
	switch text {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "<":
		return OpLt, true
	case ">":
		return OpGt, true
	case "<=":
		return OpLtEq, true
	case ">=":
		return OpGtEq, true
	case "==":
		return OpEq, true
	case "!=":
		return OpNeq, true
	case "(":
		return OpLeftParen, true
	case ")":
		return OpRightParen, true
	default:
		return 0, false
	}
}
