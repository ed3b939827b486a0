package parser

import (
	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/lexer"
)

// shuntingYard holds the two stacks of the operator-precedence pass: the
// pending operators and the already-built sub-expressions.
type shuntingYard struct {
	operators []instruction.Operator
	output    []instruction.Instruction
}

// shuntingYardExpr parses an operator expression incrementally, one
// operand or operator at a time, reducing by precedence as it goes. The
// expression ends at the first token that is neither, and is valid only
// if draining the stacks leaves exactly one node.
func shuntingYardExpr(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	start := in
	sy := &shuntingYard{}
	for {
		next, err := sy.handleToken(in)
		if err != nil {
			if isFatal(err) {
				return start, nil, err
			}
			break
		}
		if next == in {
			break
		}
		in = next
	}
	if err := sy.drain(in); err != nil {
		return start, nil, err
	}
	if len(sy.output) != 1 {
		return start, nil, errAt(in, "not a valid expression")
	}
	return in, sy.output[0], nil
}

// handleToken consumes one operator or operand, looking a single byte
// ahead to decide which.
func (sy *shuntingYard) handleToken(in lexer.Span) (lexer.Span, error) {
	rest := lexer.MaybeConsumeExtra(in)
	if rest.Empty() {
		return in, errAt(rest, "end of input")
	}
	if lexer.PeekOperator(rest) {
		return sy.operator(rest)
	}
	return sy.operand(rest)
}

func (sy *shuntingYard) operand(in lexer.Span) (lexer.Span, error) {
	rest, node, err := alt(functionCall, typeInstantiation, constant, variable)(in)
	if err != nil {
		return in, err
	}
	sy.output = append(sy.output, node)
	return rest, nil
}

func (sy *shuntingYard) operator(in lexer.Span) (lexer.Span, error) {
	rest, tok, err := lexer.AnyOperator(in)
	if err != nil {
		return in, err
	}
	op, _ := instruction.OperatorFor(tok.Text)

	switch op {
	case instruction.OpLeftParen:
		// Pushed unconditionally; only a ')' can take it back off.
		sy.operators = append(sy.operators, op)

	case instruction.OpRightParen:
		for {
			if len(sy.operators) == 0 {
				// No opening parenthesis on the stack, so this ')' is not
				// ours. Failing here ends the expression and leaves the
				// ')' for an enclosing argument list to claim.
				return in, errAt(in, "unbalanced ')'")
			}
			if sy.operators[len(sy.operators)-1] == instruction.OpLeftParen {
				sy.operators = sy.operators[:len(sy.operators)-1]
				break
			}
			if err := sy.reduce(in); err != nil {
				return in, err
			}
		}

	default:
		for len(sy.operators) > 0 {
			top := sy.operators[len(sy.operators)-1]
			if top == instruction.OpLeftParen {
				break
			}
			if top.Precedence() > op.Precedence() ||
				(top.Precedence() == op.Precedence() && op.IsLeftAssociative()) {
				if err := sy.reduce(in); err != nil {
					return in, err
				}
				continue
			}
			break
		}
		sy.operators = append(sy.operators, op)
	}
	return rest, nil
}

// reduce pops one operator and two operands and pushes the built node.
// The first output pop is the right operand; stack order mirrors source
// order.
func (sy *shuntingYard) reduce(at lexer.Span) error {
	if len(sy.operators) == 0 {
		return errAt(at, "malformed expression")
	}
	op := sy.operators[len(sy.operators)-1]
	sy.operators = sy.operators[:len(sy.operators)-1]
	if op == instruction.OpLeftParen || op == instruction.OpRightParen {
		return errAt(at, "unbalanced '('")
	}
	if len(sy.output) < 2 {
		return errAt(at, "malformed expression")
	}
	rhs := sy.output[len(sy.output)-1]
	lhs := sy.output[len(sy.output)-2]
	sy.output = sy.output[:len(sy.output)-2]
	sy.output = append(sy.output, instruction.NewBinaryOp(op, lhs, rhs))
	return nil
}

// drain reduces everything left once the input stops yielding expression
// tokens. A parenthesis surfacing here was never closed.
func (sy *shuntingYard) drain(at lexer.Span) error {
	for len(sy.operators) > 0 {
		if err := sy.reduce(at); err != nil {
			return err
		}
	}
	return nil
}
