package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/lexer"
)

func TestShuntingYardExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     instruction.Instruction
		wantRest string
	}{
		{
			name:  "single constant",
			input: "42",
			want:  instruction.NewIntConstant(42),
		},
		{
			name:  "single variable",
			input: "x",
			want:  instruction.NewVariable("x"),
		},
		{
			name:  "addition keeps operand order",
			input: "1 - 2",
			want: instruction.NewBinaryOp(instruction.OpSub,
				instruction.NewIntConstant(1),
				instruction.NewIntConstant(2)),
		},
		{
			name:  "multiplication binds tighter on the right",
			input: "1 + 2 * 3",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewIntConstant(1),
				instruction.NewBinaryOp(instruction.OpMul,
					instruction.NewIntConstant(2),
					instruction.NewIntConstant(3))),
		},
		{
			name:  "multiplication binds tighter on the left",
			input: "1 * 2 + 3",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewBinaryOp(instruction.OpMul,
					instruction.NewIntConstant(1),
					instruction.NewIntConstant(2)),
				instruction.NewIntConstant(3)),
		},
		{
			name:  "parentheses group first",
			input: "(1 + 2) * 3",
			want: instruction.NewBinaryOp(instruction.OpMul,
				instruction.NewBinaryOp(instruction.OpAdd,
					instruction.NewIntConstant(1),
					instruction.NewIntConstant(2)),
				instruction.NewIntConstant(3)),
		},
		{
			name:  "parenthesized operand",
			input: "(42)",
			want:  instruction.NewIntConstant(42),
		},
		{
			name:  "nested parentheses",
			input: "((1 + 2))",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewIntConstant(1),
				instruction.NewIntConstant(2)),
		},
		{
			name:  "subtraction associates left",
			input: "10 - 2 - 3",
			want: instruction.NewBinaryOp(instruction.OpSub,
				instruction.NewBinaryOp(instruction.OpSub,
					instruction.NewIntConstant(10),
					instruction.NewIntConstant(2)),
				instruction.NewIntConstant(3)),
		},
		{
			name:  "same precedence associates left",
			input: "2 * 3 / 4",
			want: instruction.NewBinaryOp(instruction.OpDiv,
				instruction.NewBinaryOp(instruction.OpMul,
					instruction.NewIntConstant(2),
					instruction.NewIntConstant(3)),
				instruction.NewIntConstant(4)),
		},
		{
			name:  "comparison binds loosest",
			input: "1 + 2 < 2 * 3",
			want: instruction.NewBinaryOp(instruction.OpLt,
				instruction.NewBinaryOp(instruction.OpAdd,
					instruction.NewIntConstant(1),
					instruction.NewIntConstant(2)),
				instruction.NewBinaryOp(instruction.OpMul,
					instruction.NewIntConstant(2),
					instruction.NewIntConstant(3))),
		},
		{
			name:  "equality over call",
			input: "len(s) == 0",
			want: instruction.NewBinaryOp(instruction.OpEq,
				instruction.NewFunctionCall("len", []instruction.Instruction{
					instruction.NewVariable("s"),
				}),
				instruction.NewIntConstant(0)),
		},
		{
			name:  "call result in arithmetic",
			input: "f(2) + 1",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewFunctionCall("f", []instruction.Instruction{
					instruction.NewIntConstant(2),
				}),
				instruction.NewIntConstant(1)),
		},
		{
			name:  "instantiation operand",
			input: "Point(1, 2)",
			want: &instruction.TypeInstantiation{TypeName: "Point", Fields: []instruction.Instruction{
				instruction.NewIntConstant(1),
				instruction.NewIntConstant(2),
			}},
		},
		{
			name:     "stops at semicolon",
			input:    "1 + 2;",
			wantRest: ";",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewIntConstant(1),
				instruction.NewIntConstant(2)),
		},
		{
			name:     "stops at comma",
			input:    "1, 2",
			wantRest: ", 2",
			want:     instruction.NewIntConstant(1),
		},
		{
			name:     "stops at stray closing paren",
			input:    "1 + 2)",
			wantRest: ")",
			want: instruction.NewBinaryOp(instruction.OpAdd,
				instruction.NewIntConstant(1),
				instruction.NewIntConstant(2)),
		},
		{
			// The second '+' forces a reduce with a single operand on the
			// stack. The operator is dropped and the expression ends with
			// what was already built.
			name:     "missing right operand yields the partial parse",
			input:    "1 + + 2",
			wantRest: " + 2",
			want:     instruction.NewIntConstant(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, err := shuntingYardExpr(lexer.NewSpan(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRest, rest.Rest())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("expression mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShuntingYardExprErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "unbalanced open paren", input: "(1 + 2"},
		{name: "lone closing paren", input: ")"},
		{name: "lone operator", input: "+ 1"},
		{name: "two operands no operator", input: "1 2"},
		{name: "empty parens", input: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, _, err := shuntingYardExpr(lexer.NewSpan(tt.input))
			require.Error(t, err)
			assert.False(t, isFatal(err), "expression errors must stay recoverable")
			assert.Equal(t, tt.input, rest.Rest(), "failed rule must not consume")
		})
	}
}
