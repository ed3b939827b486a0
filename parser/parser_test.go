package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *instruction.Block
	}{
		{
			name:  "empty source",
			input: "",
			want:  &instruction.Block{},
		},
		{
			name:  "comments only",
			input: "// a note\n/* and\n   another */\n",
			want:  &instruction.Block{},
		},
		{
			name:  "statements",
			input: "mut x = 1;\nx = x + 1;",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				instruction.NewVarAssign(true, "x", instruction.NewIntConstant(1)),
				instruction.NewVarAssign(false, "x", instruction.NewBinaryOp(
					instruction.OpAdd,
					instruction.NewVariable("x"),
					instruction.NewIntConstant(1),
				)),
			}},
		},
		{
			name:  "expression statement",
			input: "say(\"hi\");",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				instruction.NewFunctionCall("say", []instruction.Instruction{
					instruction.NewStringConstant("hi"),
				}),
			}},
		},
		{
			name:  "instantiation statement",
			input: "Point(1, 2);",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				&instruction.TypeInstantiation{TypeName: "Point", Fields: []instruction.Instruction{
					instruction.NewIntConstant(1),
					instruction.NewIntConstant(2),
				}},
			}},
		},
		{
			name:  "trailing expression",
			input: "x = 1; x",
			want: &instruction.Block{
				Instructions: []instruction.Instruction{
					instruction.NewVarAssign(false, "x", instruction.NewIntConstant(1)),
					instruction.NewVariable("x"),
				},
				HasValue: true,
			},
		},
		{
			name:  "declarations need no semicolon handling",
			input: "func bump(n: int) -> int { n + 1 }\nbump(3);",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				&instruction.FunctionDec{
					Name: "bump",
					Args: []instruction.TypedArg{{Name: "n", Type: instruction.NewTypeId("int")}},
					Ret:  typeIdPtr("int"),
					Body: &instruction.Block{
						Instructions: []instruction.Instruction{
							instruction.NewBinaryOp(instruction.OpAdd,
								instruction.NewVariable("n"),
								instruction.NewIntConstant(1)),
						},
						HasValue: true,
					},
				},
				instruction.NewFunctionCall("bump", []instruction.Instruction{
					instruction.NewIntConstant(3),
				}),
			}},
		},
		{
			name:  "comments between instructions",
			input: "x = 1; /* mid */ y = 2; // end",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				instruction.NewVarAssign(false, "x", instruction.NewIntConstant(1)),
				instruction.NewVarAssign(false, "y", instruction.NewIntConstant(2)),
			}},
		},
		{
			name:  "include then use",
			input: "incl strutil as su;\nsu::shout(\"hey\");",
			want: &instruction.Block{Instructions: []instruction.Instruction{
				&instruction.Incl{Path: "strutil", Alias: "su"},
				instruction.NewFunctionCall("su::shout", []instruction.Instruction{
					instruction.NewStringConstant("hey"),
				}),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("program mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		contains string
		wantLine int
		wantFile string
	}{
		{
			name:     "missing semicolon after assignment",
			input:    "x = 1;\ny = 2",
			contains: "expected ';'",
			wantLine: 2,
		},
		{
			name:     "missing semicolon after expression",
			input:    "f()\ng();",
			contains: "expected ';' after expression",
			wantLine: 2,
		},
		{
			name:     "assignment without value",
			input:    "x = ;",
			opts:     []Option{WithFile("main.jk")},
			contains: "not a valid expression",
			wantLine: 1,
			wantFile: "main.jk",
		},
		{
			name:     "stray token",
			input:    "x = 1;\n@",
			contains: "expected an instruction",
			wantLine: 2,
		},
		{
			name:     "unbalanced paren",
			input:    "(1 + 2;",
			contains: "expected an instruction",
			wantLine: 1,
		},
		{
			name:     "lowercase type declaration",
			input:    "type point(x: int);",
			contains: "uppercase",
			wantLine: 1,
		},
		{
			name:     "declaration body never closes",
			input:    "func f() { x = 1;",
			contains: "expected an instruction",
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.opts...)
			require.Error(t, err)

			var dErr *diag.Error
			require.True(t, errors.As(err, &dErr), "parse errors carry diagnostics")
			assert.Equal(t, diag.Parsing, dErr.Kind)
			assert.Contains(t, dErr.Error(), tt.contains)
			require.NotNil(t, dErr.Loc)
			assert.Equal(t, tt.wantLine, dErr.Loc.Line)
			assert.Equal(t, tt.wantFile, dErr.Loc.File)
		})
	}
}

// Printing an instruction and parsing it back must give the same tree.
func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		"x = 129;",
		"mut pi = 3.14;",
		"c = 'a';",
		`s = "hello";`,
		"x = 1 + 2 * 3;",
		"x = (1 + 2) * 3;",
		"x = 10 - 2 - 3;",
		"done = len(s) == 0;",
		"f(g(1), 2);",
		"func noop() {}",
		"func add(a: int, b: int) -> int { a + b }",
		"func shout(s: string) { display(s); }",
		"type Point(x: int, y: int);",
		"type Unit();",
		"p = Point(1, 2);",
		"incl strutil;",
		"incl lib::strutil as su;",
		"v = { x = 1; x };",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first, err := Parse(src)
			require.NoError(t, err)
			require.Len(t, first.Instructions, 1)

			printed := first.Instructions[0].Print()
			if first.Instructions[0].Kind() == instruction.Expression {
				printed += ";"
			}
			second, err := Parse(printed)
			require.NoError(t, err, "printed form must parse: %q", printed)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func typeIdPtr(name string) *instruction.TypeId {
	id := instruction.NewTypeId(name)
	return &id
}
