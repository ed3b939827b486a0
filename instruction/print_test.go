package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantPrint(t *testing.T) {
	tests := []struct {
		name string
		node *Constant
		want string
	}{
		{name: "char", node: NewCharConstant('a'), want: "'a'"},
		{name: "string", node: NewStringConstant("hello"), want: `"hello"`},
		{name: "empty string", node: NewStringConstant(""), want: `""`},
		{name: "int", node: NewIntConstant(1204), want: "1204"},
		{name: "float", node: NewFloatConstant(12.25), want: "12.25"},
		{name: "whole float keeps its dot", node: NewFloatConstant(2), want: "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Print())
		})
	}
}

func TestBinaryOpPrint(t *testing.T) {
	one := NewIntConstant(1)
	two := NewIntConstant(2)
	three := NewIntConstant(3)

	tests := []struct {
		name string
		node *BinaryOp
		want string
	}{
		{
			name: "tighter child needs no parens",
			node: NewBinaryOp(OpAdd, one, NewBinaryOp(OpMul, two, three)),
			want: "1 + 2 * 3",
		},
		{
			name: "looser child on the left is wrapped",
			node: NewBinaryOp(OpMul, NewBinaryOp(OpAdd, one, two), three),
			want: "(1 + 2) * 3",
		},
		{
			name: "left associative chain stays flat",
			node: NewBinaryOp(OpSub, NewBinaryOp(OpSub, one, two), three),
			want: "1 - 2 - 3",
		},
		{
			name: "right grouping at equal precedence is wrapped",
			node: NewBinaryOp(OpSub, one, NewBinaryOp(OpSub, two, three)),
			want: "1 - (2 - 3)",
		},
		{
			name: "comparison binds loosest",
			node: NewBinaryOp(OpLt, NewBinaryOp(OpAdd, one, two), NewBinaryOp(OpMul, two, three)),
			want: "1 + 2 < 2 * 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Print())
		})
	}
}

func TestStatementPrint(t *testing.T) {
	intType := NewTypeId("int")

	tests := []struct {
		name string
		node Instruction
		want string
	}{
		{
			name: "assignment",
			node: NewVarAssign(false, "x", NewIntConstant(12)),
			want: "x = 12;",
		},
		{
			name: "mutable assignment",
			node: NewVarAssign(true, "counter", NewIntConstant(0)),
			want: "mut counter = 0;",
		},
		{
			name: "type declaration",
			node: &TypeDec{Name: "Point", Fields: []TypedArg{
				{Name: "x", Type: intType},
				{Name: "y", Type: intType},
			}},
			want: "type Point(x: int, y: int);",
		},
		{
			name: "instantiation",
			node: &TypeInstantiation{TypeName: "Point", Fields: []Instruction{
				NewIntConstant(1), NewIntConstant(2),
			}},
			want: "Point(1, 2)",
		},
		{
			name: "zero argument call",
			node: NewFunctionCall("ready", nil),
			want: "ready()",
		},
		{
			name: "include",
			node: &Incl{Path: "strutil", Alias: "su"},
			want: "incl strutil as su;",
		},
		{
			name: "include without alias",
			node: &Incl{Path: "strutil"},
			want: "incl strutil;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Print())
		})
	}
}

func TestFunctionDecPrint(t *testing.T) {
	intType := NewTypeId("int")
	ret := NewTypeId("int")

	dec := &FunctionDec{
		Name: "add",
		Args: []TypedArg{
			{Name: "a", Type: intType},
			{Name: "b", Type: intType},
		},
		Ret: &ret,
		Body: &Block{
			Instructions: []Instruction{
				NewBinaryOp(OpAdd, NewVariable("a"), NewVariable("b")),
			},
			HasValue: true,
		},
	}

	want := "func add(a: int, b: int) -> int {\n    a + b\n}"
	assert.Equal(t, want, dec.Print())

	void := &FunctionDec{Name: "noop", Body: &Block{}}
	assert.Equal(t, "func noop() {}", void.Print())
}

func TestBlockPrint(t *testing.T) {
	valued := &Block{
		Instructions: []Instruction{
			NewVarAssign(false, "x", NewIntConstant(1)),
			NewFunctionCall("touch", nil),
			NewVariable("x"),
		},
		HasValue: true,
	}
	assert.Equal(t, "{\n    x = 1;\n    touch();\n    x\n}", valued.Print())

	discarded := &Block{Instructions: []Instruction{
		NewFunctionCall("touch", nil),
	}}
	assert.Equal(t, "{\n    touch();\n}", discarded.Print())
}

func TestBlockKind(t *testing.T) {
	assert.Equal(t, Statement, (&Block{}).Kind())

	stmts := &Block{Instructions: []Instruction{
		NewVarAssign(false, "x", NewIntConstant(1)),
	}}
	assert.Equal(t, Statement, stmts.Kind())

	// A trailing ';' keeps the final expression in statement position.
	discarded := &Block{Instructions: []Instruction{
		NewVariable("x"),
	}}
	assert.Equal(t, Statement, discarded.Kind())

	valued := &Block{
		Instructions: []Instruction{
			NewVarAssign(false, "x", NewIntConstant(1)),
			NewVariable("x"),
		},
		HasValue: true,
	}
	assert.Equal(t, Expression, valued.Kind())
}
