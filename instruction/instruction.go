// Package instruction defines the abstract syntax tree of the language: a
// closed set of node kinds that the parser produces and the interpreter
// executes. Nodes are immutable once built, with one exception: the Prefix
// pass renames freshly included subtrees before they first execute.
package instruction

// Kind classifies a node by whether executing it yields a value.
type Kind int

const (
	// Statement nodes execute for effect only.
	Statement Kind = iota
	// Expression nodes yield a value.
	Expression
)

func (k Kind) String() string {
	if k == Statement {
		return "statement"
	}
	return "expression"
}

// Instruction is the interface of every AST node. The unexported marker
// method keeps the set of implementations closed to this package, which is
// what lets the interpreter dispatch with an exhaustive type switch.
type Instruction interface {
	// Kind reports whether the node is a statement or an expression.
	Kind() Kind
	// Print renders the node as source text that parses back to an
	// equivalent node.
	Print() string

	isInstruction()
}
