package instruction

import "strings"

// TypedArg is a declared argument or field: a name and its type.
type TypedArg struct {
	Name string
	Type TypeId
}

func (a TypedArg) String() string { return a.Name + ": " + a.Type.Name }

// FunctionDec declares a function. A nil Ret means the function returns
// nothing.
type FunctionDec struct {
	Name string
	Args []TypedArg
	Ret  *TypeId
	Body *Block
}

func (f *FunctionDec) Kind() Kind { return Statement }

func (f *FunctionDec) Print() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}

	var sb strings.Builder
	sb.WriteString("func ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")
	if f.Ret != nil {
		sb.WriteString(" -> ")
		sb.WriteString(f.Ret.Name)
	}
	sb.WriteString(" ")
	sb.WriteString(f.Body.Print())
	return sb.String()
}

func (f *FunctionDec) isInstruction() {}
