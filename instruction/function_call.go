package instruction

import "strings"

// FunctionCall invokes a function, builtin or linked symbol by name.
type FunctionCall struct {
	Name string
	Args []Instruction
}

func NewFunctionCall(name string, args []Instruction) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

func (f *FunctionCall) Kind() Kind { return Expression }

func (f *FunctionCall) Print() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Print()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

func (f *FunctionCall) isInstruction() {}
