package instruction

import "strings"

// TypeDec declares a nominal record type with ordered fields. Every
// instantiation of the type shares the declaration by reference.
type TypeDec struct {
	Name   string
	Fields []TypedArg
}

func (t *TypeDec) Kind() Kind { return Statement }

func (t *TypeDec) Print() string {
	fields := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = f.String()
	}
	return "type " + t.Name + "(" + strings.Join(fields, ", ") + ");"
}

func (t *TypeDec) isInstruction() {}
