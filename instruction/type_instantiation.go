package instruction

import "strings"

// TypeInstantiation builds a value of a declared type from positional
// field values.
type TypeInstantiation struct {
	TypeName string
	Fields   []Instruction
}

func (t *TypeInstantiation) Kind() Kind { return Expression }

func (t *TypeInstantiation) Print() string {
	fields := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = f.Print()
	}
	return t.TypeName + "(" + strings.Join(fields, ", ") + ")"
}

func (t *TypeInstantiation) isInstruction() {}
