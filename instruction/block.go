package instruction

import "strings"

// Block is a scoped sequence of instructions. HasValue records whether
// the block ended with an expression not terminated by ';'; that
// expression's value is then the block's value, so '{ f() }' yields what
// f returned while '{ f(); }' yields nothing.
type Block struct {
	Instructions []Instruction
	HasValue     bool
}

func (b *Block) Kind() Kind {
	if b.HasValue {
		return Expression
	}
	return Statement
}

func (b *Block) Print() string {
	if len(b.Instructions) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	last := len(b.Instructions) - 1
	for i, ins := range b.Instructions {
		line := ins.Print()
		// Expressions in statement position keep their terminator; the
		// trailing value expression must not have one.
		if ins.Kind() == Expression && !(b.HasValue && i == last) {
			line += ";"
		}
		sb.WriteString(indent(line))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (b *Block) isInstruction() {}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "    " + l
		}
	}
	return strings.Join(lines, "\n")
}
