package instruction

// VarAssign binds or rebinds a variable. Mutable records whether the
// binding may be reassigned later; it only matters when the assignment
// creates the binding.
type VarAssign struct {
	Mutable bool
	Symbol  string
	Value   Instruction
}

func NewVarAssign(mutable bool, symbol string, value Instruction) *VarAssign {
	return &VarAssign{Mutable: mutable, Symbol: symbol, Value: value}
}

func (v *VarAssign) Kind() Kind { return Statement }

func (v *VarAssign) Print() string {
	out := v.Symbol + " = " + v.Value.Print() + ";"
	if v.Mutable {
		return "mut " + out
	}
	return out
}

func (v *VarAssign) isInstruction() {}
