package instruction

// Variable is a reference to a bound name.
type Variable struct {
	Name string
}

func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) Kind() Kind { return Expression }

func (v *Variable) Print() string { return v.Name }

func (v *Variable) isInstruction() {}
