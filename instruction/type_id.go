package instruction

// TypeId names a type: one of the built-in primitives or a declared
// nominal type.
type TypeId struct {
	Name string
}

// primitiveTypes is the closed set of built-in type names. Primitives are
// exempt from namespace prefixing.
var primitiveTypes = []string{"bool", "int", "float", "char", "string"}

func NewTypeId(name string) TypeId { return TypeId{Name: name} }

// IsPrimitive reports whether the TypeId names a built-in type.
func (t TypeId) IsPrimitive() bool {
	for _, p := range primitiveTypes {
		if t.Name == p {
			return true
		}
	}
	return false
}

func (t TypeId) String() string { return t.Name }
