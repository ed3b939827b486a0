package instruction

import "strings"

// Prefix renames every declared and referenced name in a subtree by
// prepending prefix. Primitive type names and builtin calls keep their
// names. Nested inclusions compound: their alias gets prefixed too, so the
// names they later introduce land under the outer namespace.
//
// The pass runs on freshly parsed include subtrees before they first
// execute, which is the one point where the tree is still private to its
// builder.
func Prefix(ins Instruction, prefix string) {
	switch n := ins.(type) {
	case *Constant:
	case *Variable:
		n.Name = prefix + n.Name
	case *VarAssign:
		n.Symbol = prefix + n.Symbol
		Prefix(n.Value, prefix)
	case *FunctionCall:
		if !strings.HasPrefix(n.Name, "__builtin") {
			n.Name = prefix + n.Name
		}
		for _, a := range n.Args {
			Prefix(a, prefix)
		}
	case *FunctionDec:
		n.Name = prefix + n.Name
		// Parameter names are bindings, so they move with the variable
		// references in the body. Record field names are labels and stay.
		for i := range n.Args {
			n.Args[i].Name = prefix + n.Args[i].Name
			n.Args[i].Type = prefixType(n.Args[i].Type, prefix)
		}
		if n.Ret != nil {
			*n.Ret = prefixType(*n.Ret, prefix)
		}
		Prefix(n.Body, prefix)
	case *TypeDec:
		n.Name = prefix + n.Name
		for i := range n.Fields {
			n.Fields[i].Type = prefixType(n.Fields[i].Type, prefix)
		}
	case *TypeInstantiation:
		n.TypeName = prefix + n.TypeName
		for _, f := range n.Fields {
			Prefix(f, prefix)
		}
	case *BinaryOp:
		Prefix(n.LHS, prefix)
		Prefix(n.RHS, prefix)
	case *Block:
		for _, i := range n.Instructions {
			Prefix(i, prefix)
		}
	case *Incl:
		if n.EffectiveAlias() != "_" {
			n.Alias = prefix + n.EffectiveAlias()
		}
	}
}

func prefixType(t TypeId, prefix string) TypeId {
	if t.IsPrimitive() {
		return t
	}
	return TypeId{Name: prefix + t.Name}
}
