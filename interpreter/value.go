package interpreter

import (
	"strconv"
	"strings"

	"github.com/BastienGermond/jinko/instruction"
)

// Value is a runtime value. Type returns the name used in diagnostics and
// type checks; String returns the display form.
type Value interface {
	Type() string
	String() string
}

// Int is a signed integer value.
type Int struct {
	Value int64
}

func (Int) Type() string     { return "int" }
func (v Int) String() string { return strconv.FormatInt(v.Value, 10) }

// Float is a floating point value.
type Float struct {
	Value float64
}

func (Float) Type() string     { return "float" }
func (v Float) String() string { return instruction.FormatFloat(v.Value) }

// Char is a single character value.
type Char struct {
	Value rune
}

func (Char) Type() string     { return "char" }
func (v Char) String() string { return string(v.Value) }

// String is a string value.
type String struct {
	Value string
}

func (String) Type() string     { return "string" }
func (v String) String() string { return v.Value }

// Bool is a boolean value, produced by comparisons and builtins. The
// language has no boolean literals yet, so these only flow through
// expressions.
type Bool struct {
	Value bool
}

func (Bool) Type() string { return "bool" }
func (v Bool) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// Instance is a constructed value of a user declared type. Fields are
// positional, in declaration order.
type Instance struct {
	Dec    *instruction.TypeDec
	Fields []Value
}

func (v *Instance) Type() string { return v.Dec.Name }

func (v *Instance) String() string {
	var sb strings.Builder
	sb.WriteString(v.Dec.Name)
	sb.WriteByte('(')
	for i, f := range v.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
