package instruction

import (
	"strconv"
	"strings"
)

// ConstType tags which of the four literal forms a Constant holds.
type ConstType int

const (
	ConstChar ConstType = iota
	ConstString
	ConstInt
	ConstFloat
)

// Constant is a literal value.
type Constant struct {
	Type  ConstType
	Char  rune
	Str   string
	Int   int64
	Float float64
}

func NewCharConstant(c rune) *Constant     { return &Constant{Type: ConstChar, Char: c} }
func NewStringConstant(s string) *Constant { return &Constant{Type: ConstString, Str: s} }
func NewIntConstant(i int64) *Constant     { return &Constant{Type: ConstInt, Int: i} }
func NewFloatConstant(f float64) *Constant { return &Constant{Type: ConstFloat, Float: f} }

func (c *Constant) Kind() Kind { return Expression }

func (c *Constant) Print() string {
	switch c.Type {
	case ConstChar:
		return "'" + string(c.Char) + "'"
	case ConstString:
		return `"` + c.Str + `"`
	case ConstInt:
		return strconv.FormatInt(c.Int, 10)
	case ConstFloat:
		return FormatFloat(c.Float)
	default:
		return ""
	}
}

func (c *Constant) isInstruction() {}

// FormatFloat renders f in the shortest decimal form that still reads back
// as a float literal, appending '.0' when the short form has no dot.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
