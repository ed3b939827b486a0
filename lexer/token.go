package lexer

import "github.com/BastienGermond/jinko/diag"

// TokenKind identifies what a recognizer matched.
type TokenKind int

const (
	IDENT TokenKind = iota
	INT
	FLOAT
	CHAR
	STRING
	KEYWORD
	PUNCT
	OPERATOR
)

func (k TokenKind) String() string {
	switch k {
	case IDENT:
		return "identifier"
	case INT:
		return "integer constant"
	case FLOAT:
		return "float constant"
	case CHAR:
		return "char constant"
	case STRING:
		return "string constant"
	case KEYWORD:
		return "keyword"
	case PUNCT:
		return "punctuation"
	case OPERATOR:
		return "operator"
	default:
		return "token"
	}
}

// Token is what a recognizer hands back: the kind, the matched text and
// where it started. For quoted literals Text holds the inner text, without
// the quotes.
type Token struct {
	Kind TokenKind
	Text string
	Loc  diag.Location
}
