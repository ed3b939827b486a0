// Package lexer provides the token recognizers the parser is built from.
//
// Every recognizer is a pure function from a Span to an advanced Span plus
// the matched Token. On failure the input is returned untouched with a
// recoverable parsing error, which is what lets grammar rules try an
// alternative without any rewind machinery.
package lexer

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BastienGermond/jinko/diag"
)

var debug *slog.Logger

func init() {
	if os.Getenv("JINKO_DEBUG_LEXER") != "" {
		debug = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		debug = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

var keywords = map[string]bool{
	"func": true,
	"type": true,
	"mut":  true,
	"incl": true,
	"as":   true,
}

// errAt builds a recoverable parsing error at the span's position.
func errAt(in Span, format string, args ...any) error {
	return diag.NewLocated(diag.Parsing, in.Location(), format, args...)
}

// tag consumes the exact text s if the input starts with it.
func tag(in Span, s string) (Span, bool) {
	if strings.HasPrefix(in.Rest(), s) {
		return in.advance(len(s)), true
	}
	return in, false
}

// Identifier matches one or more [a-zA-Z_][a-zA-Z0-9_]* segments joined by
// '::'. A bare keyword is not an identifier.
func Identifier(in Span) (Span, Token, error) {
	rest, name, err := identSegment(in)
	if err != nil {
		return in, Token{}, err
	}
	for {
		afterSep, ok := tag(rest, "::")
		if !ok {
			break
		}
		afterSeg, seg, err := identSegment(afterSep)
		if err != nil {
			break
		}
		name += "::" + seg
		rest = afterSeg
	}
	if keywords[name] {
		return in, Token{}, errAt(in, "'%s' is a keyword", name)
	}
	debug.Debug("matched identifier", "text", name)
	return rest, Token{Kind: IDENT, Text: name, Loc: in.Location()}, nil
}

func identSegment(in Span) (Span, string, error) {
	rest := in.Rest()
	if len(rest) == 0 || rest[0] >= 128 || !isIdentStart[rest[0]] {
		return in, "", errAt(in, "expected identifier")
	}
	n := 1
	for n < len(rest) && rest[n] < 128 && isIdentPart[rest[n]] {
		n++
	}
	return in.advance(n), rest[:n], nil
}

// keyword matches the word w followed by a non-identifier byte, so that
// 'mut' does not eat the front of 'mut_x_99'.
func keyword(in Span, w string) (Span, Token, error) {
	rest, ok := tag(in, w)
	if !ok {
		return in, Token{}, errAt(in, "expected '%s'", w)
	}
	if c, ok := rest.peek(); ok && c < 128 && isIdentPart[c] {
		return in, Token{}, errAt(in, "expected '%s'", w)
	}
	return rest, Token{Kind: KEYWORD, Text: w, Loc: in.Location()}, nil
}

func KeywordFunc(in Span) (Span, Token, error) { return keyword(in, "func") }
func KeywordType(in Span) (Span, Token, error) { return keyword(in, "type") }
func KeywordMut(in Span) (Span, Token, error)  { return keyword(in, "mut") }
func KeywordIncl(in Span) (Span, Token, error) { return keyword(in, "incl") }
func KeywordAs(in Span) (Span, Token, error)   { return keyword(in, "as") }

// IntConstant matches one or more decimal digits. Signs are not part of
// the literal.
func IntConstant(in Span) (Span, Token, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rest[n] < 128 && isDigit[rest[n]] {
		n++
	}
	if n == 0 {
		return in, Token{}, errAt(in, "expected integer constant")
	}
	debug.Debug("matched int constant", "text", rest[:n])
	return in.advance(n), Token{Kind: INT, Text: rest[:n], Loc: in.Location()}, nil
}

// FloatConstant matches digits '.' digits. Both digit runs are required,
// so neither '12.' nor '.5' is a float.
func FloatConstant(in Span) (Span, Token, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rest[n] < 128 && isDigit[rest[n]] {
		n++
	}
	if n == 0 || n >= len(rest) || rest[n] != '.' {
		return in, Token{}, errAt(in, "expected float constant")
	}
	m := n + 1
	for m < len(rest) && rest[m] < 128 && isDigit[rest[m]] {
		m++
	}
	if m == n+1 {
		return in, Token{}, errAt(in, "expected float constant")
	}
	debug.Debug("matched float constant", "text", rest[:m])
	return in.advance(m), Token{Kind: FLOAT, Text: rest[:m], Loc: in.Location()}, nil
}

// CharConstant matches exactly one character between single quotes. There
// are no escape sequences.
func CharConstant(in Span) (Span, Token, error) {
	rest := in.Rest()
	if len(rest) == 0 || rest[0] != '\'' {
		return in, Token{}, errAt(in, "expected char constant")
	}
	r, size := utf8.DecodeRuneInString(rest[1:])
	if size == 0 || r == '\'' {
		return in, Token{}, errAt(in, "empty char constant")
	}
	end := 1 + size
	if end >= len(rest) || rest[end] != '\'' {
		return in, Token{}, errAt(in, "unterminated char constant")
	}
	debug.Debug("matched char constant", "text", rest[1:end])
	return in.advance(end + 1), Token{Kind: CHAR, Text: rest[1:end], Loc: in.Location()}, nil
}

// StringConstant matches text between double quotes, which may be empty.
// There is no escaping, so a string cannot contain a double quote.
func StringConstant(in Span) (Span, Token, error) {
	rest := in.Rest()
	if len(rest) == 0 || rest[0] != '"' {
		return in, Token{}, errAt(in, "expected string constant")
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return in, Token{}, errAt(in, "unterminated string constant")
	}
	debug.Debug("matched string constant", "text", rest[1:end+1])
	return in.advance(end + 2), Token{Kind: STRING, Text: rest[1 : end+1], Loc: in.Location()}, nil
}

func punct(in Span, s string) (Span, Token, error) {
	rest, ok := tag(in, s)
	if !ok {
		return in, Token{}, errAt(in, "expected '%s'", s)
	}
	return rest, Token{Kind: PUNCT, Text: s, Loc: in.Location()}, nil
}

func LeftParen(in Span) (Span, Token, error)  { return punct(in, "(") }
func RightParen(in Span) (Span, Token, error) { return punct(in, ")") }
func LeftCurly(in Span) (Span, Token, error)  { return punct(in, "{") }
func RightCurly(in Span) (Span, Token, error) { return punct(in, "}") }
func Comma(in Span) (Span, Token, error)      { return punct(in, ",") }
func Colon(in Span) (Span, Token, error)      { return punct(in, ":") }
func Semicolon(in Span) (Span, Token, error)  { return punct(in, ";") }
func Arrow(in Span) (Span, Token, error)      { return punct(in, "->") }

// Equal matches a single '=', rejecting '==' which belongs to expression
// parsing.
func Equal(in Span) (Span, Token, error) {
	rest := in.Rest()
	if len(rest) == 0 || rest[0] != '=' || (len(rest) > 1 && rest[1] == '=') {
		return in, Token{}, errAt(in, "expected '='")
	}
	return in.advance(1), Token{Kind: PUNCT, Text: "=", Loc: in.Location()}, nil
}

// operatorTexts is ordered longest first so two-byte operators win over
// their one-byte prefixes.
var operatorTexts = []string{
	"==", "!=", "<=", ">=",
	"<", ">", "+", "-", "*", "/", "(", ")",
}

// AnyOperator matches the longest expression operator at the start of the
// input, parentheses included.
func AnyOperator(in Span) (Span, Token, error) {
	for _, op := range operatorTexts {
		if rest, ok := tag(in, op); ok {
			debug.Debug("matched operator", "text", op)
			return rest, Token{Kind: OPERATOR, Text: op, Loc: in.Location()}, nil
		}
	}
	return in, Token{}, errAt(in, "expected operator")
}

// PeekOperator reports whether an expression operator starts the input,
// without consuming anything.
func PeekOperator(in Span) bool {
	for _, op := range operatorTexts {
		if strings.HasPrefix(in.Rest(), op) {
			return true
		}
	}
	return false
}

// ConsumeWhitespace consumes a run of at least one whitespace byte.
func ConsumeWhitespace(in Span) (Span, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rest[n] < 128 && isWhitespace[rest[n]] {
		n++
	}
	if n == 0 {
		return in, errAt(in, "expected whitespace")
	}
	return in.advance(n), nil
}

// MaybeConsumeWhitespace consumes a possibly empty whitespace run.
func MaybeConsumeWhitespace(in Span) Span {
	out, err := ConsumeWhitespace(in)
	if err != nil {
		return in
	}
	return out
}

// MaybeConsumeExtra consumes whitespace and comments until neither is
// found. Line comments run from '//' to the end of the line, block
// comments from '/*' to the next '*/' without nesting. An unterminated
// block comment swallows the rest of the input.
func MaybeConsumeExtra(in Span) Span {
	for {
		out := MaybeConsumeWhitespace(in)
		if rest, ok := tag(out, "//"); ok {
			if idx := strings.IndexByte(rest.Rest(), '\n'); idx >= 0 {
				out = rest.advance(idx + 1)
			} else {
				out = rest.advance(len(rest.Rest()))
			}
		} else if rest, ok := tag(out, "/*"); ok {
			if idx := strings.Index(rest.Rest(), "*/"); idx >= 0 {
				out = rest.advance(idx + 2)
			} else {
				out = rest.advance(len(rest.Rest()))
			}
		}
		if out == in {
			return out
		}
		in = out
	}
}
