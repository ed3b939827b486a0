package lexer

// ASCII lookup tables for byte classification, built once in init. Every
// recognizer bounds-checks before indexing so non-ASCII bytes fall through
// to the failure path instead of panicking.
var (
	isWhitespace [128]bool // space, tab, carriage return, newline
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // a-z, A-Z, _
	isIdentPart  [128]bool // ident start plus digits
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
	}
}
