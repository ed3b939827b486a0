package lexer

import (
	"strings"

	"github.com/BastienGermond/jinko/diag"
)

// Span is an immutable view over the remaining source text with position
// tracking. Recognizers take a Span and return an advanced copy alongside
// what they matched, so backtracking is just keeping the older value.
type Span struct {
	src  string
	file string
	off  int
	line int
	col  int
}

// NewSpan wraps a source string for recognition.
func NewSpan(src string) Span {
	return Span{src: src, line: 1, col: 1}
}

// NewFileSpan wraps a source string and records the file it came from, so
// error locations can name it.
func NewFileSpan(file, src string) Span {
	return Span{src: src, file: file, line: 1, col: 1}
}

// Rest returns the text left to consume.
func (s Span) Rest() string { return s.src[s.off:] }

// Empty reports whether the whole input has been consumed.
func (s Span) Empty() bool { return s.off >= len(s.src) }

func (s Span) peek() (byte, bool) {
	if s.Empty() {
		return 0, false
	}
	return s.src[s.off], true
}

// advance returns the span moved n bytes forward, updating line and column
// on the way.
func (s Span) advance(n int) Span {
	end := s.off + n
	if end > len(s.src) {
		end = len(s.src)
	}
	for i := s.off; i < end; i++ {
		if s.src[i] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.off = end
	return s
}

// Location resolves the span's current position, carrying the full source
// line so diagnostics can render a snippet without the original input.
func (s Span) Location() diag.Location {
	start := strings.LastIndexByte(s.src[:s.off], '\n') + 1
	end := strings.IndexByte(s.src[s.off:], '\n')
	if end < 0 {
		end = len(s.src)
	} else {
		end += s.off
	}
	return diag.Location{
		File:   s.file,
		Line:   s.line,
		Column: s.col,
		Text:   s.src[start:end],
	}
}
