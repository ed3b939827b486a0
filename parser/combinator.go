package parser

import (
	"errors"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/lexer"
)

// recognizer is the shape shared by every grammar rule: consume from a
// span and produce a T, or fail without consuming.
type recognizer[T any] func(lexer.Span) (lexer.Span, T, error)

// errAt builds a recoverable parsing error at the span's position.
func errAt(in lexer.Span, format string, args ...any) error {
	return diag.NewLocated(diag.Parsing, in.Location(), format, args...)
}

// fatalAt builds a parsing error that aborts alternatives.
func fatalAt(in lexer.Span, format string, args ...any) error {
	err := diag.NewLocated(diag.Parsing, in.Location(), format, args...)
	err.Fatal = true
	return err
}

// cut marks an error fatal: the rule has consumed enough to know that no
// other alternative can apply, so backtracking would only garble the
// report.
func cut(err error) error {
	var de *diag.Error
	if errors.As(err, &de) {
		de.Fatal = true
	}
	return err
}

// isFatal reports whether a parse error must abort alternatives.
func isFatal(err error) bool {
	var de *diag.Error
	return errors.As(err, &de) && de.Fatal
}

// alt tries each alternative in order and returns the first success. A
// fatal error stops the scan; otherwise the last failure is reported.
func alt[T any](alts ...recognizer[T]) recognizer[T] {
	return func(in lexer.Span) (lexer.Span, T, error) {
		var zero T
		var last error
		for _, r := range alts {
			out, v, err := r(in)
			if err == nil {
				return out, v, nil
			}
			if isFatal(err) {
				return in, zero, err
			}
			last = err
		}
		return in, zero, last
	}
}

// opt tries a recognizer and swallows a recoverable failure. The result is
// nil when nothing matched.
func opt[T any](r recognizer[T]) func(lexer.Span) (lexer.Span, *T, error) {
	return func(in lexer.Span) (lexer.Span, *T, error) {
		out, v, err := r(in)
		if err != nil {
			if isFatal(err) {
				return in, nil, err
			}
			return in, nil, nil
		}
		return out, &v, nil
	}
}

// many0 applies a recognizer until it stops matching. It refuses to loop
// on a recognizer that succeeds without consuming.
func many0[T any](r recognizer[T]) func(lexer.Span) (lexer.Span, []T, error) {
	return func(in lexer.Span) (lexer.Span, []T, error) {
		var out []T
		for {
			next, v, err := r(in)
			if err != nil {
				if isFatal(err) {
					return in, nil, err
				}
				return in, out, nil
			}
			if next == in {
				return in, out, nil
			}
			out = append(out, v)
			in = next
		}
	}
}
