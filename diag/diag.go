// Package diag defines the error model shared by every stage of the
// interpreter: an error kind, an optional message and an optional source
// location. The process exit code is derived from the kind of the error
// that escaped, through ExitCode, so that callers never hard-code codes.
package diag

import "fmt"

// Kind categorizes an error by the stage that produced it.
type Kind int

const (
	// Parsing covers lexing and grammar errors.
	Parsing Kind = iota
	// Interpreter covers execution errors: unknown names, type errors,
	// arity mismatches, mutability violations.
	Interpreter
	// IO covers file reads, module resolution and library loading.
	IO
)

func (k Kind) String() string {
	switch k {
	case Parsing:
		return "parsing error"
	case Interpreter:
		return "interpreter error"
	case IO:
		return "i/o error"
	default:
		return "error"
	}
}

// Exit codes, one per kind. Zero is reserved for success.
const (
	ExitSuccess     = 0
	ExitParsing     = 1
	ExitInterpreter = 2
	ExitIO          = 3
)

// ExitCode maps an error kind to its process exit code. The mapping lives
// here, next to the kinds but outside the type, so presentation layers can
// use it without owning it.
func ExitCode(k Kind) int {
	switch k {
	case Parsing:
		return ExitParsing
	case Interpreter:
		return ExitInterpreter
	case IO:
		return ExitIO
	default:
		return ExitParsing
	}
}

// Location points at the source position an error was raised from.
type Location struct {
	File   string // empty when the source did not come from a file
	Line   int    // 1-based
	Column int    // 1-based, in bytes
	Text   string // content of the offending source line, no newline
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Error is the error type produced by the lexer, parser and interpreter.
// Msg and Loc are both optional. Fatal distinguishes a parse failure that
// must abort alternative grammar rules from one that merely means "this
// rule does not apply here"; it is meaningless outside parsing.
type Error struct {
	Kind  Kind
	Msg   string
	Loc   *Location
	Fatal bool
	Err   error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Message()
	if msg == "" {
		return e.Kind.String()
	}
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, msg, e.Loc)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Message returns the message with the wrapped cause appended, without
// the kind or location framing. Presentation layers that render the
// location themselves build on this instead of Error.
func (e *Error) Message() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewLocated builds an error carrying a source location.
func NewLocated(kind Kind, loc Location, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Loc: &loc}
}

// Wrap attaches a kind and context to an underlying error. The cause stays
// reachable through errors.Unwrap.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
