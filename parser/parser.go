// Package parser turns source text into instruction trees. Grammar rules
// are recognizer functions over lexer spans, composed the same way as the
// token recognizers underneath them; a failing rule returns its input
// untouched so the caller can try an alternative. Operator expressions go
// through the incremental shunting-yard pass in shunting_yard.go.
package parser

import (
	"io"
	"log/slog"

	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/lexer"
)

type config struct {
	file   string
	logger *slog.Logger
}

// Option adjusts parsing.
type Option func(*config)

// WithFile records the file the source came from, so error locations can
// name it.
func WithFile(name string) Option {
	return func(c *config) { c.file = name }
}

// WithLogger routes parse debug logging somewhere visible.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Parse turns a whole source text into its top-level block. The block is
// implicit: callers execute its instructions in their own scope rather
// than treating it as a nested one. An empty source parses to an empty
// block.
func Parse(src string, opts ...Option) (*instruction.Block, error) {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(&cfg)
	}

	in := lexer.NewSpan(src)
	if cfg.file != "" {
		in = lexer.NewFileSpan(cfg.file, src)
	}

	_, instructions, trailing, err := instructionSeq(in, func(s lexer.Span) bool {
		return s.Empty()
	})
	if err != nil {
		cfg.logger.Debug("parse failed", "file", cfg.file, "error", err)
		return nil, err
	}

	cfg.logger.Debug("parsed program", "file", cfg.file, "instructions", len(instructions))
	return &instruction.Block{Instructions: instructions, HasValue: trailing}, nil
}

// instructionSeq parses instructions until atEnd reports the closer. A
// ';' after an expression keeps the sequence going; the closer directly
// after an expression makes that expression the sequence's value, which
// the returned flag reports.
func instructionSeq(in lexer.Span, atEnd func(lexer.Span) bool) (lexer.Span, []instruction.Instruction, bool, error) {
	var out []instruction.Instruction
	for {
		in = lexer.MaybeConsumeExtra(in)
		if atEnd(in) {
			return in, out, false, nil
		}

		rest, ins, err := anyInstruction(in)
		if err != nil {
			if isFatal(err) {
				return in, nil, false, err
			}
			return in, nil, false, fatalAt(in, "expected an instruction")
		}
		out = append(out, ins)
		in = rest

		if ins.Kind() == instruction.Expression {
			afterWs := lexer.MaybeConsumeExtra(in)
			if s, _, err := lexer.Semicolon(afterWs); err == nil {
				in = s
				continue
			}
			if atEnd(afterWs) {
				return afterWs, out, true, nil
			}
			return in, nil, false, fatalAt(afterWs, "expected ';' after expression")
		}
	}
}
