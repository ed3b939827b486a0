package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/lexer"
)

// constant parses one of the four literal forms. The recognizers run in
// sequence, each over whatever the previous one left, and exactly one of
// them may match: zero matches is not a constant, several is an ambiguous
// one, and both fail the rule.
func constant(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest := in
	matches := 0
	var node instruction.Instruction

	if out, tok, err := lexer.CharConstant(rest); err == nil {
		r, _ := utf8.DecodeRuneInString(tok.Text)
		node = instruction.NewCharConstant(r)
		rest = out
		matches++
	}
	if out, tok, err := lexer.StringConstant(rest); err == nil {
		node = instruction.NewStringConstant(tok.Text)
		rest = out
		matches++
	}
	if out, tok, err := lexer.FloatConstant(rest); err == nil {
		f, perr := strconv.ParseFloat(tok.Text, 64)
		if perr != nil {
			return in, nil, errAt(in, "float constant out of range: %s", tok.Text)
		}
		node = instruction.NewFloatConstant(f)
		rest = out
		matches++
	}
	if out, tok, err := lexer.IntConstant(rest); err == nil {
		i, perr := strconv.ParseInt(tok.Text, 10, 64)
		if perr != nil {
			return in, nil, errAt(in, "integer constant out of range: %s", tok.Text)
		}
		node = instruction.NewIntConstant(i)
		rest = out
		matches++
	}

	if matches != 1 {
		return in, nil, errAt(in, "not a valid constant")
	}
	return rest, node, nil
}

// variable parses an identifier as a reference.
func variable(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	out, tok, err := lexer.Identifier(in)
	if err != nil {
		return in, nil, err
	}
	return out, instruction.NewVariable(tok.Text), nil
}

// startsTypeName reports whether the last segment of a name begins with an
// uppercase letter, the convention separating type names from function
// names at a call site.
func startsTypeName(name string) bool {
	seg := name
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		seg = name[idx+2:]
	}
	r, _ := utf8.DecodeRuneInString(seg)
	return unicode.IsUpper(r)
}

// arg is an argument expression with surrounding whitespace allowed.
func arg(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest := lexer.MaybeConsumeExtra(in)
	rest, node, err := expression(rest)
	if err != nil {
		return in, nil, err
	}
	return lexer.MaybeConsumeExtra(rest), node, nil
}

// argAndComma is an argument terminated by ','.
func argAndComma(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, node, err := arg(in)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = lexer.Comma(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, node, nil
}

// callArgs parses a parenthesized argument list: the empty form first,
// else zero or more comma-terminated arguments followed by exactly one
// without a trailing comma. A dangling comma therefore fails.
func callArgs(in lexer.Span) (lexer.Span, []instruction.Instruction, error) {
	out, _, err := lexer.LeftParen(in)
	if err != nil {
		return in, nil, err
	}

	if rest, _, err := lexer.RightParen(lexer.MaybeConsumeExtra(out)); err == nil {
		return rest, nil, nil
	}

	rest, args, err := many0(argAndComma)(out)
	if err != nil {
		return in, nil, err
	}
	rest, last, err := arg(rest)
	if err != nil {
		return in, nil, err
	}
	args = append(args, last)

	rest, _, err = lexer.RightParen(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, args, nil
}

// functionCall parses a call site: an identifier that does not name a
// type, followed by arguments.
func functionCall(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, tok, err := lexer.Identifier(in)
	if err != nil {
		return in, nil, err
	}
	if startsTypeName(tok.Text) {
		return in, nil, errAt(in, "'%s' names a type", tok.Text)
	}
	rest, args, err := callArgs(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, instruction.NewFunctionCall(tok.Text, args), nil
}

// typeInstantiation parses TypeName(field values) with the same comma
// rules as call arguments.
func typeInstantiation(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, tok, err := lexer.Identifier(in)
	if err != nil {
		return in, nil, err
	}
	if !startsTypeName(tok.Text) {
		return in, nil, errAt(in, "'%s' does not name a type", tok.Text)
	}
	rest, fields, err := callArgs(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, &instruction.TypeInstantiation{TypeName: tok.Text, Fields: fields}, nil
}

// varAssignment parses [mut] name '=' expression ';'. Whitespace around
// '=' is optional, so 'x=12;' is fine. Once the '=' is seen nothing else
// can claim the input, so later failures are fatal.
func varAssignment(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, mutTok, err := opt(lexer.KeywordMut)(in)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)

	rest, name, err := lexer.Identifier(rest)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, _, err = lexer.Equal(rest)
	if err != nil {
		return in, nil, err
	}

	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, value, err := expression(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, _, err = lexer.Semicolon(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	return rest, instruction.NewVarAssign(mutTok != nil, name.Text, value), nil
}

// typedArg parses 'name: type'.
func typedArg(in lexer.Span) (lexer.Span, instruction.TypedArg, error) {
	var zero instruction.TypedArg

	rest := lexer.MaybeConsumeExtra(in)
	rest, name, err := lexer.Identifier(rest)
	if err != nil {
		return in, zero, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, _, err = lexer.Colon(rest)
	if err != nil {
		return in, zero, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, typ, err := lexer.Identifier(rest)
	if err != nil {
		return in, zero, err
	}
	arg := instruction.TypedArg{Name: name.Text, Type: instruction.NewTypeId(typ.Text)}
	return lexer.MaybeConsumeExtra(rest), arg, nil
}

func typedArgAndComma(in lexer.Span) (lexer.Span, instruction.TypedArg, error) {
	rest, a, err := typedArg(in)
	if err != nil {
		return in, a, err
	}
	rest, _, err = lexer.Comma(rest)
	if err != nil {
		return in, a, err
	}
	return rest, a, nil
}

// argsDec parses a declaration argument list, with the same shape as call
// arguments but typed entries.
func argsDec(in lexer.Span) (lexer.Span, []instruction.TypedArg, error) {
	out, _, err := lexer.LeftParen(in)
	if err != nil {
		return in, nil, err
	}

	if rest, _, err := lexer.RightParen(lexer.MaybeConsumeExtra(out)); err == nil {
		return rest, nil, nil
	}

	rest, args, err := many0(typedArgAndComma)(out)
	if err != nil {
		return in, nil, err
	}
	rest, last, err := typedArg(rest)
	if err != nil {
		return in, nil, err
	}
	args = append(args, last)

	rest, _, err = lexer.RightParen(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, args, nil
}

// returnType parses '-> type'.
func returnType(in lexer.Span) (lexer.Span, instruction.TypeId, error) {
	var zero instruction.TypeId

	rest, _, err := lexer.Arrow(in)
	if err != nil {
		return in, zero, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, tok, err := lexer.Identifier(rest)
	if err != nil {
		return in, zero, cut(err)
	}
	return rest, instruction.NewTypeId(tok.Text), nil
}

// functionDeclaration parses 'func name(args) [-> type] block'. The
// keyword commits the rule, so everything after it fails fatally.
func functionDeclaration(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, _, err := lexer.KeywordFunc(in)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, name, err := lexer.Identifier(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, args, err := argsDec(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, ret, err := opt(returnType)(rest)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, body, err := block(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	dec := &instruction.FunctionDec{Name: name.Text, Args: args, Ret: ret, Body: body}
	return rest, dec, nil
}

// typeDeclaration parses 'type Name(fields);'.
func typeDeclaration(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, _, err := lexer.KeywordType(in)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, name, err := lexer.Identifier(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	if !startsTypeName(name.Text) {
		err := diag.NewLocated(diag.Parsing, name.Loc, "type names start with an uppercase letter")
		err.Fatal = true
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, fields, err := argsDec(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, _, err = lexer.Semicolon(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	return rest, &instruction.TypeDec{Name: name.Text, Fields: fields}, nil
}

// inclStatement parses 'incl path [as alias];'.
func inclStatement(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, _, err := lexer.KeywordIncl(in)
	if err != nil {
		return in, nil, err
	}
	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, path, err := lexer.Identifier(rest)
	if err != nil {
		return in, nil, cut(err)
	}

	alias := ""
	afterWs := lexer.MaybeConsumeWhitespace(rest)
	if r2, _, err := lexer.KeywordAs(afterWs); err == nil {
		r2 = lexer.MaybeConsumeWhitespace(r2)
		r3, tok, err := lexer.Identifier(r2)
		if err != nil {
			return in, nil, cut(err)
		}
		alias = tok.Text
		rest = r3
	}

	rest = lexer.MaybeConsumeWhitespace(rest)
	rest, _, err = lexer.Semicolon(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	return rest, &instruction.Incl{Path: path.Text, Alias: alias}, nil
}

// block parses '{ ... }' into a scoped sequence.
func block(in lexer.Span) (lexer.Span, *instruction.Block, error) {
	rest, _, err := lexer.LeftCurly(in)
	if err != nil {
		return in, nil, err
	}
	rest, instructions, trailing, err := instructionSeq(rest, func(s lexer.Span) bool {
		return strings.HasPrefix(s.Rest(), "}")
	})
	if err != nil {
		return in, nil, err
	}
	rest, _, err = lexer.RightCurly(rest)
	if err != nil {
		return in, nil, cut(err)
	}
	return rest, &instruction.Block{Instructions: instructions, HasValue: trailing}, nil
}

func blockExpr(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	rest, b, err := block(in)
	if err != nil {
		return in, nil, err
	}
	return rest, b, nil
}

// expression parses a block or an operator expression. A lone operand
// comes out of the operator parser unchanged when no operator follows it.
func expression(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	return alt(blockExpr, shuntingYardExpr)(in)
}

// anyInstruction tries every statement form, then expressions. Assignment
// runs before expression so 'x = ...' is not misread as a reference to x.
func anyInstruction(in lexer.Span) (lexer.Span, instruction.Instruction, error) {
	return alt(
		functionDeclaration,
		typeDeclaration,
		inclStatement,
		varAssignment,
		expression,
	)(in)
}
