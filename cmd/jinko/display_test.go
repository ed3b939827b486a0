package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BastienGermond/jinko/diag"
)

func TestFormatError_WithSnippet(t *testing.T) {
	err := diag.NewLocated(diag.Parsing, diag.Location{
		File:   "main.jk",
		Line:   2,
		Column: 5,
		Text:   "y = 2",
	}, "expected ';' after expression")

	output := FormatError(err, false)
	expected := `parsing error: expected ';' after expression
  --> main.jk:2:5
   |
 2 | y = 2
   |     ^`

	assert.Equal(t, expected, output)
}

func TestFormatError_NoFile(t *testing.T) {
	// REPL submissions have no file name, only line and column.
	err := diag.NewLocated(diag.Parsing, diag.Location{
		Line:   1,
		Column: 3,
		Text:   "x +",
	}, "not a valid expression")

	output := FormatError(err, false)
	expected := `parsing error: not a valid expression
  --> 1:3
   |
 1 | x +
   |   ^`

	assert.Equal(t, expected, output)
}

func TestFormatError_NoLocation(t *testing.T) {
	err := diag.New(diag.Interpreter, "undefined variable 'x'")

	output := FormatError(err, false)

	assert.Equal(t, "interpreter error: undefined variable 'x'", output)
}

func TestFormatError_WrappedCause(t *testing.T) {
	err := diag.Wrap(diag.IO, errors.New("permission denied"), "reading 'main.jk'")

	output := FormatError(err, false)

	assert.Equal(t, "i/o error: reading 'main.jk': permission denied", output)
}

func TestFormatError_Color(t *testing.T) {
	err := diag.New(diag.Interpreter, "division by zero")

	output := FormatError(err, true)
	expected := ColorRed + "interpreter error" + ColorReset + ": division by zero"

	assert.Equal(t, expected, output)
}

func TestFormatError_CaretOutOfRange(t *testing.T) {
	// A column past the end of the line keeps the snippet but drops the
	// caret rather than pointing at nothing.
	err := diag.NewLocated(diag.Parsing, diag.Location{
		File:   "main.jk",
		Line:   1,
		Column: 40,
		Text:   "x = 1;",
	}, "expected an instruction")

	output := FormatError(err, false)
	expected := "parsing error: expected an instruction\n" +
		"  --> main.jk:1:40\n" +
		"   |\n" +
		" 1 | x = 1;\n" +
		"   | "

	assert.Equal(t, expected, output)
}

func TestFormatError_ForeignError(t *testing.T) {
	err := errors.New("plain failure")

	assert.Equal(t, "plain failure", FormatError(err, true))
}

func TestShouldUseColor(t *testing.T) {
	assert.False(t, ShouldUseColor(true), "--no-color wins over everything")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColor(false), "NO_COLOR is respected")
}
