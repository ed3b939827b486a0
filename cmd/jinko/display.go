package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BastienGermond/jinko/diag"
)

// FormatError renders an error for the terminal. Errors that carry a
// source location get a code snippet with a caret under the offending
// column; anything else prints as-is. The core packages never format
// snippets themselves, presentation lives here.
func FormatError(err error, useColor bool) string {
	var dErr *diag.Error
	if !errors.As(err, &dErr) {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(Colorize(dErr.Kind.String(), ColorRed, useColor))
	if msg := dErr.Message(); msg != "" {
		sb.WriteString(": ")
		sb.WriteString(msg)
	}
	if snippet := createCodeSnippet(dErr.Loc); snippet != "" {
		sb.WriteString("\n")
		sb.WriteString(snippet)
	}
	return sb.String()
}

// createCodeSnippet creates a code snippet showing the error location
func createCodeSnippet(loc *diag.Location) string {
	if loc == nil || loc.Line == 0 || loc.Text == "" {
		return ""
	}

	// Create the snippet in Rust/Clang style
	var snippet strings.Builder
	// Location pointer like " --> src/file.jk:5:13"
	snippet.WriteString(fmt.Sprintf("  --> %s\n", loc))
	// Line separator
	snippet.WriteString("   |\n")
	// Source line with line number
	snippet.WriteString(fmt.Sprintf("%2d | %s\n", loc.Line, loc.Text))
	// Caret pointer line
	snippet.WriteString("   | ")
	if loc.Column > 0 && loc.Column <= len(loc.Text)+1 {
		snippet.WriteString(strings.Repeat(" ", loc.Column-1) + "^")
	}

	return snippet.String()
}
