package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/BastienGermond/jinko/ffi"
	"github.com/BastienGermond/jinko/interpreter"
	"github.com/BastienGermond/jinko/parser"
)

const historyFile = ".jinko_history"

// runREPL reads one submission per prompt and executes it against a
// single Context, so bindings and declarations persist across lines.
// Errors are printed and the session continues.
func runREPL(logger *slog.Logger, useColor bool) error {
	fmt.Printf("jinko %s (Ctrl+C cancels the current line, Ctrl+D exits)\n", Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	c := interpreter.New(
		interpreter.WithLoader(ffi.PluginLoader{}),
		interpreter.WithLogger(logger),
	)

	for {
		line, err := ln.Prompt("jinko> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			break
		}

		ln.AppendHistory(line)

		program, err := parser.Parse(line, parser.WithLogger(logger))
		if err != nil {
			fmt.Fprintln(os.Stderr, FormatError(err, useColor))
			continue
		}
		v, err := c.ExecuteProgram(program)
		if err != nil {
			fmt.Fprintln(os.Stderr, FormatError(err, useColor))
			continue
		}
		if v != nil {
			fmt.Println(v.String())
		}
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}
