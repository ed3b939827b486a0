package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/ffi"
	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/interpreter"
	"github.com/BastienGermond/jinko/parser"
)

// Version is overridden at release time with -ldflags.
var Version = "0.1.0"

func main() {
	var (
		debug   bool
		noColor bool
		check   bool
		ast     bool
	)

	rootCmd := &cobra.Command{
		Use:           "jinko [script] [arguments...]",
		Short:         "Run jinko scripts or start an interactive session",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)
			if len(args) == 0 {
				return runREPL(logger, ShouldUseColor(noColor))
			}
			return runScript(args[0], args[1:], logger, check, ast)
		},
	}

	// Add flags
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&check, "check", false, "Parse the script and exit without executing it")
	rootCmd.PersistentFlags().BoolVar(&ast, "ast", false, "Print the parsed program instead of executing it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err, ShouldUseColor(noColor)))
		os.Exit(exitCode(err))
	}
}

// runScript reads, parses and executes one script file. Everything after
// the script path is handed to the program as its arguments.
func runScript(path string, args []string, logger *slog.Logger, check, ast bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return diag.Wrap(diag.IO, err, "reading '%s'", path)
	}

	program, err := parser.Parse(string(src), parser.WithFile(path), parser.WithLogger(logger))
	if err != nil {
		return err
	}
	if ast {
		printProgram(program)
		return nil
	}
	if check {
		return nil
	}

	c := interpreter.New(
		interpreter.WithArgs(args),
		interpreter.WithScriptPath(path),
		interpreter.WithLoader(ffi.PluginLoader{}),
		interpreter.WithLogger(logger),
	)
	_, err = c.ExecuteProgram(program)
	return err
}

// printProgram renders the top-level instructions the way Block.Print
// renders nested ones, minus the surrounding braces.
func printProgram(program *instruction.Block) {
	last := len(program.Instructions) - 1
	for i, ins := range program.Instructions {
		line := ins.Print()
		if ins.Kind() == instruction.Expression && !(program.HasValue && i == last) {
			line += ";"
		}
		fmt.Println(line)
	}
}

// newLogger builds the process logger. Debug logging is gated by the
// --debug flag or the JINKO_DEBUG environment variable.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || os.Getenv("JINKO_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove timestamp for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// exitCode maps the escaped error to the process exit code.
func exitCode(err error) int {
	var dErr *diag.Error
	if errors.As(err, &dErr) {
		return diag.ExitCode(dErr.Kind)
	}
	return 1
}
