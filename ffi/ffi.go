// Package ffi connects the interpreter to foreign code through Go
// plugins. A script links a library with __builtin_link_with and then
// calls its exported functions like any other function.
package ffi

import (
	"plugin"
	"unicode"
	"unicode/utf8"

	"github.com/BastienGermond/jinko/interpreter"
)

// PluginLoader opens shared objects built with -buildmode=plugin.
type PluginLoader struct{}

func (PluginLoader) Open(path string) (interpreter.Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &pluginLibrary{path: path, plugin: p}, nil
}

type pluginLibrary struct {
	path   string
	plugin *plugin.Plugin
}

func (l *pluginLibrary) Name() string { return l.path }

// Lookup resolves a call-site name to the plugin's exported symbol.
// Plugin exports are exported Go identifiers, so the first rune is
// capitalized: a script's greet(...) reaches the plugin's Greet.
func (l *pluginLibrary) Lookup(symbol string) (interpreter.ExternFunc, bool) {
	sym, err := l.plugin.Lookup(exportName(symbol))
	if err != nil {
		return nil, false
	}

	// Lookup hands back the func value for declarations and a pointer
	// for package-level vars.
	switch fn := sym.(type) {
	case func([]interpreter.Value) (interpreter.Value, error):
		return fn, true
	case interpreter.ExternFunc:
		return fn, true
	case *interpreter.ExternFunc:
		return *fn, true
	}
	return nil, false
}

func exportName(symbol string) string {
	r, size := utf8.DecodeRuneInString(symbol)
	if r == utf8.RuneError && size <= 1 {
		return symbol
	}
	return string(unicode.ToUpper(r)) + symbol[size:]
}
