package interpreter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BastienGermond/jinko/diag"
	"github.com/BastienGermond/jinko/instruction"
	"github.com/BastienGermond/jinko/parser"
)

// include resolves a module path, parses the file and executes its
// program in the current context. Declared names get the inclusion's
// namespace prefix first, unless the '_' alias turned prefixing off.
// Each file is included at most once per run.
func (c *Context) include(node *instruction.Incl) error {
	resolved, err := c.resolveInclude(node.Path)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return diag.Wrap(diag.IO, err, "resolving '%s'", resolved)
	}
	if c.included[abs] {
		return nil
	}
	// Marked before execution so inclusion cycles terminate.
	c.included[abs] = true

	src, err := os.ReadFile(resolved)
	if err != nil {
		return diag.Wrap(diag.IO, err, "including '%s'", resolved)
	}
	program, err := parser.Parse(string(src), parser.WithFile(resolved))
	if err != nil {
		return err
	}

	if alias := node.EffectiveAlias(); alias != "_" {
		instruction.Prefix(program, alias+"::")
	}

	// Includes inside the module resolve against its own directory.
	saved := c.dir
	c.dir = filepath.Dir(resolved)
	defer func() { c.dir = saved }()

	c.logger.Debug("including module", "path", node.Path, "file", resolved)
	_, err = c.ExecuteProgram(program)
	return err
}

// resolveInclude maps a module path to a file relative to the directory
// of the file being executed: '<path>.jk' first, then '<path>/lib.jk'.
func (c *Context) resolveInclude(path string) (string, error) {
	rel := strings.ReplaceAll(path, "::", string(filepath.Separator))
	candidates := []string{
		filepath.Join(c.dir, rel+".jk"),
		filepath.Join(c.dir, rel, "lib.jk"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", diag.New(diag.IO,
		"cannot resolve module '%s' (tried %s)", path, strings.Join(candidates, ", "))
}
