package instruction

import "strings"

// Incl brings another module's declarations into the program under a
// namespace. An empty Alias defaults to the last path segment; the special
// alias '_' disables prefixing entirely.
type Incl struct {
	Path  string
	Alias string
}

func (i *Incl) Kind() Kind { return Statement }

func (i *Incl) Print() string {
	if i.Alias == "" {
		return "incl " + i.Path + ";"
	}
	return "incl " + i.Path + " as " + i.Alias + ";"
}

func (i *Incl) isInstruction() {}

// EffectiveAlias resolves the namespace the inclusion will use: the
// explicit alias when one was given, else the last path segment.
func (i *Incl) EffectiveAlias() string {
	if i.Alias != "" {
		return i.Alias
	}
	if idx := strings.LastIndex(i.Path, "::"); idx >= 0 {
		return i.Path[idx+2:]
	}
	return i.Path
}
