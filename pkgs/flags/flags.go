// Package flags turns the compiler and linker flags printed by
// `pkg-config --cflags --libs` into structured build settings.
//
// Only -D, -I, -L and -l tokens are kept. Escaped quotes (\") are dropped
// before splitting, so a quoted value holding a literal space may be split
// in two; callers rely on this behavior and it is kept as is.
package flags

import "strings"

// Category names a group of parsed flags.
type Category string

const (
	DefineMacros Category = "define_macros"
	IncludeDirs  Category = "include_dirs"
	LibraryDirs  Category = "library_dirs"
	Libraries    Category = "libraries"
)

var prefixes = map[string]Category{
	"-D": DefineMacros,
	"-I": IncludeDirs,
	"-L": LibraryDirs,
	"-l": Libraries,
}

// Macro is a preprocessor definition. A nil Value means "-DNAME" while a
// pointer to "" means "-DNAME=".
type Macro struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

// String renders m back into a -D flag.
func (m Macro) String() string {
	if m.Value == nil {
		return "-D" + m.Name
	}
	return "-D" + m.Name + "=" + *m.Value
}

// FlagSet holds parsed flags per category in the order they appeared.
type FlagSet struct {
	DefineMacros []Macro  `json:"define_macros"`
	IncludeDirs  []string `json:"include_dirs"`
	LibraryDirs  []string `json:"library_dirs"`
	Libraries    []string `json:"libraries"`
}

// New returns a FlagSet whose categories are all empty.
func New() FlagSet {
	return FlagSet{
		DefineMacros: []Macro{},
		IncludeDirs:  []string{},
		LibraryDirs:  []string{},
		Libraries:    []string{},
	}
}

// Get returns the values of a string category, or nil for DefineMacros and
// unknown categories.
func (f FlagSet) Get(c Category) []string {
	switch c {
	case IncludeDirs:
		return f.IncludeDirs
	case LibraryDirs:
		return f.LibraryDirs
	case Libraries:
		return f.Libraries
	}
	return nil
}

// Macros returns the names of all defined macros, in order.
func (f FlagSet) Macros() []string {
	names := make([]string, len(f.DefineMacros))
	for i, m := range f.DefineMacros {
		names[i] = m.Name
	}
	return names
}

// Merge appends every value of other after the values already in f.
// Duplicates are kept.
func (f *FlagSet) Merge(other FlagSet) {
	f.DefineMacros = append(f.DefineMacros, other.DefineMacros...)
	f.IncludeDirs = append(f.IncludeDirs, other.IncludeDirs...)
	f.LibraryDirs = append(f.LibraryDirs, other.LibraryDirs...)
	f.Libraries = append(f.Libraries, other.Libraries...)
}

// Split breaks raw into tokens on single spaces that are not preceded by a
// backslash, after removing every \" sequence. Consecutive spaces produce
// empty tokens.
func Split(raw string) []string {
	raw = strings.ReplaceAll(raw, `\"`, "")
	var tokens []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' && (i == 0 || raw[i-1] != '\\') {
			tokens = append(tokens, raw[start:i])
			start = i + 1
		}
	}
	return append(tokens, raw[start:])
}

// Parse classifies the tokens of raw. Unrecognized and one-character tokens
// are skipped; it never fails.
func Parse(raw string) FlagSet {
	f := New()
	for _, tok := range Split(raw) {
		if len(tok) < 2 {
			continue
		}
		cat, ok := prefixes[tok[:2]]
		if !ok {
			continue
		}
		val := strings.TrimSpace(tok[2:])
		switch cat {
		case DefineMacros:
			f.DefineMacros = append(f.DefineMacros, parseMacro(val))
		case IncludeDirs:
			f.IncludeDirs = append(f.IncludeDirs, val)
		case LibraryDirs:
			f.LibraryDirs = append(f.LibraryDirs, val)
		case Libraries:
			f.Libraries = append(f.Libraries, val)
		}
	}
	return f
}

func parseMacro(decl string) Macro {
	name, value, ok := strings.Cut(decl, "=")
	if !ok {
		return Macro{Name: name}
	}
	return Macro{Name: name, Value: &value}
}
