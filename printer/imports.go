package printer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TypeFiles maps a custom type name to the schema source file that declares
// it. The compiler only supplies deduplicated ordered name lists; turning
// those into cross-file references happens here.
type TypeFiles map[string]string

// ImportStatement renders the import line for every referenced custom type,
// grouped by the derived file that declares each type. Name order inside a
// group follows the caller's first-seen order.
func ImportStatement(names []string, files TypeFiles) string {
	if len(names) == 0 {
		return ""
	}

	type group struct {
		file  string
		names []string
	}
	var groups []*group
	index := make(map[string]*group)
	for _, name := range names {
		file := DerivedFileName(files[name])
		g := index[file]
		if g == nil {
			g = &group{file: file}
			index[file] = g
			groups = append(groups, g)
		}
		g.names = append(g.names, name)
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "import { %s } from %q;\n", strings.Join(g.names, ", "), g.file)
	}
	return b.String()
}

// DerivedFileName maps a schema source file to the emitted module path it
// compiles to: the base name without extension, as a relative import.
// An unknown source falls back to "./schema".
func DerivedFileName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "./schema"
	}
	return "./" + base
}
