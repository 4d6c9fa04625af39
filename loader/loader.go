// Package loader reads schema and operation sources from disk and hands them
// to the GraphQL parser. Every path and glob pattern is resolved against an
// explicit base directory; the package never consults the process working
// directory.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Document pairs an operation AST with the raw source text it was parsed
// from, so compiled operations can embed their source verbatim.
type Document struct {
	Path string
	Raw  string
	Doc  *ast.QueryDocument
}

// Expand resolves glob patterns against baseDir and returns the matched
// paths, relative to baseDir, deduplicated and in match order.
func Expand(baseDir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(baseDir)
	var out []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out, nil
}

// LoadSchema reads every schema file matched by patterns under baseDir and
// builds the validated named-type graph.
func LoadSchema(baseDir string, patterns []string) (*ast.Schema, error) {
	files, err := Expand(baseDir, patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema files matched %v under %s", patterns, baseDir)
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(filepath.Join(baseDir, file))
		if err != nil {
			return nil, fmt.Errorf("read schema file: %w", err)
		}
		sources = append(sources, &ast.Source{Name: file, Input: string(src)})
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// LoadOperations reads and parses every operation document matched by
// patterns under baseDir. Parsing does not validate selections against a
// schema; the compiler resolves them itself and reports its own failures.
func LoadOperations(baseDir string, patterns []string) ([]Document, error) {
	files, err := Expand(baseDir, patterns)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(filepath.Join(baseDir, file))
		if err != nil {
			return nil, fmt.Errorf("read operation file: %w", err)
		}
		raw := string(src)
		doc, err := parser.ParseQuery(&ast.Source{Name: file, Input: raw})
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		docs = append(docs, Document{Path: file, Raw: raw, Doc: doc})
	}
	return docs, nil
}
