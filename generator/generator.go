// Package generator wires the loader, compiler and printer into one
// compilation run driven by a yaml configuration file.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typeshape/graphql-tsgen/compiler"
	"github.com/typeshape/graphql-tsgen/loader"
	"github.com/typeshape/graphql-tsgen/printer"
)

// Option is the tool configuration. Schema and Operations are glob patterns
// resolved against the directory holding the config file; Output is the
// directory the generated TypeScript files are written to, relative to the
// same base.
type Option struct {
	Schema     []string `yaml:"schema"`
	Operations []string `yaml:"operations"`
	Output     string   `yaml:"output" default:"generated"`
}

// LoadOption reads a yaml config file. The directory containing the file
// becomes the base directory every pattern resolves against.
func LoadOption(path string) (Option, string, error) {
	var opt Option
	src, err := os.ReadFile(path)
	if err != nil {
		return opt, "", err
	}
	if err := yaml.Unmarshal(src, &opt); err != nil {
		return opt, "", fmt.Errorf("parse config: %w", err)
	}
	if opt.Output == "" {
		opt.Output = "generated"
	}
	return opt, filepath.Dir(path), nil
}

// Generator runs schema and operation compilation end to end.
type Generator struct {
	baseDir string
	opt     Option
}

// New creates a generator with an explicit base directory.
func New(baseDir string, opt Option) *Generator {
	return &Generator{baseDir: baseDir, opt: opt}
}

// Generate compiles the configured schema and operations and writes the
// emitted TypeScript files. A failing operation does not abort its siblings:
// the rest of the batch is compiled and written, and the collected failures
// are returned together at the end.
func (g *Generator) Generate() error {
	schema, err := loader.LoadSchema(g.baseDir, g.opt.Schema)
	if err != nil {
		return err
	}

	decls := make([]compiler.Declaration, 0, len(schema.Types))
	typeFiles := printer.TypeFiles{}
	for _, def := range schema.Types {
		decl := compiler.Extract(def)
		if decl == nil {
			continue
		}
		decls = append(decls, decl)
		if def.Position != nil && def.Position.Src != nil {
			typeFiles[def.Name] = def.Position.Src.Name
		}
	}
	compiler.SortDeclarations(decls)

	outDir := filepath.Join(g.baseDir, g.opt.Output)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := g.writeSchemaFiles(outDir, decls); err != nil {
		return err
	}

	docs, err := loader.LoadOperations(g.baseDir, g.opt.Operations)
	if err != nil {
		return err
	}

	assembler := compiler.NewAssembler(schema)
	var failures []error
	for _, doc := range docs {
		rendered, errs := compileDocument(assembler, doc, typeFiles)
		failures = append(failures, errs...)
		if rendered == "" {
			continue
		}
		out := filepath.Join(outDir, outputName(doc.Path))
		if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
			return err
		}
	}
	return errors.Join(failures...)
}

// writeSchemaFiles groups declarations by the schema source file that
// declared them and emits one TypeScript file per source file, preserving
// declaration order within each.
func (g *Generator) writeSchemaFiles(outDir string, decls []compiler.Declaration) error {
	var order []string
	bySource := make(map[string][]compiler.Declaration)
	for _, decl := range decls {
		src := "schema"
		if pos := decl.SourcePosition(); pos != nil && pos.Src != nil {
			src = pos.Src.Name
		}
		if _, ok := bySource[src]; !ok {
			order = append(order, src)
		}
		bySource[src] = append(bySource[src], decl)
	}

	for _, src := range order {
		out := filepath.Join(outDir, outputName(src))
		if err := os.WriteFile(out, []byte(printer.SchemaFile(bySource[src])), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// compileDocument assembles every operation in one document. Failed
// operations are skipped and reported; succeeding siblings are unaffected.
func compileDocument(assembler *compiler.Assembler, doc loader.Document, typeFiles printer.TypeFiles) (string, []error) {
	imports := compiler.NewImportSet()
	var parts []string
	var failures []error
	for i, op := range doc.Doc.Operations {
		raw := compiler.OperationText(doc.Raw, doc.Doc.Operations, i)
		compiled, err := assembler.Assemble(op, raw)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: operation %s: %w", doc.Path, operationLabel(op), err))
			continue
		}
		for _, name := range compiled.Imports {
			imports.Add(name)
		}
		parts = append(parts, printer.Operation(compiled))
	}
	if len(parts) == 0 {
		return "", failures
	}

	var b strings.Builder
	if statement := printer.ImportStatement(imports.Names(), typeFiles); statement != "" {
		b.WriteString(statement)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(parts, "\n"))
	return b.String(), failures
}

func operationLabel(op *ast.OperationDefinition) string {
	if op.Name != "" {
		return op.Name
	}
	return "(anonymous)"
}

func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ts"
}
