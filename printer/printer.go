// Package printer renders compiled records as TypeScript source text. It is
// the emission side of the tool: the compiler package decides shapes and
// references, this package only turns them into strings.
package printer

import (
	"fmt"
	"strings"

	"github.com/typeshape/graphql-tsgen/compiler"
)

const indent = "  "

// Declaration renders one schema declaration.
func Declaration(d compiler.Declaration) string {
	switch decl := d.(type) {
	case *compiler.Entity:
		return entity(decl)
	case *compiler.Enum:
		return enum(decl)
	case *compiler.Union:
		return union(decl)
	case *compiler.Scalar:
		return scalar(decl)
	}
	return ""
}

// SchemaFile renders a whole declaration file, keeping the order of decls.
func SchemaFile(decls []compiler.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if rendered := Declaration(d); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n")
}

// OperationFile renders one compiled operation plus the import statement for
// every custom type it references.
func OperationFile(op *compiler.Operation, files TypeFiles) string {
	var b strings.Builder
	if imports := ImportStatement(op.Imports, files); imports != "" {
		b.WriteString(imports)
		b.WriteString("\n")
	}
	b.WriteString(Operation(op))
	return b.String()
}

func entity(e *compiler.Entity) string {
	var b strings.Builder
	writeDoc(&b, "", e.Description)
	fmt.Fprintf(&b, "export type %s = {\n", e.Name)
	for _, f := range e.Fields {
		writeDoc(&b, indent, f.Description)
		fmt.Fprintf(&b, "%s%s: %s;\n", indent, f.Name, f.PathType)
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "export namespace %s {\n", e.Namespace.Name)
	for _, f := range e.Namespace.Fields {
		if f.Args != nil {
			fmt.Fprintf(&b, "%sexport type %s = {\n", indent, f.Args.Name)
			for _, a := range f.Args.Fields {
				writeDoc(&b, indent+indent, a.Description)
				fmt.Fprintf(&b, "%s%s%s: %s;\n", indent, indent, a.Name, a.Type)
			}
			fmt.Fprintf(&b, "%s};\n", indent)
		}
		writeDoc(&b, indent, f.Description)
		fmt.Fprintf(&b, "%sexport type %s = %s;\n", indent, f.Name, f.Type)
	}
	b.WriteString("}\n")
	return b.String()
}

func enum(e *compiler.Enum) string {
	var b strings.Builder
	writeDoc(&b, "", e.Description)
	fmt.Fprintf(&b, "export enum %s {\n", e.Name)
	for _, v := range e.Values {
		writeDoc(&b, indent, v.Description)
		fmt.Fprintf(&b, "%s%s = %q,\n", indent, v.Name, v.Name)
	}
	b.WriteString("}\n")
	return b.String()
}

func union(u *compiler.Union) string {
	var b strings.Builder
	writeDoc(&b, "", u.Description)
	members := "never"
	if len(u.Members) > 0 {
		members = strings.Join(u.Members, " | ")
	}
	fmt.Fprintf(&b, "export type %s = %s;\n", u.Name, members)
	return b.String()
}

func scalar(s *compiler.Scalar) string {
	var b strings.Builder
	writeDoc(&b, "", s.Description)
	fmt.Fprintf(&b, "export type %s = unknown;\n", s.Name)
	return b.String()
}

// Operation renders the flat selection type, the nested result namespace and
// the embedded source document of one compiled operation.
func Operation(op *compiler.Operation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "export type %s = {\n", op.Selection.Name)
	for _, f := range op.Namespace.Fields {
		fmt.Fprintf(&b, "%s%s: %s;\n", indent, f.Name, fieldRef(op.Namespace.Name, f))
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "export namespace %s {\n", op.Namespace.Name)
	if op.Namespace.Args != nil {
		fmt.Fprintf(&b, "%sexport type %s = {\n", indent, op.Namespace.Args.Name)
		for _, a := range op.Namespace.Args.Fields {
			fmt.Fprintf(&b, "%s%s%s: %s;\n", indent, indent, a.Name, a.Type)
		}
		fmt.Fprintf(&b, "%s};\n", indent)
	}
	writeOperationFields(&b, indent, op.Namespace.Fields)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "export const %sDocument = `%s`;\n", op.Name, escapeTemplate(op.RawText))
	return b.String()
}

// writeOperationFields renders leaves as type aliases and composites as
// nested namespaces holding an Output flat type plus their own children.
func writeOperationFields(b *strings.Builder, pad string, fields []*compiler.OperationField) {
	for _, f := range fields {
		if f.Synthetic == nil {
			fmt.Fprintf(b, "%sexport type %s = %s;\n", pad, f.Name, f.Type)
			continue
		}
		fmt.Fprintf(b, "%sexport namespace %s {\n", pad, f.Name)
		fmt.Fprintf(b, "%sexport type Output = {\n", pad+indent)
		for _, child := range f.Children {
			fmt.Fprintf(b, "%s%s: %s;\n", pad+indent+indent, child.Name, fieldRef(f.Synthetic.Name, child))
		}
		fmt.Fprintf(b, "%s};\n", pad+indent)
		writeOperationFields(b, pad+indent, f.Children)
		fmt.Fprintf(b, "%s}\n", pad)
	}
}

// fieldRef is the type expression a flat field uses to reference its
// namespace entry: the dotted path for leaves, the synthetic Output type
// re-wrapped in the field's own list/nullable shape for composites.
func fieldRef(nsPath string, f *compiler.OperationField) string {
	if f.Synthetic != nil {
		return compiler.RenderWrappedAs(f.Synthetic.Output, f.Synthetic.Name+".Output")
	}
	return nsPath + "." + f.Name
}

func writeDoc(b *strings.Builder, pad, doc string) {
	if doc == "" {
		return
	}
	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		fmt.Fprintf(b, "%s/** %s */\n", pad, lines[0])
		return
	}
	fmt.Fprintf(b, "%s/**\n", pad)
	for _, line := range lines {
		fmt.Fprintf(b, "%s * %s\n", pad, line)
	}
	fmt.Fprintf(b, "%s */\n", pad)
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}
