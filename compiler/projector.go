package compiler

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// OperationField is one projected entry in an operation's result namespace.
// A leaf carries the rendered type of the selected field; a composite carries
// a synthetic flat type plus the recursively projected children.
type OperationField struct {
	Name      string
	Type      string            // leaf only
	Synthetic *SyntheticType    // composite only
	Children  []*OperationField // composite only
}

// SyntheticType is the flat view of a composite projected field. Its flat
// entries point back into the operation namespace by dotted path, mirroring
// the entity extractor's indirection, and Output keeps the field's declared
// wrapped type so consumers can reason about list/nullable shape at this
// level without re-deriving it.
type SyntheticType struct {
	Name   string
	Fields []FlatField
	Output *WrappedType
}

// Projector walks selection sets against the schema's field graph to build
// result namespaces that mirror exactly what a query selected.
type Projector struct {
	navigator *Navigator
}

// NewProjector creates a projector over schema.
func NewProjector(schema *ast.Schema) *Projector {
	return &Projector{navigator: NewNavigator(schema)}
}

// Project computes the projected namespace fields for a selection set made
// against root. fieldPath is the dotted field path from root to the current
// nesting level, empty at the top; nsPath is the dotted namespace path the
// synthetic flat types point into. Fragment spreads and inline fragments are
// not supported and fail with UnsupportedConstructError.
//
// Composite entries aggregate every import their children require before
// returning, so the caller sees the complete deduplicated set in one pass.
func (p *Projector) Project(set ast.SelectionSet, root *ast.Definition, fieldPath, nsPath string, imports *ImportSet) ([]*OperationField, error) {
	fields := make([]*OperationField, 0, len(set))
	for _, selection := range set {
		field, ok := selection.(*ast.Field)
		if !ok {
			return nil, &UnsupportedConstructError{Construct: selectionKind(selection)}
		}

		path := joinPath(fieldPath, field.Name)
		descriptor, err := p.navigator.Resolve(root, path)
		if err != nil {
			return nil, err
		}

		if len(field.SelectionSet) == 0 {
			resolved := ResolveWrapped(descriptor.Type)
			imports.Merge(resolved.Imports)
			fields = append(fields, &OperationField{Name: field.Name, Type: resolved.Render})
			continue
		}

		childNS := nsPath + "." + field.Name
		childImports := NewImportSet()
		children, err := p.Project(field.SelectionSet, root, path, childNS, childImports)
		if err != nil {
			return nil, err
		}

		synthetic := &SyntheticType{Name: childNS, Output: descriptor.Type}
		for _, child := range children {
			synthetic.Fields = append(synthetic.Fields, FlatField{
				Name:     child.Name,
				PathType: childNS + "." + child.Name,
			})
		}

		imports.Merge(childImports)
		fields = append(fields, &OperationField{
			Name:      field.Name,
			Synthetic: synthetic,
			Children:  children,
		})
	}
	return fields, nil
}

func selectionKind(s ast.Selection) string {
	switch s.(type) {
	case *ast.FragmentSpread:
		return "fragment spread"
	case *ast.InlineFragment:
		return "inline fragment"
	}
	return "unknown selection"
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
