package compiler

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldDescriptor is the result of a successful path resolution: the field
// definition the path terminates at and that field's original, still-wrapped
// type. Callers apply their own list/nullability handling to Type.
type FieldDescriptor struct {
	Field  *ast.FieldDefinition
	Type   *WrappedType
	Parent *ast.Definition
}

// Navigator resolves dotted field paths against a schema's live field graph.
type Navigator struct {
	schema *ast.Schema
}

// NewNavigator creates a navigator over schema.
func NewNavigator(schema *ast.Schema) *Navigator {
	return &Navigator{schema: schema}
}

// Resolve descends root's field graph along the dotted path. Wrapper layers
// are stripped before each hop, but the returned descriptor keeps the leaf
// field's wrapped type intact. Resolution fails with PathNotFoundError when a
// segment names a field absent from the current type, or when an intermediate
// segment's type is not an object or interface and so cannot be descended
// into.
func (n *Navigator) Resolve(root *ast.Definition, path string) (*FieldDescriptor, error) {
	segments := strings.Split(path, ".")
	current := root
	for i, segment := range segments {
		field := current.Fields.ForName(segment)
		if field == nil {
			return nil, &PathNotFoundError{Root: root.Name, Path: strings.Join(segments[:i+1], ".")}
		}
		if i == len(segments)-1 {
			return &FieldDescriptor{
				Field:  field,
				Type:   WrapType(n.schema, field.Type),
				Parent: current,
			}, nil
		}

		next := n.schema.Types[field.Type.Name()]
		if next == nil || (next.Kind != ast.Object && next.Kind != ast.Interface) {
			return nil, &PathNotFoundError{Root: root.Name, Path: strings.Join(segments[:i+2], ".")}
		}
		current = next
	}
	return nil, &PathNotFoundError{Root: root.Name, Path: path}
}
