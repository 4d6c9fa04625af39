package compiler

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// WrapKind identifies one layer of a resolved type-reference chain.
type WrapKind int

const (
	// WrapNamed is the leaf of a chain: a reference to a named type.
	WrapNamed WrapKind = iota
	// WrapList wraps its inner reference in list syntax.
	WrapList
	// WrapNonNull suppresses the nullability of its inner reference.
	// A WrapNonNull layer never wraps another WrapNonNull layer.
	WrapNonNull
)

// WrappedType is the resolved wrapper-chain form of a type reference: zero or
// more List/NonNull layers around a named leaf, with the leaf's schema
// definition attached when the schema declares one. It is the schema-side
// counterpart of the raw *ast.Type syntax node.
type WrappedType struct {
	Kind WrapKind
	Of   *WrappedType // inner layer; nil for WrapNamed

	// Leaf data, set on WrapNamed layers only.
	Name       string
	Definition *ast.Definition // nil for built-in scalars
}

// WrapType builds the resolved wrapper chain for a raw type node, looking the
// leaf's definition up in schema.
func WrapType(schema *ast.Schema, t *ast.Type) *WrappedType {
	var w *WrappedType
	if t.Elem != nil {
		w = &WrappedType{Kind: WrapList, Of: WrapType(schema, t.Elem)}
	} else {
		w = &WrappedType{Kind: WrapNamed, Name: t.NamedType, Definition: schema.Types[t.NamedType]}
	}
	if t.NonNull {
		w = &WrappedType{Kind: WrapNonNull, Of: w}
	}
	return w
}

// Unwrap strips all List and NonNull layers, returning the named leaf.
func (w *WrappedType) Unwrap() *WrappedType {
	for w.Kind != WrapNamed {
		w = w.Of
	}
	return w
}

// Nullable reports whether the reference as a whole may be null, i.e. its
// outermost layer is not NonNull.
func (w *WrappedType) Nullable() bool {
	return w.Kind != WrapNonNull
}

// ResolvedType pairs a rendered TypeScript type expression with the custom
// type names the expression references.
type ResolvedType struct {
	Render  string
	Imports *ImportSet
}

// ResolveTypeNode renders the TypeScript type expression for a raw AST type
// node. It is one of two equivalent entry points; ResolveWrapped is the
// other, and both produce identical renderings and import sets for
// equivalent references.
func ResolveTypeNode(t *ast.Type) ResolvedType {
	imports := NewImportSet()
	return ResolvedType{Render: renderTypeNode(t, imports), Imports: imports}
}

// ResolveWrapped renders the TypeScript type expression for a resolved
// wrapper chain.
func ResolveWrapped(w *WrappedType) ResolvedType {
	imports := NewImportSet()
	return ResolvedType{Render: renderWrapped(w, imports, true), Imports: imports}
}

// renderTypeNode walks the raw syntax form. gqlparser folds NonNull into a
// flag on the node, so the nullable context at each level is simply !NonNull.
// Nullability composes outside-in after list-wrapping: [String] renders as
// (string | null)[] | null.
func renderTypeNode(t *ast.Type, imports *ImportSet) string {
	var expr string
	if t.Elem != nil {
		elem := renderTypeNode(t.Elem, imports)
		if !t.Elem.NonNull {
			elem = "(" + elem + ")"
		}
		expr = elem + "[]"
	} else {
		expr = ScalarName(t.NamedType)
		imports.Add(t.NamedType)
	}
	if !t.NonNull {
		expr += " | null"
	}
	return expr
}

// renderWrapped walks the resolved wrapper-chain form. nullable is the
// context established by the enclosing layer: true unless that layer was
// NonNull.
func renderWrapped(w *WrappedType, imports *ImportSet, nullable bool) string {
	switch w.Kind {
	case WrapNonNull:
		return renderWrapped(w.Of, imports, false)
	case WrapList:
		elem := renderWrapped(w.Of, imports, true)
		if w.Of.Nullable() {
			elem = "(" + elem + ")"
		}
		expr := elem + "[]"
		if nullable {
			expr += " | null"
		}
		return expr
	default:
		expr := ScalarName(w.Name)
		imports.Add(w.Name)
		if nullable {
			expr += " | null"
		}
		return expr
	}
}

// RenderWrappedAs renders the wrapper shape of w around a caller-supplied
// leaf expression instead of the leaf's own name. The emitter uses this to
// apply a field's list/nullable shape to a synthetic result type without
// re-deriving the wrapper algebra.
func RenderWrappedAs(w *WrappedType, leaf string) string {
	return renderWrappedAs(w, leaf, true)
}

func renderWrappedAs(w *WrappedType, leaf string, nullable bool) string {
	switch w.Kind {
	case WrapNonNull:
		return renderWrappedAs(w.Of, leaf, false)
	case WrapList:
		elem := renderWrappedAs(w.Of, leaf, true)
		if w.Of.Nullable() {
			elem = "(" + elem + ")"
		}
		expr := elem + "[]"
		if nullable {
			expr += " | null"
		}
		return expr
	default:
		expr := leaf
		if nullable {
			expr += " | null"
		}
		return expr
	}
}
