package compiler

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// Category is the fixed emission weight of a declaration kind, used when
// source positions are unavailable.
type Category int

const (
	CategoryScalar Category = iota
	CategoryEnum
	CategoryInterface
	CategoryInput
	CategoryUnion
	CategoryObject
)

func (e *Entity) DeclarationCategory() Category {
	switch e.Kind {
	case ast.Interface:
		return CategoryInterface
	case ast.InputObject:
		return CategoryInput
	}
	return CategoryObject
}

func (e *Enum) DeclarationCategory() Category   { return CategoryEnum }
func (u *Union) DeclarationCategory() Category  { return CategoryUnion }
func (s *Scalar) DeclarationCategory() Category { return CategoryScalar }

// SortDeclarations orders declarations for emission: source order when both
// sides carry position metadata, category weight otherwise. Declarations
// without a position sort before those with one. Emission order never affects
// reference correctness, which goes through explicit import lists.
func SortDeclarations(decls []Declaration) {
	sort.SliceStable(decls, func(i, j int) bool {
		pi, pj := decls[i].SourcePosition(), decls[j].SourcePosition()
		switch {
		case pi == nil && pj == nil:
			return decls[i].DeclarationCategory() < decls[j].DeclarationCategory()
		case pi == nil:
			return true
		case pj == nil:
			return false
		}
		if pi.Src != nil && pj.Src != nil && pi.Src.Name != pj.Src.Name {
			return pi.Src.Name < pj.Src.Name
		}
		return pi.Start < pj.Start
	})
}
