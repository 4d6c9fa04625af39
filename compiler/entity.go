package compiler

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/vektah/gqlparser/v2/ast"
)

// FlatField is one entry in a declaration's flat field list. Its type is a
// dotted path into the owning namespace rather than a concrete type
// expression; the namespace entry of the same name carries the real type.
type FlatField struct {
	Name        string
	Description string
	PathType    string
}

// ArgumentField is one resolved argument or variable.
type ArgumentField struct {
	Name        string
	Description string
	Type        string
}

// Arguments is the resolved argument record of a field or operation.
type Arguments struct {
	Name   string
	Fields []ArgumentField
}

// NamespaceField is the namespace-side rendering of a field: its resolved
// type expression plus, for argument-bearing fields, an Arguments record.
type NamespaceField struct {
	Name        string
	Description string
	Args        *Arguments
	Type        string
}

// Namespace is the nested, argument-aware rendering of an entity's fields.
type Namespace struct {
	Name        string
	Description string
	Fields      []NamespaceField
}

// Entity is the intermediate record for an object, interface or input object
// type. Fields and Namespace.Fields describe the same field set in the same
// order; the flat side refers to the namespace side by dotted path.
type Entity struct {
	Name        string
	Description string
	Kind        ast.DefinitionKind
	Fields      []FlatField
	Namespace   Namespace
	Imports     []string
	Position    *ast.Position
}

// EnumValue is one declared enum member.
type EnumValue struct {
	Name        string
	Description string
}

// Enum is the intermediate record for an enum type. Values keep the schema's
// declared order.
type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
	Position    *ast.Position
}

// Union is the intermediate record for a union type. Members are the member
// type names run through scalar-name translation.
type Union struct {
	Name        string
	Description string
	Members     []string
	Imports     []string
	Position    *ast.Position
}

// Scalar is the pass-through record for a user-declared scalar type.
type Scalar struct {
	Name        string
	Description string
	Position    *ast.Position
}

// Declaration is implemented by every record the extractor produces, so the
// emitter can order and reference them uniformly.
type Declaration interface {
	DeclarationName() string
	DeclarationCategory() Category
	SourcePosition() *ast.Position
	// ReferencedTypes is the deduplicated, ordered list of other custom
	// type names the emitted declaration must import. It never contains a
	// built-in scalar name.
	ReferencedTypes() []string
}

func (e *Entity) DeclarationName() string       { return e.Name }
func (e *Entity) SourcePosition() *ast.Position { return e.Position }
func (e *Entity) ReferencedTypes() []string     { return e.Imports }

func (e *Enum) DeclarationName() string       { return e.Name }
func (e *Enum) SourcePosition() *ast.Position { return e.Position }
func (e *Enum) ReferencedTypes() []string     { return nil }

func (u *Union) DeclarationName() string       { return u.Name }
func (u *Union) SourcePosition() *ast.Position { return u.Position }
func (u *Union) ReferencedTypes() []string     { return u.Imports }

func (s *Scalar) DeclarationName() string       { return s.Name }
func (s *Scalar) SourcePosition() *ast.Position { return s.Position }
func (s *Scalar) ReferencedTypes() []string     { return nil }

// Extract converts one named schema type into its intermediate record.
// Types lacking a declaration node (built-ins and introspection machinery the
// schema system synthesizes itself) yield nil and are skipped entirely.
func Extract(def *ast.Definition) Declaration {
	if def.BuiltIn || def.Position == nil {
		return nil
	}
	switch def.Kind {
	case ast.Object, ast.Interface:
		return extractEntity(def, true)
	case ast.InputObject:
		return extractEntity(def, false)
	case ast.Enum:
		return extractEnum(def)
	case ast.Union:
		return extractUnion(def)
	case ast.Scalar:
		return &Scalar{Name: def.Name, Description: def.Description, Position: def.Position}
	}
	return nil
}

// extractEntity handles object, interface and input object types. Objects and
// interfaces both expose a field map with arguments; input objects have no
// argument lists, so withArgs is false for them.
func extractEntity(def *ast.Definition, withArgs bool) *Entity {
	imports := NewImportSet()
	ent := &Entity{
		Name:        def.Name,
		Description: def.Description,
		Kind:        def.Kind,
		Namespace:   Namespace{Name: def.Name, Description: def.Description},
		Position:    def.Position,
	}

	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		ent.Fields = append(ent.Fields, FlatField{
			Name:        field.Name,
			Description: field.Description,
			PathType:    def.Name + "." + field.Name,
		})

		nsField := NamespaceField{Name: field.Name, Description: field.Description}
		resolved := ResolveTypeNode(field.Type)
		nsField.Type = resolved.Render
		imports.Merge(resolved.Imports)

		if withArgs && len(field.Arguments) > 0 {
			nsField.Args = extractArguments(field, imports)
		}
		ent.Namespace.Fields = append(ent.Namespace.Fields, nsField)
	}

	ent.Imports = imports.Names()
	return ent
}

func extractArguments(field *ast.FieldDefinition, imports *ImportSet) *Arguments {
	args := &Arguments{Name: strcase.ToCamel(field.Name) + "Args"}
	for _, arg := range field.Arguments {
		resolved := ResolveTypeNode(arg.Type)
		imports.Merge(resolved.Imports)
		args.Fields = append(args.Fields, ArgumentField{
			Name:        arg.Name,
			Description: arg.Description,
			Type:        resolved.Render,
		})
	}
	return args
}

func extractEnum(def *ast.Definition) *Enum {
	enum := &Enum{Name: def.Name, Description: def.Description, Position: def.Position}
	for _, value := range def.EnumValues {
		enum.Values = append(enum.Values, EnumValue{Name: value.Name, Description: value.Description})
	}
	return enum
}

func extractUnion(def *ast.Definition) *Union {
	imports := NewImportSet()
	union := &Union{Name: def.Name, Description: def.Description, Position: def.Position}
	for _, member := range def.Types {
		union.Members = append(union.Members, ScalarName(member))
		imports.Add(member)
	}
	union.Imports = imports.Names()
	return union
}
