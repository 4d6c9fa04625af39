package compiler

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/vektah/gqlparser/v2/ast"
)

// Selection is the flat view of an operation's top-level result fields.
type Selection struct {
	Name   string
	Fields []FlatField
}

// OperationNamespace is the nested, argument-aware view of an operation's
// result, with the operation's variables as a sibling Arguments record.
type OperationNamespace struct {
	Name   string
	Args   *Arguments
	Fields []*OperationField
}

// Operation is the compiled record for one query, mutation or subscription.
type Operation struct {
	Name      string
	RawText   string
	Selection Selection
	Namespace OperationNamespace
	Imports   []string
}

// Assembler compiles operation definitions against a schema.
type Assembler struct {
	schema    *ast.Schema
	projector *Projector
}

// NewAssembler creates an assembler for schema.
func NewAssembler(schema *ast.Schema) *Assembler {
	return &Assembler{schema: schema, projector: NewProjector(schema)}
}

// Assemble compiles one operation definition together with its verbatim
// source text into an Operation record.
//
// Two naming schemes apply, both derived from the user-given operation name
// and the operation kind: the flat selection type joins the name as written
// with the capitalized kind (posts + query -> postsQuery), while the
// namespace capitalizes both parts (PostsQuery).
func (a *Assembler) Assemble(op *ast.OperationDefinition, rawText string) (*Operation, error) {
	root, err := a.rootType(op.Operation)
	if err != nil {
		return nil, err
	}

	kind := strcase.ToCamel(string(op.Operation))
	name := op.Name + kind
	nsName := strcase.ToCamel(op.Name) + kind

	imports := NewImportSet()
	args := assembleVariables(op.VariableDefinitions, imports)

	fields, err := a.projector.Project(op.SelectionSet, root, "", nsName, imports)
	if err != nil {
		return nil, err
	}

	selection := Selection{Name: name}
	for _, field := range fields {
		selection.Fields = append(selection.Fields, FlatField{
			Name:     field.Name,
			PathType: nsName + "." + field.Name,
		})
	}

	return &Operation{
		Name:      name,
		RawText:   rawText,
		Selection: selection,
		Namespace: OperationNamespace{Name: nsName, Args: args, Fields: fields},
		Imports:   imports.Names(),
	}, nil
}

// rootType maps an operation kind to the schema's configured root type for
// that kind. A kind without a configured root is fatal for the operation.
func (a *Assembler) rootType(kind ast.Operation) (*ast.Definition, error) {
	switch kind {
	case ast.Query:
		if a.schema.Query != nil {
			return a.schema.Query, nil
		}
	case ast.Mutation:
		if a.schema.Mutation != nil {
			return a.schema.Mutation, nil
		}
	case ast.Subscription:
		if a.schema.Subscription != nil {
			return a.schema.Subscription, nil
		}
	}
	return nil, &MissingRootTypeError{Kind: string(kind)}
}

// assembleVariables parses an operation's variable definitions into an
// Arguments record, resolving each declared type from its raw AST form.
func assembleVariables(defs ast.VariableDefinitionList, imports *ImportSet) *Arguments {
	if len(defs) == 0 {
		return nil
	}
	args := &Arguments{Name: "Args"}
	for _, def := range defs {
		resolved := ResolveTypeNode(def.Type)
		imports.Merge(resolved.Imports)
		args.Fields = append(args.Fields, ArgumentField{Name: def.Variable, Type: resolved.Render})
	}
	return args
}

// OperationText slices the verbatim source text of the i-th operation out of
// the raw document it was parsed from: from the operation's own byte offset
// to the start of the next operation, or to the end of the document.
func OperationText(raw string, ops ast.OperationList, i int) string {
	start := 0
	if ops[i].Position != nil {
		start = ops[i].Position.Start
	}
	end := len(raw)
	if i+1 < len(ops) && ops[i+1].Position != nil {
		end = ops[i+1].Position.Start
	}
	if start > len(raw) {
		start = len(raw)
	}
	if end < start {
		end = start
	}
	return strings.TrimSpace(raw[start:end])
}
