package compiler_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/typeshape/graphql-tsgen/compiler"
)

const operationSDL = `
input PostsInput {
	page: Int
}

type PostedPost {
	id: ID!
	title: String
}

type Query {
	posts(input: PostsInput): [PostedPost!]!
}

type Mutation {
	publish(id: ID!): PostedPost!
}
`

func TestAssembleNaming(t *testing.T) {
	schema := loadSchema(t, operationSDL)
	assembler := compiler.NewAssembler(schema)

	tests := []struct {
		name       string
		query      string
		wantName   string
		wantNSName string
	}{
		{
			name:       "query",
			query:      `query posts { posts { id } }`,
			wantName:   "postsQuery",
			wantNSName: "PostsQuery",
		},
		{
			name:       "mutation",
			query:      `mutation publishPost($id: ID!) { publish(id: $id) { id } }`,
			wantName:   "publishPostMutation",
			wantNSName: "PublishPostMutation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, raw := parseDocument(t, tt.query)
			compiled, err := assembler.Assemble(op, raw)
			if err != nil {
				t.Fatal(err)
			}
			if compiled.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", compiled.Name, tt.wantName)
			}
			if compiled.Namespace.Name != tt.wantNSName {
				t.Errorf("Namespace.Name = %q, want %q", compiled.Namespace.Name, tt.wantNSName)
			}
			if compiled.Selection.Name != tt.wantName {
				t.Errorf("Selection.Name = %q, want %q", compiled.Selection.Name, tt.wantName)
			}
		})
	}
}

func TestAssembleVariables(t *testing.T) {
	schema := loadSchema(t, operationSDL)
	assembler := compiler.NewAssembler(schema)

	op, raw := parseDocument(t, `query posts($input: PostsInput, $limit: Int!) { posts { id } }`)
	compiled, err := assembler.Assemble(op, raw)
	if err != nil {
		t.Fatal(err)
	}

	if compiled.Namespace.Args == nil {
		t.Fatal("operation variables should produce an Arguments record")
	}
	want := []compiler.ArgumentField{
		{Name: "input", Type: "PostsInput | null"},
		{Name: "limit", Type: "number"},
	}
	if diff := cmp.Diff(want, compiled.Namespace.Args.Fields); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"PostsInput"}, compiled.Imports); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleSelectionMirrorsNamespace(t *testing.T) {
	schema := loadSchema(t, operationSDL)
	assembler := compiler.NewAssembler(schema)

	op, raw := parseDocument(t, `query posts { posts { id title } }`)
	compiled, err := assembler.Assemble(op, raw)
	if err != nil {
		t.Fatal(err)
	}

	wantFlat := []compiler.FlatField{
		{Name: "posts", PathType: "PostsQuery.posts"},
	}
	if diff := cmp.Diff(wantFlat, compiled.Selection.Fields); diff != "" {
		t.Errorf("selection fields mismatch (-want +got):\n%s", diff)
	}
	if len(compiled.Namespace.Fields) != len(compiled.Selection.Fields) {
		t.Error("selection and namespace views must carry the same field set")
	}
}

func TestAssembleMissingRootType(t *testing.T) {
	schema := loadSchema(t, `type Query { ping: String }`)
	assembler := compiler.NewAssembler(schema)

	op, raw := parseDocument(t, `mutation doIt { anything }`)
	_, err := assembler.Assemble(op, raw)

	var missing *compiler.MissingRootTypeError
	if !errors.As(err, &missing) {
		t.Fatalf("Assemble = %v, want MissingRootTypeError", err)
	}
	if missing.Kind != "mutation" {
		t.Errorf("Kind = %q, want mutation", missing.Kind)
	}
}

func TestAssembleKeepsRawText(t *testing.T) {
	schema := loadSchema(t, operationSDL)
	assembler := compiler.NewAssembler(schema)

	raw := "\n\nquery posts {\n  posts {\n    id\n  }\n}\n"
	doc, err := parser.ParseQuery(&ast.Source{Name: "test.graphql", Input: raw})
	if err != nil {
		t.Fatal(err)
	}
	compiled, err := assembler.Assemble(doc.Operations[0], compiler.OperationText(raw, doc.Operations, 0))
	if err != nil {
		t.Fatal(err)
	}

	want := "query posts {\n  posts {\n    id\n  }\n}"
	if compiled.RawText != want {
		t.Errorf("RawText = %q, want %q", compiled.RawText, want)
	}
}

func TestOperationText(t *testing.T) {
	raw := "query one {\n  posts { id }\n}\n\nmutation two($id: ID!) {\n  publish(id: $id) { id }\n}\n"
	doc, err := parser.ParseQuery(&ast.Source{Name: "ops.graphql", Input: raw})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Operations) != 2 {
		t.Fatalf("parsed %d operations, want 2", len(doc.Operations))
	}

	first := compiler.OperationText(raw, doc.Operations, 0)
	if first != "query one {\n  posts { id }\n}" {
		t.Errorf("first = %q", first)
	}
	second := compiler.OperationText(raw, doc.Operations, 1)
	if second != "mutation two($id: ID!) {\n  publish(id: $id) { id }\n}" {
		t.Errorf("second = %q", second)
	}
}

func parseDocument(t *testing.T, query string) (*ast.OperationDefinition, string) {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Name: "test.graphql", Input: query})
	if err != nil {
		t.Fatalf("failed to parse query: %v", err)
	}
	return doc.Operations[0], query
}
