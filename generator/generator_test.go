package generator_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/typeshape/graphql-tsgen/compiler"
	"github.com/typeshape/graphql-tsgen/generator"
)

const testSchema = `scalar DateTime

input PostsInput {
  page: Int
}

type PostedPost {
  id: ID!
  title: String
  postedAt: DateTime!
}

type Query {
  posts(input: PostsInput): [PostedPost!]!
}
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(src)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blog.graphql", testSchema)
	writeFile(t, dir, "operations/posts.graphql", "query posts($input: PostsInput) {\n  posts {\n    id\n    postedAt\n  }\n}\n")

	opt := generator.Option{
		Schema:     []string{"blog.graphql"},
		Operations: []string{"operations/*.graphql"},
		Output:     "generated",
	}
	if err := generator.New(dir, opt).Generate(); err != nil {
		t.Fatal(err)
	}

	schemaOut := readFile(t, filepath.Join(dir, "generated", "blog.ts"))
	for _, want := range []string{
		"export type DateTime = unknown;",
		"export type PostedPost = {",
		"export namespace Query {",
	} {
		if !strings.Contains(schemaOut, want) {
			t.Errorf("blog.ts missing %q", want)
		}
	}

	opOut := readFile(t, filepath.Join(dir, "generated", "posts.ts"))
	for _, want := range []string{
		"import { PostsInput, DateTime } from \"./blog\";",
		"export type postsQuery = {",
		"export namespace PostsQuery {",
		"export const postsQueryDocument = `query posts($input: PostsInput) {",
	} {
		if !strings.Contains(opOut, want) {
			t.Errorf("posts.ts missing %q", want)
		}
	}
}

// A failing operation is reported but does not abort its siblings: the rest
// of the document is still compiled and written.
func TestGenerateContinuesPastFailedOperation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blog.graphql", testSchema)
	writeFile(t, dir, "operations/mixed.graphql",
		"query good {\n  posts {\n    id\n  }\n}\n\nquery bad {\n  posts {\n    missing\n  }\n}\n")

	opt := generator.Option{
		Schema:     []string{"blog.graphql"},
		Operations: []string{"operations/*.graphql"},
		Output:     "generated",
	}
	err := generator.New(dir, opt).Generate()

	var pathErr *compiler.PathNotFoundError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Generate = %v, want a wrapped PathNotFoundError", err)
	}
	if pathErr.Path != "posts.missing" {
		t.Errorf("Path = %q, want posts.missing", pathErr.Path)
	}

	out := readFile(t, filepath.Join(dir, "generated", "mixed.ts"))
	if !strings.Contains(out, "export type goodQuery = {") {
		t.Error("surviving operation was not written")
	}
	if strings.Contains(out, "badQuery") {
		t.Error("failed operation must not be emitted")
	}
}

func TestGenerateMissingSchema(t *testing.T) {
	dir := t.TempDir()
	opt := generator.Option{Schema: []string{"*.graphql"}}
	if err := generator.New(dir, opt).Generate(); err == nil {
		t.Error("expected an error when the schema cannot be loaded")
	}
}

func TestLoadOption(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "graphql-tsgen.yaml", "schema:\n  - \"blog.graphql\"\noperations:\n  - \"operations/**/*.graphql\"\noutput: \"out\"\n")

	opt, baseDir, err := generator.LoadOption(filepath.Join(dir, "graphql-tsgen.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if baseDir != dir {
		t.Errorf("baseDir = %q, want %q", baseDir, dir)
	}
	if len(opt.Schema) != 1 || opt.Schema[0] != "blog.graphql" {
		t.Errorf("Schema = %v", opt.Schema)
	}
	if opt.Output != "out" {
		t.Errorf("Output = %q", opt.Output)
	}
}

func TestLoadOptionDefaultsOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "graphql-tsgen.yaml", "schema:\n  - \"blog.graphql\"\n")

	opt, _, err := generator.LoadOption(filepath.Join(dir, "graphql-tsgen.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if opt.Output != "generated" {
		t.Errorf("Output = %q, want generated", opt.Output)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	if err := generator.Init(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "graphql-tsgen.yaml")); err != nil {
		t.Error("starter config was not written")
	}
	if err := generator.Init(dir); err == nil {
		t.Error("Init must refuse to overwrite existing files")
	}
}
