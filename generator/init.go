package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `schema:
  - "schema.graphql"
operations:
  - "operations/**/*.graphql"
output: "generated"
`

const starterSchema = `type Query {
  hello(name: String): String!
}
`

// Init writes a starter config and example schema into dir. Existing files
// are left untouched.
func Init(dir string) error {
	files := map[string]string{
		"graphql-tsgen.yaml": starterConfig,
		"schema.graphql":     starterSchema,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
