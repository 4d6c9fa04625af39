package compiler

// builtinScalars maps the GraphQL built-in scalar names to the TypeScript
// primitives they compile to. Names in this table never appear in an import
// set; every other named type is user-defined and always does.
var builtinScalars = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Boolean": "boolean",
	"Int":     "number",
	"Float":   "number",
}

// IsBuiltinScalar reports whether name is one of the GraphQL built-in scalars.
func IsBuiltinScalar(name string) bool {
	_, ok := builtinScalars[name]
	return ok
}

// ScalarName translates a built-in scalar name to its TypeScript primitive.
// User-defined type names pass through unchanged.
func ScalarName(name string) string {
	if mapped, ok := builtinScalars[name]; ok {
		return mapped
	}
	return name
}
