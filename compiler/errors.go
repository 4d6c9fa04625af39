package compiler

import "fmt"

// PathNotFoundError reports a dotted field path that cannot be resolved by
// literal descent through a type's field graph. Path holds the longest
// attempted path, including the segment that failed.
type PathNotFoundError struct {
	Root string
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("field path %q not found on type %s", e.Path, e.Root)
}

// MissingRootTypeError reports an operation whose kind has no root type
// configured in the schema.
type MissingRootTypeError struct {
	Kind string
}

func (e *MissingRootTypeError) Error() string {
	return fmt.Sprintf("schema defines no root type for %s operations", e.Kind)
}

// UnsupportedConstructError reports a selection node the projector does not
// handle, such as a fragment spread. Projection fails rather than silently
// under-projecting, since a dropped selection would still compile but no
// longer match the query's runtime result shape.
type UnsupportedConstructError struct {
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported selection construct: %s", e.Construct)
}
