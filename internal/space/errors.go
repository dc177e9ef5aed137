package space

import "fmt"

// SchemaError reports a malformed Domain or Spec. It is raised at
// construction time, never during enumeration: a schema that constructs
// successfully enumerates successfully.
type SchemaError struct {
	Msg string
}

// Error implements the error interface.
func (e *SchemaError) Error() string { return "schema error: " + e.Msg }

func schemaErrf(format string, args ...any) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}
