package hclconf

import "fmt"

// SchemaError reports a violation of the required configuration shape: a
// file that does not parse, a malformed top-level structure, an unrecognized
// plot type, or a duplicate figure name.
type SchemaError struct {
	// Figure names the offending figure when the violation is local to one,
	// and is empty for document-level problems.
	Figure string
	Detail string
	Err    error
}

func (e *SchemaError) Error() string {
	msg := e.Detail
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", e.Detail, e.Err)
	}
	if e.Figure != "" {
		return fmt.Sprintf("figure %q: %s", e.Figure, msg)
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }
