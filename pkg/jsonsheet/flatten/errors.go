package flatten

import "fmt"

// ParseError indicates the input is not a well-formed JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError indicates a field entry that is not an object.
type ShapeError struct {
	Field string
	Got   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("field %q: expected object with value/confidence, got %s", e.Field, e.Got)
}
