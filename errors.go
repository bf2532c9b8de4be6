package toolcheck

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolcheck. Use errors.Is to check.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrValidation   = errors.New("validation failed")
)

// ErrorKind classifies a ValidationError.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindTypeMismatch     ErrorKind = "type_mismatch"
	KindMissingRequired  ErrorKind = "missing_required"
	KindEnumViolation    ErrorKind = "enum_violation"
	KindSchemaTooComplex ErrorKind = "schema_too_complex"
	KindPayloadTooLarge  ErrorKind = "payload_too_large"
)

// ValidationError is one problem found in a tool call. It is a plain value,
// never thrown: a single validation pass accumulates every independent error
// so the LLM gets the full picture for a one-shot self-correction.
//
// Path is a dotted/bracket address rooted at "params" (e.g.
// "params.items[1].id"), or "tool_name" for NotFound. Expected is a type tag
// or "enum"; Received is a type tag or a literal rendering of the offending
// value. Message is the final human-readable text.
type ValidationError struct {
	Kind     ErrorKind
	Path     string
	Expected string
	Received string
	Message  string
}

func notFoundError(name string) ValidationError {
	return ValidationError{
		Kind:    KindNotFound,
		Path:    "tool_name",
		Message: fmt.Sprintf("Tool '%s' not found", name),
	}
}

func typeMismatchError(path string, expected Type, received string) ValidationError {
	return ValidationError{
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: string(expected),
		Received: received,
		Message:  fmt.Sprintf("%s must be of type %s, received %s", path, expected, received),
	}
}

func missingRequiredError(path, field string, fieldSchema *Schema) ValidationError {
	expected := ""
	if fieldSchema != nil {
		expected = string(fieldSchema.Type)
	}
	return ValidationError{
		Kind:     KindMissingRequired,
		Path:     path + "." + field,
		Expected: expected,
		Received: "undefined",
		Message:  fmt.Sprintf("%s is required but missing", field),
	}
}

func enumViolationError(path string, enum []any, value any) ValidationError {
	return ValidationError{
		Kind:     KindEnumViolation,
		Path:     path,
		Expected: "enum",
		Received: renderLiteral(value),
		Message:  fmt.Sprintf("%s must be one of %s, received %s", path, enumLabel(enum), renderLiteral(value)),
	}
}

func schemaTooComplexError(path string, maxDepth int) ValidationError {
	return ValidationError{
		Kind:    KindSchemaTooComplex,
		Path:    path,
		Message: fmt.Sprintf("%s exceeds the maximum nesting depth of %d", path, maxDepth),
	}
}

func payloadTooLargeError(path string, maxElements int) ValidationError {
	return ValidationError{
		Kind:    KindPayloadTooLarge,
		Path:    path,
		Message: fmt.Sprintf("%s exceeds the maximum of %d elements", path, maxElements),
	}
}
