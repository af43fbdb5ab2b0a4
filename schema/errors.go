package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for schema validation failures.
var (
	// ErrInvalidIdentifier indicates a bad class, field or table name.
	ErrInvalidIdentifier = errors.New("schemly: invalid identifier")
	// ErrInvalidField indicates a field-constraint violation.
	ErrInvalidField = errors.New("schemly: invalid field")
	// ErrInvalidModel indicates a model-constraint violation.
	ErrInvalidModel = errors.New("schemly: invalid model")
	// ErrUnknownFieldType indicates an unrecognized field-type tag.
	ErrUnknownFieldType = errors.New("schemly: unknown field type")
	// ErrUnknownRelationshipKind indicates an unrecognized kind tag.
	ErrUnknownRelationshipKind = errors.New("schemly: unknown relationship kind")
)

// ValidationError is a recoverable schema validation failure. It carries
// enough context (the offending identifier and where it appeared) to be
// user-displayable without further lookup.
type ValidationError struct {
	sentinel error
	Context  string // "model name", "field name", "table name", ...
	Name     string // the offending identifier, if any
	Message  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("schemly: ")
	if e.Context != "" {
		b.WriteString(e.Context)
	} else {
		b.WriteString("validation")
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Is reports whether the target matches this error's sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == e.sentinel
}

// NewIdentifierError creates an identifier validation error.
func NewIdentifierError(context, name, message string) *ValidationError {
	return &ValidationError{sentinel: ErrInvalidIdentifier, Context: context, Name: name, Message: message}
}

// NewFieldError creates a field-constraint validation error.
func NewFieldError(name, message string) *ValidationError {
	return &ValidationError{sentinel: ErrInvalidField, Context: "field", Name: name, Message: message}
}

// NewModelError creates a model-constraint validation error.
func NewModelError(name, message string) *ValidationError {
	return &ValidationError{sentinel: ErrInvalidModel, Context: "model", Name: name, Message: message}
}

// NewFieldTypeError creates an unknown-field-type error.
func NewFieldTypeError(tag string) *ValidationError {
	return &ValidationError{sentinel: ErrUnknownFieldType, Context: "field type", Name: tag, Message: "unknown field type"}
}

// NewRelationshipKindError creates an unknown-relationship-kind error.
func NewRelationshipKindError(tag string) *ValidationError {
	return &ValidationError{sentinel: ErrUnknownRelationshipKind, Context: "relationship", Name: tag, Message: "unknown relationship kind"}
}

// IsValidationError reports whether err is a schema ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
