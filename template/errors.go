package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the placeholder grammar and binding failures.
var (
	// ErrUnclosed indicates a "{{" without a matching "}}".
	ErrUnclosed = errors.New("schemly: unclosed placeholder")
	// ErrEmptyPlaceholder indicates a "{{}}" or whitespace-only body.
	ErrEmptyPlaceholder = errors.New("schemly: empty placeholder")
	// ErrInvalidName indicates a variable name with illegal characters.
	ErrInvalidName = errors.New("schemly: invalid variable name")
	// ErrMissingVariables indicates placeholders with no context binding.
	ErrMissingVariables = errors.New("schemly: missing template variables")
)

// Error is a template parse or binding error. Offset is the rune offset
// of the offending placeholder's opening delimiter where applicable, and
// Names carries every missing variable for binding failures.
type Error struct {
	sentinel error
	Offset   int
	Name     string
	Names    []string
	required bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.sentinel {
	case ErrUnclosed:
		return fmt.Sprintf("schemly: unclosed placeholder starting at offset %d", e.Offset)
	case ErrEmptyPlaceholder:
		return fmt.Sprintf("schemly: empty placeholder at offset %d", e.Offset)
	case ErrInvalidName:
		return fmt.Sprintf("schemly: invalid variable name %q at offset %d", e.Name, e.Offset)
	case ErrMissingVariables:
		if e.required {
			return "schemly: missing required template variables: " + strings.Join(e.Names, ", ")
		}
		return "schemly: missing template variables: " + strings.Join(e.Names, ", ")
	}
	return "schemly: template error"
}

// Is reports whether the target matches this error's sentinel.
func (e *Error) Is(target error) bool {
	return target == e.sentinel
}

// NewUnclosedError creates an unclosed-placeholder error.
func NewUnclosedError(offset int) *Error {
	return &Error{sentinel: ErrUnclosed, Offset: offset}
}

// NewEmptyPlaceholderError creates an empty-placeholder error.
func NewEmptyPlaceholderError(offset int) *Error {
	return &Error{sentinel: ErrEmptyPlaceholder, Offset: offset}
}

// NewInvalidNameError creates an invalid-variable-name error.
func NewInvalidNameError(name string, offset int) *Error {
	return &Error{sentinel: ErrInvalidName, Name: name, Offset: offset}
}

// NewMissingVariablesError creates a missing-variables error listing
// every unbound placeholder name.
func NewMissingVariablesError(names []string) *Error {
	return &Error{sentinel: ErrMissingVariables, Names: names}
}

// NewMissingRequiredError creates a missing-variables error for the
// required-name pre-check of RenderRequired.
func NewMissingRequiredError(names []string) *Error {
	return &Error{sentinel: ErrMissingVariables, Names: names, required: true}
}

// IsTemplateError reports whether err is a template Error.
func IsTemplateError(err error) bool {
	var terr *Error
	return errors.As(err, &terr)
}
