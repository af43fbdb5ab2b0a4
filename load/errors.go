package load

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument indicates a schema document whose shape cannot be
// mapped onto the typed model, beyond plain YAML syntax errors.
var ErrInvalidDocument = errors.New("schemly: invalid schema document")

// DocumentError is a recoverable document-shape failure naming where it
// occurred.
type DocumentError struct {
	Context string // model name or relationship tag
	Message string
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("schemly: schema document: %s: %s", e.Context, e.Message)
	}
	return fmt.Sprintf("schemly: schema document: %s", e.Message)
}

// Is reports whether the target is ErrInvalidDocument.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewDocumentError creates a document-shape error.
func NewDocumentError(context, message string) *DocumentError {
	return &DocumentError{Context: context, Message: message}
}
