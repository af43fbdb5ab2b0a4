package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation failures.
var (
	// ErrWrongArtifact indicates a generator was handed an input shape
	// it does not produce (e.g. the pivot generator invoked through the
	// generic model entry point).
	ErrWrongArtifact = errors.New("schemly: wrong artifact for generator")
	// ErrInvalidConfig indicates an unusable generation request.
	ErrInvalidConfig = errors.New("schemly: invalid config")
)

// GenerationError is a per-artifact generation failure. It names the
// artifact kind so the caller can report which output was affected
// while siblings proceed.
type GenerationError struct {
	sentinel error
	Artifact string
	Message  string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("schemly: %s: %s", e.Artifact, e.Message)
}

// Is reports whether the target matches this error's sentinel.
func (e *GenerationError) Is(target error) bool {
	return target == e.sentinel
}

// NewWrongArtifactError creates a wrong-artifact generation error.
func NewWrongArtifactError(artifact, message string) *GenerationError {
	return &GenerationError{sentinel: ErrWrongArtifact, Artifact: artifact, Message: message}
}

// NewConfigError creates an invalid-config error.
func NewConfigError(message string) *GenerationError {
	return &GenerationError{sentinel: ErrInvalidConfig, Artifact: "config", Message: message}
}

// IsGenerationError reports whether err is a gen GenerationError.
func IsGenerationError(err error) bool {
	var gerr *GenerationError
	return errors.As(err, &gerr)
}
