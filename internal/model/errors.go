package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a GenerationError
type ErrorKind string

const (
	// KindNetwork means the generation service could not be reached
	KindNetwork ErrorKind = "NETWORK_ERROR"

	// KindInvalidBlob means the archive payload is missing or empty
	KindInvalidBlob ErrorKind = "INVALID_BLOB"

	// KindInvalidFilename means no usable target filename exists
	KindInvalidFilename ErrorKind = "INVALID_FILENAME"

	// KindBrowserUnsupported means the host environment cannot stage a download
	KindBrowserUnsupported ErrorKind = "BROWSER_NOT_SUPPORTED"

	// KindDownload means saving the archive failed
	KindDownload ErrorKind = "DOWNLOAD_ERROR"

	// KindServer means the service answered with a non-2xx status
	KindServer ErrorKind = "SERVER_ERROR"

	// KindUnknown is the catch-all for unexpected failures
	KindUnknown ErrorKind = "UNKNOWN_ERROR"
)

// ErrorKinds returns every kind, in declaration order
func ErrorKinds() []ErrorKind {
	return []ErrorKind{
		KindNetwork,
		KindInvalidBlob,
		KindInvalidFilename,
		KindBrowserUnsupported,
		KindDownload,
		KindServer,
		KindUnknown,
	}
}

// GenerationError is the normalized failure of the generation pipeline.
// Status is zero when no HTTP status applies.
type GenerationError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

// NewGenerationError creates an error of the given kind without a cause
func NewGenerationError(kind ErrorKind, status int, message string) *GenerationError {
	return &GenerationError{Kind: kind, Status: status, Message: message}
}

// WrapGenerationError creates an error of the given kind around a cause
func WrapGenerationError(kind ErrorKind, message string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// HasStatus reports whether an HTTP status is attached
func (e *GenerationError) HasStatus() bool {
	return e.Status != 0
}

// AsGenerationError extracts a GenerationError from an error chain
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
