package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrLookup marks templates that could not be resolved, parsed or
	// executed.
	ErrLookup = errors.New("template lookup failed")

	// ErrFilesystem marks failures listing the source tree or creating and
	// writing the destination tree.
	ErrFilesystem = errors.New("filesystem error")

	// ErrInvalidSourceDir is returned before any output is produced when the
	// source directory is not a directory path below the template base.
	ErrInvalidSourceDir = errors.New("invalid source directory")
)

// GenerationError ties a failure to the template identifier being processed.
// It matches its kind (ErrLookup or ErrFilesystem) and the underlying error
// with errors.Is.
type GenerationError struct {
	Kind    error
	Path    string
	Message string
	Err     error
}

func newError(kind error, path, message string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Path: path, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *GenerationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
