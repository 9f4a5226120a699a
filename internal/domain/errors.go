package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error types used across the vault and export services
type (
	// NotFoundError indicates a referenced document does not exist
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input (missing required field, empty batch)
	ValidationError struct {
		Message string
	}

	// InvalidStateError indicates an attempted transition that violates an
	// invariant (version decrease, unknown enum value, negative size)
	InvalidStateError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *InvalidStateError) Error() string { return e.Message }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
	ErrExportFailed = errors.New("export failed")
)

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// ExportError is the aggregate failure surfaced by the export orchestrator.
// Delivered lists artifacts that were already written before the batch was
// declared failed, so the caller can report exactly what reached the sink.
type ExportError struct {
	Message   string
	Delivered []string
	Err       error
}

func (e *ExportError) Error() string {
	if len(e.Delivered) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (delivered before failure: %s)", e.Message, strings.Join(e.Delivered, ", "))
}

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) Is(target error) bool { return target == ErrExportFailed }
