// Package errors provides the error types surfaced by the star chart
// pipeline. Each type maps onto a sentinel so callers can branch with
// errors.Is without caring about the concrete type.
package errors

import (
	"errors"
	"fmt"
)

// Re-exports of the standard library helpers so callers only need one
// errors import.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Sentinel errors for the star chart pipeline.
var (
	// ErrCatalogueFormat indicates a catalogue row or header could not be parsed.
	ErrCatalogueFormat = errors.New("catalogue format error")

	// ErrCatalogueNotFound indicates the catalogue path does not exist.
	ErrCatalogueNotFound = errors.New("catalogue not found")

	// ErrIOWrite indicates the output image could not be written.
	ErrIOWrite = errors.New("output write failed")

	// ErrInvalidConfig indicates a configuration value was rejected.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CatalogueFormatError identifies a catalogue row that could not be parsed.
// Row is 1-based and counts the header as row 1.
type CatalogueFormatError struct {
	Source  string
	Row     int
	Column  string
	Value   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *CatalogueFormatError) Error() string {
	loc := fmt.Sprintf("%s:%d", e.Source, e.Row)
	switch {
	case e.Column != "" && e.Value != "":
		return fmt.Sprintf("%s: column %s: %s (value %q)", loc, e.Column, e.Message, e.Value)
	case e.Column != "":
		return fmt.Sprintf("%s: column %s: %s", loc, e.Column, e.Message)
	default:
		return fmt.Sprintf("%s: %s", loc, e.Message)
	}
}

// Unwrap implements errors.Unwrap
func (e *CatalogueFormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogueFormatError) Is(target error) bool {
	return target == ErrCatalogueFormat
}

// NewCatalogueFormatError creates a new CatalogueFormatError
func NewCatalogueFormatError(source string, row int, column, value, message string) *CatalogueFormatError {
	return &CatalogueFormatError{
		Source:  source,
		Row:     row,
		Column:  column,
		Value:   value,
		Message: message,
	}
}

// CatalogueNotFoundError is returned when the catalogue path does not exist.
type CatalogueNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *CatalogueNotFoundError) Error() string {
	return fmt.Sprintf("catalogue %s not found", e.Path)
}

// Unwrap implements errors.Unwrap
func (e *CatalogueNotFoundError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogueNotFoundError) Is(target error) bool {
	return target == ErrCatalogueNotFound
}

// NewCatalogueNotFoundError creates a new CatalogueNotFoundError
func NewCatalogueNotFoundError(path string, err error) *CatalogueNotFoundError {
	return &CatalogueNotFoundError{Path: path, Err: err}
}

// IOWriteError is returned when the chart image cannot be written.
type IOWriteError struct {
	Path      string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *IOWriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s %s", e.Operation, e.Path)
}

// Unwrap implements errors.Unwrap
func (e *IOWriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOWriteError) Is(target error) bool {
	return target == ErrIOWrite
}

// NewIOWriteError creates a new IOWriteError
func NewIOWriteError(operation, path string, err error) *IOWriteError {
	return &IOWriteError{Path: path, Operation: operation, Err: err}
}

// InvalidConfigError reports a rejected configuration value.
type InvalidConfigError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *InvalidConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// Is implements errors.Is support
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewInvalidConfigError creates a new InvalidConfigError
func NewInvalidConfigError(field string, value any, message string) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Value: value, Message: message}
}

// IsCatalogueFormat reports whether err is a catalogue format error.
func IsCatalogueFormat(err error) bool {
	return errors.Is(err, ErrCatalogueFormat)
}

// IsCatalogueNotFound reports whether err is a missing catalogue error.
func IsCatalogueNotFound(err error) bool {
	return errors.Is(err, ErrCatalogueNotFound)
}

// IsIOWrite reports whether err is an output write error.
func IsIOWrite(err error) bool {
	return errors.Is(err, ErrIOWrite)
}

// IsInvalidConfig reports whether err is a configuration error.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
