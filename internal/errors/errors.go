package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrSourceNotFound is returned when a source file cannot be found
	ErrSourceNotFound = errors.New("source not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreSealed is returned when merging into a store that queries are already reading
	ErrStoreSealed = errors.New("movie store is sealed")

	// ErrUnknownQuery is returned when a query name is not recognised
	ErrUnknownQuery = errors.New("unknown query")
)

// SourceNotFoundError represents a missing source file with context
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file '%s' not found", e.Path)
}

func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// NewSourceNotFoundError creates a new SourceNotFoundError
func NewSourceNotFoundError(path string) *SourceNotFoundError {
	return &SourceNotFoundError{Path: path}
}

// MalformedRowError represents a row too short to be joined
type MalformedRowError struct {
	Source string
	Row    int
	Fields int
	Want   int
}

func (e *MalformedRowError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("row %d of source '%s' has %d fields, want at least %d", e.Row, e.Source, e.Fields, e.Want)
	}
	return fmt.Sprintf("row %d has %d fields, want at least %d", e.Row, e.Fields, e.Want)
}

func (e *MalformedRowError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewMalformedRowError creates a new MalformedRowError
func NewMalformedRowError(source string, row, fields, want int) *MalformedRowError {
	return &MalformedRowError{Source: source, Row: row, Fields: fields, Want: want}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UnknownQueryError represents a request for a query that does not exist
type UnknownQueryError struct {
	Name        string
	Suggestions []string // closest known query names, best first
}

func (e *UnknownQueryError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("query named '%s' does not exist", e.Name)
	}
	return fmt.Sprintf("query named '%s' does not exist (did you mean '%s'?)", e.Name, strings.Join(e.Suggestions, "', '"))
}

func (e *UnknownQueryError) Is(target error) bool {
	return target == ErrUnknownQuery
}

// NewUnknownQueryError creates a new UnknownQueryError
func NewUnknownQueryError(name string, suggestions ...string) *UnknownQueryError {
	return &UnknownQueryError{Name: name, Suggestions: suggestions}
}
