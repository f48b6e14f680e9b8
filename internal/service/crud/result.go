// Package crud holds the pieces shared by every entity service: the result
// envelope, the unit-of-work execution wrapper, generic read/delete/completion
// operations and the field rules used by validators.
package crud

import (
	"errors"
	"fmt"

	"github.com/nebula/nebula-backend/internal/domain"
)

// Code classifies a failed Result for coarse client dispatch.
type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeInternal   Code = "INTERNAL"
)

// Result is the uniform envelope returned by every service operation.
// On success Data is set and ErrorMessages is empty; on failure Data is nil,
// ErrorMessages holds at least one message and ErrorCode is set.
// Err keeps the underlying error for server-side diagnostics and is never
// serialized.
type Result[T any] struct {
	Success       bool     `json:"success"`
	Data          *T       `json:"data"`
	ErrorMessages []string `json:"errorMessages"`
	ErrorCode     Code     `json:"errorCode,omitempty"`
	Err           error    `json:"-"`
}

// OK wraps data in a successful Result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data, ErrorMessages: []string{}}
}

// Fail builds a failed Result.
func Fail[T any](code Code, err error, messages ...string) Result[T] {
	return Result[T]{ErrorMessages: messages, ErrorCode: code, Err: err}
}

// FromError classifies err into a failed Result. action describes what was
// being attempted ("creating the person") and only appears in internal
// failure messages.
func FromError[T any](action string, err error) Result[T] {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return Fail[T](CodeValidation, err, ve.Messages()...)
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return Fail[T](CodeNotFound, err, nf.Error())
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return Fail[T](CodeNotFound, err, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return Fail[T](CodeConflict, err, conflictMessage(action))
	case errors.Is(err, domain.ErrValidation):
		return Fail[T](CodeValidation, err, err.Error())
	}

	return Fail[T](CodeInternal, err, fmt.Sprintf("An error occurred while %s: %v", action, err))
}

func conflictMessage(action string) string {
	return fmt.Sprintf("Conflict while %s: the record is referenced by or conflicts with other data.", action)
}

// IsCode reports whether r failed with code.
func (r Result[T]) IsCode(code Code) bool {
	return !r.Success && r.ErrorCode == code
}
