// Package fgmerr defines the error taxonomy shared by every fastgeomesh
// package: a small {Code, Description} value that satisfies the error
// interface, in the spirit of the teacher's detour.Status bitmask but open
// to the string-coded taxonomy the library needs (Validation.*, Meshing.*).
package fgmerr

import (
	"fmt"
	"strings"
)

// Well-known error codes. New codes may be introduced by callers of New, but
// the engine itself only ever produces one of these.
const (
	CodeValidationInput          = "Validation.Input"
	CodeValidationMultipleErrors = "Validation.MultipleErrors"
	CodeMeshingValidationError   = "Meshing.ValidationError"
	CodeMeshingArgumentError     = "Meshing.ArgumentError"
	CodeMeshingOperationError    = "Meshing.OperationError"
	CodeMeshingArithmeticError   = "Meshing.ArithmeticError"
	CodeMeshingIndexError        = "Meshing.IndexError"
	CodeMeshingNullReference     = "Meshing.NullReferenceError"
	CodeMeshingCancelled         = "Meshing.Cancelled"
	CodeMeshingEmptyBatch        = "Meshing.EmptyBatch"
	CodeMeshingAggregateError    = "Meshing.AggregateError"
	CodeMeshingUnexpectedError   = "Meshing.UnexpectedError"
)

// Error is the single error type returned across the fastgeomesh API
// boundary. It always carries a machine-readable Code and a human-readable
// Description; by convention Description names the offending field when the
// error originates from validating a value object.
type Error struct {
	Code        string
	Description string
}

// New builds an Error with the given code and description.
func New(code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Newf builds an Error, formatting description the way fmt.Errorf would.
func Newf(code string, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Description
}

// Is reports whether target is an *Error with the same Code, so callers can
// use errors.Is(err, fgmerr.New(fgmerr.CodeMeshingCancelled, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// Join aggregates multiple field-level validation failures into a single
// Validation.MultipleErrors, matching §7's requirement that option
// validation report every violation at once rather than fail-fast.
func Join(errs []error) *Error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		if e, ok := errs[0].(*Error); ok {
			return e
		}
		return New(CodeValidationInput, errs[0].Error())
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return New(CodeValidationMultipleErrors, strings.Join(msgs, "; "))
}
