package services

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when the subject profile referenced by an
// evaluation no longer exists at the point persistence is attempted
var ErrProfileNotFound = errors.New("profile not found")

// ErrEvaluationNotFound is returned when no stored evaluation exists for a
// submission id
var ErrEvaluationNotFound = errors.New("evaluation not found")

// ValidationError reports required input that is missing or malformed.
// It is raised before any pipeline work begins and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TranscriptionError reports that the transcription provider failed or
// returned text too short to evaluate. It is terminal for the attempt:
// no fallback score is ever synthesized.
type TranscriptionError struct {
	Message string
	Cause   error
}

func (e *TranscriptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// InternalError is the defensive catch-all for failures inside the
// analysis and scoring stages, which are total functions over string
// input and should never raise it in correct operation.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal evaluation error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
