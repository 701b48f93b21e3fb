package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies where a failure originated so the HTTP boundary can map
// it to a status and message without inspecting error strings.
type Kind int

const (
	KindConfiguration Kind = iota // missing LLM credential
	KindStore                     // persistence gateway failures
	KindCollaborator              // LLM gateway failures
)

type AppError struct {
	Kind Kind
	Op   string // human-readable operation, e.g. "chat processing"
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Configuration(op string) *AppError {
	return &AppError{Kind: KindConfiguration, Op: op}
}

func Store(op string, err error) *AppError {
	return &AppError{Kind: KindStore, Op: op, Err: err}
}

func Collaborator(op string, err error) *AppError {
	return &AppError{Kind: KindCollaborator, Op: op, Err: err}
}

// KindOf reports the classification of err, or ok=false for plain errors.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
