// Package pipeline carries the error classification shared by the consumer
// error handler and the webhook ledger. Handlers wrap errors as Permanent
// when retrying cannot help; everything else is treated as transient.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Class int

const (
	ClassRetryable Class = iota
	ClassPermanent
)

type ClassifiedError struct {
	Class Class
	Err   error
}

func (e *ClassifiedError) Error() string {
	if e.Class == ClassPermanent {
		return fmt.Sprintf("permanent: %v", e.Err)
	}
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Class: ClassPermanent, Err: err}
}

func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Class: ClassRetryable, Err: err}
}

// IsPermanent reports whether err must not be retried. Malformed-input
// errors from the JSON layer count as permanent even when unwrapped, since
// redelivering a corrupt payload reproduces the same failure every time.
func IsPermanent(err error) bool {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassPermanent
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
