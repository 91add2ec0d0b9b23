package golidator

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOf = errors.New("validator of key cannot be empty")
	ErrNilFunc = errors.New("validator function cannot be nil")
)

// ErrMissingProvider indicates a validator's of key has no entry in the
// Providers mapping passed to Validate.
type ErrMissingProvider struct {
	Of        string
	Validator string
}

func (e *ErrMissingProvider) Error() string {
	return fmt.Sprintf("must add '%s' to providers for validator '%s'", e.Of, e.Validator)
}

func NewErrMissingProvider(of, validator string) *ErrMissingProvider {
	return &ErrMissingProvider{Of: of, Validator: validator}
}

// ErrMissingContext indicates a validator declared a requires key that is
// absent from the call's Context.
type ErrMissingContext struct {
	Key       string
	Validator string
}

func (e *ErrMissingContext) Error() string {
	return fmt.Sprintf("'%s' is not available in the context for validator '%s'", e.Key, e.Validator)
}

func NewErrMissingContext(key, validator string) *ErrMissingContext {
	return &ErrMissingContext{Key: key, Validator: validator}
}

// ErrMalformedResult indicates a rule function returned a shape outside the
// closed set the normalizer accepts.
type ErrMalformedResult struct {
	Validator string
	Value     any
}

func (e *ErrMalformedResult) Error() string {
	return fmt.Sprintf("validator '%s' returned an unsupported result of type %T", e.Validator, e.Value)
}

func NewErrMalformedResult(validator string, value any) *ErrMalformedResult {
	return &ErrMalformedResult{Validator: validator, Value: value}
}

func IsMissingProviderError(err error) bool {
	var e *ErrMissingProvider
	return errors.As(err, &e)
}

func IsMissingContextError(err error) bool {
	var e *ErrMissingContext
	return errors.As(err, &e)
}

func IsMalformedResultError(err error) bool {
	var e *ErrMalformedResult
	return errors.As(err, &e)
}
