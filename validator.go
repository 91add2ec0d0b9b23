package golidator

import "fmt"

// Func is a rule function. It receives one sub-object produced by the
// validator's provider and a Context holding exactly the keys the validator
// declared via WithRequires. The first return value carries the findings in
// one of the shapes documented in the package comment; a non-nil error aborts
// the Validate call and propagates to the caller unwrapped.
type Func func(obj any, ctx Context) (any, error)

// Validator couples a rule function with its dispatch metadata. A Validator
// is immutable once built and safe to share across concurrent Validate calls.
type Validator struct {
	of       string
	name     string
	requires []string
	affects  any
	fn       Func
}

// New builds a validator descriptor for the given provider key and rule
// function. It fails only on a missing of key or nil function; no provider or
// context resolution happens until Validate runs.
func New(of string, fn Func, opts ...Option) (*Validator, error) {
	if of == "" {
		return nil, ErrEmptyOf
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	v := &Validator{of: of, name: of, fn: fn}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v, nil
}

// MustNew is New that panics on error, for package-level validator variables.
func MustNew(of string, fn Func, opts ...Option) *Validator {
	v, err := New(of, fn, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create validator: %v", err))
	}
	return v
}

// Of returns the provider key this validator resolves through.
func (v *Validator) Of() string {
	return v.of
}

// Name returns the display name used in errors and logs. Defaults to the of
// key unless overridden with WithName.
func (v *Validator) Name() string {
	return v.name
}

// Requires returns a copy of the declared context keys.
func (v *Validator) Requires() []string {
	if len(v.requires) == 0 {
		return nil
	}
	out := make([]string, len(v.requires))
	copy(out, v.requires)
	return out
}

// Affects returns the opaque annotation stamped onto this validator's records.
func (v *Validator) Affects() any {
	return v.affects
}
