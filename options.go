package golidator

import "log/slog"

// Option configures a Validator during construction.
type Option func(*Validator)

// WithRequires declares the context keys the rule function depends on. Each
// key must be present in the Context passed to Validate via WithContext;
// resolution fails with ErrMissingContext at the moment the rule is invoked.
func WithRequires(keys ...string) Option {
	return func(v *Validator) {
		v.requires = append(v.requires, keys...)
	}
}

// WithAffects attaches an opaque annotation that is carried unchanged into
// every record this validator produces, as guidance for downstream error
// reporting.
func WithAffects(affects any) Option {
	return func(v *Validator) {
		v.affects = affects
	}
}

// WithName overrides the display name used in errors and log output.
func WithName(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.name = name
		}
	}
}

// ValidateOption configures a single Validate call.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	extra  Context
	mapper FieldNameMapper
	vtype  any
	logger *slog.Logger
	reason string
}

// WithContext supplies the values that satisfy validators' WithRequires
// declarations for this call.
func WithContext(extra Context) ValidateOption {
	return func(c *validateConfig) {
		c.extra = extra
	}
}

// WithFieldNameMapper post-processes every record's non-empty Field into a
// display name. Absent mapper means identity.
func WithFieldNameMapper(mapper FieldNameMapper) ValidateOption {
	return func(c *validateConfig) {
		c.mapper = mapper
	}
}

// WithType stamps an opaque classification tag onto every record produced by
// this call.
func WithType(vtype any) ValidateOption {
	return func(c *validateConfig) {
		c.vtype = vtype
	}
}

// WithLogger injects the sink for the post-dispatch summary. Without it no
// summary is emitted; the engine never falls back to slog.Default().
func WithLogger(logger *slog.Logger) ValidateOption {
	return func(c *validateConfig) {
		c.logger = logger
	}
}

// WithReason tags the summary lines with a label explaining why this
// validation pass ran.
func WithReason(reason string) ValidateOption {
	return func(c *validateConfig) {
		c.reason = reason
	}
}
