package golidator

import "iter"

// Meta carries descriptive fields a provider attaches to one sub-object,
// such as a human-readable description of its position in the root object.
// It is merged verbatim into every record produced for that sub-object.
type Meta map[string]any

// Provider expands the root object into the sub-objects a validator
// inspects. The returned sequence must be finite; the engine drains it
// eagerly, exactly once per Validate call, in yield order. A nil Meta is
// fine for sub-objects with nothing to describe.
type Provider func(obj any) iter.Seq2[any, Meta]

// Providers maps each of key to the Provider resolving it for one Validate
// call. Every of key referenced by a validator that actually runs must be
// present, otherwise the call fails with ErrMissingProvider.
type Providers map[string]Provider

// Self returns a provider that yields the root object itself, once, with no
// meta. Use it for validators that inspect the root rather than a child
// collection.
func Self() Provider {
	return func(obj any) iter.Seq2[any, Meta] {
		return func(yield func(any, Meta) bool) {
			yield(obj, nil)
		}
	}
}

// FromSlice adapts a slice accessor into a Provider, yielding one element at
// a time with the meta produced by describe. A nil describe yields nil meta.
func FromSlice[T any](items func(obj any) []T, describe func(index int, item T) Meta) Provider {
	return func(obj any) iter.Seq2[any, Meta] {
		return func(yield func(any, Meta) bool) {
			for i, item := range items(obj) {
				var meta Meta
				if describe != nil {
					meta = describe(i, item)
				}
				if !yield(item, meta) {
					return
				}
			}
		}
	}
}
