// Package golidator provides a small orchestration engine for running
// registered validation rules against an object graph and collecting the
// outcome as normalized, severity-grouped records.
//
// The package deliberately knows nothing about the rules themselves: a
// Validator wraps an arbitrary rule function together with dispatch metadata,
// a Provider expands the root object into the sub-objects that function
// should inspect, and Validate wires the two together for one synchronous
// pass, returning a Result keyed by severity Level.
//
// # Architecture
//
// Three seams keep the engine decoupled from the domain:
//  1. Validator – immutable descriptor built with New/MustNew, carrying the
//     provider key (of), required context keys, and an opaque affects
//     annotation that is stamped onto every record the rule produces.
//  2. Provider – a caller-supplied function turning the root object into a
//     finite iter.Seq2 of (sub-object, Meta) pairs. The engine drains each
//     sequence eagerly, exactly once per call, in yield order.
//  3. Context – a per-call map satisfying the keys validators declare via
//     WithRequires; resolution is fail-fast at the moment a rule is invoked.
//
// Dispatch is strictly sequential and deterministic: levels run in the order
// they were added to the Set, validators in registration order within a
// level, sub-objects in provider yield order, and the Result preserves all
// of it. Nothing is shared between Validate calls.
//
// # Usage
//
//	tooYoung := golidator.MustNew("member", func(obj any, ctx golidator.Context) (any, error) {
//	    m := obj.(*Member)
//	    if m.Age < ctx["min_age"].(int) {
//	        return map[string]string{"age": "is below the minimum age"}, nil
//	    }
//	    return nil, nil
//	}, golidator.WithRequires("min_age"))
//
//	set := golidator.NewSet().Add(golidator.LevelError, tooYoung)
//
//	providers := golidator.Providers{
//	    "member": func(obj any) iter.Seq2[any, golidator.Meta] {
//	        return func(yield func(any, golidator.Meta) bool) {
//	            for i, m := range obj.(*Team).Members {
//	                if !yield(m, golidator.Meta{"description": fmt.Sprintf("Member %d", i)}) {
//	                    return
//	                }
//	            }
//	        }
//	    },
//	}
//
//	result, err := golidator.Validate(team, set, providers,
//	    golidator.WithContext(golidator.Context{"min_age": 18}),
//	)
//
// Rule functions return their findings in any of a closed set of shapes:
// nil (no findings), a bare string, a map[string]string of field to message,
// a []string, a []map[string]string of single-entry maps, or a []any mixing
// strings and single-entry maps. Anything else fails the call with
// ErrMalformedResult.
//
// # Error Handling
//
// Validate is all-or-nothing: the first error aborts the call and no partial
// Result is returned. The engine distinguishes three structural failures,
// each with an errors.As-friendly type and predicate:
//
//	if golidator.IsMissingProviderError(err) { /* of key absent from Providers */ }
//	if golidator.IsMissingContextError(err)  { /* requires key absent from Context */ }
//	if golidator.IsMalformedResultError(err) { /* unsupported rule return shape */ }
//
// Errors returned by rule functions themselves propagate unwrapped.
//
// # Logging
//
// When a *slog.Logger is injected with WithLogger, Validate emits one debug
// summary line per level after dispatch completes, optionally tagged via
// WithReason. Without an injected logger nothing is emitted; the engine
// never writes through slog.Default().
package golidator
