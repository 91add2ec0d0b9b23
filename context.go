package golidator

// Context supplies the extra values validators declare via WithRequires,
// such as the current time or a constants service. One Context is shared by
// every validator in a Validate call; each invocation sees only the subset
// of keys it declared.
type Context map[string]any

// resolveContext copies each required key out of the call's extra context.
// Resolution is fail-fast: the first missing key aborts with
// ErrMissingContext at the invocation that needed it.
func resolveContext(v *Validator, extra Context) (Context, error) {
	if len(v.requires) == 0 {
		return nil, nil
	}

	resolved := make(Context, len(v.requires))
	for _, key := range v.requires {
		val, ok := extra[key]
		if !ok {
			return nil, NewErrMissingContext(key, v.name)
		}
		resolved[key] = val
	}
	return resolved, nil
}
