package golidator

import (
	"maps"
	"slices"
)

// normalized is one (field, message) pair extracted from a rule function's
// return value. An empty field means the message was unkeyed; the normalizer
// never guesses a field name from message text.
type normalized struct {
	field   string
	message string
}

// normalize converts a rule function's return value into zero or more
// field/message pairs. The accepted shapes form a closed set: nil, a bare
// string, a map[string]string, a []string, a []map[string]string of
// single-entry maps, or a []any mixing strings and single-entry maps.
// Anything else fails with ErrMalformedResult naming the validator.
//
// Top-level map entries are emitted in sorted key order so that identical
// inputs always produce identical record order.
func normalize(v *Validator, ret any) ([]normalized, error) {
	switch ret := ret.(type) {
	case nil:
		return nil, nil

	case string:
		if ret == "" {
			return nil, nil
		}
		return []normalized{{message: ret}}, nil

	case map[string]string:
		out := make([]normalized, 0, len(ret))
		for _, field := range slices.Sorted(maps.Keys(ret)) {
			out = append(out, normalized{field: field, message: ret[field]})
		}
		return out, nil

	case []string:
		out := make([]normalized, 0, len(ret))
		for _, msg := range ret {
			out = append(out, normalized{message: msg})
		}
		return out, nil

	case []map[string]string:
		out := make([]normalized, 0, len(ret))
		for _, m := range ret {
			item, err := singleEntry(v, m)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil

	case []any:
		out := make([]normalized, 0, len(ret))
		for _, elem := range ret {
			switch elem := elem.(type) {
			case string:
				out = append(out, normalized{message: elem})
			case map[string]string:
				item, err := singleEntry(v, elem)
				if err != nil {
					return nil, err
				}
				out = append(out, item)
			default:
				return nil, NewErrMalformedResult(v.name, elem)
			}
		}
		return out, nil

	default:
		return nil, NewErrMalformedResult(v.name, ret)
	}
}

// singleEntry unwraps a field-keyed map inside a sequence. Multi-entry maps
// are ambiguous there (no defined order relative to their siblings) and are
// rejected.
func singleEntry(v *Validator, m map[string]string) (normalized, error) {
	if len(m) != 1 {
		return normalized{}, NewErrMalformedResult(v.name, m)
	}
	for field, msg := range m {
		return normalized{field: field, message: msg}, nil
	}
	return normalized{}, NewErrMalformedResult(v.name, m) // unreachable
}
