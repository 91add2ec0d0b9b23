package golidator

import "log/slog"

// FieldNameMapper rewrites a record's field identifier into a display name.
// It must be deterministic and total over every field the rules produce; the
// engine applies it once per record with a non-empty Field and does not
// guard against mapper panics.
type FieldNameMapper func(field string) string

// Validate runs every validator in the set against obj and returns the
// records grouped by level.
//
// Dispatch order is a contract: levels in Set order, validators within a
// level in registration order, sub-objects in provider yield order. For each
// (validator, sub-object) pair the engine resolves the validator's required
// context, invokes the rule function, normalizes its return value, and
// appends one record per finding, stamped with the validator's affects
// annotation, the call's type tag, the provider's meta, and the mapped field
// name.
//
// The call is all-or-nothing: a missing provider, a missing context key, a
// malformed result, or any error returned by a rule function aborts
// immediately with a nil Result. Rule function errors propagate unwrapped. An empty provider sequence simply produces no records.
func Validate(obj any, set *Set, providers Providers, opts ...ValidateOption) (Result, error) {
	var cfg validateConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	result := make(Result)
	if set == nil {
		return result, nil
	}

	for _, level := range set.order {
		records := []Record{}
		for _, v := range set.levels[level] {
			provider, ok := providers[v.of]
			if !ok {
				return nil, NewErrMissingProvider(v.of, v.name)
			}

			for sub, meta := range provider(obj) {
				ctx, err := resolveContext(v, cfg.extra)
				if err != nil {
					return nil, err
				}

				ret, err := v.fn(sub, ctx)
				if err != nil {
					return nil, err
				}

				items, err := normalize(v, ret)
				if err != nil {
					return nil, err
				}

				for _, item := range items {
					field := item.field
					if field != "" && cfg.mapper != nil {
						field = cfg.mapper(field)
					}
					records = append(records, Record{
						Level:    level,
						Field:    field,
						Message:  item.message,
						Affected: v.affects,
						Type:     cfg.vtype,
						Meta:     meta,
					})
				}
			}
		}
		result[level] = records
	}

	if cfg.logger != nil {
		for _, level := range set.order {
			attrs := []any{
				slog.String("level", string(level)),
				slog.Int("records", len(result[level])),
			}
			if cfg.reason != "" {
				attrs = append(attrs, slog.String("reason", cfg.reason))
			}
			cfg.logger.Debug("validate complete", attrs...)
		}
	}

	return result, nil
}
