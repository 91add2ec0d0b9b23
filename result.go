package golidator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Level is an opaque severity key grouping validators and their records.
// Any key works; LevelError and LevelWarn are the conventional ones, and
// Result.Valid is defined against LevelError.
type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

// NonFieldErrors is the bucket GroupByField uses for unkeyed messages.
const NonFieldErrors = "non_field_errors"

// Record is one normalized unit of validation output. Every record traces to
// exactly one (validator, sub-object) invocation.
type Record struct {
	Level    Level
	Field    string // "" when the message was unkeyed
	Message  string
	Affected any  // the validator's affects annotation, carried unchanged
	Type     any  // the call's WithType stamp
	Meta     Meta // descriptive fields from the provider
}

// Result maps each level to the records collected under it, in dispatch
// order. It is built fresh per Validate call and never mutated afterwards.
type Result map[Level][]Record

// Valid reports whether no records were collected under LevelError.
// Warnings and other levels do not affect validity.
func (r Result) Valid() bool {
	return len(r[LevelError]) == 0
}

// Errors returns the records collected under LevelError.
func (r Result) Errors() []Record {
	return r[LevelError]
}

// Warnings returns the records collected under LevelWarn.
func (r Result) Warnings() []Record {
	return r[LevelWarn]
}

// Messages returns the distinct messages recorded under a level, in
// first-seen order.
func (r Result) Messages(level Level) []string {
	seen := make(map[string]struct{}, len(r[level]))
	var out []string
	for _, rec := range r[level] {
		if _, ok := seen[rec.Message]; ok {
			continue
		}
		seen[rec.Message] = struct{}{}
		out = append(out, rec.Message)
	}
	return out
}

// GroupByField arranges one level's messages by field, the shape form layers
// expect. Unkeyed messages land under NonFieldErrors.
func (r Result) GroupByField(level Level) map[string][]string {
	out := make(map[string][]string)
	for _, rec := range r[level] {
		field := rec.Field
		if field == "" {
			field = NonFieldErrors
		}
		out[field] = append(out[field], rec.Message)
	}
	return out
}

// Format renders the result for humans: "is valid." when no errors were
// recorded, otherwise one line per record. Levels print in sorted key order;
// records within a level keep dispatch order.
func (r Result) Format() string {
	if r.Valid() {
		return "is valid."
	}

	var lines []string
	for _, level := range slices.Sorted(maps.Keys(r)) {
		for _, rec := range r[level] {
			lines = append(lines, rec.format())
		}
	}
	return strings.Join(lines, "\n")
}

func (rec Record) format() string {
	description := "(no description)"
	if d, ok := rec.Meta["description"]; ok {
		description = fmt.Sprint(d)
	}

	parts := []string{string(rec.Level), description, rec.Message}
	if rec.Field != "" {
		parts = append(parts, "field="+rec.Field)
	}
	if rec.Affected != nil {
		parts = append(parts, fmt.Sprintf("affects=%v", rec.Affected))
	}
	return strings.Join(parts, " ")
}
