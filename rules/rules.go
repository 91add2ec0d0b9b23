// Package rules provides reusable field-level checks for writing rule
// functions against the golidator engine. Helpers accumulate their findings
// in an Errors value whose Result method yields the field-keyed shape the
// engine normalizes.
//
// Fields resolve by name against structs, struct pointers, and string-keyed
// maps. An unresolvable field is a programmer error and panics; a missing
// map key is simply unset.
package rules

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Errors accumulates field-keyed messages, one single-entry map per finding.
type Errors []map[string]string

// Result returns the accumulated findings in the shape a rule function
// returns to the engine, or nil when nothing was recorded.
func (e Errors) Result() []map[string]string {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Add records an arbitrary message against a field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, map[string]string{field: message})
}

// Require records FieldIsRequired for every named field that is unset
// (nil pointer/interface, missing map key, or zero value).
func (e *Errors) Require(obj any, fields ...string) {
	for _, field := range fields {
		if isUnset(fieldValue(obj, field)) {
			e.Add(field, FieldIsRequired)
		}
	}
}

// RequireAny records a single finding, keyed by the joined field names, when
// none of the named fields is set.
func (e *Errors) RequireAny(obj any, fields ...string) {
	for _, field := range fields {
		if !isUnset(fieldValue(obj, field)) {
			return
		}
	}
	e.Add(strings.Join(fields, ", "), AnyFieldIsRequired)
}

// MustBeUnset records FieldMustBeUnset for every named field that carries a
// value.
func (e *Errors) MustBeUnset(obj any, fields ...string) {
	for _, field := range fields {
		if !isUnset(fieldValue(obj, field)) {
			e.Add(field, FieldMustBeUnset)
		}
	}
}

// DateNotAfter checks that a time.Time field does not lie after now. An
// unset date is itself a finding.
func (e *Errors) DateNotAfter(obj any, field string, now time.Time) {
	e.dateNotAfter(obj, field, now, false)
}

// DateNotAfterAllowUnset is DateNotAfter for optional dates: unset passes.
func (e *Errors) DateNotAfterAllowUnset(obj any, field string, now time.Time) {
	e.dateNotAfter(obj, field, now, true)
}

func (e *Errors) dateNotAfter(obj any, field string, now time.Time, allowUnset bool) {
	v := fieldValue(obj, field)
	if isUnset(v) {
		if !allowUnset {
			e.Add(field, FieldIsRequired)
		}
		return
	}

	t, ok := asTime(v)
	if !ok {
		panic(fmt.Sprintf("rules: field %q is not a time.Time", field))
	}
	if t.After(now) {
		e.Add(field, DateInFuture)
	}
}

func fieldValue(obj any, field string) reflect.Value {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			panic(fmt.Sprintf("rules: cannot resolve field %q on nil %T", field, obj))
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		f := v.FieldByName(field)
		if !f.IsValid() {
			panic(fmt.Sprintf("rules: no field %q on %T", field, obj))
		}
		return f
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			panic(fmt.Sprintf("rules: map %T is not string-keyed", obj))
		}
		return v.MapIndex(reflect.ValueOf(field))
	default:
		panic(fmt.Sprintf("rules: cannot resolve field %q on %T", field, obj))
	}
}

func isUnset(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	return v.IsZero()
}

func asTime(v reflect.Value) (time.Time, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return time.Time{}, false
		}
		v = v.Elem()
	}
	t, ok := v.Interface().(time.Time)
	return t, ok
}
