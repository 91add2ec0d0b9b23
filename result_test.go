package golidator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/golidator"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("valid when error bucket is empty", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{
			golidator.LevelError: {},
			golidator.LevelWarn: {
				{Level: golidator.LevelWarn, Message: "heads up"},
			},
		}
		assert.True(t, result.Valid())
		assert.Empty(t, result.Errors())
		assert.Len(t, result.Warnings(), 1)
	})

	t.Run("invalid when errors exist", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{
			golidator.LevelError: {
				{Level: golidator.LevelError, Message: "broken"},
			},
		}
		assert.False(t, result.Valid())
	})

	t.Run("messages deduplicate in first-seen order", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{
			golidator.LevelError: {
				{Message: "first"},
				{Message: "second"},
				{Message: "first"},
			},
		}
		assert.Equal(t, []string{"first", "second"}, result.Messages(golidator.LevelError))
	})

	t.Run("group by field buckets unkeyed messages separately", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{
			golidator.LevelError: {
				{Field: "age", Message: "too old"},
				{Field: "age", Message: "not a number"},
				{Message: "object is stale"},
			},
		}
		assert.Equal(t, map[string][]string{
			"age":                    {"too old", "not a number"},
			golidator.NonFieldErrors: {"object is stale"},
		}, result.GroupByField(golidator.LevelError))
	})

	t.Run("format reports validity", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{golidator.LevelError: {}}
		assert.Equal(t, "is valid.", result.Format())
	})

	t.Run("format renders one line per record", func(t *testing.T) {
		t.Parallel()

		result := golidator.Result{
			golidator.LevelError: {
				{
					Level:    golidator.LevelError,
					Field:    "age",
					Message:  "too old",
					Affected: "intake form",
					Meta:     golidator.Meta{"description": "Child 0"},
				},
				{Level: golidator.LevelError, Message: "object is stale"},
			},
		}

		out := result.Format()
		assert.Contains(t, out, "ERROR Child 0 too old field=age affects=intake form")
		assert.Contains(t, out, "ERROR (no description) object is stale")
	})
}
