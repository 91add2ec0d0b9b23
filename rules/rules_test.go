package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/golidator/rules"
)

type enrollment struct {
	Name      string
	Email     string
	Phone     string
	Mobile    string
	ClosedAt  *time.Time
	BirthDate time.Time
}

func TestRequire(t *testing.T) {
	t.Parallel()

	t.Run("flags unset struct fields", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.Require(enrollment{Name: "Ada"}, "Name", "Email")

		assert.Equal(t, []map[string]string{
			{"Email": rules.FieldIsRequired},
		}, errs.Result())
	})

	t.Run("resolves through struct pointers", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.Require(&enrollment{}, "Name")
		require.Len(t, errs, 1)
	})

	t.Run("flags missing and zero map keys", func(t *testing.T) {
		t.Parallel()

		obj := map[string]any{"name": "Ada", "email": ""}

		var errs rules.Errors
		errs.Require(obj, "name", "email", "phone")

		assert.Equal(t, []map[string]string{
			{"email": rules.FieldIsRequired},
			{"phone": rules.FieldIsRequired},
		}, errs.Result())
	})

	t.Run("panics on unknown struct field", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		assert.Panics(t, func() {
			errs.Require(enrollment{}, "NoSuchField")
		})
	})
}

func TestRequireAny(t *testing.T) {
	t.Parallel()

	t.Run("passes when one field is set", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.RequireAny(enrollment{Mobile: "555"}, "Phone", "Mobile")
		assert.Nil(t, errs.Result())
	})

	t.Run("single joint finding when all unset", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.RequireAny(enrollment{}, "Phone", "Mobile")

		assert.Equal(t, []map[string]string{
			{"Phone, Mobile": rules.AnyFieldIsRequired},
		}, errs.Result())
	})
}

func TestMustBeUnset(t *testing.T) {
	t.Parallel()

	closed := time.Now()

	var errs rules.Errors
	errs.MustBeUnset(enrollment{ClosedAt: &closed}, "ClosedAt", "Phone")

	assert.Equal(t, []map[string]string{
		{"ClosedAt": rules.FieldMustBeUnset},
	}, errs.Result())
}

func TestDateNotAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("past date passes", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.DateNotAfter(enrollment{BirthDate: now.AddDate(-30, 0, 0)}, "BirthDate", now)
		assert.Nil(t, errs.Result())
	})

	t.Run("future date is flagged", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.DateNotAfter(enrollment{BirthDate: now.AddDate(0, 0, 1)}, "BirthDate", now)

		assert.Equal(t, []map[string]string{
			{"BirthDate": rules.DateInFuture},
		}, errs.Result())
	})

	t.Run("unset date is required", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.DateNotAfter(enrollment{}, "BirthDate", now)

		assert.Equal(t, []map[string]string{
			{"BirthDate": rules.FieldIsRequired},
		}, errs.Result())
	})

	t.Run("unset date passes when allowed", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		errs.DateNotAfterAllowUnset(enrollment{}, "BirthDate", now)
		assert.Nil(t, errs.Result())
	})

	t.Run("pointer dates resolve", func(t *testing.T) {
		t.Parallel()

		future := now.AddDate(1, 0, 0)
		obj := map[string]any{"closed_at": &future}

		var errs rules.Errors
		errs.DateNotAfter(obj, "closed_at", now)

		assert.Equal(t, []map[string]string{
			{"closed_at": rules.DateInFuture},
		}, errs.Result())
	})

	t.Run("non-time field panics", func(t *testing.T) {
		t.Parallel()

		var errs rules.Errors
		assert.Panics(t, func() {
			errs.DateNotAfter(enrollment{Name: "Ada"}, "Name", now)
		})
	})
}

func TestAccumulation(t *testing.T) {
	t.Parallel()

	var errs rules.Errors
	errs.Require(enrollment{}, "Name")
	errs.Add("custom", "hand-written message")

	assert.Equal(t, []map[string]string{
		{"Name": rules.FieldIsRequired},
		{"custom": "hand-written message"},
	}, errs.Result())
}
