package pgerrs_test

import (
	"errors"
	"testing"

	"fleet/internal/adapters/out/postgres/pgerrs"
	"fleet/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("should keep nil", func(t *testing.T) {
		assert.NoError(t, pgerrs.Translate(nil, "zone", "z1"))
	})

	t.Run("should map a missing record to not found", func(t *testing.T) {
		err := pgerrs.Translate(gorm.ErrRecordNotFound, "zone", "z1")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should map a unique violation to an invalid value", func(t *testing.T) {
		err := pgerrs.Translate(&pq.Error{Code: "23505", Constraint: "vehicles_vehicle_number_key"}, "vehicle", "v1")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "vehicle_number", invalid.ParamName)
	})

	t.Run("should map a foreign key violation to a conflict", func(t *testing.T) {
		err := pgerrs.Translate(&pq.Error{Code: "23503"}, "zone", "z1")

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should pass other errors through", func(t *testing.T) {
		boom := errors.New("boom")

		assert.Same(t, boom, pgerrs.Translate(boom, "zone", "z1"))
	})
}
