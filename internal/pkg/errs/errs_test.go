package errs_test

import (
	"errors"
	"testing"

	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidGeometryError(t *testing.T) {
	t.Run("NewInvalidGeometryError", func(t *testing.T) {
		err := errs.NewInvalidGeometryError("boundary needs at least 3 vertices")

		assert.Equal(t, "boundary needs at least 3 vertices", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "geometry is invalid: boundary needs at least 3 vertices", err.Error())
		assert.Equal(t, errs.ErrInvalidGeometry, err.Unwrap())
	})

	t.Run("NewInvalidGeometryErrorWithCause", func(t *testing.T) {
		cause := errors.New("latitude out of range")
		err := errs.NewInvalidGeometryErrorWithCause("vertex 2", cause)

		assert.Equal(t, "geometry is invalid: vertex 2 (cause: latitude out of range)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("zone", "42", "2 vehicles still reference it")

	assert.Equal(t, "zone", err.Resource)
	assert.Equal(t, "conflict: zone 42: 2 vehicles still reference it", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("order", "ASSIGNED", "cancel")

	assert.Equal(t, "invalid state: cannot cancel order in ASSIGNED status", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("v-1", "weight 110 kg exceeds max 100 kg")

	assert.Equal(t, "capacity exceeded: vehicle v-1: weight 110 kg exceeds max 100 kg", err.Error())
	assert.Equal(t, errs.ErrCapacityExceeded, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("cancel order of another company")

	assert.Equal(t, "forbidden: cancel order of another company", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidGeometry)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrCapacityExceeded)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "geometry is invalid", errs.ErrInvalidGeometry.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "capacity exceeded", errs.ErrCapacityExceeded.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidGeometryError("open ring"), errs.ErrInvalidGeometry)
		require.ErrorIs(t, errs.NewConflictError("vehicle", "1", "has orders"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewInvalidStateError("order", "SHIPPED", "assign"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewCapacityExceededError("1", "full"), errs.ErrCapacityExceeded)
	})

	t.Run("errors.As finds typed errors through joins", func(t *testing.T) {
		joined := errors.Join(errors.New("other"), errs.NewInvalidStateError("order", "PENDING", "ship"))

		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, joined, &stateErr)
		assert.Equal(t, "ship", stateErr.Action)
	})
}
