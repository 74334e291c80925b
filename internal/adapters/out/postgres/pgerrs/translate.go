// Package pgerrs translates PostgreSQL driver errors into errs kinds so that
// constraint violations reach callers as domain errors instead of 500s.
package pgerrs

import (
	"errors"

	"fleet/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Translate maps err onto an errs kind. Unknown errors are returned unchanged.
func Translate(err error, resource string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(resource, id)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return errs.NewValueIsInvalidErrorWithCause(uniqueParam(pqErr.Constraint), errors.New(pqErr.Detail))
		case foreignKeyViolation:
			return errs.NewConflictError(resource, id, pqErr.Detail)
		}
	}
	return err
}

func uniqueParam(constraint string) string {
	switch constraint {
	case "zones_name_key":
		return "name"
	case "vehicles_vehicle_number_key":
		return "vehicle_number"
	default:
		return constraint
	}
}
