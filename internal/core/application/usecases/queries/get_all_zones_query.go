package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetAllZonesQueryIsNotConstructed = errors.New(
	"GetAllZonesQuery must be created via NewGetAllZonesQuery constructor",
)

// GetAllZonesQuery lists every zone with its boundary, ordered by name.
type GetAllZonesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllZonesQuery() GetAllZonesQuery {
	return GetAllZonesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllZonesQueryIsNotConstructed)
}

type GetAllZonesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Boundary []kernel.GeoPoint
}
