package queries

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery lists the fleet with resolved zone names and the load
// each vehicle carries right now. Results are ordered by vehicle number.
//
// Example:
//
//	handler := NewGetAllVehiclesQueryHandler(db)
//	vehicles, err := handler.Handle(ctx, NewGetAllVehiclesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, v := range vehicles {
//	    fmt.Printf("%s: %.1f%%\n", v.Number, v.UtilizationPct)
//	}
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}
