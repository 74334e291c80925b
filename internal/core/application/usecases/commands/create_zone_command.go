package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand registers a new service zone.
// The boundary is validated as a simple polygon when the command is built.
//
// Example:
//
//	cmd, err := NewCreateZoneCommand("Whitefield", vertices)
//	if errors.Is(err, errs.ErrInvalidGeometry) {
//	    // reject the drawing
//	}
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	name     string
	boundary zone.Polygon

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(name string, boundary []kernel.GeoPoint) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setBoundary(boundary),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) Name() string {
	return c.name
}

func (c CreateZoneCommand) Boundary() zone.Polygon {
	return c.boundary
}

func (c *CreateZoneCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateZoneCommand) setBoundary(vertices []kernel.GeoPoint) error {
	polygon, err := zone.NewPolygon(vertices)
	if err != nil {
		return err
	}
	c.boundary = polygon
	return nil
}
