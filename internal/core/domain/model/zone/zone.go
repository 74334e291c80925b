package zone

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
)

// Zone is a named service area. Vehicles bound to a zone only serve pickup
// points inside its boundary. A zone is never edited in place; replacing the
// boundary means deleting the zone and creating a new one.
type Zone struct {
	id       kernel.UUID
	name     string
	boundary Polygon
	guard    guard.ConstructorGuard
}

// NewZone creates a zone with a fresh identifier.
func NewZone(name string, boundary Polygon) (*Zone, error) {
	return RestoreZone(kernel.NewUUID(), name, boundary)
}

// RestoreZone rebuilds a zone loaded from storage.
func RestoreZone(id kernel.UUID, name string, boundary Polygon) (*Zone, error) {
	z := &Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setBoundary(boundary),
	); err != nil {
		return nil, err
	}

	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) Boundary() Polygon {
	return z.boundary
}

// Contains reports whether point falls inside the zone, boundary included.
func (z *Zone) Contains(point kernel.GeoPoint) bool {
	return z.boundary.Contains(point)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setBoundary(boundary Polygon) error {
	if err := boundary.Validate(); err != nil {
		return errs.NewInvalidGeometryErrorWithCause("boundary is required", err)
	}
	z.boundary = boundary
	return nil
}
