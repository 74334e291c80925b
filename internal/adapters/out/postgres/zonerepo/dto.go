// Package zonerepo persists zones. The boundary is kept as a JSON array of
// [lat, lng] pairs in a jsonb column.
package zonerepo

import (
	"encoding/json"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ZoneDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"not null;uniqueIndex:zones_name_key"`
	Boundary  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) (ZoneDTO, error) {
	boundary, err := json.Marshal(z.Boundary().Pairs())
	if err != nil {
		return ZoneDTO{}, err
	}

	return ZoneDTO{
		ID:       z.ID().Bytes(),
		Name:     z.Name(),
		Boundary: datatypes.JSON(boundary),
	}, nil
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var pairs [][2]float64
	if err = json.Unmarshal(dto.Boundary, &pairs); err != nil {
		return nil, err
	}

	boundary, err := zone.PolygonFromPairs(pairs)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, boundary)
}
