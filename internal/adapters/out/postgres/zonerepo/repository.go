package zonerepo

import (
	"context"

	"fleet/internal/adapters/out/postgres/pgerrs"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "zone"

// GormZoneRepository implements ports.ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone. A taken name is reported as an invalid value.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error, resource, aggregate.ID())
}

func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, id, nil)
}

// GetForShare holds a share lock on the zone row until the transaction ends,
// so the zone cannot be deleted while a vehicle is being bound to it.
func (r *GormZoneRepository) GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, id, &clause.Locking{Strength: "SHARE"})
}

func (r *GormZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, id, &clause.Locking{Strength: "UPDATE"})
}

func (r *GormZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ZoneDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, id)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(resource, id)
	}
	return nil
}

func (r *GormZoneRepository) get(ctx context.Context, id kernel.UUID, lock *clause.Locking) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock != nil {
		query = query.Clauses(*lock)
	}

	var dto ZoneDTO
	if err := query.Where("id = ?", id.Bytes()).Take(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err, resource, id)
	}

	return toDomain(dto)
}
