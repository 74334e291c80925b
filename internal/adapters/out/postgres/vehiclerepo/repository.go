package vehiclerepo

import (
	"context"

	"fleet/internal/adapters/out/postgres/pgerrs"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "vehicle"

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle. A taken vehicle number is reported as an invalid
// value, a zone that disappeared in the meantime as a conflict.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error, resource, aggregate.ID())
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the vehicle row. Assignments, unassignments and deletion
// of the same vehicle queue up on this lock.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, true)
}

func (r *GormVehicleRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("zone_id = ?", zoneID.Bytes()).Count(&count).Error
	return count, err
}

func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, id)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(resource, id)
	}
	return nil
}

func (r *GormVehicleRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto VehicleDTO
	if err := query.Where("id = ?", id.Bytes()).Take(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err, resource, id)
	}

	return toDomain(dto)
}
