package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllZonesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllZonesQueryHandler(db *gorm.DB) GetAllZonesQueryHandler {
	return GetAllZonesQueryHandler{db: db}
}

func (h GetAllZonesQueryHandler) Handle(ctx context.Context, query GetAllZonesQuery) ([]GetAllZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetAllZonesQueryResponse, 0)
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		loaded, err := loadZones(tx)
		if err != nil {
			return err
		}

		for _, z := range loaded {
			zones = append(zones, GetAllZonesQueryResponse{
				ID:       z.ID(),
				Name:     z.Name(),
				Boundary: z.Boundary().Vertices(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return zones, nil
}
