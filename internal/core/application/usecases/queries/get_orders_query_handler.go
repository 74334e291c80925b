package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id, o.company_id, o.item_name, o.weight_kg,
			o.length_cm, o.width_cm, o.height_cm,
			o.pickup_lat, o.pickup_lng, o.status, o.vehicle_id, o.created_at,
			v.vehicle_number
		FROM orders o
		LEFT JOIN vehicles v ON v.id = o.vehicle_id`
	var args []any
	if companyID, ok := query.Caller().CompanyID(); ok && !query.Caller().IsAdmin() {
		sqlText += ` WHERE o.company_id = ?`
		args = append(args, companyID.Bytes())
	}
	sqlText += ` ORDER BY o.created_at DESC, o.id DESC`

	orders := make([]GetOrdersQueryResponse, 0)
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		rows, err := tx.Raw(sqlText, args...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				r             orderRow
				vehicleNumber sql.NullString
			)
			if err = rows.Scan(
				&r.id, &r.companyID, &r.itemName, &r.weightKg,
				&r.lengthCm, &r.widthCm, &r.heightCm,
				&r.pickupLat, &r.pickupLng, &r.status, &r.vehicleID, &r.createdAt,
				&vehicleNumber,
			); err != nil {
				return err
			}

			o, orderErr := r.toDomain()
			if orderErr != nil {
				return orderErr
			}

			dims := o.Dimensions()
			resp := GetOrdersQueryResponse{
				ID:        o.ID(),
				CompanyID: o.CompanyID(),
				ItemName:  o.ItemName(),
				WeightKg:  o.WeightKg(),
				LengthCm:  dims.LengthCm(),
				WidthCm:   dims.WidthCm(),
				HeightCm:  dims.HeightCm(),
				VolumeM3:  o.VolumeM3(),
				Pickup:    o.Pickup(),
				Status:    o.Status(),
				VehicleID: o.VehicleID(),
				CreatedAt: o.CreatedAt(),
			}
			if vehicleNumber.Valid {
				resp.VehicleNumber = &vehicleNumber.String
			}
			orders = append(orders, resp)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
