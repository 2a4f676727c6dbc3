package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsForDriverQueryHandler retrieves a driver's open manifest from
// the database. Filters out delivered parcels so drivers only see the
// stops still ahead of them.
//
// Example:
//
//	handler := NewGetParcelsForDriverQueryHandler(db)
//	query, _ := NewGetParcelsForDriverQuery(driverID)
//
//	manifest, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get manifest: %v", err)
//	    return err
//	}
type GetParcelsForDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsForDriverQueryHandler creates a handler for driver manifest queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsForDriverQueryHandler(db *gorm.DB) GetParcelsForDriverQueryHandler {
	return GetParcelsForDriverQueryHandler{db: db}
}

// Handle executes the query and returns the driver's undelivered parcels.
// Results are sorted by creation time so older assignments come first.
func (h GetParcelsForDriverQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsForDriverQuery,
) ([]GetParcelsForDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetParcelsForDriverQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			recipient_name,
			recipient_address,
			recipient_phone,
			status,
			is_fragile,
			is_hazardous,
			is_international
		FROM parcels
		WHERE assigned_driver_id = ? AND status != ?
		ORDER BY created_at, id
	`, query.DriverID().Bytes(), parcel.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetParcelsForDriverQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&parcelResp.TrackingNumber,
			&parcelResp.RecipientName,
			&parcelResp.RecipientAddress,
			&parcelResp.RecipientPhone,
			&status,
			&parcelResp.Flags.Fragile,
			&parcelResp.Flags.Hazardous,
			&parcelResp.Flags.International,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.ID = parcelID

		parcelResp.Status = parcel.Status(status)
		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
