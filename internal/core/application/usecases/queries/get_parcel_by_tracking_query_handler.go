package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelByTrackingQueryHandler retrieves one parcel and its tracking
// history from the database. This is the read path behind the public
// tracking page, so it works off the tracking number rather than the
// internal parcel id.
//
// Example:
//
//	handler := NewGetParcelByTrackingQueryHandler(db)
//	query, _ := NewGetParcelByTrackingQuery(trackingNumber)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get parcel: %v", err)
//	    return err
//	}
type GetParcelByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByTrackingQueryHandler creates a handler for parcel detail queries.
// Requires a GORM database connection for query execution.
func NewGetParcelByTrackingQueryHandler(db *gorm.DB) GetParcelByTrackingQueryHandler {
	return GetParcelByTrackingQueryHandler{db: db}
}

// Handle executes the query and returns the parcel with its events in
// chronological order. Returns errs.ErrObjectNotFound when no parcel
// carries the requested tracking number.
func (h GetParcelByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingQuery,
) (*GetParcelByTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp GetParcelByTrackingQueryResponse
	var id, senderID uuid.UUID
	var driverID uuid.NullUUID
	var status, deliverySpeed int
	var shippingCost int64
	var estimatedDelivery sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_id,
			recipient_name,
			recipient_address,
			status,
			delivery_speed,
			weight,
			shipping_cost,
			assigned_driver_id,
			created_at,
			estimated_delivery
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&senderID,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&status,
		&deliverySpeed,
		&resp.Weight,
		&shippingCost,
		&driverID,
		&resp.CreatedAt,
		&estimatedDelivery,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
		}

		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = parcelID

	sender, err := kernel.UUIDFromBytes(senderID[:])
	if err != nil {
		return nil, err
	}
	resp.SenderID = sender

	if driverID.Valid {
		driver, driverErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if driverErr != nil {
			return nil, driverErr
		}
		resp.AssignedDriverID = &driver
	}

	if estimatedDelivery.Valid {
		estimated := estimatedDelivery.Time
		resp.EstimatedDelivery = &estimated
	}

	resp.Status = parcel.Status(status)
	resp.DeliverySpeed = kernel.DeliverySpeed(deliverySpeed)
	resp.ShippingCost = kernel.MoneyFromCents(shippingCost)

	events, err := h.loadEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Events = events

	return &resp, nil
}

func (h GetParcelByTrackingQueryHandler) loadEvents(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			occurred_at,
			location,
			status,
			description
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY occurred_at, id
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		var occurredAt time.Time
		var status int

		err = rows.Scan(
			&occurredAt,
			&event.Location,
			&status,
			&event.Description,
		)
		if err != nil {
			return nil, err
		}

		event.OccurredAt = occurredAt
		event.Status = parcel.Status(status)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
