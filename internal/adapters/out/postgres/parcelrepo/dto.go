// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Maps parcel domain entities to relational database tables with proper indexing
// for efficient querying by tracking number, status and driver assignment.
type ParcelDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber     string    `gorm:"type:varchar(16);uniqueIndex"`
	SenderID           uuid.UUID `gorm:"type:uuid;index"`
	RecipientName      string
	RecipientAddress   string
	RecipientPhone     string
	Weight             float64
	Width              float64
	Height             float64
	Length             float64
	PackageType        int
	DeliverySpeed      int
	DeclaredValue      int64
	ContentDescription string
	IsHazardous        bool
	IsFragile          bool
	IsInternational    bool
	ShippingCost       int64
	Status             int        `gorm:"index"`
	AssignedDriverID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time
	EstimatedDelivery  *time.Time
	Events             []TrackingEventDTO `gorm:"foreignKey:ParcelID"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// TrackingEventDTO represents one row of a parcel's tracking ledger.
// Events are append-only; rows are never updated or deleted.
type TrackingEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt  time.Time
	Status      int
	Location    string
	Description string
	HandledByID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for tracking event entities.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Maps all parcel attributes including the tracking event ledger and the
// optional driver assignment.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var driverID *uuid.UUID
	if id := aggregate.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	events := make([]TrackingEventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		events = append(events, eventFromDomain(event))
	}

	flags := aggregate.Flags()

	return ParcelDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingNumber:     aggregate.TrackingNumber().String(),
		SenderID:           aggregate.SenderID().Bytes(),
		RecipientName:      aggregate.Recipient().Name(),
		RecipientAddress:   aggregate.Recipient().Address(),
		RecipientPhone:     aggregate.Recipient().Phone(),
		Weight:             aggregate.Weight(),
		Width:              aggregate.Dimensions().Width(),
		Height:             aggregate.Dimensions().Height(),
		Length:             aggregate.Dimensions().Length(),
		PackageType:        int(aggregate.PackageType()),
		DeliverySpeed:      int(aggregate.DeliverySpeed()),
		DeclaredValue:      aggregate.DeclaredValue().Cents(),
		ContentDescription: aggregate.ContentDescription(),
		IsHazardous:        flags.Hazardous,
		IsFragile:          flags.Fragile,
		IsInternational:    flags.International,
		ShippingCost:       aggregate.ShippingCost().Cents(),
		Status:             int(aggregate.Status()),
		AssignedDriverID:   driverID,
		CreatedAt:          aggregate.CreatedAt(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		Events:             events,
	}
}

func eventFromDomain(event *parcel.TrackingEvent) TrackingEventDTO {
	var handledByID *uuid.UUID
	if id := event.HandledByID(); id != nil {
		raw := id.Bytes()
		handledByID = &raw
	}

	return TrackingEventDTO{
		ID:          event.ID().Bytes(),
		ParcelID:    event.ParcelID().Bytes(),
		OccurredAt:  event.OccurredAt(),
		Status:      int(event.Status()),
		Location:    event.Location(),
		Description: event.Description(),
		HandledByID: handledByID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including the tracking ledger and the
// optional driver assignment using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(dto.RecipientName, dto.RecipientAddress, dto.RecipientPhone)
	if err != nil {
		return nil, err
	}

	dimensions, err := parcel.NewDimensions(dto.Width, dto.Height, dto.Length)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	events := make([]*parcel.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		senderID,
		recipient,
		dto.Weight,
		dimensions,
		parcel.PackageType(dto.PackageType),
		kernel.DeliverySpeed(dto.DeliverySpeed),
		kernel.MoneyFromCents(dto.DeclaredValue),
		dto.ContentDescription,
		parcel.HandlingFlags{
			Hazardous:     dto.IsHazardous,
			Fragile:       dto.IsFragile,
			International: dto.IsInternational,
		},
		kernel.MoneyFromCents(dto.ShippingCost),
		parcel.Status(dto.Status),
		driverID,
		dto.CreatedAt,
		dto.EstimatedDelivery,
		events,
	)
}

func eventToDomain(dto TrackingEventDTO) (*parcel.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	var handledByID *kernel.UUID
	if dto.HandledByID != nil {
		hID, handledErr := kernel.UUIDFromBytes((*dto.HandledByID)[:])
		if handledErr != nil {
			return nil, handledErr
		}

		handledByID = &hID
	}

	return parcel.RestoreTrackingEvent(
		id,
		parcelID,
		dto.OccurredAt,
		parcel.Status(dto.Status),
		dto.Location,
		dto.Description,
		handledByID,
	)
}
