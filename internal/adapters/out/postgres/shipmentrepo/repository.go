// Package shipmentrepo persists the append-only shipment event log.
package shipmentrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipmentEventDTO represents the database structure for persisting carrier
// events. Rows are insert-only.
type ShipmentEventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode string    `gorm:"index"`
	Status       string
	Description  string
	RecordedAt   time.Time
}

// TableName specifies the database table name for shipment events.
func (ShipmentEventDTO) TableName() string {
	return "shipment_events"
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Append records one immutable shipment event.
func (r *GormShipmentRepository) Append(ctx context.Context, event *shipment.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := ShipmentEventDTO{
		ID:           event.ID().Bytes(),
		TrackingCode: event.TrackingCode(),
		Status:       event.Status(),
		Description:  event.Description(),
		RecordedAt:   event.RecordedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByTrackingCode retrieves all events for a tracking code in recording
// order.
func (r *GormShipmentRepository) ListByTrackingCode(ctx context.Context, trackingCode string) ([]*shipment.Event, error) {
	var dtos []ShipmentEventDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at ASC").
		Find(&dtos, "tracking_code = ?", trackingCode).Error
	if err != nil {
		return nil, err
	}

	events := make([]*shipment.Event, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		event, mapErr := shipment.NewEvent(id, dto.TrackingCode, dto.Status, dto.Description, dto.RecordedAt)
		if mapErr != nil {
			return nil, mapErr
		}
		events = append(events, event)
	}

	return events, nil
}
