// Package cancellationrepo persists cancellation requests.
package cancellationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CancellationRequestDTO represents the database structure for persisting
// cancellation requests.
type CancellationRequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	RequestedBy     uuid.UUID `gorm:"type:uuid"`
	Reason          string
	Status          int `gorm:"index"`
	PreviousStatus  int
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason string
	CreatedAt       time.Time
}

// TableName specifies the database table name for cancellation requests.
func (CancellationRequestDTO) TableName() string {
	return "cancellation_requests"
}

func fromDomain(request *cancellation.Request) CancellationRequestDTO {
	var reviewedBy *uuid.UUID
	if id := request.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return CancellationRequestDTO{
		ID:              request.ID().Bytes(),
		OrderID:         request.OrderID().Bytes(),
		RequestedBy:     request.RequestedBy().Bytes(),
		Reason:          request.Reason(),
		Status:          int(request.Status()),
		PreviousStatus:  int(request.PreviousStatus()),
		ReviewedBy:      reviewedBy,
		ReviewedAt:      request.ReviewedAt(),
		RejectionReason: request.RejectionReason(),
		CreatedAt:       request.CreatedAt(),
	}
}

func toDomain(dto CancellationRequestDTO) (*cancellation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	requestedBy, err := kernel.UUIDFromBytes(dto.RequestedBy[:])
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewedBy = &rID
	}

	return cancellation.RestoreRequest(
		id,
		orderID,
		requestedBy,
		dto.Reason,
		cancellation.Status(dto.Status),
		order.Status(dto.PreviousStatus),
		reviewedBy,
		dto.ReviewedAt,
		dto.RejectionReason,
		dto.CreatedAt,
	)
}
