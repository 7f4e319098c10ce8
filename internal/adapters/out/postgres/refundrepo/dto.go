// Package refundrepo persists refunds.
package refundrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

// RefundDTO represents the database structure for persisting refunds.
type RefundDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	RequestedBy     uuid.UUID `gorm:"type:uuid"`
	Amount          float64
	Reason          string
	ProofURL        string
	Status          int        `gorm:"index"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string
	GatewayRef      string
	CreatedAt       time.Time
}

// TableName specifies the database table name for refunds.
func (RefundDTO) TableName() string {
	return "refunds"
}

func fromDomain(rf *refund.Refund) RefundDTO {
	var reviewedBy *uuid.UUID
	if id := rf.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return RefundDTO{
		ID:              rf.ID().Bytes(),
		OrderID:         rf.OrderID().Bytes(),
		RequestedBy:     rf.RequestedBy().Bytes(),
		Amount:          rf.Amount(),
		Reason:          rf.Reason(),
		ProofURL:        rf.ProofURL(),
		Status:          int(rf.Status()),
		ReviewedBy:      reviewedBy,
		RejectionReason: rf.RejectionReason(),
		GatewayRef:      rf.GatewayRef(),
		CreatedAt:       rf.CreatedAt(),
	}
}

func toDomain(dto RefundDTO) (*refund.Refund, error) {
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

	return refund.RestoreRefund(
		id,
		orderID,
		requestedBy,
		dto.Amount,
		dto.Reason,
		dto.ProofURL,
		refund.Status(dto.Status),
		reviewedBy,
		dto.RejectionReason,
		dto.GatewayRef,
		dto.CreatedAt,
	)
}
