// Package reprintrepo persists reprint requests.
package reprintrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reprint"

	"github.com/google/uuid"
)

// ReprintDTO represents the database structure for persisting reprint requests.
type ReprintDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID          uuid.UUID `gorm:"type:uuid;index"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Reason          string
	RequestedBy     uuid.UUID `gorm:"type:uuid"`
	ProofURL        string
	Status          int `gorm:"index"`
	Processed       bool
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string
	CreatedAt       time.Time
}

// TableName specifies the database table name for reprint requests.
func (ReprintDTO) TableName() string {
	return "reprints"
}

func fromDomain(rp *reprint.Reprint) ReprintDTO {
	var reviewedBy *uuid.UUID
	if id := rp.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return ReprintDTO{
		ID:              rp.ID().Bytes(),
		ItemID:          rp.ItemID().Bytes(),
		OrderID:         rp.OrderID().Bytes(),
		Reason:          rp.Reason(),
		RequestedBy:     rp.RequestedBy().Bytes(),
		ProofURL:        rp.ProofURL(),
		Status:          int(rp.Status()),
		Processed:       rp.Processed(),
		ReviewedBy:      reviewedBy,
		RejectionReason: rp.RejectionReason(),
		CreatedAt:       rp.CreatedAt(),
	}
}

func toDomain(dto ReprintDTO) (*reprint.Reprint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
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

	return reprint.RestoreReprint(
		id,
		itemID,
		orderID,
		dto.Reason,
		requestedBy,
		dto.ProofURL,
		reprint.Status(dto.Status),
		dto.Processed,
		reviewedBy,
		dto.RejectionReason,
		dto.CreatedAt,
	)
}
