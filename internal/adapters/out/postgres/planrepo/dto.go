// Package planrepo persists production plans and their details.
package planrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/plan"

	"github.com/google/uuid"
)

// PlanDTO represents the database structure for persisting production plans.
type PlanDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category  string    `gorm:"index"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	StartDate time.Time
	Details   []*PlanDetailDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for production plans.
func (PlanDTO) TableName() string {
	return "production_plans"
}

// PlanDetailDTO represents one planned line item. The unique index on ItemID
// enforces the one-detail-per-item invariant at the database level.
type PlanDetailDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID        uuid.UUID `gorm:"type:uuid;index"`
	ItemID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status        int
	FinishedCount int
}

// TableName specifies the database table name for plan details.
func (PlanDetailDTO) TableName() string {
	return "production_plan_details"
}

func fromDomain(aggregate *plan.Plan) PlanDTO {
	details := make([]*PlanDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, &PlanDetailDTO{
			ID:            detail.ID().Bytes(),
			PlanID:        detail.PlanID().Bytes(),
			ItemID:        detail.ItemID().Bytes(),
			Status:        int(detail.Status()),
			FinishedCount: detail.FinishedCount(),
		})
	}

	return PlanDTO{
		ID:        aggregate.ID().Bytes(),
		Category:  aggregate.Category(),
		CreatedBy: aggregate.CreatedBy().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		StartDate: aggregate.StartDate(),
		Details:   details,
	}
}

func toDomain(dto PlanDTO) (*plan.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	details := make([]*plan.Detail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		detail, mapErr := detailToDomain(detailDTO)
		if mapErr != nil {
			return nil, mapErr
		}
		details = append(details, detail)
	}

	return plan.RestorePlan(id, dto.Category, createdBy, dto.CreatedAt, dto.StartDate, details)
}

func detailToDomain(dto *PlanDetailDTO) (*plan.Detail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	planID, err := kernel.UUIDFromBytes(dto.PlanID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return plan.RestoreDetail(id, planID, itemID, plan.DetailStatus(dto.Status), dto.FinishedCount)
}
