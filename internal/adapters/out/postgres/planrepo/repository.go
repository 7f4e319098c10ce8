package planrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPlanRepository implements PlanRepository using GORM.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plan with its details to the database.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *plan.Plan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// PlannedItemIDs returns the subset of the given item IDs already linked to a
// plan detail.
func (r *GormPlanRepository) PlannedItemIDs(ctx context.Context, itemIDs []kernel.UUID) (map[kernel.UUID]bool, error) {
	planned := make(map[kernel.UUID]bool, len(itemIDs))
	if len(itemIDs) == 0 {
		return planned, nil
	}

	raw := make([]uuid.UUID, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, itemID.Bytes())
	}

	var details []PlanDetailDTO
	if err := r.db.WithContext(ctx).Find(&details, "item_id IN ?", raw).Error; err != nil {
		return nil, err
	}

	for _, detail := range details {
		itemID, err := kernel.UUIDFromBytes(detail.ItemID[:])
		if err != nil {
			return nil, err
		}
		planned[itemID] = true
	}

	return planned, nil
}

// UpdateDetailStatus sets the coarse status of one plan detail. Returns false
// without error when the detail does not exist.
func (r *GormPlanRepository) UpdateDetailStatus(ctx context.Context, detailID kernel.UUID, status plan.DetailStatus) (bool, error) {
	if err := detailID.Validate(); err != nil {
		return false, err
	}
	if err := status.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&PlanDetailDTO{}).
		Where("id = ?", detailID.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeleteDetailsForOrder removes every plan detail referencing an item of the
// given order.
func (r *GormPlanRepository) DeleteDetailsForOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	itemIDs := r.db.Table("order_items").Select("id").Where("order_id = ?", orderID.Bytes())
	return r.db.WithContext(ctx).
		Where("item_id IN (?)", itemIDs).
		Delete(&PlanDetailDTO{}).Error
}

// Get retrieves a plan with its details by ID.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).Preload("Details").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("plan", id.String(), err)
	}

	return toDomain(dto)
}
