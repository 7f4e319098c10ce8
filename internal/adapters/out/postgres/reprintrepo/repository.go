package reprintrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reprint"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReprintRepository implements ReprintRepository using GORM.
type GormReprintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReprintRepository creates a new GORM reprint repository.
func NewGormReprintRepository(db *gorm.DB, tracker aggregateTracker) *GormReprintRepository {
	return &GormReprintRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reprint request to the database.
func (r *GormReprintRepository) Add(ctx context.Context, rp *reprint.Reprint) error {
	if err := rp.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rp)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rp.ID(), rp)
	return nil
}

// Update saves an existing reprint request.
func (r *GormReprintRepository) Update(ctx context.Context, rp *reprint.Reprint) error {
	if err := rp.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rp)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rp.ID(), rp)
	return nil
}

// GetPendingByItems retrieves the pending reprints referencing the given line
// items.
func (r *GormReprintRepository) GetPendingByItems(ctx context.Context, itemIDs []kernel.UUID) ([]*reprint.Reprint, error) {
	if len(itemIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("item IDs")
	}

	raw := make([]uuid.UUID, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, itemID.Bytes())
	}

	var dtos []ReprintDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "item_id IN ? AND status = ?", raw, int(reprint.Pending)).Error
	if err != nil {
		return nil, err
	}

	reprints := make([]*reprint.Reprint, 0, len(dtos))
	for _, dto := range dtos {
		rp, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		reprints = append(reprints, rp)
	}

	return reprints, nil
}

// HasPendingByItem reports whether a pending reprint exists for the item.
func (r *GormReprintRepository) HasPendingByItem(ctx context.Context, itemID kernel.UUID) (bool, error) {
	if err := itemID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReprintDTO{}).
		Where("item_id = ? AND status = ?", itemID.Bytes(), int(reprint.Pending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
