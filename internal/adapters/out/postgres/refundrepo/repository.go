package refundrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRefundRepository implements RefundRepository using GORM.
type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRefundRepository creates a new GORM refund repository.
func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new refund to the database.
func (r *GormRefundRepository) Add(ctx context.Context, rf *refund.Refund) error {
	if err := rf.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rf)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rf.ID(), rf)
	return nil
}

// Update saves an existing refund.
func (r *GormRefundRepository) Update(ctx context.Context, rf *refund.Refund) error {
	if err := rf.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rf)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rf.ID(), rf)
	return nil
}

// Get retrieves a refund by ID.
func (r *GormRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Refund, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RefundDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasPending reports whether a pending refund exists for the order.
func (r *GormRefundRepository) HasPending(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RefundDTO{}).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(refund.Pending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
