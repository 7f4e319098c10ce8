package cancellationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCancellationRepository implements CancellationRepository using GORM.
type GormCancellationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCancellationRepository creates a new GORM cancellation repository.
func NewGormCancellationRepository(db *gorm.DB, tracker aggregateTracker) *GormCancellationRepository {
	return &GormCancellationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cancellation request to the database.
func (r *GormCancellationRepository) Add(ctx context.Context, request *cancellation.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update saves an existing cancellation request.
func (r *GormCancellationRepository) Update(ctx context.Context, request *cancellation.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// GetPendingByOrder retrieves the most recent pending request for an order.
func (r *GormCancellationRepository) GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*cancellation.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CancellationRequestDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&dto, "order_id = ? AND status = ?", orderID.Bytes(), int(cancellation.Pending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending cancellation request", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasPending reports whether a pending request exists for the order.
func (r *GormCancellationRepository) HasPending(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CancellationRequestDTO{}).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(cancellation.Pending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
