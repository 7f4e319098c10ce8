package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order and its items. Save writes every column, so
// zeroed fields (total cost after a cancellation, item prices on reprints)
// persist correctly.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&dto).Error; err != nil {
		return err
	}
	for _, item := range dto.Items {
		if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with all items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForSeller retrieves an order scoped to its owning seller. An order owned
// by another seller is reported as not found so existence does not leak
// across sellers.
func (r *GormOrderRepository) GetForSeller(ctx context.Context, id, sellerID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), sellerID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ? AND seller_id = ?", id.Bytes(), sellerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItemID retrieves the order owning the given line item.
func (r *GormOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item ItemDTO
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, orderID)
}

// GetByItemIDs retrieves the distinct orders owning the given line items.
func (r *GormOrderRepository) GetByItemIDs(ctx context.Context, itemIDs []kernel.UUID) ([]*order.Order, error) {
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

	var items []ItemDTO
	if err := r.db.WithContext(ctx).Find(&items, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(items))
	orders := make([]*order.Order, 0, 1)
	for _, item := range items {
		if seen[item.OrderID] {
			continue
		}
		seen[item.OrderID] = true

		orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
		if err != nil {
			return nil, err
		}
		aggregate, err := r.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
