// Package invoicerepo answers invoice preconditions for the cancellation
// workflow. Invoicing itself lives outside this service; the table is kept
// minimal.
package invoicerepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceDTO represents the database structure for invoice references.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Canceled  bool
	CreatedAt time.Time
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// HasActiveInvoice reports whether the order is attached to a non-canceled
// invoice.
func (r *GormInvoiceRepository) HasActiveInvoice(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("order_id = ? AND canceled = ?", orderID.Bytes(), false).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
