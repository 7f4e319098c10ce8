// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. Orders are
// always loaded with their items: the workflows re-derive the order status
// from the full sibling set.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Code            string      `gorm:"uniqueIndex"`
	SellerID        uuid.UUID   `gorm:"type:uuid;index"`
	Customer        CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Status          int         `gorm:"index"`
	PaymentStatus   int
	ProductionLabel string
	TotalCost       float64
	TrackingCode    string     `gorm:"index"`
	Items           []*ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded shipping-destination snapshot within
// the order table.
type CustomerDTO struct {
	Name         string
	Phone        string
	Address      string
	ProvinceCode string
	DistrictCode string
	WardCode     string
}

// ItemDTO represents the database structure for persisting order line items.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	VariantID       string
	Category        string `gorm:"index"`
	Quantity        int
	UnitPrice       float64
	BaseCost        float64
	Status          int        `gorm:"index"`
	DesignerID      *uuid.UUID `gorm:"type:uuid"`
	DesignURL       string
	ReferenceURL    string
	ThankYouCardURL string
	Note            string
}

// TableName specifies the database table name for line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]*ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Code:     aggregate.Code(),
		SellerID: aggregate.SellerID().Bytes(),
		Customer: CustomerDTO{
			Name:         customer.Name(),
			Phone:        customer.Phone(),
			Address:      customer.Address(),
			ProvinceCode: customer.ProvinceCode(),
			DistrictCode: customer.DistrictCode(),
			WardCode:     customer.WardCode(),
		},
		Status:          int(aggregate.Status()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		ProductionLabel: aggregate.ProductionLabel(),
		TotalCost:       aggregate.TotalCost(),
		TrackingCode:    aggregate.TrackingCode(),
		Items:           items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) *ItemDTO {
	var designerID *uuid.UUID
	if id := item.Designer(); id != nil {
		raw := id.Bytes()
		designerID = &raw
	}

	artifacts := item.Artifacts()
	return &ItemDTO{
		ID:              item.ID().Bytes(),
		OrderID:         orderID.Bytes(),
		VariantID:       item.VariantID(),
		Category:        item.Category(),
		Quantity:        item.Quantity(),
		UnitPrice:       item.UnitPrice(),
		BaseCost:        item.BaseCost(),
		Status:          int(item.Status()),
		DesignerID:      designerID,
		DesignURL:       artifacts.DesignURL,
		ReferenceURL:    artifacts.ReferenceURL,
		ThankYouCardURL: artifacts.ThankYouCardURL,
		Note:            item.Note(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Phone,
		dto.Customer.Address,
		dto.Customer.ProvinceCode,
		dto.Customer.DistrictCode,
		dto.Customer.WardCode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		sellerID,
		customer,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.ProductionLabel,
		dto.TotalCost,
		dto.TrackingCode,
		items,
	)
}

func itemToDomain(dto *ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var designer *kernel.UUID
	if dto.DesignerID != nil {
		dID, designerErr := kernel.UUIDFromBytes((*dto.DesignerID)[:])
		if designerErr != nil {
			return nil, designerErr
		}
		designer = &dID
	}

	return order.RestoreItem(
		id,
		dto.VariantID,
		dto.Category,
		dto.Quantity,
		dto.UnitPrice,
		dto.BaseCost,
		order.ItemStatus(dto.Status),
		designer,
		order.Artifacts{
			DesignURL:       dto.DesignURL,
			ReferenceURL:    dto.ReferenceURL,
			ThankYouCardURL: dto.ThankYouCardURL,
		},
		dto.Note,
	)
}
