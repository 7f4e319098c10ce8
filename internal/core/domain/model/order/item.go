package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Artifacts holds the design-related file references of a line item: the
// produced artwork, the customer's reference material, and the thank-you
// card. All are opaque links into the external blob store.
type Artifacts struct {
	DesignURL       string
	ReferenceURL    string
	ThankYouCardURL string
}

// Item is one product-variant line within an order. Each item carries its own
// production status; the order-level status is derived from the full sibling
// set, so a single item transition always re-evaluates every sibling.
type Item struct {
	id        kernel.UUID
	variantID string
	category  string
	quantity  int
	unitPrice float64
	baseCost  float64
	status    ItemStatus
	designer  *kernel.UUID
	artifacts Artifacts
	note      string

	isConstructed bool
}

// NewItem creates a line item in the NeedDesign state.
//
// Parameters:
//   - id: unique identifier for the item
//   - variantID: catalog reference of the product variant
//   - category: product category used for production-plan grouping
//   - quantity: number of units (must be positive)
//   - unitPrice: selling price per unit (zero for reprint items)
//   - baseCost: factory manufacturing cost per unit, charged on
//     in-production cancellations
func NewItem(
	id kernel.UUID,
	variantID string,
	category string,
	quantity int,
	unitPrice float64,
	baseCost float64,
	artifacts Artifacts,
	note string,
) (*Item, error) {
	item := &Item{
		status:        ItemNeedDesign,
		artifacts:     artifacts,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVariantID(variantID),
		item.setCategory(category),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setBaseCost(baseCost),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(
	id kernel.UUID,
	variantID string,
	category string,
	quantity int,
	unitPrice float64,
	baseCost float64,
	status ItemStatus,
	designer *kernel.UUID,
	artifacts Artifacts,
	note string,
) (*Item, error) {
	item, err := NewItem(id, variantID, category, quantity, unitPrice, baseCost, artifacts, note)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	item.status = status
	item.designer = designer
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// VariantID returns the catalog reference of the product variant.
func (i *Item) VariantID() string { return i.variantID }

// Category returns the product category used for plan grouping.
func (i *Item) Category() string { return i.category }

// Quantity returns the number of units.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the selling price per unit.
func (i *Item) UnitPrice() float64 { return i.unitPrice }

// BaseCost returns the factory manufacturing cost per unit.
func (i *Item) BaseCost() float64 { return i.baseCost }

// Status returns the current production status.
func (i *Item) Status() ItemStatus { return i.status }

// Designer returns the assigned designer's ID, or nil if unassigned.
func (i *Item) Designer() *kernel.UUID { return i.designer }

// Artifacts returns the design artifact links.
func (i *Item) Artifacts() Artifacts { return i.artifacts }

// Note returns the free-text note.
func (i *Item) Note() string { return i.note }

// AssignDesigner records the designer responsible for the item's artwork.
func (i *Item) AssignDesigner(designerID kernel.UUID) error {
	if err := designerID.Validate(); err != nil {
		return err
	}
	i.designer = &designerID
	return nil
}

// AttachDesign records the produced artwork link.
func (i *Item) AttachDesign(designURL string) error {
	if designURL == "" {
		return errs.NewValueIsRequiredError("design URL")
	}
	i.artifacts.DesignURL = designURL
	return nil
}

// resetPrice zeroes the selling price. Reprint items ship at no charge.
func (i *Item) resetPrice() {
	i.unitPrice = 0
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVariantID(variantID string) error {
	if variantID == "" {
		return errs.NewValueIsRequiredError("variant ID")
	}
	i.variantID = variantID
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setBaseCost(baseCost float64) error {
	if baseCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base cost is invalid",
			fmt.Errorf("%f is negative", baseCost))
	}
	i.baseCost = baseCost
	return nil
}
