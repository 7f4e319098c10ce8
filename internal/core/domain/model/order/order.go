package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Production labels shown to sellers alongside the numeric status code.
// For the main sequence the label mirrors the least-advanced item state; the
// workflows overwrite it on their terminal outcomes.
const (
	LabelReprint          = "reprint"
	LabelCancelled        = "cancelled"
	LabelCancelledWithFee = "cancelled_production_fee"
	LabelRefunded         = "refunded"
)

// Order is the aggregate root of the fulfillment lifecycle. It owns its line
// items and keeps the derived order-level status consistent with their
// production states.
//
// Order follows these invariants:
//   - Status equals DeriveStatus(item states) after any committed item change
//   - Item transitions follow the closed design-phase adjacency set
//   - Terminal outcomes are status codes (Cancelled, Refunded, ReprintIssued),
//     never deletion
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.UUID
	code            string
	sellerID        kernel.UUID
	customer        Customer
	status          Status
	paymentStatus   PaymentStatus
	productionLabel string
	totalCost       float64
	trackingCode    string
	items           []*Item

	isConstructed bool
}

// NewOrder creates an order from validated line items. The initial status is
// derived from the items (freshly created items start at NeedDesign), the
// payment status is Unpaid, and the total cost is the sum of unit price times
// quantity across the items.
func NewOrder(
	id kernel.UUID,
	code string,
	sellerID kernel.UUID,
	customer Customer,
	items []*Item,
) (*Order, error) {
	o := &Order{
		paymentStatus: Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setSellerID(sellerID),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range items {
		total += item.UnitPrice() * float64(item.Quantity())
	}
	o.totalCost = total

	if err := o.refreshStatus(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving
// state. The stored status is trusted; drift between stored and derived
// status is a persistence bug, not something restoration should paper over.
func RestoreOrder(
	id kernel.UUID,
	code string,
	sellerID kernel.UUID,
	customer Customer,
	status Status,
	paymentStatus PaymentStatus,
	productionLabel string,
	totalCost float64,
	trackingCode string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setSellerID(sellerID),
		o.setCustomer(customer),
		o.setItems(items),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.productionLabel = productionLabel
	o.totalCost = totalCost
	o.trackingCode = trackingCode
	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Code returns the order code, including any reprint-version suffix.
func (o *Order) Code() string { return o.code }

// SellerID returns the owning seller's identifier.
func (o *Order) SellerID() kernel.UUID { return o.sellerID }

// Customer returns the shipping-destination snapshot.
func (o *Order) Customer() Customer { return o.customer }

// Status returns the order-level lifecycle code.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the payment state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// ProductionLabel returns the free-text production label.
func (o *Order) ProductionLabel() string { return o.productionLabel }

// TotalCost returns the order's total cost.
func (o *Order) TotalCost() float64 { return o.totalCost }

// TrackingCode returns the carrier tracking code, empty until shipment.
func (o *Order) TrackingCode() string { return o.trackingCode }

// Items returns the order's line items.
func (o *Order) Items() []*Item { return o.items }

// Item finds a line item by ID.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// ItemStatuses returns the production states of all line items.
func (o *Order) ItemStatuses() []ItemStatus {
	statuses := make([]ItemStatus, 0, len(o.items))
	for _, item := range o.items {
		statuses = append(statuses, item.Status())
	}
	return statuses
}

// ManufacturingFee returns the factory cost of the order: the sum of each
// item's base manufacturing cost times its quantity.
func (o *Order) ManufacturingFee() float64 {
	fee := 0.0
	for _, item := range o.items {
		fee += item.BaseCost() * float64(item.Quantity())
	}
	return fee
}

// AdvanceItem applies a design-phase transition to one line item and
// re-derives the order-level status from the full sibling set. The order
// status only advances once every sibling has reached the new stage, because
// derivation takes the minimum rank across all items.
//
// Returns an ObjectNotFoundError for an unknown item and an
// IllegalTransitionError for an edge outside the adjacency set.
func (o *Order) AdvanceItem(itemID kernel.UUID, requested ItemStatus) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}

	newStatus, err := item.Status().TransitionTo(requested)
	if err != nil {
		return err
	}

	item.status = newStatus
	return o.refreshStatus()
}

// MarkPaid records payment collection.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != Unpaid {
		return errs.NewInvalidStateError("mark paid", o.paymentStatus.String())
	}
	o.paymentStatus = Paid
	return nil
}

// ValidateCancellable checks the cancellation preconditions that live on the
// aggregate: the status allow-list and the unpaid gate. Paid orders must go
// through the refund workflow instead.
func (o *Order) ValidateCancellable() error {
	if err := o.status.ValidateCancellable(); err != nil {
		return err
	}
	if o.paymentStatus == Paid {
		return errs.NewInvalidStateError("request cancellation on a paid order", o.paymentStatus.String())
	}
	return nil
}

// ValidateRefundable checks the refund precondition: only paid orders can be
// refunded.
func (o *Order) ValidateRefundable() error {
	if o.paymentStatus != Paid {
		return errs.NewInvalidStateError("request refund", o.paymentStatus.String())
	}
	return nil
}

// Hold parks the order while a cancellation or refund request is reviewed.
// The caller snapshots the current status first for a possible restore.
func (o *Order) Hold() {
	o.status = StatusHold
}

// RestoreStatus puts the order back to a previously captured status after a
// rejected request.
func (o *Order) RestoreStatus(previous Status) error {
	if err := previous.Validate(); err != nil {
		return err
	}
	o.status = previous
	o.productionLabel = previous.String()
	return nil
}

// ApplyCancellation finalizes an approved cancellation. When the captured
// previous status was in production the seller is charged the factory's
// manufacturing fee (base cost times quantity, no margin); a pre-production
// cancellation is free. Every item is moved to Canceled. Returns the fee
// charged, zero for a free cancellation.
func (o *Order) ApplyCancellation(previous Status) float64 {
	fee := 0.0
	if previous.IsInProduction() {
		fee = o.ManufacturingFee()
		o.productionLabel = LabelCancelledWithFee
	} else {
		o.productionLabel = LabelCancelled
	}

	o.totalCost = fee
	o.status = StatusCancelled
	for _, item := range o.items {
		item.status = ItemCanceled
	}
	return fee
}

// MarkRefunded finalizes an approved refund.
func (o *Order) MarkRefunded() {
	o.status = StatusRefunded
	o.paymentStatus = PaymentRefunded
	o.productionLabel = LabelRefunded
}

// FlagItemForReprint parks one line item and the order while a reprint
// request is reviewed.
func (o *Order) FlagItemForReprint(itemID kernel.UUID) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}
	if item.Status() == ItemHoldReprint {
		return errs.NewInvalidStateError("flag item for reprint", item.Status().String())
	}

	item.status = ItemHoldReprint
	o.status = StatusHoldReprint
	return nil
}

// RestoreItemFromReprint returns a flagged item and the order to the Shipped
// code after a rejected reprint. Reprints are requested post-delivery, so
// rejection restores Shipped rather than an arbitrary snapshot.
func (o *Order) RestoreItemFromReprint(itemID kernel.UUID) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}

	item.status = ItemShipped
	o.status = StatusShipped
	o.productionLabel = StatusShipped.String()
	return nil
}

// MarkReprintIssued moves the original order out of active fulfillment views
// once its reprint order has been spawned. Distinct from Cancelled/Refunded.
func (o *Order) MarkReprintIssued() {
	o.status = StatusReprintIssued
}

// MarkReprintOrder configures a freshly spawned reprint order: no new payment
// is collected, so the payment label is Paid, and the production label marks
// it as a reprint.
func (o *Order) MarkReprintOrder() {
	o.paymentStatus = Paid
	o.productionLabel = LabelReprint
	o.totalCost = 0
}

// ResetItemPrices zeroes the selling price of every line item and the total
// cost. Re-asserted on reprint orders after creation.
func (o *Order) ResetItemPrices() {
	for _, item := range o.items {
		item.resetPrice()
	}
	o.totalCost = 0
}

// MarkPlanned advances a submitted order to the grouped code after its items
// were batched into production plans.
func (o *Order) MarkPlanned() error {
	if o.status != StatusConfirmed {
		return errs.NewInvalidStateError("group into production plan", o.status.String())
	}
	o.status = StatusPlanned
	return nil
}

// SetTrackingCode records the carrier tracking code.
func (o *Order) SetTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	o.trackingCode = trackingCode
	return nil
}

// refreshStatus re-derives the order-level status and production label from
// the current item states.
func (o *Order) refreshStatus() error {
	derived, err := DeriveStatus(o.ItemStatuses())
	if err != nil {
		return err
	}
	o.status = derived
	o.productionLabel = derived.String()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
