package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/reprint"
	"fulfillment/internal/pkg/errs"
)

// ReprintOrderFactory builds the new order spawned by an approved reprint
// batch. The spawned order mirrors the flagged items of the original
// (product variant, quantity, artifact links) at zero price, ships to the
// original customer snapshot, carries the next reprint-version code, and is
// labeled paid because no new payment is collected.
//
// The factory is pure: it builds the aggregate, and the caller persists it
// inside the same transaction that resolves the reprint requests.
type ReprintOrderFactory struct{}

// NewReprintOrderFactory creates a ReprintOrderFactory.
func NewReprintOrderFactory() *ReprintOrderFactory {
	return &ReprintOrderFactory{}
}

// Build creates the mirror order for an approved same-order reprint batch.
// Every reprint must reference an item of the original order; each spawned
// item copies the flagged item with a zero price and a note prefixed with
// the defect reason.
func (f *ReprintOrderFactory) Build(
	newOrderID kernel.UUID,
	original *order.Order,
	reprints []*reprint.Reprint,
) (*order.Order, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}
	if len(reprints) == 0 {
		return nil, errs.NewValueIsRequiredError("reprints")
	}

	items := make([]*order.Item, 0, len(reprints))
	for _, rp := range reprints {
		flagged, ok := original.Item(rp.ItemID())
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", rp.ItemID().String())
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			flagged.VariantID(),
			flagged.Category(),
			flagged.Quantity(),
			0,
			flagged.BaseCost(),
			flagged.Artifacts(),
			fmt.Sprintf("[reprint: %s] %s", rp.Reason(), flagged.Note()),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		newOrderID,
		order.NextReprintCode(original.Code()),
		original.SellerID(),
		original.Customer(),
		items,
	)
	if err != nil {
		return nil, err
	}

	newOrder.MarkReprintOrder()
	return newOrder, nil
}
