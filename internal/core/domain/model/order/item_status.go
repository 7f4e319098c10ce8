package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ItemStatus represents the production lifecycle state of a single line item.
// The main sequence is ordered by progress rank; an order is only as advanced
// as its least-advanced item, so the order-level status is derived from the
// minimum rank across all non-canceled items (see DeriveStatus).
//
// Main sequence (ascending rank):
//
//	Created < NeedDesign < Designing < CheckDesign < DesignRedo <
//	ReadyProd < InProd < QCDone < ProdRework < Finished <
//	Packing < Shipping < Shipped
//
// ItemHold, ItemHoldReprint and ItemCanceled sit outside the ranking: held
// items are parked by the cancellation/reprint workflows, canceled items are
// excluded from derivation entirely.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ItemStatus values.
	ItemUnknown ItemStatus = iota

	// ItemCreated is the draft state before the order is submitted for design.
	ItemCreated

	// ItemNeedDesign means the item awaits a designer.
	ItemNeedDesign

	// ItemDesigning means a designer is producing the artwork.
	ItemDesigning

	// ItemCheckDesign means the artwork awaits review.
	ItemCheckDesign

	// ItemDesignRedo means the artwork was sent back for rework.
	ItemDesignRedo

	// ItemReadyProd means the design is accepted and the item can be grouped
	// into a production plan.
	ItemReadyProd

	// ItemInProd means the factory is producing the item.
	ItemInProd

	// ItemQCDone means the produced item passed quality control.
	ItemQCDone

	// ItemProdRework means the item failed quality control and is being remade.
	ItemProdRework

	// ItemFinished means production is complete.
	ItemFinished

	// ItemPacking means the item is being packed for shipment.
	ItemPacking

	// ItemShipping means the item is with the carrier.
	ItemShipping

	// ItemShipped means the item was delivered.
	ItemShipped

	// ItemHold parks the item while a cancellation request is reviewed.
	ItemHold

	// ItemHoldReprint parks the item while a reprint request is reviewed.
	ItemHoldReprint

	// ItemCanceled is terminal; canceled items are ignored by status derivation.
	ItemCanceled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:     "Unknown",
		ItemCreated:     "Created",
		ItemNeedDesign:  "NeedDesign",
		ItemDesigning:   "Designing",
		ItemCheckDesign: "CheckDesign",
		ItemDesignRedo:  "DesignRedo",
		ItemReadyProd:   "ReadyProd",
		ItemInProd:      "InProd",
		ItemQCDone:      "QCDone",
		ItemProdRework:  "ProdRework",
		ItemFinished:    "Finished",
		ItemPacking:     "Packing",
		ItemShipping:    "Shipping",
		ItemShipped:     "Shipped",
		ItemHold:        "Hold",
		ItemHoldReprint: "HoldReprint",
		ItemCanceled:    "Canceled",
	}
}

// getItemStatusRanks maps each main-sequence state to its progress rank.
// Side states (Hold, HoldReprint, Canceled) carry no rank and are excluded
// from min-rank derivation.
func getItemStatusRanks() map[ItemStatus]int {
	return map[ItemStatus]int{
		ItemCreated:     1,
		ItemNeedDesign:  2,
		ItemDesigning:   3,
		ItemCheckDesign: 4,
		ItemDesignRedo:  5,
		ItemReadyProd:   6,
		ItemInProd:      7,
		ItemQCDone:      8,
		ItemProdRework:  9,
		ItemFinished:    10,
		ItemPacking:     11,
		ItemShipping:    12,
		ItemShipped:     13,
	}
}

// getDesignTransitions returns the closed adjacency set of legal design-phase
// edges. This is the complete table: any edge not listed here is illegal,
// including no-op (same -> same) moves. States outside the design phase are
// advanced by the grouping, production and shipping workflows, never through
// TransitionTo.
func getDesignTransitions() map[ItemStatus][]ItemStatus {
	return map[ItemStatus][]ItemStatus{
		ItemNeedDesign:  {ItemDesigning},
		ItemDesignRedo:  {ItemDesigning},
		ItemDesigning:   {ItemCheckDesign},
		ItemCheckDesign: {ItemReadyProd, ItemDesignRedo},
	}
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ItemStatusFromString parses a status name as rendered by String.
func ItemStatusFromString(name string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if status != ItemUnknown && str == name {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("item status is invalid",
		fmt.Errorf("%q is not a valid item status", name))
}

// Validate checks if the ItemStatus value is valid.
// ItemUnknown (0) and out-of-range values are invalid.
func (s ItemStatus) Validate() error {
	if s == ItemUnknown {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid",
			fmt.Errorf("%d is not a valid item status", s))
	}
	if _, ok := getItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// Rank returns the progress rank of a main-sequence state.
// The second result is false for side states (Hold, HoldReprint, Canceled)
// and invalid values.
func (s ItemStatus) Rank() (int, bool) {
	rank, ok := getItemStatusRanks()[s]
	return rank, ok
}

// ValidateTransition checks whether requested is a legal design-phase edge
// from s. The legal edges are exactly:
//
//	NeedDesign  -> Designing
//	DesignRedo  -> Designing
//	Designing   -> CheckDesign
//	CheckDesign -> ReadyProd
//	CheckDesign -> DesignRedo
//
// Every other ordered pair is rejected with an IllegalTransitionError.
func (s ItemStatus) ValidateTransition(requested ItemStatus) error {
	for _, next := range getDesignTransitions()[s] {
		if next == requested {
			return nil
		}
	}
	return errs.NewIllegalTransitionError(s.String(), requested.String())
}

// TransitionTo returns the requested status after validating the edge.
func (s ItemStatus) TransitionTo(requested ItemStatus) (ItemStatus, error) {
	if err := s.ValidateTransition(requested); err != nil {
		return ItemUnknown, err
	}
	return requested, nil
}
