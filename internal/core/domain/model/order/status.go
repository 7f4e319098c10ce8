package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the order-level lifecycle code. For the main sequence it
// is derived from item states: the minimum item rank is mapped through a
// fixed rank -> status table (DeriveStatus). The side and terminal codes are
// set explicitly by the workflows:
//
//	Hold          : a cancellation or refund request is under review
//	HoldReprint   : a reprint request is under review
//	ReprintIssued : a reprint order was spawned; the original leaves active views
//	Cancelled     : cancellation approved (terminal)
//	Refunded      : refund approved (terminal)
//
// Orders are never hard-deleted; Cancelled and Refunded are the terminal codes.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreated is the draft stage before submission for design.
	StatusCreated

	// StatusNeedDesign means at least one item still awaits a designer.
	StatusNeedDesign

	// StatusDesigning means every item has reached the design stage.
	StatusDesigning

	// StatusCheckDesign means every item's artwork is at least under review.
	StatusCheckDesign

	// StatusDesignRedo means the least-advanced item was sent back for rework.
	StatusDesignRedo

	// StatusConfirmed means every design is accepted; the order is submitted
	// for production and eligible for plan grouping.
	StatusConfirmed

	// StatusPlanned means the order's items were grouped into production plans.
	StatusPlanned

	// StatusInProduction means the factory is producing the order.
	StatusInProduction

	// StatusQualityChecked means every item passed quality control.
	StatusQualityChecked

	// StatusRework means the least-advanced item failed QC and is being remade.
	StatusRework

	// StatusProduced means production is complete.
	StatusProduced

	// StatusPacking means the order is being packed.
	StatusPacking

	// StatusShipping means the order is with the carrier.
	StatusShipping

	// StatusShipped means the order was delivered.
	StatusShipped

	// StatusHold parks the order while a cancellation or refund is reviewed.
	StatusHold

	// StatusHoldReprint parks the order while a reprint is reviewed.
	StatusHoldReprint

	// StatusReprintIssued marks an original order whose reprint was approved.
	StatusReprintIssued

	// StatusCancelled is the terminal code for approved cancellations.
	StatusCancelled

	// StatusRefunded is the terminal code for approved refunds.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusCreated:        "Created",
		StatusNeedDesign:     "NeedDesign",
		StatusDesigning:      "Designing",
		StatusCheckDesign:    "CheckDesign",
		StatusDesignRedo:     "DesignRedo",
		StatusConfirmed:      "Confirmed",
		StatusPlanned:        "Planned",
		StatusInProduction:   "InProduction",
		StatusQualityChecked: "QualityChecked",
		StatusRework:         "Rework",
		StatusProduced:       "Produced",
		StatusPacking:        "Packing",
		StatusShipping:       "Shipping",
		StatusShipped:        "Shipped",
		StatusHold:           "Hold",
		StatusHoldReprint:    "HoldReprint",
		StatusReprintIssued:  "ReprintIssued",
		StatusCancelled:      "Cancelled",
		StatusRefunded:       "Refunded",
	}
}

// getRankStatusTable maps the minimum item rank across an order's items to
// the order-level status code.
func getRankStatusTable() map[int]Status {
	return map[int]Status{
		1:  StatusCreated,
		2:  StatusNeedDesign,
		3:  StatusDesigning,
		4:  StatusCheckDesign,
		5:  StatusDesignRedo,
		6:  StatusConfirmed,
		7:  StatusInProduction,
		8:  StatusQualityChecked,
		9:  StatusRework,
		10: StatusProduced,
		11: StatusPacking,
		12: StatusShipping,
		13: StatusShipped,
	}
}

// InProductionStatuses is the canonical set of order codes that count as
// "already in production" for both the cancellation allow-list and the
// cancellation fee rule. Every workflow must consult this one set.
func InProductionStatuses() []Status {
	return []Status{
		StatusPlanned,
		StatusInProduction,
		StatusQualityChecked,
		StatusRework,
		StatusProduced,
		StatusPacking,
	}
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsInProduction reports whether the status belongs to the canonical
// in-production set.
func (s Status) IsInProduction() bool {
	for _, status := range InProductionStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// ValidateCancellable checks whether a cancellation may be requested from
// this status. The allow-list is Confirmed plus the in-production codes; an
// order that is still being designed, already shipping, or parked/terminal
// cannot be cancelled through this workflow.
func (s Status) ValidateCancellable() error {
	if s == StatusConfirmed || s.IsInProduction() {
		return nil
	}
	return errs.NewInvalidStateError("request cancellation", s.String())
}

// DeriveStatus computes the order-level status from a set of item states:
// the minimum rank across all non-canceled, ranked items mapped through the
// rank -> status table. Held items carry no rank and are skipped, as are
// canceled items. Returns an error when no item contributes a rank.
func DeriveStatus(statuses []ItemStatus) (Status, error) {
	minRank := 0
	for _, itemStatus := range statuses {
		if itemStatus == ItemCanceled {
			continue
		}
		rank, ok := itemStatus.Rank()
		if !ok {
			continue
		}
		if minRank == 0 || rank < minRank {
			minRank = rank
		}
	}

	if minRank == 0 {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("item statuses",
			fmt.Errorf("no ranked item status to derive from"))
	}

	return getRankStatusTable()[minRank], nil
}
