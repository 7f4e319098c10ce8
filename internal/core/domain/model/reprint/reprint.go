// Package reprint implements the reprint aggregate: one request to
// remanufacture a specific line item due to a defect. Approving a reprint
// spawns exactly one new zero-priced order mirroring the flagged items,
// either individually or in a same-order batch. Reprints are never deleted.
package reprint

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrReprintIsNotConstructed = errors.New("Reprint must be created via NewReprint constructor")

// Status represents the review state of a reprint request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the reprint awaits manager review.
	Pending

	// Approved means a manager accepted the reprint and a new order was spawned.
	Approved

	// Rejected means a manager declined the reprint.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Approved:      "Approved",
		Rejected:      "Rejected",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("reprint status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reprint status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Reprint is one defect-driven request to remanufacture a line item.
type Reprint struct {
	id              kernel.UUID
	itemID          kernel.UUID
	orderID         kernel.UUID
	reason          string
	requestedBy     kernel.UUID
	proofURL        string
	status          Status
	processed       bool
	reviewedBy      *kernel.UUID
	rejectionReason string
	createdAt       time.Time

	isConstructed bool
}

// NewReprint creates a pending reprint request for one line item.
func NewReprint(
	id kernel.UUID,
	itemID kernel.UUID,
	orderID kernel.UUID,
	reason string,
	requestedBy kernel.UUID,
	proofURL string,
	createdAt time.Time,
) (*Reprint, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("reprint reason")
	}

	r := &Reprint{
		reason:        reason,
		proofURL:      proofURL,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setItemID(itemID),
		r.setOrderID(orderID),
		r.setRequestedBy(requestedBy),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReprint reconstructs a reprint from persistence.
func RestoreReprint(
	id kernel.UUID,
	itemID kernel.UUID,
	orderID kernel.UUID,
	reason string,
	requestedBy kernel.UUID,
	proofURL string,
	status Status,
	processed bool,
	reviewedBy *kernel.UUID,
	rejectionReason string,
	createdAt time.Time,
) (*Reprint, error) {
	r, err := NewReprint(id, itemID, orderID, reason, requestedBy, proofURL, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.processed = processed
	r.reviewedBy = reviewedBy
	r.rejectionReason = rejectionReason
	return r, nil
}

// Validate ensures the Reprint was created through NewReprint.
func (r *Reprint) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReprintIsNotConstructed
	}
	return nil
}

// ID returns the reprint's unique identifier.
func (r *Reprint) ID() kernel.UUID { return r.id }

// ItemID returns the flagged line item's identifier.
func (r *Reprint) ItemID() kernel.UUID { return r.itemID }

// OrderID returns the original order's identifier.
func (r *Reprint) OrderID() kernel.UUID { return r.orderID }

// Reason returns the defect description.
func (r *Reprint) Reason() string { return r.reason }

// RequestedBy returns the requester's identifier (seller or QC actor).
func (r *Reprint) RequestedBy() kernel.UUID { return r.requestedBy }

// ProofURL returns the defect proof reference.
func (r *Reprint) ProofURL() string { return r.proofURL }

// Status returns the review state.
func (r *Reprint) Status() Status { return r.status }

// Processed reports whether the request has been resolved.
func (r *Reprint) Processed() bool { return r.processed }

// ReviewedBy returns the resolving manager's ID, or nil while pending.
func (r *Reprint) ReviewedBy() *kernel.UUID { return r.reviewedBy }

// RejectionReason returns the manager rejection reason, empty unless rejected.
func (r *Reprint) RejectionReason() string { return r.rejectionReason }

// CreatedAt returns the reprint creation timestamp.
func (r *Reprint) CreatedAt() time.Time { return r.createdAt }

// Approve resolves the reprint as approved, recording the approving manager.
func (r *Reprint) Approve(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("approve reprint", r.status.String())
	}

	r.status = Approved
	r.processed = true
	r.reviewedBy = &managerID
	return nil
}

// Reject resolves the reprint as rejected. The rejection reason is mandatory.
func (r *Reprint) Reject(managerID kernel.UUID, rejectionReason string) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("reject reprint", r.status.String())
	}

	r.status = Rejected
	r.processed = true
	r.reviewedBy = &managerID
	r.rejectionReason = rejectionReason
	return nil
}

func (r *Reprint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reprint) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

func (r *Reprint) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Reprint) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	r.requestedBy = requestedBy
	return nil
}
