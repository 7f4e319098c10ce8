// Package refund implements the refund aggregate: one pending-or-resolved
// ask to return money for an already-paid order. At most one Pending refund
// may exist per order; refunds are never deleted.
package refund

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrRefundIsNotConstructed = errors.New("Refund must be created via NewRefund constructor")

// Status represents the review state of a refund.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the refund awaits staff review.
	Pending

	// Approved means staff confirmed the refund.
	Approved

	// Rejected means staff declined the refund.
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
		return errs.NewValueIsInvalidErrorWithCause("refund status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("refund status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Refund is one ask to return money for a paid order. The amount is
// snapshotted from the order's total cost at request time.
type Refund struct {
	id              kernel.UUID
	orderID         kernel.UUID
	requestedBy     kernel.UUID
	amount          float64
	reason          string
	proofURL        string
	status          Status
	reviewedBy      *kernel.UUID
	rejectionReason string
	gatewayRef      string
	createdAt       time.Time

	isConstructed bool
}

// NewRefund creates a pending refund. amount is the order's total cost
// snapshotted at request time; proofURL references the seller's proof of
// issue in the blob store.
func NewRefund(
	id kernel.UUID,
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	amount float64,
	reason string,
	proofURL string,
	createdAt time.Time,
) (*Refund, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("refund reason")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("refund amount is invalid",
			fmt.Errorf("%f is negative", amount))
	}

	r := &Refund{
		amount:        amount,
		reason:        reason,
		proofURL:      proofURL,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRequestedBy(requestedBy),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRefund reconstructs a refund from persistence.
func RestoreRefund(
	id kernel.UUID,
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	amount float64,
	reason string,
	proofURL string,
	status Status,
	reviewedBy *kernel.UUID,
	rejectionReason string,
	gatewayRef string,
	createdAt time.Time,
) (*Refund, error) {
	r, err := NewRefund(id, orderID, requestedBy, amount, reason, proofURL, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.reviewedBy = reviewedBy
	r.rejectionReason = rejectionReason
	r.gatewayRef = gatewayRef
	return r, nil
}

// Validate ensures the Refund was created through NewRefund.
func (r *Refund) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRefundIsNotConstructed
	}
	return nil
}

// ID returns the refund's unique identifier.
func (r *Refund) ID() kernel.UUID { return r.id }

// OrderID returns the target order's identifier.
func (r *Refund) OrderID() kernel.UUID { return r.orderID }

// RequestedBy returns the requesting seller's identifier.
func (r *Refund) RequestedBy() kernel.UUID { return r.requestedBy }

// Amount returns the refund amount snapshotted at request time.
func (r *Refund) Amount() float64 { return r.amount }

// Reason returns the seller's refund reason.
func (r *Refund) Reason() string { return r.reason }

// ProofURL returns the proof-of-issue reference.
func (r *Refund) ProofURL() string { return r.proofURL }

// Status returns the review state.
func (r *Refund) Status() Status { return r.status }

// ReviewedBy returns the reviewing staff member's ID, or nil while pending.
func (r *Refund) ReviewedBy() *kernel.UUID { return r.reviewedBy }

// RejectionReason returns the staff rejection reason, empty unless rejected.
func (r *Refund) RejectionReason() string { return r.rejectionReason }

// GatewayRef returns the external payment-gateway reference recorded on
// approval. Gateway integration is an external collaborator; this core
// stores an opaque placeholder.
func (r *Refund) GatewayRef() string { return r.gatewayRef }

// CreatedAt returns the refund creation timestamp.
func (r *Refund) CreatedAt() time.Time { return r.createdAt }

// Approve resolves the refund as approved, recording the gateway reference.
func (r *Refund) Approve(staffID kernel.UUID, gatewayRef string) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("review refund", r.status.String())
	}

	r.status = Approved
	r.reviewedBy = &staffID
	r.gatewayRef = gatewayRef
	return nil
}

// Reject resolves the refund as rejected. The rejection reason is mandatory.
func (r *Refund) Reject(staffID kernel.UUID, rejectionReason string) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("review refund", r.status.String())
	}

	r.status = Rejected
	r.reviewedBy = &staffID
	r.rejectionReason = rejectionReason
	return nil
}

func (r *Refund) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Refund) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Refund) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	r.requestedBy = requestedBy
	return nil
}
