// Package cancellation implements the cancellation request aggregate: one
// pending-or-resolved ask to halt an order, reviewed by staff. At most one
// Pending request may exist per order at a time; requests are never deleted.
package cancellation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Status represents the review state of a cancellation request.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the request awaits staff review.
	Pending

	// Approved means staff confirmed the cancellation.
	Approved

	// Rejected means staff declined the cancellation.
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
		return errs.NewValueIsInvalidErrorWithCause("cancellation status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cancellation status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Request is one ask to halt an order. It captures the order's status code at
// request time so a rejection can restore it.
type Request struct {
	id              kernel.UUID
	orderID         kernel.UUID
	requestedBy     kernel.UUID
	reason          string
	status          Status
	previousStatus  order.Status
	reviewedBy      *kernel.UUID
	reviewedAt      *time.Time
	rejectionReason string
	createdAt       time.Time

	isConstructed bool
}

// NewRequest creates a pending cancellation request. previousStatus is the
// order's status code at request time, kept for restoration on rejection.
func NewRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	reason string,
	previousStatus order.Status,
	createdAt time.Time,
) (*Request, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("cancellation reason")
	}

	r := &Request{
		reason:        reason,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRequestedBy(requestedBy),
		previousStatus.Validate(),
	); err != nil {
		return nil, err
	}
	r.previousStatus = previousStatus

	return r, nil
}

// RestoreRequest reconstructs a cancellation request from persistence.
func RestoreRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	reason string,
	status Status,
	previousStatus order.Status,
	reviewedBy *kernel.UUID,
	reviewedAt *time.Time,
	rejectionReason string,
	createdAt time.Time,
) (*Request, error) {
	r, err := NewRequest(id, orderID, requestedBy, reason, previousStatus, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.reviewedBy = reviewedBy
	r.reviewedAt = reviewedAt
	r.rejectionReason = rejectionReason
	return r, nil
}

// Validate ensures the Request was created through NewRequest.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// OrderID returns the target order's identifier.
func (r *Request) OrderID() kernel.UUID { return r.orderID }

// RequestedBy returns the requesting seller's identifier.
func (r *Request) RequestedBy() kernel.UUID { return r.requestedBy }

// Reason returns the seller's cancellation reason.
func (r *Request) Reason() string { return r.reason }

// Status returns the review state.
func (r *Request) Status() Status { return r.status }

// PreviousStatus returns the order's status code captured at request time.
func (r *Request) PreviousStatus() order.Status { return r.previousStatus }

// ReviewedBy returns the reviewing staff member's ID, or nil while pending.
func (r *Request) ReviewedBy() *kernel.UUID { return r.reviewedBy }

// ReviewedAt returns the review timestamp, or nil while pending.
func (r *Request) ReviewedAt() *time.Time { return r.reviewedAt }

// RejectionReason returns the staff rejection reason, empty unless rejected.
func (r *Request) RejectionReason() string { return r.rejectionReason }

// CreatedAt returns the request creation timestamp.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// Approve resolves the request as approved.
func (r *Request) Approve(staffID kernel.UUID, reviewedAt time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("review cancellation", r.status.String())
	}

	r.status = Approved
	r.reviewedBy = &staffID
	r.reviewedAt = &reviewedAt
	return nil
}

// Reject resolves the request as rejected. The rejection reason is mandatory.
func (r *Request) Reject(staffID kernel.UUID, rejectionReason string, reviewedAt time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if r.status != Pending {
		return errs.NewInvalidStateError("review cancellation", r.status.String())
	}

	r.status = Rejected
	r.reviewedBy = &staffID
	r.reviewedAt = &reviewedAt
	r.rejectionReason = rejectionReason
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	r.requestedBy = requestedBy
	return nil
}
