// Package shipment implements the append-only shipment event log. Carrier
// status updates are recorded as immutable events keyed by tracking code and
// queried on demand, instead of being held in process-wide mutable state.
package shipment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one immutable carrier status update for a tracking code.
type Event struct {
	id           kernel.UUID
	trackingCode string
	status       string
	description  string
	recordedAt   time.Time

	isConstructed bool
}

// NewEvent creates a shipment event. Tracking code and status are required.
func NewEvent(id kernel.UUID, trackingCode, status, description string, recordedAt time.Time) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("tracking code")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("shipment status")
	}

	return &Event{
		id:            id,
		trackingCode:  trackingCode,
		status:        status,
		description:   description,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through NewEvent.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// TrackingCode returns the carrier tracking code the event belongs to.
func (e *Event) TrackingCode() string { return e.trackingCode }

// Status returns the carrier status label.
func (e *Event) Status() string { return e.status }

// Description returns the free-text carrier description.
func (e *Event) Description() string { return e.description }

// RecordedAt returns the time the event was recorded.
func (e *Event) RecordedAt() time.Time { return e.recordedAt }
