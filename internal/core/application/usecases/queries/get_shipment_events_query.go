package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentEventsQueryIsNotConstructed = errors.New(
	"GetShipmentEventsQuery must be created via NewGetShipmentEventsQuery constructor",
)

// GetShipmentEventsQuery retrieves the carrier history of one tracking code
// in recording order.
type GetShipmentEventsQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewGetShipmentEventsQuery creates a query for a tracking code's history.
func NewGetShipmentEventsQuery(trackingCode string) (GetShipmentEventsQuery, error) {
	if trackingCode == "" {
		return GetShipmentEventsQuery{}, errs.NewValueIsRequiredError("tracking code")
	}
	return GetShipmentEventsQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentEventsQueryIsNotConstructed)
}

// TrackingCode returns the requested tracking code.
func (q GetShipmentEventsQuery) TrackingCode() string { return q.trackingCode }

// GetShipmentEventsQueryResponse represents one carrier event in the read
// model.
type GetShipmentEventsQueryResponse struct {
	Status      string
	Description string
	RecordedAt  time.Time
}
