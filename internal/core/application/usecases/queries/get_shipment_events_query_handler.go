package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentEventsQueryHandler retrieves the carrier event history of one
// tracking code.
type GetShipmentEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentEventsQueryHandler creates a handler for carrier history queries.
func NewGetShipmentEventsQueryHandler(db *gorm.DB) GetShipmentEventsQueryHandler {
	return GetShipmentEventsQueryHandler{db: db}
}

// Handle executes the query. An unknown tracking code yields an empty slice,
// not an error: the caller cannot distinguish "no events yet" from "never
// shipped" and should not have to.
func (h GetShipmentEventsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentEventsQuery,
) ([]GetShipmentEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetShipmentEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			description,
			recorded_at
		FROM shipment_events
		WHERE tracking_code = ?
		ORDER BY recorded_at
	`, query.TrackingCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetShipmentEventsQueryResponse
		if err = rows.Scan(&event.Status, &event.Description, &event.RecordedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
