package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordShipmentEventCommandIsNotConstructed = errors.New(
	"RecordShipmentEventCommand must be created via NewRecordShipmentEventCommand constructor",
)

// RecordShipmentEventCommand represents one carrier status update for a
// tracking code. When orderID is set the tracking code is also stamped on the
// order, which links the order to its carrier history on the first event.
type RecordShipmentEventCommand struct { //nolint:recvcheck //using for validation
	trackingCode string
	status       string
	description  string
	orderID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordShipmentEventCommand creates a command to record a carrier event.
// orderID is optional and may be nil.
func NewRecordShipmentEventCommand(
	trackingCode string,
	status string,
	description string,
	orderID *kernel.UUID,
) (RecordShipmentEventCommand, error) {
	cmd := RecordShipmentEventCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setStatus(status),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecordShipmentEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentEventCommandIsNotConstructed)
}

// TrackingCode returns the carrier tracking code.
func (c RecordShipmentEventCommand) TrackingCode() string { return c.trackingCode }

// Status returns the carrier status label.
func (c RecordShipmentEventCommand) Status() string { return c.status }

// Description returns the free-text carrier description.
func (c RecordShipmentEventCommand) Description() string { return c.description }

// OrderID returns the order to stamp the tracking code on, or nil.
func (c RecordShipmentEventCommand) OrderID() *kernel.UUID { return c.orderID }

func (c *RecordShipmentEventCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *RecordShipmentEventCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("shipment status")
	}
	c.status = status
	return nil
}

func (c *RecordShipmentEventCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
