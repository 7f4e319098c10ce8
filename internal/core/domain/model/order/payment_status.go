package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
//
// Payment gates two workflows in opposite directions: cancellation is only
// allowed while Unpaid (paid orders must go through the refund workflow),
// and a refund is only requestable while Paid.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unpaid means no payment has been collected.
	Unpaid

	// Paid means the order has been paid in full.
	Paid

	// PaymentRefunded means the payment was returned through an approved refund.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "Unknown",
		Unpaid:          "Unpaid",
		Paid:            "Paid",
		PaymentRefunded: "Refunded",
	}
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
