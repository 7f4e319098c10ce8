package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Well-known broadcast groups. Per-order and per-user channels are derived
// with the helper functions below.
const (
	GroupStaffRequests = "staff_requests"
	GroupStaffReviewed = "staff_reviewed"
)

// OrderGroup returns the broadcast channel for everyone viewing an order.
func OrderGroup(orderID kernel.UUID) string {
	return "order_" + orderID.String()
}

// UserGroup returns the push channel of a single user.
func UserGroup(userID kernel.UUID) string {
	return "user_" + userID.String()
}

// NotificationDispatcher is the fire-and-forget push channel invoked after a
// workflow commits. Failures are logged by the caller and never propagated:
// a committed business decision is never reversed or retried because a
// notification could not be delivered.
type NotificationDispatcher interface {
	// Notify persists a notification for one user and pushes it to their
	// channel.
	Notify(ctx context.Context, userID kernel.UUID, message, deepLink string) error

	// BroadcastToGroup pushes an event to all subscribers of a named channel.
	BroadcastToGroup(ctx context.Context, group, event string, payload any) error
}
