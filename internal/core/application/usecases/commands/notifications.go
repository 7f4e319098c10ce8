package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// Event names published on the real-time channels after a committed
// transition.
const (
	EventOrderStatusChanged    = "order_status_changed"
	EventCancellationRequested = "cancellation_requested"
	EventCancellationReviewed  = "cancellation_reviewed"
	EventRefundRequested       = "refund_requested"
	EventRefundReviewed        = "refund_reviewed"
	EventReprintRequested      = "reprint_requested"
	EventReprintReviewed       = "reprint_reviewed"
	EventPlansGrouped          = "plans_grouped"
)

// OrderStatusPayload is the broadcast payload for order status changes.
type OrderStatusPayload struct {
	OrderID string `json:"order_id"`
	Code    string `json:"code"`
	Status  string `json:"status"`
}

// PlansGroupedPayload is the broadcast payload for a completed grouping run.
type PlansGroupedPayload struct {
	Plans  int `json:"plans"`
	Orders int `json:"orders"`
}

// Notifier sends best-effort notifications after a workflow commits.
// Dispatch failures are logged and swallowed: the committed state change is
// never rolled back or retried because a push could not be delivered.
type Notifier struct {
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewNotifier creates a Notifier. A nil dispatcher disables delivery, which
// keeps handlers usable in tests that do not assert on notifications.
func NewNotifier(dispatcher ports.NotificationDispatcher, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Notifier{dispatcher: dispatcher, logger: logger}
}

// NotifyUser persists and pushes a message to one user.
func (n Notifier) NotifyUser(ctx context.Context, userID kernel.UUID, message, deepLink string) {
	if n.dispatcher == nil {
		return
	}
	if err := n.dispatcher.Notify(ctx, userID, message, deepLink); err != nil {
		n.logger.ErrorContext(ctx, "user notification failed",
			"user_id", userID.String(), "error", err)
	}
}

// Broadcast pushes an event to all subscribers of a named channel.
func (n Notifier) Broadcast(ctx context.Context, group, event string, payload any) {
	if n.dispatcher == nil {
		return
	}
	if err := n.dispatcher.BroadcastToGroup(ctx, group, event, payload); err != nil {
		n.logger.ErrorContext(ctx, "group broadcast failed",
			"group", group, "event", event, "error", err)
	}
}
