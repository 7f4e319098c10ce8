// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names exactly the repositories it mutates, so a workflow loads
// the order together with the child collections it intends to change and
// nothing else.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CancellationRepoFactory provides access to the cancellation repository within a transaction.
	CancellationRepoFactory interface {
		CancellationRepository() ports.CancellationRepository
	}

	// RefundRepoFactory provides access to the refund repository within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// ReprintRepoFactory provides access to the reprint repository within a transaction.
	ReprintRepoFactory interface {
		ReprintRepository() ports.ReprintRepository
	}

	// PlanRepoFactory provides access to the plan repository within a transaction.
	PlanRepoFactory interface {
		PlanRepository() ports.PlanRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CancellationUoW manages transactions for the cancellation workflow:
	// the order aggregate, its cancellation requests, the invoice
	// precondition, and the plan details purged on approval.
	CancellationUoW interface {
		TxManager
		OrderRepoFactory
		CancellationRepoFactory
		InvoiceRepoFactory
		PlanRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// RefundUoW manages transactions for the refund workflow.
	RefundUoW interface {
		TxManager
		OrderRepoFactory
		RefundRepoFactory
	}

	// RefundUoWFactory creates new refund unit of work instances.
	RefundUoWFactory interface {
		Create() RefundUoW
	}

	// ReprintUoW manages transactions for the reprint workflow. Spawning the
	// derived order goes through the same OrderRepository, keeping it inside
	// the one transaction that resolves the reprint requests.
	ReprintUoW interface {
		TxManager
		OrderRepoFactory
		ReprintRepoFactory
	}

	// ReprintUoWFactory creates new reprint unit of work instances.
	ReprintUoWFactory interface {
		Create() ReprintUoW
	}

	// PlanningUoW manages transactions for production-plan grouping.
	PlanningUoW interface {
		TxManager
		OrderRepoFactory
		PlanRepoFactory
	}

	// PlanningUoWFactory creates new planning unit of work instances.
	PlanningUoWFactory interface {
		Create() PlanningUoW
	}

	// ShipmentUoW manages transactions for the shipment event log. The order
	// repository is included so the first carrier event can stamp the
	// tracking code on its order.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
