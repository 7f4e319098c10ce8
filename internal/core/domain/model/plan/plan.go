// Package plan implements the production work-batch aggregate. The grouping
// workflow batches submitted order items into one Plan per product category;
// each PlanDetail tracks one line item's coarse factory progress. A line item
// belongs to at most one PlanDetail; plans are never deleted (details are
// purged only when a cancellation aborts production).
package plan

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrPlanIsNotConstructed   = errors.New("Plan must be created via NewPlan constructor")
	ErrDetailIsNotConstructed = errors.New("Detail must be created via plan.AddDetail")
)

// DetailStatus is the coarse factory progress of one planned item.
type DetailStatus int

const (
	// DetailPending means production has not started.
	DetailPending DetailStatus = 0

	// DetailInProgress means the factory is working on the item.
	DetailInProgress DetailStatus = 1

	// DetailProduced means all units are finished.
	DetailProduced DetailStatus = 2
)

func getDetailStatusStrings() map[DetailStatus]string {
	return map[DetailStatus]string{
		DetailPending:    "Pending",
		DetailInProgress: "InProgress",
		DetailProduced:   "Produced",
	}
}

// String returns the human-readable name of the detail status.
func (s DetailStatus) String() string {
	if str, ok := getDetailStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the DetailStatus value is valid.
func (s DetailStatus) Validate() error {
	if _, ok := getDetailStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("plan detail status is invalid",
			fmt.Errorf("%d is not a valid detail status", s))
	}
	return nil
}

// Plan is one production work-batch for a single product category.
type Plan struct {
	id        kernel.UUID
	category  string
	createdBy kernel.UUID
	createdAt time.Time
	startDate time.Time
	details   []*Detail

	isConstructed bool
}

// Detail links one order line item into a plan with its coarse progress.
type Detail struct {
	id            kernel.UUID
	planID        kernel.UUID
	itemID        kernel.UUID
	status        DetailStatus
	finishedCount int

	isConstructed bool
}

// NewPlan creates an empty production plan for one product category.
func NewPlan(id kernel.UUID, category string, createdBy kernel.UUID, createdAt, startDate time.Time) (*Plan, error) {
	if category == "" {
		return nil, errs.NewValueIsRequiredError("plan category")
	}

	p := &Plan{
		category:      category,
		createdAt:     createdAt,
		startDate:     startDate,
		details:       make([]*Detail, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePlan reconstructs a plan with its details from persistence.
func RestorePlan(
	id kernel.UUID,
	category string,
	createdBy kernel.UUID,
	createdAt, startDate time.Time,
	details []*Detail,
) (*Plan, error) {
	p, err := NewPlan(id, category, createdBy, createdAt, startDate)
	if err != nil {
		return nil, err
	}
	for _, detail := range details {
		if err = detail.Validate(); err != nil {
			return nil, err
		}
	}
	p.details = details
	return p, nil
}

// RestoreDetail reconstructs a plan detail from persistence.
func RestoreDetail(
	id kernel.UUID,
	planID kernel.UUID,
	itemID kernel.UUID,
	status DetailStatus,
	finishedCount int,
) (*Detail, error) {
	if err := errors.Join(
		id.Validate(),
		planID.Validate(),
		itemID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if finishedCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("finished count is invalid",
			fmt.Errorf("%d is negative", finishedCount))
	}

	return &Detail{
		id:            id,
		planID:        planID,
		itemID:        itemID,
		status:        status,
		finishedCount: finishedCount,
		isConstructed: true,
	}, nil
}

// Validate ensures the Plan was created through NewPlan.
func (p *Plan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlanIsNotConstructed
	}
	return nil
}

// ID returns the plan's unique identifier.
func (p *Plan) ID() kernel.UUID { return p.id }

// Category returns the product category the plan batches.
func (p *Plan) Category() string { return p.category }

// CreatedBy returns the creator's identifier.
func (p *Plan) CreatedBy() kernel.UUID { return p.createdBy }

// CreatedAt returns the plan creation timestamp.
func (p *Plan) CreatedAt() time.Time { return p.createdAt }

// StartDate returns the scheduled production start date.
func (p *Plan) StartDate() time.Time { return p.startDate }

// Details returns the plan's item details.
func (p *Plan) Details() []*Detail { return p.details }

// AddDetail links one order line item into the plan with pending status and
// zero finished units.
func (p *Plan) AddDetail(detailID, itemID kernel.UUID) (*Detail, error) {
	if err := errors.Join(detailID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}
	for _, existing := range p.details {
		if existing.ItemID().IsEqual(itemID) {
			return nil, errs.NewConflictError("plan detail", itemID.String())
		}
	}

	detail := &Detail{
		id:            detailID,
		planID:        p.id,
		itemID:        itemID,
		status:        DetailPending,
		finishedCount: 0,
		isConstructed: true,
	}
	p.details = append(p.details, detail)
	return detail, nil
}

func (p *Plan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Plan) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}

// Validate ensures the Detail was created through AddDetail or RestoreDetail.
func (d *Detail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDetailIsNotConstructed
	}
	return nil
}

// ID returns the detail's unique identifier.
func (d *Detail) ID() kernel.UUID { return d.id }

// PlanID returns the owning plan's identifier.
func (d *Detail) PlanID() kernel.UUID { return d.planID }

// ItemID returns the linked order line item's identifier.
func (d *Detail) ItemID() kernel.UUID { return d.itemID }

// Status returns the coarse factory progress.
func (d *Detail) Status() DetailStatus { return d.status }

// FinishedCount returns the number of finished units.
func (d *Detail) FinishedCount() int { return d.finishedCount }

// SetStatus updates the coarse factory progress.
func (d *Detail) SetStatus(status DetailStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// RecordFinished updates the count of finished units.
func (d *Detail) RecordFinished(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("finished count is invalid",
			fmt.Errorf("%d is negative", count))
	}
	d.finishedCount = count
	return nil
}
