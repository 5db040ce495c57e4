// Package allocation computes bulk fund-allocation previews for envelopes.
//
// A preview proposes how a target amount could be distributed over the
// envelopes of a budget month. It is a pure computation: the caller supplies
// a snapshot of the envelopes and receives a list of proposals, nothing is
// persisted here. Applying a preview is done by creating Allocation
// resources from the proposals.
package allocation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the funding status of an envelope.
//
// swagger:enum Status
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusOverspent Status = "OVERSPENT"
	StatusDepleted  Status = "DEPLETED"
)

// Mode selects the strategy used to distribute funds.
//
// swagger:enum Mode
type Mode string

const (
	ModeEqual      Mode = "EQUAL"      // every active envelope gets the same share
	ModePriority   Mode = "PRIORITY"   // deficits first, then weighted by priority
	ModePercentage Mode = "PERCENTAGE" // proportional to the current allocations
	ModeManual     Mode = "MANUAL"     // amounts as entered by the user
)

// Valid reports whether the mode is one of the known distribution strategies.
func (m Mode) Valid() bool {
	return m == ModeEqual || m == ModePriority || m == ModePercentage || m == ModeManual
}

// defaultPriority is assumed for envelopes without an explicit priority.
const defaultPriority = 5

// Envelope is the snapshot of a single envelope that the calculator
// works on. All amounts refer to one specific month and are maintained
// by the caller, the calculator only reads them.
type Envelope struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Allocated     decimal.Decimal // the amount currently allocated
	Spent         decimal.Decimal // the amount spent
	Deficit       decimal.Decimal // max(0, spent - allocated)
	Available     decimal.Decimal // max(0, allocated - spent)
	Status        Status
	Priority      *uint8 // 1 is the highest priority, nil defaults to 5
	EmergencyFund bool
}

// priority returns the envelope priority, defaulting when unset.
func (e Envelope) priority() int64 {
	if e.Priority == nil {
		return defaultPriority
	}

	return int64(*e.Priority)
}

// weight returns the distribution weight for the priority phase.
func (e Envelope) weight() int64 {
	return 10 - e.priority()
}

// Proposal is the proposed allocation for a single envelope.
type Proposal struct {
	EnvelopeID   uuid.UUID       `json:"envelopeId" example:"a7b7dbee-b0e1-4c0f-97a9-1a6bb839ff1c"`   // ID of the envelope funds are proposed for
	CategoryName string          `json:"categoryName" example:"Running costs"`                        // Name of the envelope's category, for display
	Amount       decimal.Decimal `json:"amount" example:"130.75"`                                     // Proposed amount
	Reason       string          `json:"reason" example:"Deficit recovery"`                           // Why this envelope receives this amount
}

// Preview is the result of a preview computation.
type Preview struct {
	Proposals      []Proposal      `json:"proposals"`                            // Proposed allocations, in strategy order
	TotalAllocated decimal.Decimal `json:"totalAllocated" example:"500"`         // Sum of all proposed amounts
	Difference     decimal.Decimal `json:"difference" example:"0"`               // Target amount minus TotalAllocated
}

// CategoryNameFunc resolves a category ID to a display name. Implementations
// return a placeholder for unknown IDs instead of failing.
type CategoryNameFunc func(id uuid.UUID) string

// ComputePreview distributes total over the envelopes according to the
// selected mode and returns the resulting proposals.
//
// A total that is zero or negative means "nothing to allocate yet" and
// produces an empty preview. The same applies to an unknown mode and to
// strategies that find no eligible envelopes. ComputePreview never fails.
func ComputePreview(envelopes []Envelope, total decimal.Decimal, mode Mode, manual map[uuid.UUID]decimal.Decimal, categoryName CategoryNameFunc) Preview {
	preview := Preview{
		Proposals: []Proposal{},
	}

	if !total.IsPositive() {
		return preview
	}

	var proposals []Proposal
	switch mode {
	case ModeEqual:
		proposals = equalSplit(envelopes, total, categoryName)
	case ModePriority:
		proposals = prioritySplit(envelopes, total, categoryName)
	case ModePercentage:
		proposals = percentageSplit(envelopes, total, categoryName)
	case ModeManual:
		proposals = manualSplit(envelopes, manual, categoryName)
	default:
		return preview
	}

	for _, proposal := range proposals {
		preview.TotalAllocated = preview.TotalAllocated.Add(proposal.Amount)
	}

	preview.Proposals = append(preview.Proposals, proposals...)
	preview.Difference = total.Sub(preview.TotalAllocated)

	return preview
}
