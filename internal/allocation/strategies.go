package allocation

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// equalSplit divides the total evenly over all active envelopes.
func equalSplit(envelopes []Envelope, total decimal.Decimal, categoryName CategoryNameFunc) []Proposal {
	var active []Envelope
	for _, envelope := range envelopes {
		if envelope.Status == StatusActive {
			active = append(active, envelope)
		}
	}

	if len(active) == 0 {
		return nil
	}

	share := total.Div(decimal.NewFromInt(int64(len(active))))

	proposals := make([]Proposal, 0, len(active))
	for _, envelope := range active {
		proposals = append(proposals, Proposal{
			EnvelopeID:   envelope.ID,
			CategoryName: categoryName(envelope.CategoryID),
			Amount:       share,
			Reason:       "Equal distribution",
		})
	}

	return proposals
}

// prioritySplit allocates in two phases: envelopes with a deficit are
// refilled first, in snapshot order. Whatever remains is distributed over
// the active envelopes without a deficit, weighted by their priority.
func prioritySplit(envelopes []Envelope, total decimal.Decimal, categoryName CategoryNameFunc) []Proposal {
	var proposals []Proposal
	remaining := total

	for _, envelope := range envelopes {
		if !envelope.Deficit.IsPositive() {
			continue
		}

		amount := decimal.Min(envelope.Deficit, remaining)
		proposals = append(proposals, Proposal{
			EnvelopeID:   envelope.ID,
			CategoryName: categoryName(envelope.CategoryID),
			Amount:       amount,
			Reason:       "Deficit recovery",
		})

		remaining = remaining.Sub(amount)
		if !remaining.IsPositive() {
			return proposals
		}
	}

	var weighted []Envelope
	for _, envelope := range envelopes {
		if envelope.Status == StatusActive && !envelope.Deficit.IsPositive() {
			weighted = append(weighted, envelope)
		}
	}

	// Stable so that envelopes with the same priority keep their
	// snapshot order
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].priority() < weighted[j].priority()
	})

	var totalWeight int64
	for _, envelope := range weighted {
		totalWeight += envelope.weight()
	}

	if totalWeight <= 0 {
		return proposals
	}

	for _, envelope := range weighted {
		weight := envelope.weight()
		if weight <= 0 {
			continue
		}

		amount := remaining.Mul(decimal.NewFromInt(weight)).Div(decimal.NewFromInt(totalWeight))
		proposals = append(proposals, Proposal{
			EnvelopeID:   envelope.ID,
			CategoryName: categoryName(envelope.CategoryID),
			Amount:       amount,
			Reason:       fmt.Sprintf("Priority %d", envelope.priority()),
		})
	}

	return proposals
}

// percentageSplit distributes the total proportionally to the current
// allocations. When nothing is allocated yet there is no proportion to
// follow, so the equal strategy is used instead.
func percentageSplit(envelopes []Envelope, total decimal.Decimal, categoryName CategoryNameFunc) []Proposal {
	base := decimal.Zero
	for _, envelope := range envelopes {
		base = base.Add(envelope.Allocated)
	}

	if !base.IsPositive() {
		return equalSplit(envelopes, total, categoryName)
	}

	var proposals []Proposal
	for _, envelope := range envelopes {
		if envelope.Status != StatusActive {
			continue
		}

		share := envelope.Allocated.Div(base)
		proposals = append(proposals, Proposal{
			EnvelopeID:   envelope.ID,
			CategoryName: categoryName(envelope.CategoryID),
			Amount:       total.Mul(share),
			Reason:       fmt.Sprintf("%s%% allocation", share.Mul(decimal.NewFromInt(100)).StringFixed(1)),
		})
	}

	return proposals
}

// manualSplit takes the amounts the user entered verbatim. Entries for
// unknown envelopes and amounts that are not positive are dropped.
// Iteration follows the envelope snapshot so that the output order is
// deterministic.
func manualSplit(envelopes []Envelope, manual map[uuid.UUID]decimal.Decimal, categoryName CategoryNameFunc) []Proposal {
	var proposals []Proposal
	for _, envelope := range envelopes {
		amount, ok := manual[envelope.ID]
		if !ok || !amount.IsPositive() {
			continue
		}

		proposals = append(proposals, Proposal{
			EnvelopeID:   envelope.ID,
			CategoryName: categoryName(envelope.CategoryID),
			Amount:       amount,
			Reason:       "Manual allocation",
		})
	}

	return proposals
}
