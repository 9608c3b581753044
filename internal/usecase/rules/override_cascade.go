package rules

import (
	"fmt"

	"github.com/brokerhq/commission-service/internal/domain"
)

// PercentageDeltaOverride walks the management chain upward and creates
// one override per ancestor whose fee percentage exceeds the percentage
// of the adviser immediately below them. The baseline moves to each
// manager's own percentage even when no override is created, so a flat
// link does not break the chain: overrides are marginal layer by layer,
// not cumulative from the root.
type PercentageDeltaOverride struct{}

func NewPercentageDeltaOverride() *PercentageDeltaOverride {
	return &PercentageDeltaOverride{}
}

func (r *PercentageDeltaOverride) Name() string {
	return "percentage_delta_override"
}

func (r *PercentageDeltaOverride) Apply(ctx *Context) (*Result, error) {
	result := &Result{}

	below := ctx.Adviser
	lastFeePct := ctx.Commission.AdviserFeePercentage

	for _, manager := range ctx.Ancestors {
		delta := manager.FeePercentage.Sub(lastFeePct)
		if delta.IsPositive() {
			amount := domain.PercentOf(ctx.Commission.NetCommission, delta)
			result.Overrides = append(result.Overrides, &domain.Override{
				CommissionID: ctx.Commission.ID,
				RecipientID:  manager.ID,
				Amount:       domain.RoundMoney(amount),
				Reason:       fmt.Sprintf("Override from %s", below.DisplayName),
			})
		}
		below = manager
		lastFeePct = manager.FeePercentage
	}

	return result, nil
}
