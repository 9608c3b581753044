package rules

import (
	"fmt"

	"github.com/brokerhq/commission-service/internal/domain"
)

// HierarchicalFlatBonus pays the direct manager a fixed share of the
// adviser's fee, independent of percentage deltas. Legacy scheme kept as
// an opt-in add-on next to the cascade.
type HierarchicalFlatBonus struct{}

func NewHierarchicalFlatBonus() *HierarchicalFlatBonus {
	return &HierarchicalFlatBonus{}
}

func (r *HierarchicalFlatBonus) Name() string {
	return "hierarchical_flat_bonus"
}

func (r *HierarchicalFlatBonus) Apply(ctx *Context) (*Result, error) {
	result := &Result{}
	if !ctx.Config.FlatBonusEnabled || len(ctx.Ancestors) == 0 {
		return result, nil
	}

	manager := ctx.Ancestors[0]
	amount := domain.PercentOf(ctx.Commission.AdviserFeeAmount, ctx.Config.FlatBonusRate)
	result.Bonuses = append(result.Bonuses, &domain.Bonus{
		CommissionID: ctx.Commission.ID,
		RecipientID:  manager.ID,
		Amount:       domain.RoundMoney(amount),
		Reason:       fmt.Sprintf("Management bonus for %s", manager.DisplayName),
		KpiType:      "hierarchical",
		KpiAchieved:  true,
	})

	return result, nil
}
