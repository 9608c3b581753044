package rules

import (
	"github.com/brokerhq/commission-service/internal/domain"
)

// PerformanceKpiBonus rewards the direct adviser when their sales volume
// for the current month, including this sale, reaches the configured
// threshold.
type PerformanceKpiBonus struct{}

func NewPerformanceKpiBonus() *PerformanceKpiBonus {
	return &PerformanceKpiBonus{}
}

func (r *PerformanceKpiBonus) Name() string {
	return "performance_kpi_bonus"
}

func (r *PerformanceKpiBonus) Apply(ctx *Context) (*Result, error) {
	result := &Result{}
	if !ctx.Config.KpiBonusEnabled {
		return result, nil
	}

	total := ctx.MonthlySales
	if base := ctx.Sale.EffectiveBaseValue(); base != nil {
		total = total.Add(*base)
	}
	if total.LessThan(ctx.Config.KpiThreshold) {
		return result, nil
	}

	amount := domain.PercentOf(ctx.Commission.AdviserFeeAmount, ctx.Config.KpiBonusRate)
	result.Bonuses = append(result.Bonuses, &domain.Bonus{
		CommissionID: ctx.Commission.ID,
		Amount:       domain.RoundMoney(amount),
		Reason:       "Monthly sales KPI reached",
		KpiType:      "performance",
		KpiAchieved:  true,
	})

	return result, nil
}
