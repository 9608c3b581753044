package rules

import (
	"fmt"

	"github.com/brokerhq/commission-service/internal/domain"
)

// ProductCategoryBonus rewards the direct adviser for selling a product
// from one of the configured priority categories.
type ProductCategoryBonus struct{}

func NewProductCategoryBonus() *ProductCategoryBonus {
	return &ProductCategoryBonus{}
}

func (r *ProductCategoryBonus) Name() string {
	return "product_category_bonus"
}

func (r *ProductCategoryBonus) Apply(ctx *Context) (*Result, error) {
	result := &Result{}
	if !ctx.Config.CategoryBonusEnabled || ctx.ProductCategory == "" {
		return result, nil
	}

	matched := false
	for _, category := range ctx.Config.BonusCategories {
		if category == ctx.ProductCategory {
			matched = true
			break
		}
	}
	if !matched {
		return result, nil
	}

	amount := domain.PercentOf(ctx.Commission.AdviserFeeAmount, ctx.Config.CategoryBonusRate)
	result.Bonuses = append(result.Bonuses, &domain.Bonus{
		CommissionID: ctx.Commission.ID,
		Amount:       domain.RoundMoney(amount),
		Reason:       fmt.Sprintf("Priority category bonus: %s", ctx.ProductCategory),
		KpiType:      "product_category",
		KpiAchieved:  true,
	})

	return result, nil
}
