// Package rules holds the pluggable commission rules applied when a
// commission is created. The percentage-delta override cascade is the
// principal mechanism; the bonus variants are independent add-ons
// enabled through domain.RateConfig.
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

// Context is the read-only snapshot a rule computes from. Ancestors is
// the direct adviser's management chain, nearest manager first, resolved
// at computation time. Existing overrides are never recomputed when the
// hierarchy changes later.
type Context struct {
	Sale            *domain.Sale
	Adviser         *domain.Adviser
	Ancestors       []*domain.Adviser
	Commission      *domain.Commission
	ProductCategory string
	MonthlySales    decimal.Decimal
	Config          domain.RateConfig
}

// Result carries the modifiers a rule wants persisted alongside the
// commission. Rules never write; the caller persists atomically.
type Result struct {
	Overrides []*domain.Override
	Bonuses   []*domain.Bonus
}

type CommissionRule interface {
	Name() string
	Apply(ctx *Context) (*Result, error)
}
