package commissiondto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFromStatementInput creates or back-fills a commission from a
// provider statement row. Gross is nil when the statement carries no
// explicit amount and the rate-based fallback applies.
type CreateFromStatementInput struct {
	SaleID        string
	Gross         *decimal.Decimal
	DateReceived  time.Time
	IntegrationID string
}
