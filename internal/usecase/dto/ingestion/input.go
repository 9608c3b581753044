package ingestiondto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one already-parsed row of a provider payment
// statement. Parsing and validation of the raw file belong to the
// ingestion collaborator, not the engine.
type StatementRow struct {
	SaleRef      string           `json:"sale_ref"`
	Gross        *decimal.Decimal `json:"gross,omitempty"`
	DateReceived time.Time        `json:"date_received"`
}
