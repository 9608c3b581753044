package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusOnHold     PaymentStatus = "ON_HOLD"
	PaymentStatusClawback   PaymentStatus = "CLAWBACK"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// Commission is the monetary fact tied 1:1 to a sale. AdviserFeeAmount
// is derived from NetCommission and AdviserFeePercentage; it is stored
// redundantly for reporting but recomputed on every save.
type Commission struct {
	ID                   string
	SaleID               string
	AdviserID            string
	GrossCommission      decimal.Decimal
	NetCommission        decimal.Decimal
	AdviserFeePercentage decimal.Decimal
	AdviserFeeAmount     decimal.Decimal
	PaymentStatus        PaymentStatus
	DateReceived         time.Time
	DatePaidToAdviser    *time.Time
	CurrencyCode         string
	InvoiceNumber        string
	PaymentReference     string
	IntegrationID        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RecalculateFee re-derives AdviserFeeAmount. Must be called before any
// persist so the stored amount never drifts from the product.
func (c *Commission) RecalculateFee() {
	c.AdviserFeeAmount = RoundMoney(PercentOf(c.NetCommission, c.AdviserFeePercentage))
}

type CommissionRepository interface {
	// CreateCommissionWithModifiers persists the commission together with
	// its cascade output in a single transaction. A unique index on
	// sale_id rejects concurrent duplicate creation.
	CreateCommissionWithModifiers(commission *Commission, overrides []*Override, bonuses []*Bonus) error
	GetCommissionByID(commissionID string) (*Commission, error)
	GetCommissionBySaleID(saleID string) (*Commission, error)
	SaveCommission(commission *Commission) error
	UpdatePaymentStatus(commissionID string, status PaymentStatus) error
	GetCommissionsByAdviserIDs(adviserIDs []string) ([]*Commission, error)
	GetAllCommissions() ([]*Commission, error)
}
