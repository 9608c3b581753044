package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusInReview  SaleStatus = "IN_REVIEW"
	SaleStatusActive    SaleStatus = "ACTIVE"
	SaleStatusCancelled SaleStatus = "CANCELLED"
	SaleStatusLapsed    SaleStatus = "LAPSED"
)

// Sale is the generalized policy / mortgage case: the fact a commission
// is paid against. BaseValue is the annual premium value or loan amount.
type Sale struct {
	ID             string
	ExternalRef    string
	AdviserID      string
	ProviderID     string
	ProductTypeID  string
	Status         SaleStatus
	BaseValue      *decimal.Decimal
	MonthlyPremium *decimal.Decimal
	CurrencyCode   string
	StartDate      time.Time
	ExpiryDate     *time.Time
	ReminderSent   bool
	ReminderDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveBaseValue resolves the monetary base, annualizing the monthly
// premium when no explicit base value is present. Returns nil when the
// sale carries no usable base at all.
func (s *Sale) EffectiveBaseValue() *decimal.Decimal {
	if s.BaseValue != nil {
		return s.BaseValue
	}
	if s.MonthlyPremium != nil {
		annual := s.MonthlyPremium.Mul(decimal.NewFromInt(12))
		return &annual
	}
	return nil
}

type SaleRepository interface {
	CreateSale(sale *Sale) error
	GetSaleByID(saleID string) (*Sale, error)
	GetSaleByExternalRef(externalRef string) (*Sale, error)
	UpdateSaleStatus(saleID string, status SaleStatus) error
	MarkReminderSent(saleID string, sentAt time.Time) error
	FindExpiringSales(from, to time.Time) ([]*Sale, error)
	SumBaseValueByAdviser(adviserID, excludeSaleID string, from, to time.Time) (decimal.Decimal, error)
}
