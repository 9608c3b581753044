package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionModel struct {
	ID                   string          `gorm:"primaryKey"`
	SaleID               string          `gorm:"uniqueIndex;not null"`
	AdviserID            string          `gorm:"index;not null"`
	GrossCommission      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetCommission        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AdviserFeePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	AdviserFeeAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus        string          `gorm:"index;not null"`
	DateReceived         time.Time
	DatePaidToAdviser    *time.Time
	CurrencyCode         string `gorm:"size:3;not null;default:GBP"`
	InvoiceNumber        string
	PaymentReference     string
	IntegrationID        string `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (CommissionModel) TableName() string {
	return "commissions"
}
