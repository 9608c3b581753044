package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleModel struct {
	ID             string  `gorm:"primaryKey"`
	ExternalRef    string  `gorm:"uniqueIndex;not null"`
	AdviserID      string  `gorm:"index"`
	ProviderID     string  `gorm:"index"`
	ProductTypeID  string
	Status         string           `gorm:"index;not null"`
	BaseValue      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	MonthlyPremium *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CurrencyCode   string           `gorm:"size:3;not null;default:GBP"`
	StartDate      time.Time
	ExpiryDate     *time.Time
	ReminderSent   bool `gorm:"not null;default:false"`
	ReminderDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SaleModel) TableName() string {
	return "sales"
}
