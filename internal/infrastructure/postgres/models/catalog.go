package models

import "github.com/shopspring/decimal"

type ProviderModel struct {
	ID               string          `gorm:"primaryKey"`
	Name             string          `gorm:"uniqueIndex;not null"`
	DefaultGrossRate decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	DefaultNetRate   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
}

func (ProviderModel) TableName() string {
	return "providers"
}

type ProductTypeModel struct {
	ID                string `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;not null"`
	Category          string
	GrossRateOverride *decimal.Decimal `gorm:"type:numeric(5,2)"`
	NetRateOverride   *decimal.Decimal `gorm:"type:numeric(5,2)"`
}

func (ProductTypeModel) TableName() string {
	return "product_types"
}
