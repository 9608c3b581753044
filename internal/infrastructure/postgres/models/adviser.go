package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdviserModel struct {
	ID            string          `gorm:"primaryKey"`
	DisplayName   string          `gorm:"not null"`
	FeePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ParentID      *string         `gorm:"index"`
	Active        bool            `gorm:"not null;default:true"`
	Role          string          `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AdviserModel) TableName() string {
	return "advisers"
}
