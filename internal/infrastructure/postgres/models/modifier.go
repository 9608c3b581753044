package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OverrideModel struct {
	ID           string          `gorm:"primaryKey"`
	CommissionID string          `gorm:"index;uniqueIndex:idx_override_recipient;not null"`
	RecipientID  string          `gorm:"uniqueIndex:idx_override_recipient;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason       string
	CreatedAt    time.Time
}

func (OverrideModel) TableName() string {
	return "overrides"
}

type RetentionModel struct {
	ID                    string          `gorm:"primaryKey"`
	CommissionID          string          `gorm:"index;not null"`
	Amount                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason                string
	IsReleased            bool `gorm:"not null;default:false"`
	ReleaseDate           *time.Time
	RetentionPeriodMonths int
	CreatedAt             time.Time
}

func (RetentionModel) TableName() string {
	return "retentions"
}

type ClawbackModel struct {
	ID                   string          `gorm:"primaryKey"`
	CommissionID         string          `gorm:"index;not null"`
	Amount               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason               string
	Status               string `gorm:"not null"`
	ClawbackPeriodMonths int
	CreatedAt            time.Time
}

func (ClawbackModel) TableName() string {
	return "clawbacks"
}

type BonusModel struct {
	ID           string          `gorm:"primaryKey"`
	CommissionID string          `gorm:"index;not null"`
	RecipientID  string          `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason       string
	KpiType      string
	KpiAchieved  bool
	CreatedAt    time.Time
}

func (BonusModel) TableName() string {
	return "bonuses"
}

type ReferralFeeModel struct {
	ID                  string          `gorm:"primaryKey"`
	CommissionID        string          `gorm:"index;not null"`
	Amount              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason              string
	ReferralSourceName  string
	ReferralSourceType  string
	ReferralAgreementID string
	CreatedAt           time.Time
}

func (ReferralFeeModel) TableName() string {
	return "referral_fees"
}

type CommissionSplitModel struct {
	ID              string          `gorm:"primaryKey"`
	CommissionID    string          `gorm:"index;not null"`
	AdviserID       string          `gorm:"index;not null"`
	SplitPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	SplitAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
}

func (CommissionSplitModel) TableName() string {
	return "commission_splits"
}
