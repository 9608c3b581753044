package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdvanceModel struct {
	ID            string          `gorm:"primaryKey"`
	AdviserID     string          `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DateIssued    time.Time
	IsFullyRepaid bool `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

func (AdvanceModel) TableName() string {
	return "advances"
}

type RepaymentModel struct {
	ID           string          `gorm:"primaryKey"`
	AdvanceID    string          `gorm:"index;not null"`
	CommissionID *string         `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DateRepaid   time.Time
	CreatedAt    time.Time
}

func (RepaymentModel) TableName() string {
	return "repayments"
}

type VestingScheduleModel struct {
	ID                  string `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	VestingPeriodMonths int    `gorm:"not null"`
	CliffMonths         int    `gorm:"not null;default:0"`
	CreatedAt           time.Time
}

func (VestingScheduleModel) TableName() string {
	return "vesting_schedules"
}

type ScheduledPayoutModel struct {
	ID           string          `gorm:"primaryKey"`
	ScheduleID   string          `gorm:"index;not null"`
	CommissionID string          `gorm:"index;not null"`
	PayoutDate   time.Time       `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsPaid       bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (ScheduledPayoutModel) TableName() string {
	return "scheduled_payouts"
}
