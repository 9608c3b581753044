package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClawbackStatus string

const (
	ClawbackStatusPending   ClawbackStatus = "PENDING"
	ClawbackStatusRecovered ClawbackStatus = "RECOVERED"
)

// Override is a commission payment to an ancestor manager, derived from
// the fee-percentage gap against the adviser immediately below them.
type Override struct {
	ID           string
	CommissionID string
	RecipientID  string
	Amount       decimal.Decimal
	Reason       string
	CreatedAt    time.Time
}

// Retention is an amount withheld from the adviser's payout until released.
type Retention struct {
	ID                    string
	CommissionID          string
	Amount                decimal.Decimal
	Reason                string
	IsReleased            bool
	ReleaseDate           *time.Time
	RetentionPeriodMonths int
	CreatedAt             time.Time
}

// Clawback reverses a previously paid fee or override. Amount is negative
// by convention.
type Clawback struct {
	ID                   string
	CommissionID         string
	Amount               decimal.Decimal
	Reason               string
	Status               ClawbackStatus
	ClawbackPeriodMonths int
	CreatedAt            time.Time
}

// Bonus is an additional positive payment. RecipientID is empty when the
// bonus goes to the direct adviser.
type Bonus struct {
	ID           string
	CommissionID string
	RecipientID  string
	Amount       decimal.Decimal
	Reason       string
	KpiType      string
	KpiAchieved  bool
	CreatedAt    time.Time
}

type ReferralFee struct {
	ID                  string
	CommissionID        string
	Amount              decimal.Decimal
	Reason              string
	ReferralSourceName  string
	ReferralSourceType  string
	ReferralAgreementID string
	CreatedAt           time.Time
}

// CommissionSplit shares one commission's adviser fee between advisers.
// SplitAmount is derived from the fee and SplitPercentage on creation.
type CommissionSplit struct {
	ID              string
	CommissionID    string
	AdviserID       string
	SplitPercentage decimal.Decimal
	SplitAmount     decimal.Decimal
	CreatedAt       time.Time
}

type ModifierRepository interface {
	CreateOverride(override *Override) error
	GetOverridesByCommissionID(commissionID string) ([]*Override, error)

	CreateRetention(retention *Retention) error
	GetRetentionByID(retentionID string) (*Retention, error)
	GetRetentionsByCommissionID(commissionID string) ([]*Retention, error)
	ReleaseRetention(retentionID string, releasedAt time.Time) error

	CreateClawback(clawback *Clawback) error
	GetClawbackByID(clawbackID string) (*Clawback, error)
	GetClawbacksByCommissionID(commissionID string) ([]*Clawback, error)
	UpdateClawbackStatus(clawbackID string, status ClawbackStatus) error

	CreateBonus(bonus *Bonus) error
	GetBonusesByCommissionID(commissionID string) ([]*Bonus, error)

	CreateReferralFee(fee *ReferralFee) error
	GetReferralFeesByCommissionID(commissionID string) ([]*ReferralFee, error)

	CreateSplit(split *CommissionSplit) error
	GetSplitsByCommissionID(commissionID string) ([]*CommissionSplit, error)
}
