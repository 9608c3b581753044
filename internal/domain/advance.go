package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is an amount issued to an adviser ahead of earned commission.
type Advance struct {
	ID            string
	AdviserID     string
	Amount        decimal.Decimal
	DateIssued    time.Time
	IsFullyRepaid bool
	CreatedAt     time.Time
}

// Repayment applies against an advance, optionally funded by a commission.
type Repayment struct {
	ID           string
	AdvanceID    string
	CommissionID *string
	Amount       decimal.Decimal
	DateRepaid   time.Time
	CreatedAt    time.Time
}

// VestingSchedule defines how a deferred payout vests over time.
type VestingSchedule struct {
	ID                  string
	Name                string
	VestingPeriodMonths int
	CliffMonths         int
	CreatedAt           time.Time
}

// ScheduledPayout is one vested installment for a commission.
type ScheduledPayout struct {
	ID           string
	ScheduleID   string
	CommissionID string
	PayoutDate   time.Time
	Amount       decimal.Decimal
	IsPaid       bool
	CreatedAt    time.Time
}

type AdvanceRepository interface {
	CreateAdvance(advance *Advance) error
	GetAdvanceByID(advanceID string) (*Advance, error)
	GetAdvancesByAdviserID(adviserID string) ([]*Advance, error)
	MarkFullyRepaid(advanceID string) error

	CreateRepayment(repayment *Repayment) error
	GetRepaymentsByAdvanceID(advanceID string) ([]*Repayment, error)
}

type VestingRepository interface {
	CreateSchedule(schedule *VestingSchedule) error
	GetScheduleByID(scheduleID string) (*VestingSchedule, error)

	CreatePayout(payout *ScheduledPayout) error
	GetPayoutsByCommissionID(commissionID string) ([]*ScheduledPayout, error)
	FindDuePayouts(asOf time.Time) ([]*ScheduledPayout, error)
	MarkPayoutPaid(payoutID string) error
}
