package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

type AdvanceUsecase interface {
	IssueAdvance(adviserID string, amount decimal.Decimal, dateIssued time.Time) (*domain.Advance, error)
	RecordRepayment(advanceID string, commissionID *string, amount decimal.Decimal, dateRepaid time.Time) (*domain.Repayment, error)
	OutstandingBalance(advanceID string) (decimal.Decimal, error)
}

type DefaultAdvanceUsecase struct {
	AdvanceRepo domain.AdvanceRepository
	AdviserRepo domain.AdviserRepository
}

func NewDefaultAdvanceUsecase(advanceRepo domain.AdvanceRepository, adviserRepo domain.AdviserRepository) *DefaultAdvanceUsecase {
	return &DefaultAdvanceUsecase{
		AdvanceRepo: advanceRepo,
		AdviserRepo: adviserRepo,
	}
}

func (uc *DefaultAdvanceUsecase) IssueAdvance(adviserID string, amount decimal.Decimal, dateIssued time.Time) (*domain.Advance, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.AdviserRepo.GetAdviserByID(adviserID); err != nil {
		return nil, domain.ErrAdviserNotFound
	}
	advance := &domain.Advance{
		ID:         uuid.New().String(),
		AdviserID:  adviserID,
		Amount:     domain.RoundMoney(amount),
		DateIssued: dateIssued,
		CreatedAt:  time.Now(),
	}
	if err := uc.AdvanceRepo.CreateAdvance(advance); err != nil {
		return nil, err
	}
	return advance, nil
}

// RecordRepayment applies a repayment against an advance. Cumulative
// repayments may never exceed the advance amount; the advance flips to
// fully repaid when the balance reaches zero.
func (uc *DefaultAdvanceUsecase) RecordRepayment(advanceID string, commissionID *string, amount decimal.Decimal, dateRepaid time.Time) (*domain.Repayment, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	advance, err := uc.AdvanceRepo.GetAdvanceByID(advanceID)
	if err != nil {
		return nil, domain.ErrAdvanceNotFound
	}

	repaid, err := uc.sumRepayments(advanceID)
	if err != nil {
		return nil, err
	}
	if repaid.Add(amount).GreaterThan(advance.Amount) {
		return nil, domain.ErrRepaymentExceedsAdvance
	}

	repayment := &domain.Repayment{
		ID:           uuid.New().String(),
		AdvanceID:    advanceID,
		CommissionID: commissionID,
		Amount:       domain.RoundMoney(amount),
		DateRepaid:   dateRepaid,
		CreatedAt:    time.Now(),
	}
	if err := uc.AdvanceRepo.CreateRepayment(repayment); err != nil {
		return nil, err
	}

	if repaid.Add(repayment.Amount).Equal(advance.Amount) && !advance.IsFullyRepaid {
		if err := uc.AdvanceRepo.MarkFullyRepaid(advanceID); err != nil {
			return nil, err
		}
	}
	return repayment, nil
}

func (uc *DefaultAdvanceUsecase) OutstandingBalance(advanceID string) (decimal.Decimal, error) {
	advance, err := uc.AdvanceRepo.GetAdvanceByID(advanceID)
	if err != nil {
		return decimal.Zero, domain.ErrAdvanceNotFound
	}
	repaid, err := uc.sumRepayments(advanceID)
	if err != nil {
		return decimal.Zero, err
	}
	return advance.Amount.Sub(repaid), nil
}

func (uc *DefaultAdvanceUsecase) sumRepayments(advanceID string) (decimal.Decimal, error) {
	repayments, err := uc.AdvanceRepo.GetRepaymentsByAdvanceID(advanceID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, repayment := range repayments {
		total = total.Add(repayment.Amount)
	}
	return total, nil
}
