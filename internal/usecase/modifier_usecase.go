package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

type ModifierUsecase interface {
	ReleaseRetention(retentionID string) error
	RecoverClawback(clawbackID string) error
	AddRetention(commissionID string, amount decimal.Decimal, reason string, periodMonths int) (*domain.Retention, error)
	AddBonus(actorID, commissionID string, amount decimal.Decimal, reason, kpiType string) (*domain.Bonus, error)
	AddReferralFee(commissionID string, amount decimal.Decimal, sourceName, sourceType, agreementID string) (*domain.ReferralFee, error)
	AddSplit(commissionID, adviserID string, splitPercentage decimal.Decimal) (*domain.CommissionSplit, error)
	EffectivePayout(commissionID string) (decimal.Decimal, error)
}

type DefaultModifierUsecase struct {
	ModifierRepo   domain.ModifierRepository
	CommissionRepo domain.CommissionRepository
	AdviserRepo    domain.AdviserRepository
}

func NewDefaultModifierUsecase(
	modifierRepo domain.ModifierRepository,
	commissionRepo domain.CommissionRepository,
	adviserRepo domain.AdviserRepository) *DefaultModifierUsecase {

	return &DefaultModifierUsecase{
		ModifierRepo:   modifierRepo,
		CommissionRepo: commissionRepo,
		AdviserRepo:    adviserRepo,
	}
}

// ReleaseRetention marks a retention as paid back. Releasing an already
// released retention is a no-op.
func (uc *DefaultModifierUsecase) ReleaseRetention(retentionID string) error {
	retention, err := uc.ModifierRepo.GetRetentionByID(retentionID)
	if err != nil {
		return domain.ErrModifierNotFound
	}
	if retention.IsReleased {
		return nil
	}
	return uc.ModifierRepo.ReleaseRetention(retentionID, time.Now())
}

// RecoverClawback transitions a clawback to recovered, idempotently.
func (uc *DefaultModifierUsecase) RecoverClawback(clawbackID string) error {
	clawback, err := uc.ModifierRepo.GetClawbackByID(clawbackID)
	if err != nil {
		return domain.ErrModifierNotFound
	}
	if clawback.Status == domain.ClawbackStatusRecovered {
		return nil
	}
	return uc.ModifierRepo.UpdateClawbackStatus(clawbackID, domain.ClawbackStatusRecovered)
}

func (uc *DefaultModifierUsecase) AddRetention(commissionID string, amount decimal.Decimal, reason string, periodMonths int) (*domain.Retention, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.CommissionRepo.GetCommissionByID(commissionID); err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	retention := &domain.Retention{
		ID:                    uuid.New().String(),
		CommissionID:          commissionID,
		Amount:                domain.RoundMoney(amount),
		Reason:                reason,
		RetentionPeriodMonths: periodMonths,
		CreatedAt:             time.Now(),
	}
	if err := uc.ModifierRepo.CreateRetention(retention); err != nil {
		return nil, err
	}
	return retention, nil
}

// AddBonus creates a discretionary bonus. Only managers and admins may
// grant bonuses.
func (uc *DefaultModifierUsecase) AddBonus(actorID, commissionID string, amount decimal.Decimal, reason, kpiType string) (*domain.Bonus, error) {
	actor, err := uc.AdviserRepo.GetAdviserByID(actorID)
	if err != nil {
		return nil, domain.ErrAdviserNotFound
	}
	if !actor.IsManager() {
		return nil, domain.ErrNotAuthorized
	}
	if !amount.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.CommissionRepo.GetCommissionByID(commissionID); err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	bonus := &domain.Bonus{
		ID:           uuid.New().String(),
		CommissionID: commissionID,
		Amount:       domain.RoundMoney(amount),
		Reason:       reason,
		KpiType:      kpiType,
		CreatedAt:    time.Now(),
	}
	if err := uc.ModifierRepo.CreateBonus(bonus); err != nil {
		return nil, err
	}
	return bonus, nil
}

func (uc *DefaultModifierUsecase) AddReferralFee(commissionID string, amount decimal.Decimal, sourceName, sourceType, agreementID string) (*domain.ReferralFee, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.CommissionRepo.GetCommissionByID(commissionID); err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	fee := &domain.ReferralFee{
		ID:                  uuid.New().String(),
		CommissionID:        commissionID,
		Amount:              domain.RoundMoney(amount),
		Reason:              fmt.Sprintf("Referral fee to %s", sourceName),
		ReferralSourceName:  sourceName,
		ReferralSourceType:  sourceType,
		ReferralAgreementID: agreementID,
		CreatedAt:           time.Now(),
	}
	if err := uc.ModifierRepo.CreateReferralFee(fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// AddSplit shares the adviser fee with another adviser. The split amount
// is derived from the stored adviser fee at creation time.
func (uc *DefaultModifierUsecase) AddSplit(commissionID, adviserID string, splitPercentage decimal.Decimal) (*domain.CommissionSplit, error) {
	minSplit := decimal.NewFromFloat(0.01)
	if splitPercentage.LessThan(minSplit) || !domain.ValidPercentage(splitPercentage) {
		return nil, domain.ErrInvalidPercentage
	}
	commission, err := uc.CommissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	if _, err := uc.AdviserRepo.GetAdviserByID(adviserID); err != nil {
		return nil, domain.ErrAdviserNotFound
	}
	split := &domain.CommissionSplit{
		ID:              uuid.New().String(),
		CommissionID:    commissionID,
		AdviserID:       adviserID,
		SplitPercentage: splitPercentage,
		SplitAmount:     domain.RoundMoney(domain.PercentOf(commission.AdviserFeeAmount, splitPercentage)),
		CreatedAt:       time.Now(),
	}
	if err := uc.ModifierRepo.CreateSplit(split); err != nil {
		return nil, err
	}
	return split, nil
}

// EffectivePayout aggregates the adviser's take for a commission:
// fee - held retentions + clawbacks (already negative) + bonuses.
func (uc *DefaultModifierUsecase) EffectivePayout(commissionID string) (decimal.Decimal, error) {
	commission, err := uc.CommissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return decimal.Zero, domain.ErrCommissionNotFound
	}

	payout := commission.AdviserFeeAmount

	retentions, err := uc.ModifierRepo.GetRetentionsByCommissionID(commissionID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, retention := range retentions {
		if !retention.IsReleased {
			payout = payout.Sub(retention.Amount)
		}
	}

	clawbacks, err := uc.ModifierRepo.GetClawbacksByCommissionID(commissionID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, clawback := range clawbacks {
		payout = payout.Add(clawback.Amount)
	}

	bonuses, err := uc.ModifierRepo.GetBonusesByCommissionID(commissionID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, bonus := range bonuses {
		if bonus.RecipientID == "" || bonus.RecipientID == commission.AdviserID {
			payout = payout.Add(bonus.Amount)
		}
	}

	return domain.RoundMoney(payout), nil
}
