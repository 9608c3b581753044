package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

type VestingUsecase interface {
	CreateSchedule(name string, vestingMonths, cliffMonths int) (*domain.VestingSchedule, error)
	SchedulePayouts(commissionID, scheduleID string, total decimal.Decimal, start time.Time) ([]*domain.ScheduledPayout, error)
	ReleaseDuePayouts(asOf time.Time) (int, error)
}

type DefaultVestingUsecase struct {
	VestingRepo    domain.VestingRepository
	CommissionRepo domain.CommissionRepository
}

func NewDefaultVestingUsecase(vestingRepo domain.VestingRepository, commissionRepo domain.CommissionRepository) *DefaultVestingUsecase {
	return &DefaultVestingUsecase{
		VestingRepo:    vestingRepo,
		CommissionRepo: commissionRepo,
	}
}

func (uc *DefaultVestingUsecase) CreateSchedule(name string, vestingMonths, cliffMonths int) (*domain.VestingSchedule, error) {
	schedule := &domain.VestingSchedule{
		ID:                  uuid.New().String(),
		Name:                name,
		VestingPeriodMonths: vestingMonths,
		CliffMonths:         cliffMonths,
		CreatedAt:           time.Now(),
	}
	if err := uc.VestingRepo.CreateSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SchedulePayouts splits a total into equal monthly installments after
// the cliff. The last installment absorbs the rounding remainder so the
// installments always sum to the total exactly.
func (uc *DefaultVestingUsecase) SchedulePayouts(commissionID, scheduleID string, total decimal.Decimal, start time.Time) ([]*domain.ScheduledPayout, error) {
	if !total.IsPositive() {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.CommissionRepo.GetCommissionByID(commissionID); err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	schedule, err := uc.VestingRepo.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, err
	}

	months := schedule.VestingPeriodMonths
	if months < 1 {
		months = 1
	}
	installment := domain.RoundMoney(total.Div(decimal.NewFromInt(int64(months))))

	payouts := make([]*domain.ScheduledPayout, 0, months)
	allocated := decimal.Zero
	for i := 0; i < months; i++ {
		amount := installment
		if i == months-1 {
			amount = total.Sub(allocated)
		}
		allocated = allocated.Add(amount)

		payout := &domain.ScheduledPayout{
			ID:           uuid.New().String(),
			ScheduleID:   scheduleID,
			CommissionID: commissionID,
			PayoutDate:   start.AddDate(0, schedule.CliffMonths+i+1, 0),
			Amount:       amount,
			CreatedAt:    time.Now(),
		}
		if err := uc.VestingRepo.CreatePayout(payout); err != nil {
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	return payouts, nil
}

// ReleaseDuePayouts marks every installment due by asOf as paid and
// returns how many were released.
func (uc *DefaultVestingUsecase) ReleaseDuePayouts(asOf time.Time) (int, error) {
	due, err := uc.VestingRepo.FindDuePayouts(asOf)
	if err != nil {
		return 0, err
	}
	released := 0
	for _, payout := range due {
		if payout.IsPaid {
			continue
		}
		if err := uc.VestingRepo.MarkPayoutPaid(payout.ID); err != nil {
			slog.Error("failed to mark payout paid", "payout_id", payout.ID, "error", err.Error())
			continue
		}
		released++
	}
	return released, nil
}
