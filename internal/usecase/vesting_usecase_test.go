package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerhq/commission-service/internal/domain"
)

func newVestingFixture() (*fakeVestingRepo, *DefaultVestingUsecase) {
	vestingRepo := newFakeVestingRepo()
	commissionRepo := newFakeCommissionRepo()
	commissionRepo.commissions["comm-1"] = &domain.Commission{
		ID:               "comm-1",
		SaleID:           "sale-1",
		AdviserFeeAmount: dec("1000.00"),
	}
	return vestingRepo, NewDefaultVestingUsecase(vestingRepo, commissionRepo)
}

func TestSchedulePayouts_InstallmentsSumExactly(t *testing.T) {
	vestingRepo, uc := newVestingFixture()
	schedule, err := uc.CreateSchedule("3 month vest", 3, 0)
	require.NoError(t, err)

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	payouts, err := uc.SchedulePayouts("comm-1", schedule.ID, dec("1000.00"), start)
	require.NoError(t, err)
	require.Len(t, payouts, 3)

	total := decimal.Zero
	for _, payout := range payouts {
		total = total.Add(payout.Amount)
	}
	assert.Equal(t, "1000", total.String())
	// 333.33 + 333.33 + 333.34: the last installment absorbs the
	// rounding remainder.
	assert.Equal(t, "333.33", payouts[0].Amount.String())
	assert.Equal(t, "333.34", payouts[2].Amount.String())
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), payouts[0].PayoutDate)

	assert.Len(t, vestingRepo.payouts, 3)
}

func TestSchedulePayouts_CliffShiftsDates(t *testing.T) {
	_, uc := newVestingFixture()
	schedule, err := uc.CreateSchedule("cliff vest", 2, 6)
	require.NoError(t, err)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	payouts, err := uc.SchedulePayouts("comm-1", schedule.ID, dec("500.00"), start)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), payouts[0].PayoutDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), payouts[1].PayoutDate)
}

func TestSchedulePayouts_UnknownCommission(t *testing.T) {
	_, uc := newVestingFixture()
	schedule, err := uc.CreateSchedule("vest", 3, 0)
	require.NoError(t, err)

	_, err = uc.SchedulePayouts("gone", schedule.ID, dec("100.00"), time.Now())
	assert.ErrorIs(t, err, domain.ErrCommissionNotFound)
}

func TestReleaseDuePayouts(t *testing.T) {
	vestingRepo, uc := newVestingFixture()
	schedule, err := uc.CreateSchedule("vest", 2, 0)
	require.NoError(t, err)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	payouts, err := uc.SchedulePayouts("comm-1", schedule.ID, dec("400.00"), start)
	require.NoError(t, err)

	// Only the first installment is due by mid-February.
	released, err := uc.ReleaseDuePayouts(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, released)
	assert.True(t, vestingRepo.payouts[payouts[0].ID].IsPaid)
	assert.False(t, vestingRepo.payouts[payouts[1].ID].IsPaid)

	// Second run with nothing newly due releases nothing.
	released, err = uc.ReleaseDuePayouts(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, released)
}
