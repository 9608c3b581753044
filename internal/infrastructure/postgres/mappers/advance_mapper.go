package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainAdvance(model *models.AdvanceModel) *domain.Advance {
	return &domain.Advance{
		ID:            model.ID,
		AdviserID:     model.AdviserID,
		Amount:        model.Amount,
		DateIssued:    model.DateIssued,
		IsFullyRepaid: model.IsFullyRepaid,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMAdvance(advance *domain.Advance) *models.AdvanceModel {
	return &models.AdvanceModel{
		ID:            advance.ID,
		AdviserID:     advance.AdviserID,
		Amount:        advance.Amount,
		DateIssued:    advance.DateIssued,
		IsFullyRepaid: advance.IsFullyRepaid,
		CreatedAt:     advance.CreatedAt,
	}
}

func ToDomainRepayment(model *models.RepaymentModel) *domain.Repayment {
	return &domain.Repayment{
		ID:           model.ID,
		AdvanceID:    model.AdvanceID,
		CommissionID: model.CommissionID,
		Amount:       model.Amount,
		DateRepaid:   model.DateRepaid,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMRepayment(repayment *domain.Repayment) *models.RepaymentModel {
	return &models.RepaymentModel{
		ID:           repayment.ID,
		AdvanceID:    repayment.AdvanceID,
		CommissionID: repayment.CommissionID,
		Amount:       repayment.Amount,
		DateRepaid:   repayment.DateRepaid,
		CreatedAt:    repayment.CreatedAt,
	}
}

func ToDomainSchedule(model *models.VestingScheduleModel) *domain.VestingSchedule {
	return &domain.VestingSchedule{
		ID:                  model.ID,
		Name:                model.Name,
		VestingPeriodMonths: model.VestingPeriodMonths,
		CliffMonths:         model.CliffMonths,
		CreatedAt:           model.CreatedAt,
	}
}

func ToGORMSchedule(schedule *domain.VestingSchedule) *models.VestingScheduleModel {
	return &models.VestingScheduleModel{
		ID:                  schedule.ID,
		Name:                schedule.Name,
		VestingPeriodMonths: schedule.VestingPeriodMonths,
		CliffMonths:         schedule.CliffMonths,
		CreatedAt:           schedule.CreatedAt,
	}
}

func ToDomainPayout(model *models.ScheduledPayoutModel) *domain.ScheduledPayout {
	return &domain.ScheduledPayout{
		ID:           model.ID,
		ScheduleID:   model.ScheduleID,
		CommissionID: model.CommissionID,
		PayoutDate:   model.PayoutDate,
		Amount:       model.Amount,
		IsPaid:       model.IsPaid,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMPayout(payout *domain.ScheduledPayout) *models.ScheduledPayoutModel {
	return &models.ScheduledPayoutModel{
		ID:           payout.ID,
		ScheduleID:   payout.ScheduleID,
		CommissionID: payout.CommissionID,
		PayoutDate:   payout.PayoutDate,
		Amount:       payout.Amount,
		IsPaid:       payout.IsPaid,
		CreatedAt:    payout.CreatedAt,
	}
}
