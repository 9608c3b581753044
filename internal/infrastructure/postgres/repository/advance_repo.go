package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultAdvanceRepository struct {
	DB *gorm.DB
}

func NewDefaultAdvanceRepository(db *gorm.DB) *DefaultAdvanceRepository {
	return &DefaultAdvanceRepository{DB: db}
}

func (r *DefaultAdvanceRepository) CreateAdvance(advance *domain.Advance) error {
	return r.DB.Create(mappers.ToGORMAdvance(advance)).Error
}

func (r *DefaultAdvanceRepository) GetAdvanceByID(advanceID string) (*domain.Advance, error) {
	var model models.AdvanceModel
	if err := r.DB.First(&model, "id = ?", advanceID).Error; err != nil {
		return nil, domain.ErrAdvanceNotFound
	}
	return mappers.ToDomainAdvance(&model), nil
}

func (r *DefaultAdvanceRepository) GetAdvancesByAdviserID(adviserID string) ([]*domain.Advance, error) {
	var advanceModels []models.AdvanceModel
	if err := r.DB.Where("adviser_id = ?", adviserID).
		Order("date_issued DESC").
		Find(&advanceModels).Error; err != nil {
		return nil, err
	}
	advances := make([]*domain.Advance, len(advanceModels))
	for i, model := range advanceModels {
		advances[i] = mappers.ToDomainAdvance(&model)
	}
	return advances, nil
}

func (r *DefaultAdvanceRepository) MarkFullyRepaid(advanceID string) error {
	return r.DB.Model(&models.AdvanceModel{}).
		Where("id = ?", advanceID).
		Update("is_fully_repaid", true).Error
}

func (r *DefaultAdvanceRepository) CreateRepayment(repayment *domain.Repayment) error {
	return r.DB.Create(mappers.ToGORMRepayment(repayment)).Error
}

func (r *DefaultAdvanceRepository) GetRepaymentsByAdvanceID(advanceID string) ([]*domain.Repayment, error) {
	var repaymentModels []models.RepaymentModel
	if err := r.DB.Where("advance_id = ?", advanceID).
		Order("date_repaid ASC").
		Find(&repaymentModels).Error; err != nil {
		return nil, err
	}
	repayments := make([]*domain.Repayment, len(repaymentModels))
	for i, model := range repaymentModels {
		repayments[i] = mappers.ToDomainRepayment(&model)
	}
	return repayments, nil
}

type DefaultVestingRepository struct {
	DB *gorm.DB
}

func NewDefaultVestingRepository(db *gorm.DB) *DefaultVestingRepository {
	return &DefaultVestingRepository{DB: db}
}

func (r *DefaultVestingRepository) CreateSchedule(schedule *domain.VestingSchedule) error {
	return r.DB.Create(mappers.ToGORMSchedule(schedule)).Error
}

func (r *DefaultVestingRepository) GetScheduleByID(scheduleID string) (*domain.VestingSchedule, error) {
	var model models.VestingScheduleModel
	if err := r.DB.First(&model, "id = ?", scheduleID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainSchedule(&model), nil
}

func (r *DefaultVestingRepository) CreatePayout(payout *domain.ScheduledPayout) error {
	return r.DB.Create(mappers.ToGORMPayout(payout)).Error
}

func (r *DefaultVestingRepository) GetPayoutsByCommissionID(commissionID string) ([]*domain.ScheduledPayout, error) {
	var payoutModels []models.ScheduledPayoutModel
	if err := r.DB.Where("commission_id = ?", commissionID).
		Order("payout_date ASC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	payouts := make([]*domain.ScheduledPayout, len(payoutModels))
	for i, model := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&model)
	}
	return payouts, nil
}

func (r *DefaultVestingRepository) FindDuePayouts(asOf time.Time) ([]*domain.ScheduledPayout, error) {
	var payoutModels []models.ScheduledPayoutModel
	if err := r.DB.Where("is_paid = ? AND payout_date <= ?", false, asOf).
		Order("payout_date ASC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	payouts := make([]*domain.ScheduledPayout, len(payoutModels))
	for i, model := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&model)
	}
	return payouts, nil
}

func (r *DefaultVestingRepository) MarkPayoutPaid(payoutID string) error {
	return r.DB.Model(&models.ScheduledPayoutModel{}).
		Where("id = ?", payoutID).
		Update("is_paid", true).Error
}
