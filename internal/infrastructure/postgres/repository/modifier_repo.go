package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultModifierRepository struct {
	DB *gorm.DB
}

func NewDefaultModifierRepository(db *gorm.DB) *DefaultModifierRepository {
	return &DefaultModifierRepository{DB: db}
}

func (r *DefaultModifierRepository) CreateOverride(override *domain.Override) error {
	return r.DB.Create(mappers.ToGORMOverride(override)).Error
}

func (r *DefaultModifierRepository) GetOverridesByCommissionID(commissionID string) ([]*domain.Override, error) {
	var overrideModels []models.OverrideModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&overrideModels).Error; err != nil {
		return nil, err
	}
	overrides := make([]*domain.Override, len(overrideModels))
	for i, model := range overrideModels {
		overrides[i] = mappers.ToDomainOverride(&model)
	}
	return overrides, nil
}

func (r *DefaultModifierRepository) CreateRetention(retention *domain.Retention) error {
	return r.DB.Create(mappers.ToGORMRetention(retention)).Error
}

func (r *DefaultModifierRepository) GetRetentionByID(retentionID string) (*domain.Retention, error) {
	var model models.RetentionModel
	if err := r.DB.First(&model, "id = ?", retentionID).Error; err != nil {
		return nil, domain.ErrModifierNotFound
	}
	return mappers.ToDomainRetention(&model), nil
}

func (r *DefaultModifierRepository) GetRetentionsByCommissionID(commissionID string) ([]*domain.Retention, error) {
	var retentionModels []models.RetentionModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&retentionModels).Error; err != nil {
		return nil, err
	}
	retentions := make([]*domain.Retention, len(retentionModels))
	for i, model := range retentionModels {
		retentions[i] = mappers.ToDomainRetention(&model)
	}
	return retentions, nil
}

func (r *DefaultModifierRepository) ReleaseRetention(retentionID string, releasedAt time.Time) error {
	return r.DB.Model(&models.RetentionModel{}).
		Where("id = ?", retentionID).
		Updates(map[string]interface{}{
			"is_released":  true,
			"release_date": releasedAt,
		}).Error
}

func (r *DefaultModifierRepository) CreateClawback(clawback *domain.Clawback) error {
	return r.DB.Create(mappers.ToGORMClawback(clawback)).Error
}

func (r *DefaultModifierRepository) GetClawbackByID(clawbackID string) (*domain.Clawback, error) {
	var model models.ClawbackModel
	if err := r.DB.First(&model, "id = ?", clawbackID).Error; err != nil {
		return nil, domain.ErrModifierNotFound
	}
	return mappers.ToDomainClawback(&model), nil
}

func (r *DefaultModifierRepository) GetClawbacksByCommissionID(commissionID string) ([]*domain.Clawback, error) {
	var clawbackModels []models.ClawbackModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&clawbackModels).Error; err != nil {
		return nil, err
	}
	clawbacks := make([]*domain.Clawback, len(clawbackModels))
	for i, model := range clawbackModels {
		clawbacks[i] = mappers.ToDomainClawback(&model)
	}
	return clawbacks, nil
}

func (r *DefaultModifierRepository) UpdateClawbackStatus(clawbackID string, status domain.ClawbackStatus) error {
	return r.DB.Model(&models.ClawbackModel{}).
		Where("id = ?", clawbackID).
		Update("status", string(status)).Error
}

func (r *DefaultModifierRepository) CreateBonus(bonus *domain.Bonus) error {
	return r.DB.Create(mappers.ToGORMBonus(bonus)).Error
}

func (r *DefaultModifierRepository) GetBonusesByCommissionID(commissionID string) ([]*domain.Bonus, error) {
	var bonusModels []models.BonusModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&bonusModels).Error; err != nil {
		return nil, err
	}
	bonuses := make([]*domain.Bonus, len(bonusModels))
	for i, model := range bonusModels {
		bonuses[i] = mappers.ToDomainBonus(&model)
	}
	return bonuses, nil
}

func (r *DefaultModifierRepository) CreateReferralFee(fee *domain.ReferralFee) error {
	return r.DB.Create(mappers.ToGORMReferralFee(fee)).Error
}

func (r *DefaultModifierRepository) GetReferralFeesByCommissionID(commissionID string) ([]*domain.ReferralFee, error) {
	var feeModels []models.ReferralFeeModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&feeModels).Error; err != nil {
		return nil, err
	}
	fees := make([]*domain.ReferralFee, len(feeModels))
	for i, model := range feeModels {
		fees[i] = mappers.ToDomainReferralFee(&model)
	}
	return fees, nil
}

func (r *DefaultModifierRepository) CreateSplit(split *domain.CommissionSplit) error {
	return r.DB.Create(mappers.ToGORMSplit(split)).Error
}

func (r *DefaultModifierRepository) GetSplitsByCommissionID(commissionID string) ([]*domain.CommissionSplit, error) {
	var splitModels []models.CommissionSplitModel
	if err := r.DB.Where("commission_id = ?", commissionID).Find(&splitModels).Error; err != nil {
		return nil, err
	}
	splits := make([]*domain.CommissionSplit, len(splitModels))
	for i, model := range splitModels {
		splits[i] = mappers.ToDomainSplit(&model)
	}
	return splits, nil
}
