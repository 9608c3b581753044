package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultAdviserRepository struct {
	DB *gorm.DB
}

func NewDefaultAdviserRepository(db *gorm.DB) *DefaultAdviserRepository {
	return &DefaultAdviserRepository{DB: db}
}

func (r *DefaultAdviserRepository) CreateAdviser(adviser *domain.Adviser) error {
	model := mappers.ToGORMAdviser(adviser)
	return r.DB.Create(model).Error
}

func (r *DefaultAdviserRepository) GetAdviserByID(adviserID string) (*domain.Adviser, error) {
	var model models.AdviserModel
	if err := r.DB.First(&model, "id = ?", adviserID).Error; err != nil {
		return nil, domain.ErrAdviserNotFound
	}
	return mappers.ToDomainAdviser(&model), nil
}

func (r *DefaultAdviserRepository) UpdateAdviser(adviser *domain.Adviser) error {
	model := mappers.ToGORMAdviser(adviser)
	return r.DB.Model(&models.AdviserModel{ID: adviser.ID}).
		Updates(map[string]interface{}{
			"display_name":   model.DisplayName,
			"fee_percentage": model.FeePercentage,
			"active":         model.Active,
			"role":           model.Role,
			"updated_at":     time.Now(),
		}).Error
}

func (r *DefaultAdviserRepository) UpdateParent(adviserID string, parentID *string) error {
	return r.DB.Model(&models.AdviserModel{ID: adviserID}).
		Updates(map[string]interface{}{
			"parent_id":  parentID,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultAdviserRepository) GetChildren(adviserID string) ([]*domain.Adviser, error) {
	var children []models.AdviserModel
	if err := r.DB.Where("parent_id = ?", adviserID).Find(&children).Error; err != nil {
		return nil, err
	}
	advisers := make([]*domain.Adviser, len(children))
	for i, child := range children {
		advisers[i] = mappers.ToDomainAdviser(&child)
	}
	return advisers, nil
}

func (r *DefaultAdviserRepository) HasCommissions(adviserID string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.CommissionModel{}).
		Where("adviser_id = ?", adviserID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultAdviserRepository) DeleteAdviser(adviserID string) error {
	return r.DB.Delete(&models.AdviserModel{}, "id = ?", adviserID).Error
}
