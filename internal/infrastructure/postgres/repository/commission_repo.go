package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultCommissionRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionRepository(db *gorm.DB) *DefaultCommissionRepository {
	return &DefaultCommissionRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func (r *DefaultCommissionRepository) CreateCommissionWithModifiers(
	commission *domain.Commission,
	overrides []*domain.Override,
	bonuses []*domain.Bonus,
) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		commissionModel := mappers.ToGORMCommission(commission)
		if err := tx.Create(commissionModel).Error; err != nil {
			return err
		}
		for _, override := range overrides {
			if err := tx.Create(mappers.ToGORMOverride(override)).Error; err != nil {
				return err
			}
		}
		for _, bonus := range bonuses {
			if err := tx.Create(mappers.ToGORMBonus(bonus)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCommissionExists
		}
		return err
	}
	return nil
}

func (r *DefaultCommissionRepository) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	var model models.CommissionModel
	if err := r.DB.First(&model, "id = ?", commissionID).Error; err != nil {
		return nil, domain.ErrCommissionNotFound
	}
	return mappers.ToDomainCommission(&model), nil
}

func (r *DefaultCommissionRepository) GetCommissionBySaleID(saleID string) (*domain.Commission, error) {
	var model models.CommissionModel
	if err := r.DB.First(&model, "sale_id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommissionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCommission(&model), nil
}

func (r *DefaultCommissionRepository) SaveCommission(commission *domain.Commission) error {
	model := mappers.ToGORMCommission(commission)
	model.UpdatedAt = time.Now()
	return r.DB.Save(model).Error
}

func (r *DefaultCommissionRepository) UpdatePaymentStatus(commissionID string, status domain.PaymentStatus) error {
	return r.DB.Model(&models.CommissionModel{}).
		Where("id = ?", commissionID).
		Updates(map[string]interface{}{
			"payment_status": string(status),
			"updated_at":     time.Now(),
		}).Error
}

func (r *DefaultCommissionRepository) GetCommissionsByAdviserIDs(adviserIDs []string) ([]*domain.Commission, error) {
	var commissionModels []models.CommissionModel
	if err := r.DB.Where("adviser_id IN ?", adviserIDs).
		Order("date_received DESC").
		Find(&commissionModels).Error; err != nil {
		return nil, err
	}
	commissions := make([]*domain.Commission, len(commissionModels))
	for i, model := range commissionModels {
		commissions[i] = mappers.ToDomainCommission(&model)
	}
	return commissions, nil
}

func (r *DefaultCommissionRepository) GetAllCommissions() ([]*domain.Commission, error) {
	var commissionModels []models.CommissionModel
	if err := r.DB.Order("date_received DESC").Find(&commissionModels).Error; err != nil {
		return nil, err
	}
	commissions := make([]*domain.Commission, len(commissionModels))
	for i, model := range commissionModels {
		commissions[i] = mappers.ToDomainCommission(&model)
	}
	return commissions, nil
}
