package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultSaleRepository struct {
	DB *gorm.DB
}

func NewDefaultSaleRepository(db *gorm.DB) *DefaultSaleRepository {
	return &DefaultSaleRepository{DB: db}
}

func (r *DefaultSaleRepository) CreateSale(sale *domain.Sale) error {
	model := mappers.ToGORMSale(sale)
	return r.DB.Create(model).Error
}

func (r *DefaultSaleRepository) GetSaleByID(saleID string) (*domain.Sale, error) {
	var model models.SaleModel
	if err := r.DB.First(&model, "id = ?", saleID).Error; err != nil {
		return nil, domain.ErrSaleNotFound
	}
	return mappers.ToDomainSale(&model), nil
}

func (r *DefaultSaleRepository) GetSaleByExternalRef(externalRef string) (*domain.Sale, error) {
	var model models.SaleModel
	if err := r.DB.First(&model, "external_ref = ?", externalRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSale(&model), nil
}

func (r *DefaultSaleRepository) UpdateSaleStatus(saleID string, status domain.SaleStatus) error {
	return r.DB.Model(&models.SaleModel{}).
		Where("id = ?", saleID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultSaleRepository) MarkReminderSent(saleID string, sentAt time.Time) error {
	return r.DB.Model(&models.SaleModel{}).
		Where("id = ?", saleID).
		Updates(map[string]interface{}{
			"reminder_sent": true,
			"reminder_date": sentAt,
			"updated_at":    time.Now(),
		}).Error
}

func (r *DefaultSaleRepository) FindExpiringSales(from, to time.Time) ([]*domain.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.DB.
		Where("status = ?", string(domain.SaleStatusActive)).
		Where("expiry_date IS NOT NULL AND expiry_date BETWEEN ? AND ?", from, to).
		Where("reminder_sent = ?", false).
		Find(&saleModels).Error; err != nil {
		return nil, err
	}
	sales := make([]*domain.Sale, len(saleModels))
	for i, model := range saleModels {
		sales[i] = mappers.ToDomainSale(&model)
	}
	return sales, nil
}

// SumBaseValueByAdviser aggregates the adviser's active sales in the
// window. The triggering sale is excluded so the caller can add it
// exactly once.
func (r *DefaultSaleRepository) SumBaseValueByAdviser(adviserID, excludeSaleID string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.DB.Model(&models.SaleModel{}).
		Select("SUM(COALESCE(base_value, monthly_premium * 12))").
		Where("adviser_id = ?", adviserID).
		Where("id <> ?", excludeSaleID).
		Where("status = ?", string(domain.SaleStatusActive)).
		Where("start_date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
