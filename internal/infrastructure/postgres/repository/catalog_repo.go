package repository

import (
	"gorm.io/gorm"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) GetProviderByID(providerID string) (*domain.Provider, error) {
	var model models.ProviderModel
	if err := r.DB.First(&model, "id = ?", providerID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainProvider(&model), nil
}

func (r *DefaultCatalogRepository) GetProductTypeByID(productTypeID string) (*domain.ProductType, error) {
	var model models.ProductTypeModel
	if err := r.DB.First(&model, "id = ?", productTypeID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainProductType(&model), nil
}

func (r *DefaultCatalogRepository) CreateProvider(provider *domain.Provider) error {
	return r.DB.Create(mappers.ToGORMProvider(provider)).Error
}

func (r *DefaultCatalogRepository) CreateProductType(productType *domain.ProductType) error {
	return r.DB.Create(mappers.ToGORMProductType(productType)).Error
}
