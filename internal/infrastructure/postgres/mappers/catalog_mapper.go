package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainProvider(model *models.ProviderModel) *domain.Provider {
	return &domain.Provider{
		ID:               model.ID,
		Name:             model.Name,
		DefaultGrossRate: model.DefaultGrossRate,
		DefaultNetRate:   model.DefaultNetRate,
	}
}

func ToGORMProvider(provider *domain.Provider) *models.ProviderModel {
	return &models.ProviderModel{
		ID:               provider.ID,
		Name:             provider.Name,
		DefaultGrossRate: provider.DefaultGrossRate,
		DefaultNetRate:   provider.DefaultNetRate,
	}
}

func ToDomainProductType(model *models.ProductTypeModel) *domain.ProductType {
	return &domain.ProductType{
		ID:                model.ID,
		Name:              model.Name,
		Category:          model.Category,
		GrossRateOverride: model.GrossRateOverride,
		NetRateOverride:   model.NetRateOverride,
	}
}

func ToGORMProductType(productType *domain.ProductType) *models.ProductTypeModel {
	return &models.ProductTypeModel{
		ID:                productType.ID,
		Name:              productType.Name,
		Category:          productType.Category,
		GrossRateOverride: productType.GrossRateOverride,
		NetRateOverride:   productType.NetRateOverride,
	}
}
