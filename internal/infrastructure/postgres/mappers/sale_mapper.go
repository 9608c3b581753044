package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainSale(model *models.SaleModel) *domain.Sale {
	return &domain.Sale{
		ID:             model.ID,
		ExternalRef:    model.ExternalRef,
		AdviserID:      model.AdviserID,
		ProviderID:     model.ProviderID,
		ProductTypeID:  model.ProductTypeID,
		Status:         domain.SaleStatus(model.Status),
		BaseValue:      model.BaseValue,
		MonthlyPremium: model.MonthlyPremium,
		CurrencyCode:   model.CurrencyCode,
		StartDate:      model.StartDate,
		ExpiryDate:     model.ExpiryDate,
		ReminderSent:   model.ReminderSent,
		ReminderDate:   model.ReminderDate,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMSale(sale *domain.Sale) *models.SaleModel {
	return &models.SaleModel{
		ID:             sale.ID,
		ExternalRef:    sale.ExternalRef,
		AdviserID:      sale.AdviserID,
		ProviderID:     sale.ProviderID,
		ProductTypeID:  sale.ProductTypeID,
		Status:         string(sale.Status),
		BaseValue:      sale.BaseValue,
		MonthlyPremium: sale.MonthlyPremium,
		CurrencyCode:   sale.CurrencyCode,
		StartDate:      sale.StartDate,
		ExpiryDate:     sale.ExpiryDate,
		ReminderSent:   sale.ReminderSent,
		ReminderDate:   sale.ReminderDate,
		CreatedAt:      sale.CreatedAt,
		UpdatedAt:      sale.UpdatedAt,
	}
}
