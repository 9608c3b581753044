package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainCommission(model *models.CommissionModel) *domain.Commission {
	return &domain.Commission{
		ID:                   model.ID,
		SaleID:               model.SaleID,
		AdviserID:            model.AdviserID,
		GrossCommission:      model.GrossCommission,
		NetCommission:        model.NetCommission,
		AdviserFeePercentage: model.AdviserFeePercentage,
		AdviserFeeAmount:     model.AdviserFeeAmount,
		PaymentStatus:        domain.PaymentStatus(model.PaymentStatus),
		DateReceived:         model.DateReceived,
		DatePaidToAdviser:    model.DatePaidToAdviser,
		CurrencyCode:         model.CurrencyCode,
		InvoiceNumber:        model.InvoiceNumber,
		PaymentReference:     model.PaymentReference,
		IntegrationID:        model.IntegrationID,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMCommission(commission *domain.Commission) *models.CommissionModel {
	return &models.CommissionModel{
		ID:                   commission.ID,
		SaleID:               commission.SaleID,
		AdviserID:            commission.AdviserID,
		GrossCommission:      commission.GrossCommission,
		NetCommission:        commission.NetCommission,
		AdviserFeePercentage: commission.AdviserFeePercentage,
		AdviserFeeAmount:     commission.AdviserFeeAmount,
		PaymentStatus:        string(commission.PaymentStatus),
		DateReceived:         commission.DateReceived,
		DatePaidToAdviser:    commission.DatePaidToAdviser,
		CurrencyCode:         commission.CurrencyCode,
		InvoiceNumber:        commission.InvoiceNumber,
		PaymentReference:     commission.PaymentReference,
		IntegrationID:        commission.IntegrationID,
		CreatedAt:            commission.CreatedAt,
		UpdatedAt:            commission.UpdatedAt,
	}
}
