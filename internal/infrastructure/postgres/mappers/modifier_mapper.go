package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainOverride(model *models.OverrideModel) *domain.Override {
	return &domain.Override{
		ID:           model.ID,
		CommissionID: model.CommissionID,
		RecipientID:  model.RecipientID,
		Amount:       model.Amount,
		Reason:       model.Reason,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMOverride(override *domain.Override) *models.OverrideModel {
	return &models.OverrideModel{
		ID:           override.ID,
		CommissionID: override.CommissionID,
		RecipientID:  override.RecipientID,
		Amount:       override.Amount,
		Reason:       override.Reason,
		CreatedAt:    override.CreatedAt,
	}
}

func ToDomainRetention(model *models.RetentionModel) *domain.Retention {
	return &domain.Retention{
		ID:                    model.ID,
		CommissionID:          model.CommissionID,
		Amount:                model.Amount,
		Reason:                model.Reason,
		IsReleased:            model.IsReleased,
		ReleaseDate:           model.ReleaseDate,
		RetentionPeriodMonths: model.RetentionPeriodMonths,
		CreatedAt:             model.CreatedAt,
	}
}

func ToGORMRetention(retention *domain.Retention) *models.RetentionModel {
	return &models.RetentionModel{
		ID:                    retention.ID,
		CommissionID:          retention.CommissionID,
		Amount:                retention.Amount,
		Reason:                retention.Reason,
		IsReleased:            retention.IsReleased,
		ReleaseDate:           retention.ReleaseDate,
		RetentionPeriodMonths: retention.RetentionPeriodMonths,
		CreatedAt:             retention.CreatedAt,
	}
}

func ToDomainClawback(model *models.ClawbackModel) *domain.Clawback {
	return &domain.Clawback{
		ID:                   model.ID,
		CommissionID:         model.CommissionID,
		Amount:               model.Amount,
		Reason:               model.Reason,
		Status:               domain.ClawbackStatus(model.Status),
		ClawbackPeriodMonths: model.ClawbackPeriodMonths,
		CreatedAt:            model.CreatedAt,
	}
}

func ToGORMClawback(clawback *domain.Clawback) *models.ClawbackModel {
	return &models.ClawbackModel{
		ID:                   clawback.ID,
		CommissionID:         clawback.CommissionID,
		Amount:               clawback.Amount,
		Reason:               clawback.Reason,
		Status:               string(clawback.Status),
		ClawbackPeriodMonths: clawback.ClawbackPeriodMonths,
		CreatedAt:            clawback.CreatedAt,
	}
}

func ToDomainBonus(model *models.BonusModel) *domain.Bonus {
	return &domain.Bonus{
		ID:           model.ID,
		CommissionID: model.CommissionID,
		RecipientID:  model.RecipientID,
		Amount:       model.Amount,
		Reason:       model.Reason,
		KpiType:      model.KpiType,
		KpiAchieved:  model.KpiAchieved,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMBonus(bonus *domain.Bonus) *models.BonusModel {
	return &models.BonusModel{
		ID:           bonus.ID,
		CommissionID: bonus.CommissionID,
		RecipientID:  bonus.RecipientID,
		Amount:       bonus.Amount,
		Reason:       bonus.Reason,
		KpiType:      bonus.KpiType,
		KpiAchieved:  bonus.KpiAchieved,
		CreatedAt:    bonus.CreatedAt,
	}
}

func ToDomainReferralFee(model *models.ReferralFeeModel) *domain.ReferralFee {
	return &domain.ReferralFee{
		ID:                  model.ID,
		CommissionID:        model.CommissionID,
		Amount:              model.Amount,
		Reason:              model.Reason,
		ReferralSourceName:  model.ReferralSourceName,
		ReferralSourceType:  model.ReferralSourceType,
		ReferralAgreementID: model.ReferralAgreementID,
		CreatedAt:           model.CreatedAt,
	}
}

func ToGORMReferralFee(fee *domain.ReferralFee) *models.ReferralFeeModel {
	return &models.ReferralFeeModel{
		ID:                  fee.ID,
		CommissionID:        fee.CommissionID,
		Amount:              fee.Amount,
		Reason:              fee.Reason,
		ReferralSourceName:  fee.ReferralSourceName,
		ReferralSourceType:  fee.ReferralSourceType,
		ReferralAgreementID: fee.ReferralAgreementID,
		CreatedAt:           fee.CreatedAt,
	}
}

func ToDomainSplit(model *models.CommissionSplitModel) *domain.CommissionSplit {
	return &domain.CommissionSplit{
		ID:              model.ID,
		CommissionID:    model.CommissionID,
		AdviserID:       model.AdviserID,
		SplitPercentage: model.SplitPercentage,
		SplitAmount:     model.SplitAmount,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMSplit(split *domain.CommissionSplit) *models.CommissionSplitModel {
	return &models.CommissionSplitModel{
		ID:              split.ID,
		CommissionID:    split.CommissionID,
		AdviserID:       split.AdviserID,
		SplitPercentage: split.SplitPercentage,
		SplitAmount:     split.SplitAmount,
		CreatedAt:       split.CreatedAt,
	}
}
