package mappers

import (
	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/models"
)

func ToDomainAdviser(model *models.AdviserModel) *domain.Adviser {
	return &domain.Adviser{
		ID:            model.ID,
		DisplayName:   model.DisplayName,
		FeePercentage: model.FeePercentage,
		ParentID:      model.ParentID,
		Active:        model.Active,
		Role:          domain.AdviserRole(model.Role),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMAdviser(adviser *domain.Adviser) *models.AdviserModel {
	return &models.AdviserModel{
		ID:            adviser.ID,
		DisplayName:   adviser.DisplayName,
		FeePercentage: adviser.FeePercentage,
		ParentID:      adviser.ParentID,
		Active:        adviser.Active,
		Role:          string(adviser.Role),
		CreatedAt:     adviser.CreatedAt,
		UpdatedAt:     adviser.UpdatedAt,
	}
}
