package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
)

const adviserFeeReasonTag = "adviser fee"

type ClawbackUsecase interface {
	ReverseForCancelledSale(ctx context.Context, saleID string) error
}

type DefaultClawbackUsecase struct {
	SaleRepo       domain.SaleRepository
	CommissionRepo domain.CommissionRepository
	ModifierRepo   domain.ModifierRepository
	Publisher      domain.EventPublisher
	Metrics        *engineMetrics

	// Audit persists an engine event row per reversal. Optional.
	Audit logger.EngineEventLogger
}

func NewDefaultClawbackUsecase(
	saleRepo domain.SaleRepository,
	commissionRepo domain.CommissionRepository,
	modifierRepo domain.ModifierRepository,
	publisher domain.EventPublisher,
	metrics *engineMetrics) *DefaultClawbackUsecase {

	return &DefaultClawbackUsecase{
		SaleRepo:       saleRepo,
		CommissionRepo: commissionRepo,
		ModifierRepo:   modifierRepo,
		Publisher:      publisher,
		Metrics:        metrics,
	}
}

func overrideReasonTag(recipientID string) string {
	return fmt.Sprintf("override for %s", recipientID)
}

// ReverseForCancelledSale reverses the direct fee and every override of
// the sale's commission. Safe to call any number of times: each prior
// payment is reversed at most once, keyed by the reason tag on the
// clawback row. A sale with no commission is a valid no-op, cancellation
// before any payment is received is common.
func (uc *DefaultClawbackUsecase) ReverseForCancelledSale(ctx context.Context, saleID string) error {
	sale, err := uc.SaleRepo.GetSaleByID(saleID)
	if err != nil {
		return domain.ErrSaleNotFound
	}

	commission, err := uc.CommissionRepo.GetCommissionBySaleID(sale.ID)
	if err != nil || commission == nil {
		return nil
	}

	existing, err := uc.ModifierRepo.GetClawbacksByCommissionID(commission.ID)
	if err != nil {
		return fmt.Errorf("loading clawbacks: %w", err)
	}
	hasTag := func(tag string) bool {
		for _, cb := range existing {
			if strings.Contains(cb.Reason, tag) {
				return true
			}
		}
		return false
	}

	var created []*domain.Clawback

	if !hasTag(adviserFeeReasonTag) {
		clawback := &domain.Clawback{
			ID:           uuid.New().String(),
			CommissionID: commission.ID,
			Amount:       commission.AdviserFeeAmount.Neg(),
			Reason:       fmt.Sprintf("Clawback of %s for cancelled sale %s", adviserFeeReasonTag, sale.ExternalRef),
			Status:       domain.ClawbackStatusPending,
			CreatedAt:    time.Now(),
		}
		if err := uc.ModifierRepo.CreateClawback(clawback); err != nil {
			return fmt.Errorf("creating adviser fee clawback: %w", err)
		}
		created = append(created, clawback)
	}

	overrides, err := uc.ModifierRepo.GetOverridesByCommissionID(commission.ID)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	for _, override := range overrides {
		tag := overrideReasonTag(override.RecipientID)
		if hasTag(tag) {
			continue
		}
		clawback := &domain.Clawback{
			ID:           uuid.New().String(),
			CommissionID: commission.ID,
			Amount:       override.Amount.Neg(),
			Reason:       fmt.Sprintf("Clawback of %s due to cancellation of sale %s", tag, sale.ExternalRef),
			Status:       domain.ClawbackStatusPending,
			CreatedAt:    time.Now(),
		}
		if err := uc.ModifierRepo.CreateClawback(clawback); err != nil {
			return fmt.Errorf("creating override clawback: %w", err)
		}
		created = append(created, clawback)
	}

	if commission.PaymentStatus != domain.PaymentStatusClawback {
		if err := uc.CommissionRepo.UpdatePaymentStatus(commission.ID, domain.PaymentStatusClawback); err != nil {
			return fmt.Errorf("updating payment status: %w", err)
		}
	}

	if len(created) > 0 {
		slog.Info("commission reversed",
			"sale_ref", sale.ExternalRef,
			"commission_id", commission.ID,
			"clawbacks", len(created),
		)
		uc.Metrics.recordClawbacks(commission.CurrencyCode, created)
		if uc.Audit != nil {
			record := logger.CommissionReversedRecord{
				CommissionID: commission.ID,
				SaleRef:      sale.ExternalRef,
				Clawbacks:    len(created),
				Timestamp:    time.Now(),
			}
			if err := uc.Audit.LogCommissionReversed(ctx, record); err != nil {
				slog.Error("failed to write reversal audit row", "commission_id", commission.ID, "error", err.Error())
			}
		}
		uc.publish(domain.CommissionEvent{
			Type:          domain.EventCommissionReversed,
			CommissionID:  commission.ID,
			SaleRef:       sale.ExternalRef,
			AdviserID:     commission.AdviserID,
			FeeAmount:     commission.AdviserFeeAmount.Neg().String(),
			CurrencyCode:  commission.CurrencyCode,
			OverrideCount: len(overrides),
		})
	}

	return nil
}

func (uc *DefaultClawbackUsecase) publish(event domain.CommissionEvent) {
	if uc.Publisher == nil {
		return
	}
	go func() {
		if err := uc.Publisher.PublishCommissionEvent(event); err != nil {
			slog.Error("failed to publish commission event", "type", event.Type, "error", err.Error())
		}
	}()
}
