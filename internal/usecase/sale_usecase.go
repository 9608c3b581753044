package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

type SaleUsecase interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	GetSaleByExternalRef(externalRef string) (*domain.Sale, error)
	ChangeSaleStatus(ctx context.Context, saleID string, newStatus domain.SaleStatus) error
	SendExpiryReminders(ctx context.Context, window time.Duration) (int, error)
}

// DefaultSaleUsecase routes sale status transitions into the engine:
// activation computes the commission, cancellation reverses it.
type DefaultSaleUsecase struct {
	SaleRepo          domain.SaleRepository
	CommissionUsecase CommissionUsecase
	ClawbackUsecase   ClawbackUsecase
}

func NewDefaultSaleUsecase(
	saleRepo domain.SaleRepository,
	commissionUsecase CommissionUsecase,
	clawbackUsecase ClawbackUsecase) *DefaultSaleUsecase {

	return &DefaultSaleUsecase{
		SaleRepo:          saleRepo,
		CommissionUsecase: commissionUsecase,
		ClawbackUsecase:   clawbackUsecase,
	}
}

func (uc *DefaultSaleUsecase) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if sale.Status == "" {
		sale.Status = domain.SaleStatusInReview
	}
	if sale.CurrencyCode == "" {
		sale.CurrencyCode = "GBP"
	}
	if sale.BaseValue == nil && sale.MonthlyPremium != nil {
		annual := sale.MonthlyPremium.Mul(decimal.NewFromInt(12))
		sale.BaseValue = &annual
	}
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = time.Now()
	if err := uc.SaleRepo.CreateSale(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (uc *DefaultSaleUsecase) GetSaleByExternalRef(externalRef string) (*domain.Sale, error) {
	return uc.SaleRepo.GetSaleByExternalRef(externalRef)
}

// ChangeSaleStatus persists the transition, then runs the engine hook
// for the new status. The hook runs even when the status was already
// persisted, so a retry after a transient engine failure still computes
// or reverses. Both hooks are idempotent, so a retried transition
// cannot double-pay or double-reverse.
func (uc *DefaultSaleUsecase) ChangeSaleStatus(ctx context.Context, saleID string, newStatus domain.SaleStatus) error {
	sale, err := uc.SaleRepo.GetSaleByID(saleID)
	if err != nil {
		return domain.ErrSaleNotFound
	}
	if sale.Status != newStatus {
		if err := uc.SaleRepo.UpdateSaleStatus(saleID, newStatus); err != nil {
			return err
		}
	}

	switch newStatus {
	case domain.SaleStatusActive:
		if _, err := uc.CommissionUsecase.CreateOrRecompute(ctx, saleID); err != nil {
			return err
		}
	case domain.SaleStatusCancelled:
		if err := uc.ClawbackUsecase.ReverseForCancelledSale(ctx, saleID); err != nil {
			return err
		}
	}
	return nil
}

// SendExpiryReminders flags sales expiring within the window. Delivery
// of the actual notification belongs to an outer layer; the engine only
// records that the reminder fired.
func (uc *DefaultSaleUsecase) SendExpiryReminders(ctx context.Context, window time.Duration) (int, error) {
	now := time.Now()
	expiring, err := uc.SaleRepo.FindExpiringSales(now, now.Add(window))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, sale := range expiring {
		if sale.ReminderSent {
			continue
		}
		if err := uc.SaleRepo.MarkReminderSent(sale.ID, now); err != nil {
			slog.Error("failed to mark reminder sent", "sale_ref", sale.ExternalRef, "error", err.Error())
			continue
		}
		slog.Info("expiry reminder flagged", "sale_ref", sale.ExternalRef, "expiry", sale.ExpiryDate)
		sent++
	}
	return sent, nil
}
