package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerhq/commission-service/internal/domain"
)

type saleFixture struct {
	engine       *engineFixture
	modifierRepo *fakeModifierRepo
	uc           *DefaultSaleUsecase
}

func newSaleFixture() *saleFixture {
	engine := newEngineFixture(domain.RateConfig{})
	modifierRepo := newFakeModifierRepo()
	clawbackUsecase := NewDefaultClawbackUsecase(engine.saleRepo, engine.commissionRepo, modifierRepo, nil, nil)
	uc := NewDefaultSaleUsecase(engine.saleRepo, engine.uc, clawbackUsecase)
	return &saleFixture{engine: engine, modifierRepo: modifierRepo, uc: uc}
}

func TestCreateSale_Defaults(t *testing.T) {
	fx := newSaleFixture()

	sale, err := fx.uc.CreateSale(&domain.Sale{
		ExternalRef:    "POL-1",
		AdviserID:      "alice",
		MonthlyPremium: decPtr("150.00"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, domain.SaleStatusInReview, sale.Status)
	assert.Equal(t, "GBP", sale.CurrencyCode)
	require.NotNil(t, sale.BaseValue)
	assert.Equal(t, "1800", sale.BaseValue.String())
}

func TestChangeSaleStatus_ActivationComputesCommission(t *testing.T) {
	fx := newSaleFixture()
	fx.engine.addProvider("prov-1", "20.00", "90.00")
	fx.engine.addAdviser("alice", "Alice", "80.00", nil, domain.RoleAdviser)
	fx.engine.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:           "sale-1",
		ExternalRef:  "POL-1",
		AdviserID:    "alice",
		ProviderID:   "prov-1",
		Status:       domain.SaleStatusInReview,
		BaseValue:    decPtr("10000.00"),
		CurrencyCode: "GBP",
	}

	err := fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive)
	require.NoError(t, err)

	commission, err := fx.engine.commissionRepo.GetCommissionBySaleID("sale-1")
	require.NoError(t, err)
	assert.Equal(t, "1440", commission.AdviserFeeAmount.String())
}

func TestChangeSaleStatus_CancellationReverses(t *testing.T) {
	fx := newSaleFixture()
	fx.engine.addProvider("prov-1", "20.00", "90.00")
	fx.engine.addAdviser("alice", "Alice", "80.00", nil, domain.RoleAdviser)
	fx.engine.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:           "sale-1",
		ExternalRef:  "POL-1",
		AdviserID:    "alice",
		ProviderID:   "prov-1",
		Status:       domain.SaleStatusInReview,
		BaseValue:    decPtr("10000.00"),
		CurrencyCode: "GBP",
	}

	require.NoError(t, fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive))
	require.NoError(t, fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusCancelled))

	commission, err := fx.engine.commissionRepo.GetCommissionBySaleID("sale-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusClawback, commission.PaymentStatus)

	clawbacks, err := fx.modifierRepo.GetClawbacksByCommissionID(commission.ID)
	require.NoError(t, err)
	require.Len(t, clawbacks, 1)
	assert.Equal(t, "-1440", clawbacks[0].Amount.String())
}

func TestChangeSaleStatus_RepeatedActivationKeepsOneCommission(t *testing.T) {
	fx := newSaleFixture()
	fx.engine.addProvider("prov-1", "20.00", "90.00")
	fx.engine.addAdviser("alice", "Alice", "80.00", nil, domain.RoleAdviser)
	fx.engine.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:           "sale-1",
		ExternalRef:  "POL-1",
		AdviserID:    "alice",
		ProviderID:   "prov-1",
		Status:       domain.SaleStatusInReview,
		BaseValue:    decPtr("10000.00"),
		CurrencyCode: "GBP",
	}

	require.NoError(t, fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive))
	require.NoError(t, fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive))
	assert.Len(t, fx.engine.commissionRepo.commissions, 1)
}

func TestChangeSaleStatus_RetryAfterEngineFailure(t *testing.T) {
	fx := newSaleFixture()
	fx.engine.addProvider("prov-1", "20.00", "90.00")
	fx.engine.addAdviser("alice", "Alice", "80.00", nil, domain.RoleAdviser)
	fx.engine.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:           "sale-1",
		ExternalRef:  "POL-1",
		AdviserID:    "alice",
		ProviderID:   "prov-1",
		Status:       domain.SaleStatusInReview,
		BaseValue:    decPtr("10000.00"),
		CurrencyCode: "GBP",
	}
	fx.engine.commissionRepo.failNextCreate = errors.New("db contention")

	// The first transition persists the status but the engine write
	// fails. The retry sees the status already applied and must still
	// run the hook.
	err := fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive)
	require.Error(t, err)
	assert.Equal(t, domain.SaleStatusActive, fx.engine.saleRepo.sales["sale-1"].Status)

	require.NoError(t, fx.uc.ChangeSaleStatus(context.Background(), "sale-1", domain.SaleStatusActive))
	commission, err := fx.engine.commissionRepo.GetCommissionBySaleID("sale-1")
	require.NoError(t, err)
	assert.Equal(t, "1440", commission.AdviserFeeAmount.String())
}

func TestSendExpiryReminders(t *testing.T) {
	fx := newSaleFixture()
	soon := time.Now().Add(10 * 24 * time.Hour)
	far := time.Now().Add(90 * 24 * time.Hour)
	fx.engine.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:          "sale-1",
		ExternalRef: "POL-1",
		Status:      domain.SaleStatusActive,
		ExpiryDate:  &soon,
	}
	fx.engine.saleRepo.sales["sale-2"] = &domain.Sale{
		ID:          "sale-2",
		ExternalRef: "POL-2",
		Status:      domain.SaleStatusActive,
		ExpiryDate:  &far,
	}

	sent, err := fx.uc.SendExpiryReminders(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, fx.engine.saleRepo.sales["sale-1"].ReminderSent)
	assert.False(t, fx.engine.saleRepo.sales["sale-2"].ReminderSent)

	// Already flagged sales are not flagged twice.
	sent, err = fx.uc.SendExpiryReminders(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
