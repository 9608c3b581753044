package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerhq/commission-service/internal/domain"
)

type clawbackFixture struct {
	saleRepo       *fakeSaleRepo
	commissionRepo *fakeCommissionRepo
	modifierRepo   *fakeModifierRepo
	uc             *DefaultClawbackUsecase
}

func newClawbackFixture() *clawbackFixture {
	saleRepo := newFakeSaleRepo()
	commissionRepo := newFakeCommissionRepo()
	modifierRepo := newFakeModifierRepo()
	uc := NewDefaultClawbackUsecase(saleRepo, commissionRepo, modifierRepo, nil, nil)
	return &clawbackFixture{
		saleRepo:       saleRepo,
		commissionRepo: commissionRepo,
		modifierRepo:   modifierRepo,
		uc:             uc,
	}
}

func (fx *clawbackFixture) seedCancelledSaleWithCommission() *domain.Commission {
	fx.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:          "sale-1",
		ExternalRef: "POL-1",
		AdviserID:   "alice",
		Status:      domain.SaleStatusCancelled,
	}
	commission := &domain.Commission{
		ID:               "comm-1",
		SaleID:           "sale-1",
		AdviserID:        "alice",
		GrossCommission:  dec("2000.00"),
		NetCommission:    dec("1800.00"),
		AdviserFeeAmount: dec("1440.00"),
		PaymentStatus:    domain.PaymentStatusPaid,
		CurrencyCode:     "GBP",
	}
	fx.commissionRepo.commissions[commission.ID] = commission
	fx.modifierRepo.overrides["ovr-1"] = &domain.Override{
		ID:           "ovr-1",
		CommissionID: "comm-1",
		RecipientID:  "mary",
		Amount:       dec("360.00"),
		Reason:       "Override from Alice",
	}
	return commission
}

func TestReverseForCancelledSale_NegatesFeeAndOverrides(t *testing.T) {
	fx := newClawbackFixture()
	fx.seedCancelledSaleWithCommission()

	err := fx.uc.ReverseForCancelledSale(context.Background(), "sale-1")
	require.NoError(t, err)

	clawbacks, err := fx.modifierRepo.GetClawbacksByCommissionID("comm-1")
	require.NoError(t, err)
	require.Len(t, clawbacks, 2)

	amounts := map[string]bool{}
	for _, clawback := range clawbacks {
		amounts[clawback.Amount.String()] = true
		assert.Equal(t, domain.ClawbackStatusPending, clawback.Status)
	}
	assert.True(t, amounts["-1440"])
	assert.True(t, amounts["-360"])

	commission, err := fx.commissionRepo.GetCommissionByID("comm-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusClawback, commission.PaymentStatus)
}

func TestReverseForCancelledSale_Idempotent(t *testing.T) {
	fx := newClawbackFixture()
	fx.seedCancelledSaleWithCommission()

	require.NoError(t, fx.uc.ReverseForCancelledSale(context.Background(), "sale-1"))
	require.NoError(t, fx.uc.ReverseForCancelledSale(context.Background(), "sale-1"))

	clawbacks, err := fx.modifierRepo.GetClawbacksByCommissionID("comm-1")
	require.NoError(t, err)
	assert.Len(t, clawbacks, 2)
}

func TestReverseForCancelledSale_NoCommissionIsNoop(t *testing.T) {
	fx := newClawbackFixture()
	fx.saleRepo.sales["sale-1"] = &domain.Sale{
		ID:          "sale-1",
		ExternalRef: "POL-1",
		Status:      domain.SaleStatusCancelled,
	}

	err := fx.uc.ReverseForCancelledSale(context.Background(), "sale-1")
	assert.NoError(t, err)
	assert.Empty(t, fx.modifierRepo.clawbacks)
}

func TestReverseForCancelledSale_SaleNotFound(t *testing.T) {
	fx := newClawbackFixture()
	err := fx.uc.ReverseForCancelledSale(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestReverseForCancelledSale_PartialReversalCompletes(t *testing.T) {
	// A crash after the fee clawback but before the override clawback
	// leaves one row behind; the retry creates only the missing one.
	fx := newClawbackFixture()
	fx.seedCancelledSaleWithCommission()
	fx.modifierRepo.clawbacks["cb-prior"] = &domain.Clawback{
		ID:           "cb-prior",
		CommissionID: "comm-1",
		Amount:       dec("-1440.00"),
		Reason:       "Clawback of adviser fee for cancelled sale POL-1",
		Status:       domain.ClawbackStatusPending,
		CreatedAt:    time.Now(),
	}

	err := fx.uc.ReverseForCancelledSale(context.Background(), "sale-1")
	require.NoError(t, err)

	clawbacks, err := fx.modifierRepo.GetClawbacksByCommissionID("comm-1")
	require.NoError(t, err)
	require.Len(t, clawbacks, 2)

	var overrideClawback *domain.Clawback
	for _, clawback := range clawbacks {
		if clawback.ID != "cb-prior" {
			overrideClawback = clawback
		}
	}
	require.NotNil(t, overrideClawback)
	assert.Equal(t, "-360", overrideClawback.Amount.String())
	assert.Contains(t, overrideClawback.Reason, "override for mary")
}
