package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
	commissiondto "github.com/brokerhq/commission-service/internal/usecase/dto/commission"
	"github.com/brokerhq/commission-service/internal/usecase/rules"
)

type CommissionUsecase interface {
	CreateOrRecompute(ctx context.Context, saleID string) (*domain.Commission, error)
	CreateFromStatement(ctx context.Context, input *commissiondto.CreateFromStatementInput) (*domain.Commission, bool, error)
	GetCommissionBySaleID(saleID string) (*domain.Commission, error)
	GetCommissionsForActor(actorID string) ([]*domain.Commission, error)
}

type DefaultCommissionUsecase struct {
	SaleRepo       domain.SaleRepository
	CommissionRepo domain.CommissionRepository
	CatalogRepo    domain.CatalogRepository
	AdviserUsecase AdviserUsecase
	Rules          []rules.CommissionRule
	Config         domain.RateConfig
	Publisher      domain.EventPublisher
	Metrics        *engineMetrics

	// Audit persists an engine event row per computed commission.
	// Optional, nil disables the audit trail.
	Audit logger.EngineEventLogger
}

func NewDefaultCommissionUsecase(
	saleRepo domain.SaleRepository,
	commissionRepo domain.CommissionRepository,
	catalogRepo domain.CatalogRepository,
	adviserUsecase AdviserUsecase,
	commissionRules []rules.CommissionRule,
	config domain.RateConfig,
	publisher domain.EventPublisher,
	metrics *engineMetrics) *DefaultCommissionUsecase {

	return &DefaultCommissionUsecase{
		SaleRepo:       saleRepo,
		CommissionRepo: commissionRepo,
		CatalogRepo:    catalogRepo,
		AdviserUsecase: adviserUsecase,
		Rules:          commissionRules,
		Config:         config,
		Publisher:      publisher,
		Metrics:        metrics,
	}
}

// CreateOrRecompute creates the commission for a sale that reached an
// active state, running the override cascade in the same transaction.
// A second call for the same sale returns the existing commission
// untouched.
func (uc *DefaultCommissionUsecase) CreateOrRecompute(ctx context.Context, saleID string) (*domain.Commission, error) {
	commission, _, err := uc.CreateFromStatement(ctx, &commissiondto.CreateFromStatementInput{
		SaleID:       saleID,
		DateReceived: time.Now(),
	})
	return commission, err
}

// CreateFromStatement is CreateOrRecompute with statement-supplied
// amounts: an explicit gross wins over the rate-based calculation, and
// an existing commission gets its amounts back-filled instead of being
// recreated. The bool result reports whether a new commission was
// created.
func (uc *DefaultCommissionUsecase) CreateFromStatement(ctx context.Context, input *commissiondto.CreateFromStatementInput) (*domain.Commission, bool, error) {
	started := time.Now()

	sale, err := uc.SaleRepo.GetSaleByID(input.SaleID)
	if err != nil {
		return nil, false, domain.ErrSaleNotFound
	}
	if sale.AdviserID == "" {
		uc.Metrics.recordError("create", "missing_adviser")
		return nil, false, domain.ErrMissingAdviser
	}

	adviser, err := uc.AdviserUsecase.GetAdviserByID(sale.AdviserID)
	if err != nil {
		uc.Metrics.recordError("create", "missing_adviser")
		return nil, false, domain.ErrMissingAdviser
	}

	// The existing-commission check runs before any amount validation:
	// a retried trigger must return the stored row even when the sale
	// itself no longer carries a usable base.
	if existing, err := uc.CommissionRepo.GetCommissionBySaleID(sale.ID); err == nil && existing != nil {
		if input.Gross == nil {
			// Plain recompute trigger: idempotent no-op.
			return existing, false, nil
		}
		gross, net, err := uc.resolveAmounts(sale, input.Gross)
		if err != nil {
			return nil, false, err
		}
		// Statement back-fill: refresh amounts, never re-run the cascade.
		existing.GrossCommission = domain.RoundMoney(gross)
		existing.NetCommission = domain.RoundMoney(net)
		existing.DateReceived = input.DateReceived
		if input.IntegrationID != "" {
			existing.IntegrationID = input.IntegrationID
		}
		existing.RecalculateFee()
		existing.UpdatedAt = time.Now()
		if err := uc.CommissionRepo.SaveCommission(existing); err != nil {
			return nil, false, fmt.Errorf("back-filling commission: %w", err)
		}
		return existing, false, nil
	}

	gross, net, err := uc.resolveAmounts(sale, input.Gross)
	if err != nil {
		uc.Metrics.recordError("create", "missing_base_value")
		return nil, false, err
	}

	commission := &domain.Commission{
		ID:                   uuid.New().String(),
		SaleID:               sale.ID,
		AdviserID:            adviser.ID,
		GrossCommission:      domain.RoundMoney(gross),
		NetCommission:        domain.RoundMoney(net),
		AdviserFeePercentage: adviser.FeePercentage,
		PaymentStatus:        domain.PaymentStatusPending,
		DateReceived:         input.DateReceived,
		CurrencyCode:         sale.CurrencyCode,
		IntegrationID:        input.IntegrationID,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	commission.RecalculateFee()

	overrides, bonuses, err := uc.runRules(sale, adviser, commission)
	if err != nil {
		return nil, false, err
	}

	if err := uc.CommissionRepo.CreateCommissionWithModifiers(commission, overrides, bonuses); err != nil {
		if errors.Is(err, domain.ErrCommissionExists) {
			// Lost a concurrent creation race: the unique index on
			// sale_id is the guard, return the winner's row.
			if existing, getErr := uc.CommissionRepo.GetCommissionBySaleID(sale.ID); getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("persisting commission: %w", err)
	}

	slog.Info("commission computed",
		"sale_ref", sale.ExternalRef,
		"adviser_id", adviser.ID,
		"fee_amount", commission.AdviserFeeAmount.String(),
		"overrides", len(overrides),
		"bonuses", len(bonuses),
	)
	uc.Metrics.recordComputed(commission, sale.ProviderID, overrides, bonuses, time.Since(started))
	if uc.Audit != nil {
		record := logger.CommissionComputedRecord{
			CommissionID: commission.ID,
			SaleRef:      sale.ExternalRef,
			AdviserID:    adviser.ID,
			FeeAmount:    commission.AdviserFeeAmount.String(),
			Currency:     commission.CurrencyCode,
			Overrides:    len(overrides),
			Timestamp:    time.Now(),
		}
		if err := uc.Audit.LogCommissionComputed(ctx, record); err != nil {
			slog.Error("failed to write commission audit row", "commission_id", commission.ID, "error", err.Error())
		}
	}
	uc.publish(domain.CommissionEvent{
		Type:          domain.EventCommissionComputed,
		CommissionID:  commission.ID,
		SaleRef:       sale.ExternalRef,
		AdviserID:     adviser.ID,
		FeeAmount:     commission.AdviserFeeAmount.String(),
		CurrencyCode:  commission.CurrencyCode,
		OverrideCount: len(overrides),
	})

	return commission, true, nil
}

func (uc *DefaultCommissionUsecase) resolveAmounts(sale *domain.Sale, explicitGross *decimal.Decimal) (gross, net decimal.Decimal, err error) {
	provider, err := uc.CatalogRepo.GetProviderByID(sale.ProviderID)
	if err != nil {
		return gross, net, fmt.Errorf("resolving provider: %w", err)
	}
	productType, _ := uc.CatalogRepo.GetProductTypeByID(sale.ProductTypeID)
	grossRate, netRate := domain.ResolveRates(provider, productType)

	if explicitGross != nil {
		gross = *explicitGross
	} else {
		base := sale.EffectiveBaseValue()
		if base == nil {
			return gross, net, domain.ErrMissingBaseValue
		}
		gross = domain.PercentOf(*base, grossRate)
	}
	net = domain.PercentOf(gross, netRate)
	return gross, net, nil
}

func (uc *DefaultCommissionUsecase) runRules(sale *domain.Sale, adviser *domain.Adviser, commission *domain.Commission) ([]*domain.Override, []*domain.Bonus, error) {
	ancestors, err := uc.AdviserUsecase.AncestorChain(adviser.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving ancestor chain: %w", err)
	}

	ruleCtx := &rules.Context{
		Sale:       sale,
		Adviser:    adviser,
		Ancestors:  ancestors,
		Commission: commission,
		Config:     uc.Config,
	}
	if productType, err := uc.CatalogRepo.GetProductTypeByID(sale.ProductTypeID); err == nil && productType != nil {
		ruleCtx.ProductCategory = productType.Category
	}
	if uc.Config.KpiBonusEnabled {
		monthStart := time.Date(sale.StartDate.Year(), sale.StartDate.Month(), 1, 0, 0, 0, 0, sale.StartDate.Location())
		monthly, err := uc.SaleRepo.SumBaseValueByAdviser(adviser.ID, sale.ID, monthStart, sale.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("aggregating monthly sales: %w", err)
		}
		ruleCtx.MonthlySales = monthly
	}

	var overrides []*domain.Override
	var bonuses []*domain.Bonus
	for _, rule := range uc.Rules {
		result, err := rule.Apply(ruleCtx)
		if err != nil {
			return nil, nil, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		overrides = append(overrides, result.Overrides...)
		bonuses = append(bonuses, result.Bonuses...)
	}
	for _, override := range overrides {
		override.ID = uuid.New().String()
		override.CommissionID = commission.ID
		override.CreatedAt = time.Now()
	}
	for _, bonus := range bonuses {
		bonus.ID = uuid.New().String()
		bonus.CommissionID = commission.ID
		bonus.CreatedAt = time.Now()
	}
	return overrides, bonuses, nil
}

func (uc *DefaultCommissionUsecase) GetCommissionBySaleID(saleID string) (*domain.Commission, error) {
	return uc.CommissionRepo.GetCommissionBySaleID(saleID)
}

// GetCommissionsForActor scopes reporting reads: admins see everything,
// managers see their subtree, advisers see only their own rows.
func (uc *DefaultCommissionUsecase) GetCommissionsForActor(actorID string) ([]*domain.Commission, error) {
	actor, err := uc.AdviserUsecase.GetAdviserByID(actorID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return uc.CommissionRepo.GetAllCommissions()
	case domain.RoleManager:
		ids, err := uc.AdviserUsecase.Descendants(actor.ID)
		if err != nil {
			return nil, err
		}
		return uc.CommissionRepo.GetCommissionsByAdviserIDs(ids)
	default:
		return uc.CommissionRepo.GetCommissionsByAdviserIDs([]string{actor.ID})
	}
}

func (uc *DefaultCommissionUsecase) publish(event domain.CommissionEvent) {
	if uc.Publisher == nil {
		return
	}
	go func() {
		if err := uc.Publisher.PublishCommissionEvent(event); err != nil {
			slog.Error("failed to publish commission event", "type", event.Type, "error", err.Error())
		}
	}()
}
