package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
)

type fakeAdviserRepo struct {
	advisers    map[string]*domain.Adviser
	commissions map[string]bool
}

func newFakeAdviserRepo() *fakeAdviserRepo {
	return &fakeAdviserRepo{
		advisers:    make(map[string]*domain.Adviser),
		commissions: make(map[string]bool),
	}
}

func (f *fakeAdviserRepo) CreateAdviser(adviser *domain.Adviser) error {
	f.advisers[adviser.ID] = adviser
	return nil
}

func (f *fakeAdviserRepo) GetAdviserByID(adviserID string) (*domain.Adviser, error) {
	adviser, ok := f.advisers[adviserID]
	if !ok {
		return nil, domain.ErrAdviserNotFound
	}
	copy := *adviser
	return &copy, nil
}

func (f *fakeAdviserRepo) UpdateAdviser(adviser *domain.Adviser) error {
	f.advisers[adviser.ID] = adviser
	return nil
}

func (f *fakeAdviserRepo) UpdateParent(adviserID string, parentID *string) error {
	adviser, ok := f.advisers[adviserID]
	if !ok {
		return domain.ErrAdviserNotFound
	}
	adviser.ParentID = parentID
	return nil
}

func (f *fakeAdviserRepo) GetChildren(adviserID string) ([]*domain.Adviser, error) {
	var children []*domain.Adviser
	for _, adviser := range f.advisers {
		if adviser.ParentID != nil && *adviser.ParentID == adviserID {
			copy := *adviser
			children = append(children, &copy)
		}
	}
	return children, nil
}

func (f *fakeAdviserRepo) HasCommissions(adviserID string) (bool, error) {
	return f.commissions[adviserID], nil
}

func (f *fakeAdviserRepo) DeleteAdviser(adviserID string) error {
	delete(f.advisers, adviserID)
	return nil
}

type fakeSaleRepo struct {
	sales map[string]*domain.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*domain.Sale)}
}

func (f *fakeSaleRepo) CreateSale(sale *domain.Sale) error {
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) GetSaleByID(saleID string) (*domain.Sale, error) {
	sale, ok := f.sales[saleID]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	copy := *sale
	return &copy, nil
}

func (f *fakeSaleRepo) GetSaleByExternalRef(externalRef string) (*domain.Sale, error) {
	for _, sale := range f.sales {
		if sale.ExternalRef == externalRef {
			copy := *sale
			return &copy, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (f *fakeSaleRepo) UpdateSaleStatus(saleID string, status domain.SaleStatus) error {
	sale, ok := f.sales[saleID]
	if !ok {
		return domain.ErrSaleNotFound
	}
	sale.Status = status
	return nil
}

func (f *fakeSaleRepo) MarkReminderSent(saleID string, sentAt time.Time) error {
	sale, ok := f.sales[saleID]
	if !ok {
		return domain.ErrSaleNotFound
	}
	sale.ReminderSent = true
	sale.ReminderDate = &sentAt
	return nil
}

func (f *fakeSaleRepo) FindExpiringSales(from, to time.Time) ([]*domain.Sale, error) {
	var expiring []*domain.Sale
	for _, sale := range f.sales {
		if sale.Status != domain.SaleStatusActive || sale.ExpiryDate == nil || sale.ReminderSent {
			continue
		}
		if sale.ExpiryDate.Before(from) || sale.ExpiryDate.After(to) {
			continue
		}
		copy := *sale
		expiring = append(expiring, &copy)
	}
	return expiring, nil
}

func (f *fakeSaleRepo) SumBaseValueByAdviser(adviserID, excludeSaleID string, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, sale := range f.sales {
		if sale.AdviserID != adviserID || sale.ID == excludeSaleID || sale.Status != domain.SaleStatusActive {
			continue
		}
		if sale.StartDate.Before(from) || sale.StartDate.After(to) {
			continue
		}
		if base := sale.EffectiveBaseValue(); base != nil {
			total = total.Add(*base)
		}
	}
	return total, nil
}

type fakeCatalogRepo struct {
	providers    map[string]*domain.Provider
	productTypes map[string]*domain.ProductType
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		providers:    make(map[string]*domain.Provider),
		productTypes: make(map[string]*domain.ProductType),
	}
}

func (f *fakeCatalogRepo) GetProviderByID(providerID string) (*domain.Provider, error) {
	provider, ok := f.providers[providerID]
	if !ok {
		return nil, errors.New("provider not found")
	}
	return provider, nil
}

func (f *fakeCatalogRepo) GetProductTypeByID(productTypeID string) (*domain.ProductType, error) {
	productType, ok := f.productTypes[productTypeID]
	if !ok {
		return nil, errors.New("product type not found")
	}
	return productType, nil
}

func (f *fakeCatalogRepo) CreateProvider(provider *domain.Provider) error {
	f.providers[provider.ID] = provider
	return nil
}

func (f *fakeCatalogRepo) CreateProductType(productType *domain.ProductType) error {
	f.productTypes[productType.ID] = productType
	return nil
}

type fakeCommissionRepo struct {
	commissions map[string]*domain.Commission
	overrides   map[string][]*domain.Override
	bonuses     map[string][]*domain.Bonus

	// failNextCreate simulates losing a concurrent creation race:
	// the create fails and raceWinner appears as the existing row.
	failNextCreate error
	raceWinner     *domain.Commission
}

func newFakeCommissionRepo() *fakeCommissionRepo {
	return &fakeCommissionRepo{
		commissions: make(map[string]*domain.Commission),
		overrides:   make(map[string][]*domain.Override),
		bonuses:     make(map[string][]*domain.Bonus),
	}
}

func (f *fakeCommissionRepo) CreateCommissionWithModifiers(commission *domain.Commission, overrides []*domain.Override, bonuses []*domain.Bonus) error {
	if f.failNextCreate != nil {
		err := f.failNextCreate
		f.failNextCreate = nil
		if f.raceWinner != nil {
			f.commissions[f.raceWinner.ID] = f.raceWinner
		}
		return err
	}
	for _, existing := range f.commissions {
		if existing.SaleID == commission.SaleID {
			return domain.ErrCommissionExists
		}
	}
	f.commissions[commission.ID] = commission
	f.overrides[commission.ID] = overrides
	f.bonuses[commission.ID] = bonuses
	return nil
}

func (f *fakeCommissionRepo) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	commission, ok := f.commissions[commissionID]
	if !ok {
		return nil, domain.ErrCommissionNotFound
	}
	copy := *commission
	return &copy, nil
}

func (f *fakeCommissionRepo) GetCommissionBySaleID(saleID string) (*domain.Commission, error) {
	for _, commission := range f.commissions {
		if commission.SaleID == saleID {
			copy := *commission
			return &copy, nil
		}
	}
	return nil, domain.ErrCommissionNotFound
}

func (f *fakeCommissionRepo) SaveCommission(commission *domain.Commission) error {
	f.commissions[commission.ID] = commission
	return nil
}

func (f *fakeCommissionRepo) UpdatePaymentStatus(commissionID string, status domain.PaymentStatus) error {
	commission, ok := f.commissions[commissionID]
	if !ok {
		return domain.ErrCommissionNotFound
	}
	commission.PaymentStatus = status
	return nil
}

func (f *fakeCommissionRepo) GetCommissionsByAdviserIDs(adviserIDs []string) ([]*domain.Commission, error) {
	wanted := make(map[string]bool, len(adviserIDs))
	for _, id := range adviserIDs {
		wanted[id] = true
	}
	var result []*domain.Commission
	for _, commission := range f.commissions {
		if wanted[commission.AdviserID] {
			copy := *commission
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeCommissionRepo) GetAllCommissions() ([]*domain.Commission, error) {
	var result []*domain.Commission
	for _, commission := range f.commissions {
		copy := *commission
		result = append(result, &copy)
	}
	return result, nil
}

type fakeModifierRepo struct {
	overrides  map[string]*domain.Override
	retentions map[string]*domain.Retention
	clawbacks  map[string]*domain.Clawback
	bonuses    map[string]*domain.Bonus
	fees       map[string]*domain.ReferralFee
	splits     map[string]*domain.CommissionSplit
}

func newFakeModifierRepo() *fakeModifierRepo {
	return &fakeModifierRepo{
		overrides:  make(map[string]*domain.Override),
		retentions: make(map[string]*domain.Retention),
		clawbacks:  make(map[string]*domain.Clawback),
		bonuses:    make(map[string]*domain.Bonus),
		fees:       make(map[string]*domain.ReferralFee),
		splits:     make(map[string]*domain.CommissionSplit),
	}
}

func (f *fakeModifierRepo) CreateOverride(override *domain.Override) error {
	f.overrides[override.ID] = override
	return nil
}

func (f *fakeModifierRepo) GetOverridesByCommissionID(commissionID string) ([]*domain.Override, error) {
	var result []*domain.Override
	for _, override := range f.overrides {
		if override.CommissionID == commissionID {
			result = append(result, override)
		}
	}
	return result, nil
}

func (f *fakeModifierRepo) CreateRetention(retention *domain.Retention) error {
	f.retentions[retention.ID] = retention
	return nil
}

func (f *fakeModifierRepo) GetRetentionByID(retentionID string) (*domain.Retention, error) {
	retention, ok := f.retentions[retentionID]
	if !ok {
		return nil, domain.ErrModifierNotFound
	}
	copy := *retention
	return &copy, nil
}

func (f *fakeModifierRepo) GetRetentionsByCommissionID(commissionID string) ([]*domain.Retention, error) {
	var result []*domain.Retention
	for _, retention := range f.retentions {
		if retention.CommissionID == commissionID {
			result = append(result, retention)
		}
	}
	return result, nil
}

func (f *fakeModifierRepo) ReleaseRetention(retentionID string, releasedAt time.Time) error {
	retention, ok := f.retentions[retentionID]
	if !ok {
		return domain.ErrModifierNotFound
	}
	retention.IsReleased = true
	retention.ReleaseDate = &releasedAt
	return nil
}

func (f *fakeModifierRepo) CreateClawback(clawback *domain.Clawback) error {
	f.clawbacks[clawback.ID] = clawback
	return nil
}

func (f *fakeModifierRepo) GetClawbackByID(clawbackID string) (*domain.Clawback, error) {
	clawback, ok := f.clawbacks[clawbackID]
	if !ok {
		return nil, domain.ErrModifierNotFound
	}
	copy := *clawback
	return &copy, nil
}

func (f *fakeModifierRepo) GetClawbacksByCommissionID(commissionID string) ([]*domain.Clawback, error) {
	var result []*domain.Clawback
	for _, clawback := range f.clawbacks {
		if clawback.CommissionID == commissionID {
			result = append(result, clawback)
		}
	}
	return result, nil
}

func (f *fakeModifierRepo) UpdateClawbackStatus(clawbackID string, status domain.ClawbackStatus) error {
	clawback, ok := f.clawbacks[clawbackID]
	if !ok {
		return domain.ErrModifierNotFound
	}
	clawback.Status = status
	return nil
}

func (f *fakeModifierRepo) CreateBonus(bonus *domain.Bonus) error {
	f.bonuses[bonus.ID] = bonus
	return nil
}

func (f *fakeModifierRepo) GetBonusesByCommissionID(commissionID string) ([]*domain.Bonus, error) {
	var result []*domain.Bonus
	for _, bonus := range f.bonuses {
		if bonus.CommissionID == commissionID {
			result = append(result, bonus)
		}
	}
	return result, nil
}

func (f *fakeModifierRepo) CreateReferralFee(fee *domain.ReferralFee) error {
	f.fees[fee.ID] = fee
	return nil
}

func (f *fakeModifierRepo) GetReferralFeesByCommissionID(commissionID string) ([]*domain.ReferralFee, error) {
	var result []*domain.ReferralFee
	for _, fee := range f.fees {
		if fee.CommissionID == commissionID {
			result = append(result, fee)
		}
	}
	return result, nil
}

func (f *fakeModifierRepo) CreateSplit(split *domain.CommissionSplit) error {
	f.splits[split.ID] = split
	return nil
}

func (f *fakeModifierRepo) GetSplitsByCommissionID(commissionID string) ([]*domain.CommissionSplit, error) {
	var result []*domain.CommissionSplit
	for _, split := range f.splits {
		if split.CommissionID == commissionID {
			result = append(result, split)
		}
	}
	return result, nil
}

type fakeAdvanceRepo struct {
	advances   map[string]*domain.Advance
	repayments map[string][]*domain.Repayment
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{
		advances:   make(map[string]*domain.Advance),
		repayments: make(map[string][]*domain.Repayment),
	}
}

func (f *fakeAdvanceRepo) CreateAdvance(advance *domain.Advance) error {
	f.advances[advance.ID] = advance
	return nil
}

func (f *fakeAdvanceRepo) GetAdvanceByID(advanceID string) (*domain.Advance, error) {
	advance, ok := f.advances[advanceID]
	if !ok {
		return nil, domain.ErrAdvanceNotFound
	}
	copy := *advance
	return &copy, nil
}

func (f *fakeAdvanceRepo) GetAdvancesByAdviserID(adviserID string) ([]*domain.Advance, error) {
	var result []*domain.Advance
	for _, advance := range f.advances {
		if advance.AdviserID == adviserID {
			result = append(result, advance)
		}
	}
	return result, nil
}

func (f *fakeAdvanceRepo) MarkFullyRepaid(advanceID string) error {
	advance, ok := f.advances[advanceID]
	if !ok {
		return domain.ErrAdvanceNotFound
	}
	advance.IsFullyRepaid = true
	return nil
}

func (f *fakeAdvanceRepo) CreateRepayment(repayment *domain.Repayment) error {
	f.repayments[repayment.AdvanceID] = append(f.repayments[repayment.AdvanceID], repayment)
	return nil
}

func (f *fakeAdvanceRepo) GetRepaymentsByAdvanceID(advanceID string) ([]*domain.Repayment, error) {
	return f.repayments[advanceID], nil
}

type fakeVestingRepo struct {
	schedules map[string]*domain.VestingSchedule
	payouts   map[string]*domain.ScheduledPayout
}

func newFakeVestingRepo() *fakeVestingRepo {
	return &fakeVestingRepo{
		schedules: make(map[string]*domain.VestingSchedule),
		payouts:   make(map[string]*domain.ScheduledPayout),
	}
}

func (f *fakeVestingRepo) CreateSchedule(schedule *domain.VestingSchedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeVestingRepo) GetScheduleByID(scheduleID string) (*domain.VestingSchedule, error) {
	schedule, ok := f.schedules[scheduleID]
	if !ok {
		return nil, domain.ErrModifierNotFound
	}
	return schedule, nil
}

func (f *fakeVestingRepo) CreatePayout(payout *domain.ScheduledPayout) error {
	f.payouts[payout.ID] = payout
	return nil
}

func (f *fakeVestingRepo) GetPayoutsByCommissionID(commissionID string) ([]*domain.ScheduledPayout, error) {
	var result []*domain.ScheduledPayout
	for _, payout := range f.payouts {
		if payout.CommissionID == commissionID {
			result = append(result, payout)
		}
	}
	return result, nil
}

func (f *fakeVestingRepo) FindDuePayouts(asOf time.Time) ([]*domain.ScheduledPayout, error) {
	var result []*domain.ScheduledPayout
	for _, payout := range f.payouts {
		if !payout.IsPaid && !payout.PayoutDate.After(asOf) {
			result = append(result, payout)
		}
	}
	return result, nil
}

func (f *fakeVestingRepo) MarkPayoutPaid(payoutID string) error {
	payout, ok := f.payouts[payoutID]
	if !ok {
		return domain.ErrModifierNotFound
	}
	payout.IsPaid = true
	return nil
}

type fakeTaskLogger struct {
	mu       sync.Mutex
	started  []string
	finished []logger.IngestionTaskRecord
}

func (f *fakeTaskLogger) LogBatchStarted(ctx context.Context, batchRef string, startedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, batchRef)
	return nil
}

func (f *fakeTaskLogger) LogBatchFinished(ctx context.Context, record logger.IngestionTaskRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, record)
	return nil
}
