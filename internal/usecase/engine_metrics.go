package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/metrics"
)

// engineMetrics wraps the Prometheus vectors so usecases can record
// without nil checks at every call site. A nil receiver disables
// recording, which tests rely on.
type engineMetrics struct {
	m *metrics.CommissionMetrics
}

func NewEngineMetrics(m *metrics.CommissionMetrics) *engineMetrics {
	return &engineMetrics{m: m}
}

func (em *engineMetrics) recordComputed(c *domain.Commission, providerID string, overrides []*domain.Override, bonuses []*domain.Bonus, elapsed time.Duration) {
	if em == nil || em.m == nil {
		return
	}
	em.m.CommissionsComputedTotal.WithLabelValues(c.CurrencyCode, providerID).Inc()
	em.m.CommissionAmountTotal.WithLabelValues(c.CurrencyCode).Add(c.AdviserFeeAmount.InexactFloat64())
	em.m.CommissionComputeDuration.WithLabelValues(providerID).Observe(elapsed.Seconds())

	overrideSum := decimal.Zero
	for _, o := range overrides {
		overrideSum = overrideSum.Add(o.Amount)
	}
	if len(overrides) > 0 {
		em.m.OverridesCreatedTotal.WithLabelValues(c.CurrencyCode).Add(float64(len(overrides)))
		em.m.OverrideAmountTotal.WithLabelValues(c.CurrencyCode).Add(overrideSum.InexactFloat64())
	}
	for _, b := range bonuses {
		em.m.BonusesCreatedTotal.WithLabelValues(b.KpiType).Inc()
	}
}

func (em *engineMetrics) recordClawbacks(currency string, clawbacks []*domain.Clawback) {
	if em == nil || em.m == nil || len(clawbacks) == 0 {
		return
	}
	total := decimal.Zero
	for _, cb := range clawbacks {
		total = total.Add(cb.Amount.Abs())
	}
	em.m.ClawbacksCreatedTotal.WithLabelValues(currency).Add(float64(len(clawbacks)))
	em.m.ClawbackAmountTotal.WithLabelValues(currency).Add(total.InexactFloat64())
}

func (em *engineMetrics) recordIngestionRow(outcome string) {
	if em == nil || em.m == nil {
		return
	}
	em.m.IngestionRowsTotal.WithLabelValues(outcome).Inc()
}

func (em *engineMetrics) recordIngestionBatch(status string, elapsed time.Duration) {
	if em == nil || em.m == nil {
		return
	}
	em.m.IngestionBatchesTotal.WithLabelValues(status).Inc()
	em.m.IngestionBatchDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func (em *engineMetrics) recordError(operation, kind string) {
	if em == nil || em.m == nil {
		return
	}
	em.m.EngineErrorsTotal.WithLabelValues(operation, kind).Inc()
}
