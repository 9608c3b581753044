package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommissionMetrics holds every engine-level Prometheus metric.
type CommissionMetrics struct {
	CommissionsComputedTotal prometheus.CounterVec
	CommissionAmountTotal    prometheus.CounterVec

	OverridesCreatedTotal   prometheus.CounterVec
	OverrideAmountTotal     prometheus.CounterVec
	BonusesCreatedTotal     prometheus.CounterVec

	ClawbacksCreatedTotal prometheus.CounterVec
	ClawbackAmountTotal   prometheus.CounterVec

	IngestionRowsTotal      prometheus.CounterVec
	IngestionBatchesTotal   prometheus.CounterVec
	IngestionBatchDuration  prometheus.HistogramVec
	CommissionComputeDuration prometheus.HistogramVec

	EngineErrorsTotal prometheus.CounterVec
}

func NewCommissionMetrics() *CommissionMetrics {
	return &CommissionMetrics{
		CommissionsComputedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_computed_total",
				Help: "Number of direct commissions computed",
			},
			[]string{"currency", "provider_id"},
		),
		CommissionAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_amount_total",
				Help: "Sum of adviser fee amounts computed",
			},
			[]string{"currency"},
		),
		OverridesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overrides_created_total",
				Help: "Number of override payments created by the cascade",
			},
			[]string{"currency"},
		),
		OverrideAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "override_amount_total",
				Help: "Sum of override amounts created by the cascade",
			},
			[]string{"currency"},
		),
		BonusesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bonuses_created_total",
				Help: "Number of rule-generated bonuses",
			},
			[]string{"kpi_type"},
		),
		ClawbacksCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawbacks_created_total",
				Help: "Number of clawbacks created on reversal",
			},
			[]string{"currency"},
		),
		ClawbackAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawback_amount_total",
				Help: "Absolute sum of clawback amounts created",
			},
			[]string{"currency"},
		),
		IngestionRowsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingestion_rows_total",
				Help: "Statement rows processed by outcome",
			},
			[]string{"outcome"},
		),
		IngestionBatchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingestion_batches_total",
				Help: "Statement batches processed by status",
			},
			[]string{"status"},
		),
		IngestionBatchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ingestion_batch_duration_seconds",
				Help:    "Wall time per statement batch",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		CommissionComputeDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "commission_compute_duration_seconds",
				Help:    "Wall time per commission computation incl. cascade",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider_id"},
		),
		EngineErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_engine_errors_total",
				Help: "Engine errors by operation and kind",
			},
			[]string{"operation", "kind"},
		),
	}
}
