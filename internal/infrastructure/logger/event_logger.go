package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// IngestionTaskRecord is the persisted audit row for one statement
// batch, including the per-row report as JSON.
type IngestionTaskRecord struct {
	ID         uint   `gorm:"primaryKey"`
	BatchRef   string `gorm:"index"`
	Status     string
	Processed  int
	Skipped    int
	ReportJSON string
	StartedAt  time.Time
	FinishedAt *time.Time
}

type CommissionComputedRecord struct {
	ID           uint `gorm:"primaryKey"`
	CommissionID string
	SaleRef      string
	AdviserID    string
	FeeAmount    string
	Currency     string
	Overrides    int
	Timestamp    time.Time
}

type CommissionReversedRecord struct {
	ID           uint `gorm:"primaryKey"`
	CommissionID string
	SaleRef      string
	Clawbacks    int
	Timestamp    time.Time
}

type IngestionTaskLogger interface {
	LogBatchStarted(ctx context.Context, batchRef string, startedAt time.Time) error
	LogBatchFinished(ctx context.Context, record IngestionTaskRecord) error
}

type EngineEventLogger interface {
	LogCommissionComputed(ctx context.Context, record CommissionComputedRecord) error
	LogCommissionReversed(ctx context.Context, record CommissionReversedRecord) error
}

type PGEngineEventLogger struct {
	db *gorm.DB
}

func NewPGEngineEventLogger(db *gorm.DB) *PGEngineEventLogger {
	return &PGEngineEventLogger{db: db}
}

func (l *PGEngineEventLogger) LogBatchStarted(ctx context.Context, batchRef string, startedAt time.Time) error {
	record := IngestionTaskRecord{
		BatchRef:  batchRef,
		Status:    "IN_PROGRESS",
		StartedAt: startedAt,
	}
	return l.db.WithContext(ctx).Create(&record).Error
}

func (l *PGEngineEventLogger) LogBatchFinished(ctx context.Context, record IngestionTaskRecord) error {
	return l.db.WithContext(ctx).
		Model(&IngestionTaskRecord{}).
		Where("batch_ref = ?", record.BatchRef).
		Updates(map[string]interface{}{
			"status":      record.Status,
			"processed":   record.Processed,
			"skipped":     record.Skipped,
			"report_json": record.ReportJSON,
			"finished_at": time.Now(),
		}).Error
}

func (l *PGEngineEventLogger) LogCommissionComputed(ctx context.Context, record CommissionComputedRecord) error {
	return l.db.WithContext(ctx).Create(&record).Error
}

func (l *PGEngineEventLogger) LogCommissionReversed(ctx context.Context, record CommissionReversedRecord) error {
	return l.db.WithContext(ctx).Create(&record).Error
}
