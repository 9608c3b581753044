package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/brokerhq/commission-service/internal/domain"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
	commissiondto "github.com/brokerhq/commission-service/internal/usecase/dto/commission"
	ingestiondto "github.com/brokerhq/commission-service/internal/usecase/dto/ingestion"
)

type IngestionUsecase interface {
	ProcessStatement(ctx context.Context, rows []ingestiondto.StatementRow) (*ingestiondto.Summary, error)
}

// DefaultIngestionUsecase reconciles provider payment statements against
// existing sales. Each row has its own fate: a bad row is reported and
// skipped, it never rolls back the rows before it.
type DefaultIngestionUsecase struct {
	SaleRepo          domain.SaleRepository
	CommissionUsecase CommissionUsecase
	TaskLogger        logger.IngestionTaskLogger
	Metrics           *engineMetrics

	batchRef func() string
}

func NewDefaultIngestionUsecase(
	saleRepo domain.SaleRepository,
	commissionUsecase CommissionUsecase,
	taskLogger logger.IngestionTaskLogger,
	metrics *engineMetrics) (*DefaultIngestionUsecase, error) {

	refGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("initializing batch ref generator: %w", err)
	}
	return &DefaultIngestionUsecase{
		SaleRepo:          saleRepo,
		CommissionUsecase: commissionUsecase,
		TaskLogger:        taskLogger,
		Metrics:           metrics,
		batchRef:          refGenerator,
	}, nil
}

func (uc *DefaultIngestionUsecase) ProcessStatement(ctx context.Context, rows []ingestiondto.StatementRow) (*ingestiondto.Summary, error) {
	started := time.Now()
	summary := &ingestiondto.Summary{
		BatchRef: uc.batchRef(),
	}

	if uc.TaskLogger != nil {
		if err := uc.TaskLogger.LogBatchStarted(ctx, summary.BatchRef, started); err != nil {
			slog.Error("failed to log ingestion batch start", "batch_ref", summary.BatchRef, "error", err.Error())
		}
	}

	for i, row := range rows {
		outcome := uc.processRow(ctx, i+1, row)
		summary.Rows = append(summary.Rows, outcome)
		switch outcome.Status {
		case ingestiondto.RowSkipped:
			summary.Skipped++
			uc.Metrics.recordIngestionRow("skipped")
		case ingestiondto.RowCreated:
			summary.Processed++
			uc.Metrics.recordIngestionRow("created")
		case ingestiondto.RowUpdated:
			summary.Processed++
			uc.Metrics.recordIngestionRow("updated")
		}
	}

	switch {
	case summary.Processed == 0 && summary.Skipped > 0:
		summary.Status = ingestiondto.BatchFailed
	case summary.Skipped > 0:
		summary.Status = ingestiondto.BatchPartial
	default:
		summary.Status = ingestiondto.BatchSuccess
	}

	uc.Metrics.recordIngestionBatch(string(summary.Status), time.Since(started))
	uc.logFinished(ctx, summary)

	slog.Info("ingestion batch finished",
		"batch_ref", summary.BatchRef,
		"status", summary.Status,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

func (uc *DefaultIngestionUsecase) processRow(ctx context.Context, line int, row ingestiondto.StatementRow) ingestiondto.RowOutcome {
	outcome := ingestiondto.RowOutcome{Line: line, SaleRef: row.SaleRef}

	if row.SaleRef == "" {
		outcome.Status = ingestiondto.RowSkipped
		outcome.Reason = "missing sale reference"
		return outcome
	}

	sale, err := uc.SaleRepo.GetSaleByExternalRef(row.SaleRef)
	if err != nil {
		outcome.Status = ingestiondto.RowSkipped
		outcome.Reason = fmt.Sprintf("sale %q not found", row.SaleRef)
		return outcome
	}

	_, created, err := uc.CommissionUsecase.CreateFromStatement(ctx, &commissiondto.CreateFromStatementInput{
		SaleID:       sale.ID,
		Gross:        row.Gross,
		DateReceived: row.DateReceived,
	})
	if err != nil {
		outcome.Status = ingestiondto.RowSkipped
		switch {
		case errors.Is(err, domain.ErrMissingAdviser):
			outcome.Reason = "no adviser assigned to sale"
		case errors.Is(err, domain.ErrMissingBaseValue):
			outcome.Reason = "no gross amount supplied and no base value to compute from"
		default:
			outcome.Reason = err.Error()
		}
		return outcome
	}

	if created {
		outcome.Status = ingestiondto.RowCreated
	} else {
		outcome.Status = ingestiondto.RowUpdated
	}
	return outcome
}

func (uc *DefaultIngestionUsecase) logFinished(ctx context.Context, summary *ingestiondto.Summary) {
	if uc.TaskLogger == nil {
		return
	}
	report, err := json.Marshal(summary.Rows)
	if err != nil {
		report = []byte("[]")
	}
	record := logger.IngestionTaskRecord{
		BatchRef:   summary.BatchRef,
		Status:     string(summary.Status),
		Processed:  summary.Processed,
		Skipped:    summary.Skipped,
		ReportJSON: string(report),
	}
	if err := uc.TaskLogger.LogBatchFinished(ctx, record); err != nil {
		slog.Error("failed to log ingestion batch result", "batch_ref", summary.BatchRef, "error", err.Error())
	}
}
