package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/brokerhq/commission-service/internal/domain"
	ingestiondto "github.com/brokerhq/commission-service/internal/usecase/dto/ingestion"
)

const statementBatchesTopic = "statement-batches"

// StatementBatch is the inbound wire shape: one provider statement as
// a batch of rows to reconcile.
type StatementBatch struct {
	Source string                     `json:"source"`
	Rows   []ingestiondto.StatementRow `json:"rows"`
}

type StatementProcessor interface {
	ProcessStatement(ctx context.Context, rows []ingestiondto.StatementRow) (*ingestiondto.Summary, error)
}

type DefaultKafkaSubscriber struct {
	brokers []string
}

func NewDefaultKafkaSubscriber(brokers []string) *DefaultKafkaSubscriber {
	return &DefaultKafkaSubscriber{brokers: brokers}
}

// SaleStatusEvent is an inbound CRM notification that a sale changed
// state. Active sales trigger commission creation, cancelled sales
// trigger reversal.
type SaleStatusEvent struct {
	SaleID string `json:"sale_id"`
	Status string `json:"status"`
}

type SaleStatusChanger interface {
	ChangeSaleStatus(ctx context.Context, saleID string, newStatus domain.SaleStatus) error
}

const saleEventsTopic = "sale-events"

// ConsumeSaleEvents applies CRM status transitions until the context is
// cancelled.
func (k *DefaultKafkaSubscriber) ConsumeSaleEvents(ctx context.Context, groupID string, sales SaleStatusChanger) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		Topic:   saleEventsTopic,
		GroupID: groupID,
	})
	defer reader.Close()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event SaleStatusEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			slog.Error("malformed sale event", "offset", m.Offset, "error", err.Error())
			continue
		}

		if err := sales.ChangeSaleStatus(ctx, event.SaleID, domain.SaleStatus(event.Status)); err != nil {
			slog.Error("sale status transition failed",
				"sale_id", event.SaleID,
				"status", event.Status,
				"error", err.Error(),
			)
		}
	}
}

// ConsumeStatements reads statement batches and feeds them through the
// ingestion pipeline until the context is cancelled. A malformed
// message is logged and skipped, never retried.
func (k *DefaultKafkaSubscriber) ConsumeStatements(ctx context.Context, groupID string, processor StatementProcessor) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		Topic:   statementBatchesTopic,
		GroupID: groupID,
	})
	defer reader.Close()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var batch StatementBatch
		if err := json.Unmarshal(m.Value, &batch); err != nil {
			slog.Error("malformed statement batch", "offset", m.Offset, "error", err.Error())
			continue
		}

		summary, err := processor.ProcessStatement(ctx, batch.Rows)
		if err != nil {
			slog.Error("statement batch failed", "source", batch.Source, "error", err.Error())
			continue
		}
		slog.Info("statement batch processed",
			"source", batch.Source,
			"batch_ref", summary.BatchRef,
			"status", string(summary.Status),
			"processed", summary.Processed,
			"skipped", summary.Skipped,
		)
	}
}
