package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/brokerhq/commission-service/internal/domain"
)

const commissionEventsTopic = "commission-events"

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    commissionEventsTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishCommissionEvent writes one engine event keyed by adviser so
// that events for the same adviser stay ordered within a partition.
func (k *DefaultKafkaPublisher) PublishCommissionEvent(event domain.CommissionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AdviserID),
		Value: value,
		Time:  time.Now(),
	})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
