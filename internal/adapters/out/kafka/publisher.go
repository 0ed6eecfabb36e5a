// Package kafka publishes domain events to Kafka topics.
// Events are serialized as JSON and keyed by the emitting aggregate's id,
// so all events of one aggregate land on the same partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// ordersTopicPrefix identifies order lifecycle events by their dotted name.
// Everything else (item catalog and stock events) goes to the items topic.
const ordersTopicPrefix = "order."

// SaramaEventPublisher implements EventPublisher using a synchronous
// idempotent Kafka producer. Publishing happens after the producing
// transaction committed, so a failed send loses at most the notification,
// never the state change.
type SaramaEventPublisher struct {
	producer    sarama.SyncProducer
	ordersTopic string
	itemsTopic  string
	logger      *slog.Logger
}

// NewSaramaEventPublisher creates a Kafka event publisher.
// The producer waits for acknowledgement from all in-sync replicas and is
// configured idempotent, which requires a single open request per broker.
func NewSaramaEventPublisher(
	brokers []string,
	ordersTopic string,
	itemsTopic string,
	logger *slog.Logger,
) (*SaramaEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &SaramaEventPublisher{
		producer:    producer,
		ordersTopic: ordersTopic,
		itemsTopic:  itemsTopic,
		logger:      logger.With("component", "kafka_publisher"),
	}, nil
}

// Publish serializes the event as JSON and sends it to the topic derived
// from the event name. The aggregate id becomes the partition key.
func (p *SaramaEventPublisher) Publish(ctx context.Context, event kernel.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventName(), err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topicFor(event),
		Key:   sarama.StringEncoder(event.AggregateID()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event-type"),
				Value: []byte(event.EventName()),
			},
			{
				Key:   []byte("event-id"),
				Value: []byte(uuid.New().String()),
			},
			{
				Key:   []byte("timestamp"),
				Value: []byte(time.Now().UTC().Format(time.RFC3339)),
			},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventName(), err)
	}

	p.logger.Info("event published",
		"event", event.EventName(),
		"topic", message.Topic,
		"partition", partition,
		"offset", offset)
	return nil
}

// Close shuts down the underlying producer, flushing buffered messages.
func (p *SaramaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// topicFor routes order lifecycle events to the orders topic and item
// catalog and stock events to the items topic.
func (p *SaramaEventPublisher) topicFor(event kernel.DomainEvent) string {
	if strings.HasPrefix(event.EventName(), ordersTopicPrefix) {
		return p.ordersTopic
	}
	return p.itemsTopic
}
