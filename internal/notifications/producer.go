package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"duka/pkg/logger"

	"github.com/IBM/sarama"
)

// KafkaProducerConfig contains configuration for the ticket event producer
type KafkaProducerConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "ticket-events",
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

// SaramaConfig builds the sarama producer configuration
func (c *KafkaProducerConfig) SaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = c.RequiredAcks
	cfg.Producer.Retry.Max = c.RetryMax
	cfg.Producer.Timeout = c.Timeout
	// Events of one trip stay ordered
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	return cfg
}

// KafkaProducer publishes ticket events to Kafka
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewKafkaProducer connects a sync producer to the brokers
func NewKafkaProducer(config *KafkaProducerConfig, log *logger.Logger) (*KafkaProducer, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, config.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewKafkaProducerWith(producer, config.Topic, log), nil
}

// NewKafkaProducerWith wraps an existing sync producer
func NewKafkaProducerWith(producer sarama.SyncProducer, topic string, log *logger.Logger) *KafkaProducer {
	return &KafkaProducer{producer: producer, topic: topic, logger: log}
}

func (p *KafkaProducer) PublishTicketIssued(ctx context.Context, event *TicketIssued) error {
	value, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ticket event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(value),
		Headers:   createHeaders(event),
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send ticket event to Kafka: %w", err)
	}

	p.logger.DebugContext(ctx, "Ticket event published",
		slog.String("topic", p.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.Int("tickets", len(event.Tickets)),
	)
	return nil
}

func createHeaders(event *TicketIssued) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("payment_method"), Value: []byte(event.PaymentMethod)},
	}
}

func (p *KafkaProducer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}
