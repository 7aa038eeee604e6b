package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// Publisher wraps a Kafka sync producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishUserRegistered publishes a user registered event
func (p *Publisher) PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error {
	event.EventID = uuid.NewString()
	event.EventType = EventTypeUserRegistered
	event.Timestamp = time.Now()

	key := fmt.Sprintf("user_%d", event.UserID)
	return p.publish(ctx, TopicUserRegistered, EventTypeUserRegistered, key, event,
		attribute.Int64("user.id", int64(event.UserID)),
	)
}

// PublishStockTransferred publishes a stock transferred event
func (p *Publisher) PublishStockTransferred(ctx context.Context, event StockTransferredEvent) error {
	event.EventID = uuid.NewString()
	event.EventType = EventTypeStockTransferred
	event.Timestamp = time.Now()

	key := fmt.Sprintf("product_%d", event.ProductID)
	return p.publish(ctx, TopicStockTransferred, EventTypeStockTransferred, key, event,
		attribute.Int64("product.id", int64(event.ProductID)),
		attribute.Int64("warehouse.source_id", int64(event.SourceWarehouseID)),
		attribute.Int64("warehouse.target_id", int64(event.TargetWarehouseID)),
		attribute.Int("stock.quantity", event.Quantity),
	)
}

// publish marshals the event and sends it with trace context in the headers
func (p *Publisher) publish(ctx context.Context, topic, eventType, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append(attrs,
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
		)...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
	}
	for hk, hv := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(hk),
			Value: []byte(hv),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Logger.Info().
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close shuts down the underlying producer
func (p *Publisher) Close() error {
	return p.producer.Close()
}
