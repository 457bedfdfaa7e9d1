package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	TopicContactEvents = "contact.events"

	EventContactReceived = "contact.received"
)

// ContactEventPayload is the value written to TopicContactEvents.
type ContactEventPayload struct {
	EventType  string    `json:"event_type"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewContactReceivedPayload(m *contact.Message) ContactEventPayload {
	return ContactEventPayload{
		EventType:  EventContactReceived,
		MessageID:  m.ID.String(),
		Name:       m.Name,
		Email:      m.Email,
		Subject:    m.Subject,
		Message:    m.Body,
		ReceivedAt: m.ReceivedAt,
	}
}

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactEventsWriter messageWriter
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ContactEventsWriter: contactWriter,
		logger:              log,
	}, nil
}

func (c *KafkaProducerClient) PublishContactReceived(ctx context.Context, m *contact.Message) error {
	value, err := json.Marshal(NewContactReceivedPayload(m))
	if err != nil {
		return apperror.NewInternal("failed to marshal contact event", err)
	}

	err = c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.ID.String()),
		Value: value,
	})
	if err != nil {
		return apperror.NewUnavailable("kafka", err)
	}

	c.logger.Info("Published contact event", zap.String("message_id", m.ID.String()))
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		if err := c.ContactEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

// noopPublisher is used when no brokers are configured.
type noopPublisher struct {
	logger logger.Logger
}

func NewNoopPublisher(log logger.Logger) contact.Publisher {
	return &noopPublisher{logger: log}
}

func (p *noopPublisher) PublishContactReceived(ctx context.Context, m *contact.Message) error {
	p.logger.Debug("Kafka disabled, contact event not published", zap.String("message_id", m.ID.String()))
	return nil
}
