package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func testMessage() *contact.Message {
	return &contact.Message{
		ID:         uuid.MustParse("6f1c2a8e-3f55-4d0e-9a59-6a2f2c7d1b10"),
		Name:       "Test User",
		Email:      "test@example.com",
		Subject:    "Hello",
		Body:       "Testing the contact pipeline",
		ReceivedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPublishContactReceived(t *testing.T) {
	w := &recordingWriter{}
	client := &KafkaProducerClient{ContactEventsWriter: w, logger: logger.NewNop()}

	require.NoError(t, client.PublishContactReceived(context.Background(), testMessage()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "6f1c2a8e-3f55-4d0e-9a59-6a2f2c7d1b10", string(w.msgs[0].Key))

	var payload ContactEventPayload
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &payload))
	assert.Equal(t, EventContactReceived, payload.EventType)
	assert.Equal(t, "Testing the contact pipeline", payload.Message)
	assert.True(t, payload.ReceivedAt.Equal(testMessage().ReceivedAt))
}

func TestPublishContactReceived_WriterFailureIsUnavailable(t *testing.T) {
	w := &recordingWriter{err: errors.New("no brokers")}
	client := &KafkaProducerClient{ContactEventsWriter: w, logger: logger.NewNop()}

	err := client.PublishContactReceived(context.Background(), testMessage())
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
