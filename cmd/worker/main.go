package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/notify"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs KAFKA_BROKERS", errors.New("no brokers configured"))
	}

	// Notifier
	var notifier notify.Notifier
	mailer, err := notify.NewSMTPMailer(cfg, appLogger)
	if err != nil {
		appLogger.Warn("SMTP not configured, contact messages will only be logged", zap.Error(err))
		notifier = notify.NewLogNotifier(appLogger)
	} else {
		notifier = mailer
	}

	processContactEventUC := contactUC.NewProcessContactEventUseCase(notifier, appLogger)

	// Kafka Consumer
	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContactEvents))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		msg, err := contactConsumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		msgLog := appLogger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			msgLog.Error("Failed to unmarshal event, skipping", err)
			commitMessage(ctx, contactConsumer, msg, appLogger)
			continue
		}

		msgLog.Info("Processing event", zap.String("event_type", payload.EventType), zap.String("message_id", payload.MessageID))

		if err := processContactEventUC.Execute(ctx, payload); err != nil {
			msgLog.Error("Failed to process event", err)
			continue
		}

		commitMessage(ctx, contactConsumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
