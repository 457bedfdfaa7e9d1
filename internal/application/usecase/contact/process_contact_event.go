package contact

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/notify"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.uber.org/zap"
)

// ProcessContactEventUseCase runs in the worker for every message read from
// the contact topic.
type ProcessContactEventUseCase struct {
	notifier notify.Notifier
	logger   logger.Logger
}

func NewProcessContactEventUseCase(n notify.Notifier, log logger.Logger) *ProcessContactEventUseCase {
	return &ProcessContactEventUseCase{notifier: n, logger: log}
}

func (uc *ProcessContactEventUseCase) Execute(ctx context.Context, payload event.ContactEventPayload) error {
	switch payload.EventType {
	case event.EventContactReceived:
		if err := uc.notifier.NotifyContact(ctx, payload); err != nil {
			return fmt.Errorf("notify contact %s: %w", payload.MessageID, err)
		}
		return nil
	default:
		uc.logger.Warn("Skipping unknown contact event", zap.String("event_type", payload.EventType))
		return nil
	}
}
