package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	ReplyStatus  = "success"
	ReplyMessage = "Thank you for your message! I'll get back to you soon."
)

type SubmitContactUseCase struct {
	contactRepo contact.Repository
	publisher   contact.Publisher
	logger      logger.Logger
}

func NewSubmitContactUseCase(repo contact.Repository, pub contact.Publisher, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{contactRepo: repo, publisher: pub, logger: log}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitContactOutput struct {
	MessageID uuid.UUID
	Status    string
	Message   string
}

// Execute stores the message and hands it to the notification pipeline.
// A publish failure is logged but does not fail the submission once the
// message is stored.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	msg := &contact.Message{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Body:       input.Message,
		ReceivedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("contact message is incomplete", err)
	}

	uc.logger.Info("Contact message received",
		zap.String("message_id", msg.ID.String()),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
	)

	if err := uc.contactRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishContactReceived(ctx, msg); err != nil {
		uc.logger.Error("Failed to publish contact event", err, zap.String("message_id", msg.ID.String()))
	}

	return &SubmitContactOutput{
		MessageID: msg.ID,
		Status:    ReplyStatus,
		Message:   ReplyMessage,
	}, nil
}
