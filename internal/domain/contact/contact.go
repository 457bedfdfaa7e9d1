package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission as received by the API.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

var ErrMissingField = errors.New("name, email, subject and message are required")

func (m *Message) Validate() error {
	for _, f := range []string{m.Name, m.Email, m.Subject, m.Body} {
		if strings.TrimSpace(f) == "" {
			return ErrMissingField
		}
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
}

// Publisher hands a received message to the notification pipeline.
type Publisher interface {
	PublishContactReceived(ctx context.Context, m *Message) error
}
