package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = "587"
	cfg.SMTP.Username = "bot@example.com"
	cfg.SMTP.Password = "secret"
	cfg.SMTP.To = "owner@example.com"
	return cfg
}

func testPayload() event.ContactEventPayload {
	return event.ContactEventPayload{
		EventType:  event.EventContactReceived,
		MessageID:  "m-1",
		Name:       "Ann",
		Email:      "ann@example.com\r\nBcc: victim@example.com",
		Subject:    "Hi",
		Message:    "Hello there",
		ReceivedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSMTPMailer_NotifyContact(t *testing.T) {
	mailer, err := NewSMTPMailer(testConfig(), logger.NewNop())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, mailer.NotifyContact(context.Background(), testPayload()))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "bot@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	headers, body, found := strings.Cut(string(gotMsg), "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "Subject: [Portfolio] Hi")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, body, "Hello there")
}

func TestSMTPMailer_SendError(t *testing.T) {
	mailer, err := NewSMTPMailer(testConfig(), logger.NewNop())
	require.NoError(t, err)
	mailer.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("refused")
	}

	assert.Error(t, mailer.NotifyContact(context.Background(), testPayload()))
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
