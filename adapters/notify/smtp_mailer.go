package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Notifier delivers a received contact message to the site owner.
type Notifier interface {
	NotifyContact(ctx context.Context, payload event.ContactEventPayload) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
	send     sendMailFunc
	logger   logger.Logger
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) (*SMTPMailer, error) {
	if cfg.SMTP.Host == "" || cfg.SMTP.To == "" {
		return nil, fmt.Errorf("SMTP host and recipient must be configured")
	}
	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}
	return &SMTPMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     from,
		to:       cfg.SMTP.To,
		send:     smtp.SendMail,
		logger:   log,
	}, nil
}

func (m *SMTPMailer) NotifyContact(ctx context.Context, p event.ContactEventPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(m.host+":"+m.port, auth, m.from, []string{m.to}, composeContactMail(m.from, m.to, p)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	m.logger.Info("Delivered contact notification", zap.String("message_id", p.MessageID))
	return nil
}

// headerSafe strips CR and LF so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func composeContactMail(from, to string, p event.ContactEventPayload) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(p.Email))
	fmt.Fprintf(&b, "Subject: [Portfolio] %s\r\n", headerSafe(p.Subject))
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nReceived: %s\r\n\r\n%s\r\n",
		p.Name, p.Email, p.ReceivedAt.Format("2006-01-02 15:04:05 MST"), p.Message)
	return []byte(b.String())
}

// LogNotifier only logs. The worker uses it when SMTP is not configured.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) NotifyContact(ctx context.Context, p event.ContactEventPayload) error {
	n.logger.Info("Contact message received",
		zap.String("message_id", p.MessageID),
		zap.String("name", p.Name),
		zap.String("email", p.Email),
		zap.String("subject", p.Subject),
	)
	return nil
}
