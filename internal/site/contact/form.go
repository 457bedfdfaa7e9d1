// Package contact drives the contact form: one POST per submit and an
// inline banner with the outcome.
package contact

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/site/client"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	MessageFailed       = "Failed to send message. Please try again."
	MessageNetworkError = "Network error. Please try again later."
)

type Status int

const (
	Idle Status = iota
	Submitting
	SuccessDisplayed
	ErrorDisplayed
)

type Fields struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (f Fields) Validate() error {
	var missing []string
	for _, fld := range []struct{ name, value string }{
		{"name", f.Name}, {"email", f.Email}, {"subject", f.Subject}, {"message", f.Message},
	} {
		if strings.TrimSpace(fld.value) == "" {
			missing = append(missing, fld.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

type Submitter interface {
	SubmitContact(ctx context.Context, s client.Submission) (*client.ContactReply, error)
}

// View is what the form renders.
type View struct {
	Status Status
	Fields Fields
	Banner string
}

func (v View) Success() bool { return v.Status == SuccessDisplayed }

type Form struct {
	submitter Submitter
	logger    logger.Logger

	mu     sync.Mutex
	status Status
	fields Fields
	banner string
}

func NewForm(s Submitter, log logger.Logger) *Form {
	return &Form{submitter: s, logger: log}
}

// Submit sends fields once. A *ValidationError means nothing was sent and
// the form is unchanged; every other outcome is reflected in View.
func (f *Form) Submit(ctx context.Context, fields Fields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	f.status = Submitting
	f.fields = fields
	f.banner = ""
	f.mu.Unlock()

	reply, err := f.submitter.SubmitContact(ctx, client.Submission{
		Name:    fields.Name,
		Email:   fields.Email,
		Subject: fields.Subject,
		Message: fields.Message,
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = ErrorDisplayed
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) {
			f.banner = MessageFailed
		} else {
			f.banner = MessageNetworkError
		}
		f.logger.Warn("Contact submission failed", zap.Error(err))
		return nil
	}

	f.status = SuccessDisplayed
	f.banner = reply.Message
	f.fields = Fields{}
	return nil
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return View{Status: f.status, Fields: f.fields, Banner: f.banner}
}
