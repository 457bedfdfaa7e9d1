package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	PathProfile      = "/api/profile"
	PathProjects     = "/api/projects"
	PathTechnologies = "/api/technologies"
	PathContact      = "/api/contact"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the portfolio API. Every call is a single attempt with
// no client-side timeout; the caller's context is the only bound.
type Client struct {
	baseURL string
	http    HTTPDoer
	tracer  trace.Tracer
	logger  logger.Logger
}

type Option func(*Client)

func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *Client) { c.http = d }
}

func New(baseURL string, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tracer:  otel.Tracer("github.com/khoahotran/portfolio/internal/site/client"),
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// FetchResource GETs path and returns the raw JSON body of a 2xx response.
func (c *Client) FetchResource(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	url := c.baseURL + path

	ctx, span := c.tracer.Start(ctx, path, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
		))
	defer span.End()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, c.fail(span, &NetworkError{Method: method, URL: url, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(span, &NetworkError{Method: method, URL: url, Err: err})
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, c.fail(span, &HTTPError{Method: method, URL: url, StatusCode: resp.StatusCode})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(span, &NetworkError{Method: method, URL: url, Err: err})
	}
	if !json.Valid(raw) {
		return nil, c.fail(span, &NetworkError{Method: method, URL: url, Err: fmt.Errorf("response body is not JSON")})
	}

	c.logger.Debug("API call succeeded", zap.String("method", method), zap.String("path", path))
	return raw, nil
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// decode unwraps a successful body. A body of the wrong shape is treated
// like an unreadable one.
func decode[T any](raw json.RawMessage, method, url string) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &NetworkError{Method: method, URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	return v, nil
}

func (c *Client) Profile(ctx context.Context) (*profile.Profile, error) {
	raw, err := c.FetchResource(ctx, PathProfile)
	if err != nil {
		return nil, err
	}
	env, err := decode[struct {
		Profile *profile.Profile `json:"profile"`
	}](raw, http.MethodGet, c.baseURL+PathProfile)
	if err != nil {
		return nil, err
	}
	if env.Profile == nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: c.baseURL + PathProfile, Err: fmt.Errorf("response has no profile")}
	}
	return env.Profile, nil
}

// Projects returns the listed projects. A missing or null "projects" key,
// or a null entry, is a malformed body; an empty array is a valid result.
func (c *Client) Projects(ctx context.Context) ([]*project.Project, error) {
	raw, err := c.FetchResource(ctx, PathProjects)
	if err != nil {
		return nil, err
	}
	url := c.baseURL + PathProjects
	env, err := decode[struct {
		Projects *[]*project.Project `json:"projects"`
	}](raw, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	if env.Projects == nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: url, Err: fmt.Errorf("response has no projects")}
	}
	for i, p := range *env.Projects {
		if p == nil {
			return nil, &NetworkError{Method: http.MethodGet, URL: url, Err: fmt.Errorf("response has a null project at index %d", i)}
		}
	}
	return *env.Projects, nil
}

// Technologies follows the same envelope rule as Projects.
func (c *Client) Technologies(ctx context.Context) ([]technology.Technology, error) {
	raw, err := c.FetchResource(ctx, PathTechnologies)
	if err != nil {
		return nil, err
	}
	url := c.baseURL + PathTechnologies
	env, err := decode[struct {
		Technologies *[]technology.Technology `json:"technologies"`
	}](raw, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	if env.Technologies == nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: url, Err: fmt.Errorf("response has no technologies")}
	}
	return *env.Technologies, nil
}

// Submission is the body of a contact POST.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) SubmitContact(ctx context.Context, s Submission) (*ContactReply, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, PathContact, body)
	if err != nil {
		return nil, err
	}
	reply, err := decode[ContactReply](raw, http.MethodPost, c.baseURL+PathContact)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
