package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"termfolio/internal/jsonutil"
)

// DefaultEndpoint is the hosted form handler the portfolio posts to.
const DefaultEndpoint = "https://formspree.io/f/xvgveyqw"

// DefaultTimeout bounds a single submission.
const DefaultTimeout = 15 * time.Second

// Submitter sends a completed form somewhere.
type Submitter interface {
	Submit(ctx context.Context, f Fields) error
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code    int
	Message string // endpoint-provided reason, if any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("form endpoint returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("form endpoint returned %d", e.Code)
}

// Client posts the form as JSON to an external endpoint. One attempt per
// call; there is no retry.
type Client struct {
	Endpoint string
	HTTP     *http.Client
	Tracer   oteltrace.Tracer
	Logger   *slog.Logger
}

// Ensure Client implements Submitter.
var _ Submitter = (*Client)(nil)

// NewClient creates a client for endpoint with the default timeout.
func NewClient(endpoint string, tracer oteltrace.Tracer, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("termfolio/contact")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: DefaultTimeout},
		Tracer:   tracer,
		Logger:   logger,
	}
}

// endpointErrors is the error body shape used by the form handler.
type endpointErrors struct {
	Error  string `json:"error"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Submit implements Submitter.
func (c *Client) Submit(ctx context.Context, f Fields) error {
	id := uuid.NewString()
	ctx, span := c.Tracer.Start(ctx, "contact.submit",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("termfolio.submission.id", id),
			attribute.String("http.url", c.Endpoint),
		),
	)
	defer span.End()

	err := c.post(ctx, f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.Logger.Warn("contact submission failed", "submission", id, "error", err)
		return err
	}
	span.SetStatus(codes.Ok, "")
	c.Logger.Info("contact submission sent", "submission", id)
	return nil
}

func (c *Client) post(ctx context.Context, f Fields) error {
	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("posting form: %w", err)
	}
	defer resp.Body.Close()

	oteltrace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return &StatusError{Code: resp.StatusCode, Message: endpointMessage(resp.Body)}
}

// endpointMessage extracts a human-readable reason from an error body.
func endpointMessage(r io.Reader) string {
	var body endpointErrors
	if err := jsonutil.ReadLimited(r, 64<<10, &body, "form endpoint error body"); err != nil {
		return ""
	}
	if len(body.Errors) > 0 {
		msgs := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			if e.Message != "" {
				msgs = append(msgs, e.Message)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return body.Error
}
