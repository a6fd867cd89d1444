package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/propdesk/go-contractflow/pkg/payload"
)

// DefaultEndpointPath is the fixed submission path on the backend.
const DefaultEndpointPath = "/webhook"

// maxErrorBody caps how much of a failure response body is kept for the
// diagnostic notification.
const maxErrorBody = 8 << 10

// Transport sends an encoded payload to the backend. Any HTTP success status
// is success; everything else surfaces as a StatusError.
type Transport interface {
	Send(ctx context.Context, p *payload.Payload) error
}

// StatusError is a non-success response from the submission endpoint. The
// status code and the (truncated) body text are kept for diagnostics.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

// Error implements error.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("error del servidor: %s", e.Status)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// HTTPTransport posts the multipart payload to a fixed endpoint. The default
// client has no timeout, matching the observed backend contract; set one via
// WithTimeout or cancel through the context.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// TransportOption customises an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithTimeout sets a hard deadline on the submission call.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		t.client.Timeout = timeout
	}
}

// NewHTTPTransport constructs a transport posting to the given endpoint URL.
func NewHTTPTransport(endpoint string, options ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, p *payload.Payload) error {
	if t == nil || t.endpoint == "" {
		return fmt.Errorf("submit: transport endpoint is not configured")
	}

	var body bytes.Buffer
	contentType, err := p.Encode(&body)
	if err != nil {
		return fmt.Errorf("submit: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &body)
	if err != nil {
		return fmt.Errorf("submit: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit: post payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Code:   resp.StatusCode,
		Status: resp.Status,
		Body:   string(detail),
	}
}
