package connection

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/iotlab-go/internal/infra/buildinfo"
	"github.com/yndnr/iotlab-go/internal/telemetry/logger"
	"github.com/yndnr/iotlab-go/internal/telemetry/metric"
)

// RequestIDHeader carries the per-call request id.
const RequestIDHeader = "X-Request-Id"

// Transport performs the HTTP calls of the testbed API.
type Transport struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
	metrics   *metric.Registry
}

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		t.client = c
	}
}

// WithLimiter throttles outgoing calls.
func WithLimiter(l *rate.Limiter) Option {
	return func(t *Transport) {
		t.limiter = l
	}
}

// WithMetrics records every call in r.
func WithMetrics(r *metric.Registry) Option {
	return func(t *Transport) {
		t.metrics = r
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(t *Transport) {
		t.userAgent = ua
	}
}

// NewTransport creates a Transport. The default HTTP client has no timeout;
// callers bound calls through the context or WithHTTPClient.
func NewTransport(opts ...Option) *Transport {
	t := &Transport{
		client:    &http.Client{},
		userAgent: buildinfo.UserAgent(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do sends req to rawURL, with basic auth when creds is not nil.
// A 200 response yields Structured or Raw; any other status yields *HTTPError.
func (t *Transport) Do(ctx context.Context, rawURL string, req Request, creds *Credentials) (Result, error) {
	reqID := ulid.Make().String()
	ctx = logger.WithRequestID(ctx, reqID)
	log := logger.L(ctx)

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s %s: wait for rate limiter: %w", req.method(), rawURL, err)
		}
	}

	body, contentType, err := req.body()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method(), rawURL, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method(), rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set(RequestIDHeader, reqID)
	if creds != nil {
		httpReq.SetBasicAuth(creds.username, creds.password)
	}

	log.Debug("sending request", "verb", req.verb(), "url", rawURL, "auth", creds)

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		t.observe(req.verb(), 0, start)
		return nil, fmt.Errorf("%s %s: %w", req.method(), rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	t.observe(req.verb(), resp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", req.method(), rawURL, err)
	}

	log.Debug("received response",
		"verb", req.verb(),
		"status", resp.StatusCode,
		"bytes", len(data),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
			Method:     req.method(),
			URL:        rawURL,
		}
	}

	return decodeResult(data), nil
}

func (t *Transport) observe(verb string, code int, start time.Time) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordRequest(verb, code)
	t.metrics.ObserveRequestDuration(verb, time.Since(start).Seconds())
}
