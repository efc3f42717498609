// Package requester performs authenticated JSON requests on behalf of workflow nodes.
//
// The node names a credential; the requester resolves it through a
// credential.Provider and attaches the Authorization header before dispatch.
// Failures are never retried.
package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"friendgrid/internal/credential"
	"friendgrid/internal/model"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of an upstream body is read into memory.
var maxResponseBytes int64 = 4 << 20

// Config configures a Requester.
type Config struct {
	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration
	// Transport overrides the HTTP transport. Defaults to an otelhttp-wrapped http.DefaultTransport.
	Transport http.RoundTripper
	// Registerer receives the outbound request metrics. Metrics are disabled when nil.
	Registerer prometheus.Registerer
	// Logger receives failure logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Requester issues authenticated requests for named credentials.
type Requester struct {
	provider credential.Provider
	client   *http.Client
	log      *zap.Logger

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Requester resolving credentials through provider.
func New(provider credential.Provider, cfg Config) (*Requester, error) {
	if provider == nil {
		return nil, fmt.Errorf("requester: credential provider is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := &Requester{
		provider: provider,
		client:   &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		log:      cfg.Logger,
	}

	if cfg.Registerer != nil {
		r.requestCount = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "friendgrid_outbound_requests_total",
				Help: "Total number of authenticated outbound requests by method and status.",
			},
			[]string{"method", "status"},
		)
		r.requestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "friendgrid_outbound_request_duration_seconds",
				Help:    "Latency of authenticated outbound requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		)
		if err := cfg.Registerer.Register(r.requestCount); err != nil {
			return nil, fmt.Errorf("requester: register counter: %w", err)
		}
		if err := cfg.Registerer.Register(r.requestDuration); err != nil {
			return nil, fmt.Errorf("requester: register histogram: %w", err)
		}
	}

	return r, nil
}

// Do sends the request described by opts with the Authorization header of
// credentialName attached. It returns the response body on 2xx, an
// *HTTPError on any other status and a *TransportError when no response
// was received.
func (r *Requester) Do(ctx context.Context, credentialName string, opts model.RequestOptions) (json.RawMessage, error) {
	if opts.URL == "" {
		return nil, ErrURLRequired
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	auth, err := r.provider.AuthHeader(ctx, credentialName)
	if err != nil {
		return nil, fmt.Errorf("resolve credential: %w", err)
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.JSON {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("Authorization", auth)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		r.observe(method, "error", start)
		r.log.Warn("outbound_request_failed",
			zap.String("credential", credentialName),
			zap.String("method", method),
			zap.String("url", opts.URL),
			zap.Error(err),
		)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	r.observe(method, strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}
	if int64(len(data)) > maxResponseBytes {
		r.log.Warn("outbound_response_too_large",
			zap.String("method", method),
			zap.String("url", opts.URL),
			zap.Int("status", resp.StatusCode),
			zap.Int64("limit", maxResponseBytes),
		)
		return nil, &TransportError{Err: fmt.Errorf("%w: status %d, limit %d bytes", ErrResponseTooLarge, resp.StatusCode, maxResponseBytes)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.log.Warn("outbound_request_rejected",
			zap.String("credential", credentialName),
			zap.String("method", method),
			zap.String("url", opts.URL),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", data),
		)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return decodeBody(data), nil
}

// decodeBody returns JSON bodies verbatim and wraps anything else as a JSON string.
func decodeBody(data []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	b, _ := json.Marshal(string(data))
	return b
}

func (r *Requester) observe(method, status string, start time.Time) {
	if r.requestCount == nil {
		return
	}
	r.requestCount.WithLabelValues(method, status).Inc()
	r.requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// Close releases idle connections held by the underlying client.
func (r *Requester) Close() error {
	r.client.CloseIdleConnections()
	return nil
}
