package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/cache"
	"github.com/Dzuchun/drukarnia-go/pkg/request"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for request execution.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drukarnia_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "drukarnia_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drukarnia_errors_total",
		Help: "Total execution errors by class",
	}, []string{"class"})
)

// Cacheable marks a request whose successful response may be served from
// the transport-level entity cache. Paginated page requests never
// implement it; the pagination core does not cache.
type Cacheable interface {
	// CacheTTL returns how long a successful response stays valid.
	CacheTTL() time.Duration
}

// Config holds the HTTP executor configuration.
type Config struct {
	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds a single network call (default 30s).
	Timeout time.Duration

	// Cache is the optional entity-response cache. Nil disables caching.
	Cache *cache.Store
}

// HTTPExecutor executes requests over net/http. It supports the verbs
// the Drukarnia API uses (GET, POST, DELETE); anything else is an
// ErrUnsupportedMethod execution error.
type HTTPExecutor struct {
	httpClient *http.Client
	base       *request.BaseURL
	cfg        Config
	logger     zerolog.Logger
}

// New creates an HTTP executor for the given base URL. Creation succeeds
// whenever the base URL is valid; reachability is only discovered on the
// first call.
func New(base *request.BaseURL, cfg Config) (*HTTPExecutor, error) {
	if base == nil {
		return nil, fmt.Errorf("base url is required")
	}
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &HTTPExecutor{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		base:   base,
		cfg:    cfg,
		logger: log.With().Str("component", "executor").Logger(),
	}, nil
}

// BaseURL returns the executor's base URL.
func (e *HTTPExecutor) BaseURL() *request.BaseURL {
	return e.base
}

// SendInner performs a single HTTP call and snapshots the response.
// Status codes are passed through untouched; interpreting them is the
// request's job.
func (e *HTTPExecutor) SendInner(ctx context.Context, u *url.URL, method string) (request.ResponseParts, error) {
	endpoint := u.Path

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		errorsTotal.WithLabelValues("unsupported_method").Inc()
		return request.ResponseParts{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return request.ResponseParts{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	e.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Msg("Executing API request")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		errorsTotal.WithLabelValues("network").Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return request.ResponseParts{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Reading response body failed")
		errorsTotal.WithLabelValues("decode").Inc()
		return request.ResponseParts{}, fmt.Errorf("read response body: %w", err)
	}

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	return request.ResponseParts{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// SendCached is SendInner behind the entity cache: GET responses with
// status 200 are stored under the full URL for the given TTL. It is used
// by Send only for requests that opt in via Cacheable.
func (e *HTTPExecutor) SendCached(ctx context.Context, u *url.URL, method string, ttl time.Duration) (request.ResponseParts, error) {
	if e.cfg.Cache == nil || method != http.MethodGet || ttl <= 0 {
		return e.SendInner(ctx, u, method)
	}

	key := u.String()
	if entry, err := e.cfg.Cache.Get(ctx, key); err == nil {
		e.logger.Debug().Str("endpoint", u.Path).Msg("Serving response from cache")
		return request.ResponseParts{StatusCode: entry.StatusCode, Body: entry.Body}, nil
	} else if err != cache.ErrCacheMiss {
		e.logger.Warn().Err(err).Str("endpoint", u.Path).Msg("Cache get error")
	}

	parts, err := e.SendInner(ctx, u, method)
	if err != nil {
		return parts, err
	}

	if parts.StatusCode == http.StatusOK {
		entry := &cache.Entry{
			StatusCode: parts.StatusCode,
			Body:       parts.Body,
			FetchedAt:  time.Now(),
		}
		if err := e.cfg.Cache.Set(ctx, key, entry, ttl); err != nil {
			e.logger.Warn().Err(err).Str("endpoint", u.Path).Msg("Failed to cache response")
		}
	}
	return parts, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (e *HTTPExecutor) SetHTTPClient(client *http.Client) {
	e.httpClient = client
}
