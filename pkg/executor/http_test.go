package executor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/request"
)

func mustBaseURL(t *testing.T, raw string) *request.BaseURL {
	t.Helper()
	base, err := request.ParseBaseURL(raw)
	if err != nil {
		t.Fatalf("ParseBaseURL(%q): %v", raw, err)
	}
	return base
}

func TestNew_Validation(t *testing.T) {
	base := mustBaseURL(t, "https://example.com/")

	tests := []struct {
		name        string
		base        *request.BaseURL
		cfg         Config
		expectError bool
	}{
		{
			name: "valid config",
			base: base,
			cfg:  Config{UserAgent: "test/1.0"},
		},
		{
			name:        "nil base",
			base:        nil,
			cfg:         Config{UserAgent: "test/1.0"},
			expectError: true,
		},
		{
			name:        "missing user-agent",
			base:        base,
			cfg:         Config{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := New(tt.base, tt.cfg)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if ex.BaseURL() != tt.base {
				t.Error("BaseURL() does not return the configured base")
			}
		})
	}
}

func TestHTTPExecutor_SendInner(t *testing.T) {
	var gotUserAgent, gotAccept, gotURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotURI = r.URL.RequestURI()
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"message":"short and stout"}`))
	}))
	defer server.Close()

	ex, err := New(mustBaseURL(t, server.URL), Config{UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	u, _ := url.Parse(server.URL + "/api/articles?page=2")
	parts, err := ex.SendInner(context.Background(), u, http.MethodGet)
	if err != nil {
		t.Fatalf("SendInner: %v", err)
	}

	if gotUserAgent != "test/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "test/1.0")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
	if gotURI != "/api/articles?page=2" {
		t.Errorf("request URI = %q", gotURI)
	}
	if parts.StatusCode != http.StatusTeapot {
		t.Errorf("StatusCode = %d, want %d (status must pass through)", parts.StatusCode, http.StatusTeapot)
	}
	if parts.Body != `{"message":"short and stout"}` {
		t.Errorf("Body = %q", parts.Body)
	}
}

func TestHTTPExecutor_UnsupportedMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("transport reached for unsupported method")
	}))
	defer server.Close()

	ex, err := New(mustBaseURL(t, server.URL), Config{UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	u, _ := url.Parse(server.URL + "/api/articles")
	_, err = ex.SendInner(context.Background(), u, http.MethodPut)
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("error = %v, want ErrUnsupportedMethod", err)
	}
}

func TestHTTPExecutor_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	ex, err := New(mustBaseURL(t, server.URL), Config{UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	u, _ := url.Parse(server.URL + "/api/articles")
	_, err = ex.SendInner(context.Background(), u, http.MethodGet)
	if err == nil {
		t.Fatal("expected network error, got nil")
	}
}

func TestHTTPExecutor_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ex, err := New(mustBaseURL(t, server.URL), Config{UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	u, _ := url.Parse(server.URL + "/api/articles")
	_, err = ex.SendInner(ctx, u, http.MethodGet)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context deadline", err)
	}
}

// cacheProbe implements both Executor and the caching capability;
// SendCached records the TTL it was handed.
type cacheProbe struct {
	fakeExecutor
	cachedCalls int
	gotTTL      time.Duration
}

func (p *cacheProbe) SendCached(ctx context.Context, u *url.URL, method string, ttl time.Duration) (request.ResponseParts, error) {
	p.cachedCalls++
	p.gotTTL = ttl
	return p.SendInner(ctx, u, method)
}

// cacheableRequest opts into the entity cache.
type cacheableRequest struct {
	echoRequest
	ttl time.Duration
}

func (r *cacheableRequest) CacheTTL() time.Duration { return r.ttl }

func TestSend_RoutesCacheableThroughCache(t *testing.T) {
	base := mustBaseURL(t, "https://example.com/")
	probe := &cacheProbe{fakeExecutor: fakeExecutor{
		base:  base,
		parts: request.ResponseParts{StatusCode: 200, Body: `[]`},
	}}

	req := &cacheableRequest{
		echoRequest: echoRequest{segments: []string{"api", "tags"}},
		ttl:         5 * time.Minute,
	}
	if _, err := Send(context.Background(), probe, req); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if probe.cachedCalls != 1 {
		t.Errorf("SendCached calls = %d, want 1", probe.cachedCalls)
	}
	if probe.gotTTL != 5*time.Minute {
		t.Errorf("TTL = %v, want 5m", probe.gotTTL)
	}
}

func TestSend_PlainRequestSkipsCache(t *testing.T) {
	base := mustBaseURL(t, "https://example.com/")
	probe := &cacheProbe{fakeExecutor: fakeExecutor{
		base:  base,
		parts: request.ResponseParts{StatusCode: 200, Body: `[]`},
	}}

	if _, err := Send(context.Background(), probe, &echoRequest{segments: []string{"api", "feed"}}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if probe.cachedCalls != 0 {
		t.Errorf("SendCached calls = %d, want 0 for non-cacheable request", probe.cachedCalls)
	}
	if probe.calls != 1 {
		t.Errorf("SendInner calls = %d, want 1", probe.calls)
	}
}
