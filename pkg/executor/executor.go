// Package executor performs the actual network call on behalf of a
// Request: it assembles the full URL from a validated base, delegates the
// I/O to a transport, and hands the raw response parts back to the
// request for decoding. Failures are wrapped in *Error, tagged as either
// execution-class (transport) or response-class (decode).
package executor

import (
	"context"
	"net/url"
	"time"

	"github.com/Dzuchun/drukarnia-go/pkg/request"
)

// Executor is the transport capability Send builds on. SendInner performs
// exactly one network call and returns the raw response parts; it does no
// retrying and treats no status code as an error.
type Executor interface {
	// BaseURL returns the validated base all request URLs derive from.
	BaseURL() *request.BaseURL

	// SendInner performs the network call.
	SendInner(ctx context.Context, u *url.URL, method string) (request.ResponseParts, error)
}

// Send executes one API operation: clone the base URL, append the
// request's path segments and query parameters in order, perform the
// transport call, and decode the response. A transport failure surfaces
// as an execution-class *Error, a decode failure as a response-class one.
func Send[T any](ctx context.Context, ex Executor, req request.Request[T]) (T, error) {
	var zero T

	u := ex.BaseURL().Clone()
	u.AppendSegments(req.Endpoint()...)
	u.AppendParams(req.QueryParams())

	parts, err := sendVia(ctx, ex, u.URL(), req.Method(), req)
	if err != nil {
		return zero, execError(err)
	}

	resp, err := req.DecodeResponse(parts)
	if err != nil {
		return zero, responseError(err)
	}
	return resp, nil
}

// cachingExecutor is the optional capability of serving opted-in entity
// requests through a response cache.
type cachingExecutor interface {
	SendCached(ctx context.Context, u *url.URL, method string, ttl time.Duration) (request.ResponseParts, error)
}

// sendVia routes the call through the cache when both the request opts in
// and the executor supports it; everything else goes straight to the
// transport.
func sendVia(ctx context.Context, ex Executor, u *url.URL, method string, req any) (request.ResponseParts, error) {
	if c, ok := req.(Cacheable); ok {
		if ce, ok := ex.(cachingExecutor); ok {
			return ce.SendCached(ctx, u, method, c.CacheTTL())
		}
	}
	return ex.SendInner(ctx, u, method)
}
