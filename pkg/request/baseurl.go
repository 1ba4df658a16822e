// Package request defines the transport-agnostic request contract: the
// validated base URL, page indexing primitives, and the Request interface
// every Drukarnia API operation implements.
package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrCannotBeBase is returned when a URL cannot serve as a base for
// appending path segments (opaque, relative, or host-less URLs).
var ErrCannotBeBase = errors.New("url cannot be a base")

// BaseURL is an absolute, hierarchical URL that request paths and query
// parameters are appended to. It is immutable from the outside; the
// executor clones it before building a request URL.
type BaseURL struct {
	u *url.URL
}

// ParseBaseURL parses and validates a base URL.
func ParseBaseURL(raw string) (*BaseURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return NewBaseURL(u)
}

// NewBaseURL validates an already-parsed URL as a base URL.
func NewBaseURL(u *url.URL) (*BaseURL, error) {
	if !u.IsAbs() || u.Opaque != "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrCannotBeBase, u.String())
	}
	return &BaseURL{u: u}, nil
}

// Clone returns an independent copy of the base URL.
func (b *BaseURL) Clone() *BaseURL {
	c := *b.u
	return &BaseURL{u: &c}
}

// AppendSegments appends path segments in order. Segments are stored
// decoded; URL.String applies standard percent-encoding, including for
// non-ASCII input. Segments must be non-empty and must not contain "/" -
// passing one is a caller bug, not a runtime error class.
func (b *BaseURL) AppendSegments(segments ...string) {
	p := b.u.Path
	for _, s := range segments {
		p = strings.TrimSuffix(p, "/") + "/" + s
	}
	b.u.Path = p
	// Path now carries the canonical decoded form.
	b.u.RawPath = ""
}

// AppendParams attaches query parameters in the order given. Duplicate
// names are preserved, not deduplicated.
func (b *BaseURL) AppendParams(params []QueryParam) {
	var sb strings.Builder
	sb.WriteString(b.u.RawQuery)
	for _, p := range params {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	b.u.RawQuery = sb.String()
}

// URL returns the underlying URL.
func (b *BaseURL) URL() *url.URL {
	return b.u
}

// String returns the encoded URL.
func (b *BaseURL) String() string {
	return b.u.String()
}

// QueryParam is a single name/value query string pair.
type QueryParam struct {
	Name  string
	Value string
}
