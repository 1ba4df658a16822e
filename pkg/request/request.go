package request

import (
	"fmt"
	"math"
)

// FirstPage is the index of the first result page.
const FirstPage PageIndex = 1

// PageIndex is a 1-based result page index. The zero value is not a valid
// page; streams start at FirstPage and advance one page at a time.
type PageIndex uint64

// Next returns the following page index. Overflow means a pathological
// page count and is treated as fatal.
func (p PageIndex) Next() PageIndex {
	if p == math.MaxUint64 {
		panic("page index overflow")
	}
	return p + 1
}

// NextSaturating returns the following page index, capping at the maximum
// representable value instead of overflowing.
func (p PageIndex) NextSaturating() PageIndex {
	if p == math.MaxUint64 {
		return p
	}
	return p + 1
}

// String renders the index for use as a query parameter value.
func (p PageIndex) String() string {
	return fmt.Sprintf("%d", uint64(p))
}

// ResponseParts is a transport-independent response snapshot: the raw
// status code and the body decoded to text. It is produced once per
// executor call and consumed immediately by Request.DecodeResponse.
type ResponseParts struct {
	StatusCode int
	Body       string
}

// Request describes a single API operation: where it goes, how it is
// sent, and how its raw response becomes a typed result. Implementations
// are logically immutable for the duration of one call.
//
// DecodeResponse receives the response parts regardless of status code;
// mapping specific statuses (e.g. not-found) to domain errors is the
// implementation's responsibility, not the executor's.
type Request[T any] interface {
	// Endpoint returns the ordered path segments appended to the base URL.
	Endpoint() []string

	// Method returns the HTTP verb, e.g. http.MethodGet.
	Method() string

	// QueryParams returns the ordered query parameters. The executor
	// attaches them as given, duplicates included.
	QueryParams() []QueryParam

	// DecodeResponse interprets the raw response parts as the typed
	// result, or fails with a response-interpretation error.
	DecodeResponse(parts ResponseParts) (T, error)
}
