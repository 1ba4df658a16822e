package pagination

import (
	"context"
	"iter"

	"github.com/Dzuchun/drukarnia-go/pkg/request"
)

// FetchFunc fetches a single result page. Implementations perform exactly
// one network call per invocation; the stream drives the page index.
type FetchFunc[T any] func(ctx context.Context, page request.PageIndex) ([]T, error)

// streamState is the stream's observable lifecycle. Exhausted and Errored
// are terminal.
type streamState uint8

const (
	stateActive streamState = iota
	stateExhausted
	stateErrored
)

// PageStream lazily produces result pages for increasing page indices,
// starting at the first page. Page N+1 is not requested until page N has
// resolved successfully, so fetches for one stream are strictly
// sequential and pages arrive in index order.
//
// An empty page means the results ran out: the stream finishes without
// yielding it. A fetch error is yielded exactly once and latches the
// stream finished; a failure says nothing about whether later pages would
// succeed or whether results ended, so the stream stops rather than guess.
// Callers who want a fresh attempt build a new stream.
type PageStream[T any] struct {
	fetch FetchFunc[T]
	page  request.PageIndex
	state streamState

	// pending is the prepared fetch for the current page, bound at
	// construction for the first page and rebound after each success.
	pending func(ctx context.Context) ([]T, error)
}

// NewPageStream creates a page stream over fetch, positioned at the first
// page.
func NewPageStream[T any](fetch FetchFunc[T]) *PageStream[T] {
	s := &PageStream[T]{
		fetch: fetch,
		page:  request.FirstPage,
		state: stateActive,
	}
	s.pending = s.bind(request.FirstPage)
	return s
}

func (s *PageStream[T]) bind(page request.PageIndex) func(ctx context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		return s.fetch(ctx, page)
	}
}

// Next advances the stream by one page.
//
// It returns (page, true, nil) for a successful non-empty page,
// (nil, false, err) when the fetch failed, and (nil, false, nil) once the
// stream is finished. After an error the stream is finished: the fetch
// function is never called again and every further Next reports done.
func (s *PageStream[T]) Next(ctx context.Context) ([]T, bool, error) {
	if s.state != stateActive {
		return nil, false, nil
	}

	page, err := s.pending(ctx)
	if err != nil {
		s.state = stateErrored
		return nil, false, err
	}

	if len(page) == 0 {
		// Results ran out; the empty page itself is not yielded.
		s.state = stateExhausted
		return nil, false, nil
	}

	s.page = s.page.NextSaturating()
	s.pending = s.bind(s.page)
	return page, true, nil
}

// Page returns the index the stream will request next.
func (s *PageStream[T]) Page() request.PageIndex {
	return s.page
}

// Pages returns an iterator over the remaining pages. A fetch error is
// the final pair yielded.
func (s *PageStream[T]) Pages(ctx context.Context) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for {
			page, ok, err := s.Next(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(page, nil) {
				return
			}
		}
	}
}

// Flatten converts the page stream into a stream of individual items,
// preserving order within and across pages.
func (s *PageStream[T]) Flatten() *ItemStream[T] {
	return &ItemStream[T]{
		pages: s,
	}
}

// ItemStream produces the items of an underlying PageStream one at a
// time. Items keep the relative order they had within and across pages;
// an underlying fetch error is yielded once in place of an item, after
// which the stream is finished.
type ItemStream[T any] struct {
	pages *PageStream[T]

	// buffer holds the not-yet-yielded items of the current page in
	// reverse, so the next item is always popped from the end.
	buffer []T
}

// Next yields the next item. The result triple follows PageStream.Next:
// (item, true, nil) on success, (zero, false, err) for a fetch failure,
// (zero, false, nil) once finished.
func (s *ItemStream[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if len(s.buffer) == 0 {
		page, ok, err := s.pages.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}

		s.buffer = make([]T, len(page))
		for i, item := range page {
			s.buffer[len(page)-1-i] = item
		}
	}

	item := s.buffer[len(s.buffer)-1]
	s.buffer = s.buffer[:len(s.buffer)-1]
	return item, true, nil
}

// Items returns an iterator over the remaining items. A fetch error is
// the final pair yielded.
func (s *ItemStream[T]) Items(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for {
			item, ok, err := s.Next(ctx)
			if err != nil {
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
