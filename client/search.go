package client

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied before a search-triggered
// request fires, so rapid retyping does not issue one request per keystroke.
const DefaultDebounce = 500 * time.Millisecond

// Searcher debounces free-text search against the listing endpoint and
// re-applies the substring filter client-side over the fetched results.
// Overlapping requests are not cancelled: responses may arrive out of order
// under rapid retyping and the last response received wins.
type Searcher struct {
	client *Client
	delay  time.Duration
	handle func(posts []Post, err error)

	mu    sync.Mutex
	timer *time.Timer
}

type SearcherOption func(*Searcher)

// WithDebounce overrides the quiet period.
func WithDebounce(delay time.Duration) SearcherOption {
	return func(s *Searcher) {
		s.delay = delay
	}
}

// NewSearcher wires a debounced search to the given result callback.
// The callback is invoked from a background goroutine.
func NewSearcher(c *Client, handle func(posts []Post, err error), opts ...SearcherOption) *Searcher {
	s := &Searcher{
		client: c,
		delay:  DefaultDebounce,
		handle: handle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query schedules a search for the given term and category. Calls arriving
// within the quiet period replace the pending one; only the last survives.
func (s *Searcher) Query(ctx context.Context, search, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, search, category)
	})
}

// Stop cancels any pending search.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) run(ctx context.Context, search, category string) {
	posts, err := s.client.Posts(ctx, ListOptions{Search: search, Category: category})
	if err != nil {
		s.handle(nil, err)
		return
	}
	s.handle(FilterPosts(posts, search), nil)
}
