package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResult struct {
	posts []Post
	err   error
}

func collectResults() (func(posts []Post, err error), chan searchResult) {
	results := make(chan searchResult, 16)
	return func(posts []Post, err error) {
		results <- searchResult{posts: posts, err: err}
	}, results
}

func waitResult(t *testing.T, results chan searchResult) searchResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search result")
		return searchResult{}
	}
}

func TestSearcher_DebouncesRapidQueries(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)
	api.addPost("Weekend Acca", "Three picks", "Tips")
	api.addPost("Asian Handicaps", "Quarter lines", "Guides")

	handle, results := collectResults()
	s := NewSearcher(c, handle, WithDebounce(30*time.Millisecond))
	defer s.Stop()

	// Simulates keystrokes arriving faster than the debounce window.
	for _, q := range []string{"a", "ac", "acc", "acca"} {
		s.Query(ctx, q, "")
	}

	r := waitResult(t, results)
	require.NoError(t, r.err)
	require.Len(t, r.posts, 1)
	assert.Equal(t, "Weekend Acca", r.posts[0].Title)

	assert.Equal(t, int64(1), api.listCalls.Load(), "only the final keystroke should reach the API")
	select {
	case <-results:
		t.Fatal("expected a single callback")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSearcher_SequentialQueries(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)
	api.addPost("Weekend Acca", "Three picks", "Tips")
	api.addPost("Asian Handicaps", "Quarter lines", "Guides")

	handle, results := collectResults()
	s := NewSearcher(c, handle, WithDebounce(10*time.Millisecond))
	defer s.Stop()

	s.Query(ctx, "acca", "")
	first := waitResult(t, results)
	require.NoError(t, first.err)
	require.Len(t, first.posts, 1)

	s.Query(ctx, "", "Guides")
	second := waitResult(t, results)
	require.NoError(t, second.err)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "Asian Handicaps", second.posts[0].Title)

	assert.Equal(t, int64(2), api.listCalls.Load())
}

func TestSearcher_StopCancelsPendingQuery(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)
	api.addPost("Weekend Acca", "Three picks", "Tips")

	handle, results := collectResults()
	s := NewSearcher(c, handle, WithDebounce(50*time.Millisecond))

	s.Query(ctx, "acca", "")
	s.Stop()

	select {
	case <-results:
		t.Fatal("stopped searcher should not deliver results")
	case <-time.After(150 * time.Millisecond):
	}
	assert.Equal(t, int64(0), api.listCalls.Load())
}

func TestSearcher_FiltersServerResponseLocally(t *testing.T) {
	// A server that ignores the search parameter entirely.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Post{
			{ID: "1", Title: "Weekend Acca", Content: "Three picks"},
			{ID: "2", Title: "Tennis Preview", Content: "Clay season"},
		})
	}))
	defer server.Close()

	handle, results := collectResults()
	s := NewSearcher(New(server.URL), handle, WithDebounce(5*time.Millisecond))
	defer s.Stop()

	s.Query(context.Background(), "acca", "")

	r := waitResult(t, results)
	require.NoError(t, r.err)
	require.Len(t, r.posts, 1)
	assert.Equal(t, "1", r.posts[0].ID)
}

func TestSearcher_PropagatesFetchErrors(t *testing.T) {
	c, api := newTestClient(t)
	api.failList.Store(true)

	handle, results := collectResults()
	s := NewSearcher(c, handle, WithDebounce(5*time.Millisecond))
	defer s.Stop()

	s.Query(context.Background(), "anything", "")

	r := waitResult(t, results)
	require.Error(t, r.err)
	var apiErr *APIError
	assert.ErrorAs(t, r.err, &apiErr)
	assert.Nil(t, r.posts)
}
