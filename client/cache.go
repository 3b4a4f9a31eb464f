package client

import (
	"context"
	"sort"
	"sync"
	"time"
)

// DefaultCacheTTL bounds how stale the cached post collection may get before
// a related-posts lookup refetches it.
const DefaultCacheTTL = 5 * time.Minute

// postCache holds the full post collection with a TTL so related-posts
// suggestions do not cost a round trip per page view. It is refreshed
// transparently on expiry and invalidated on any mutation through the client.
type postCache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	fetch   func(ctx context.Context) ([]Post, error)
}

func newPostCache(ttl time.Duration, fetch func(ctx context.Context) ([]Post, error)) *postCache {
	return &postCache{ttl: ttl, fetch: fetch}
}

func (c *postCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *postCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *postCache) ensureLoaded(ctx context.Context) ([]Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}

	posts, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return c.posts, nil
}

// RelatedPosts suggests up to limit posts related to the given post: sharing
// its category scores highest, each shared tag adds to the score, ties break
// on recency. Only related posts are suggested; the result may be shorter
// than limit. Returns ErrNotFound when the id is absent from the collection.
func (c *Client) RelatedPosts(ctx context.Context, id string, limit int) ([]Post, error) {
	posts, err := c.cache.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	var target *Post
	for i := range posts {
		if posts[i].ID == id {
			target = &posts[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}

	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, t := range target.Tags {
		targetTags[t] = struct{}{}
	}

	type scored struct {
		post  Post
		score int
	}
	var candidates []scored
	for _, p := range posts {
		if p.ID == id {
			continue
		}
		score := 0
		if target.Category != "" && p.Category == target.Category {
			score += 2
		}
		for _, t := range p.Tags {
			if _, ok := targetTags[t]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{post: p, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].post.CreatedAt.After(candidates[j].post.CreatedAt)
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	related := make([]Post, len(candidates))
	for i, s := range candidates {
		related[i] = s.post
	}
	return related, nil
}
