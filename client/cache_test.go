package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelatedPosts_Scoring(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)

	target := api.addPost("Asian Handicaps", "Quarter lines", "Guides", "handicap", "asia")
	sameCategoryAndTag := api.addPost("Reading The Line", "More lines", "Guides", "handicap")
	tagOnly := api.addPost("Graded Results", "Last week", "Results", "handicap")
	categoryOnly := api.addPost("Bankroll Basics", "Units", "Guides", "staking")
	unrelated := api.addPost("Tennis Preview", "Clay season", "Previews", "tennis")

	related, err := c.RelatedPosts(ctx, target.ID, 10)
	require.NoError(t, err)
	require.Len(t, related, 3)

	// Category match outweighs a single shared tag.
	assert.Equal(t, sameCategoryAndTag.ID, related[0].ID)
	assert.Equal(t, categoryOnly.ID, related[1].ID)
	assert.Equal(t, tagOnly.ID, related[2].ID)
	for _, p := range related {
		assert.NotEqual(t, target.ID, p.ID)
		assert.NotEqual(t, unrelated.ID, p.ID)
	}
}

func TestRelatedPosts_Limit(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)

	target := api.addPost("Origin", "x", "Tips")
	api.addPost("A", "x", "Tips")
	api.addPost("B", "x", "Tips")
	api.addPost("C", "x", "Tips")

	related, err := c.RelatedPosts(ctx, target.ID, 2)
	require.NoError(t, err)
	assert.Len(t, related, 2)
}

func TestRelatedPosts_UnknownID(t *testing.T) {
	c, api := newTestClient(t)
	api.addPost("A", "x", "Tips")

	_, err := c.RelatedPosts(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRelatedPosts_CacheReuse(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)

	target := api.addPost("Origin", "x", "Tips")
	api.addPost("A", "x", "Tips")

	_, err := c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)
	_, err = c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(1), api.listCalls.Load(), "second lookup should be served from cache")
}

func TestRelatedPosts_CacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t, WithCacheTTL(20*time.Millisecond))

	target := api.addPost("Origin", "x", "Tips")
	api.addPost("A", "x", "Tips")

	_, err := c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), api.listCalls.Load(), "expired cache should trigger a refetch")
}

func TestRelatedPosts_MutationInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)

	target := api.addPost("Origin", "x", "Tips")

	related, err := c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, related)

	_, err = c.CreatePost(ctx, CreatePost{Title: "Fresh", Content: "x", Category: "Tips"})
	require.NoError(t, err)

	related, err = c.RelatedPosts(ctx, target.ID, 5)
	require.NoError(t, err)
	assert.Len(t, related, 1, "new post should be visible after invalidation")
	assert.Equal(t, int64(2), api.listCalls.Load())
}
