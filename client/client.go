// Package client provides programmatic access to the blog content API: list,
// search and CRUD calls, a debounced search helper, and a TTL-cached
// related-posts lookup mirroring what the site frontend does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CategoryAll is the sentinel category meaning "no category constraint".
// It is never forwarded to the server as a literal filter.
const CategoryAll = "All"

var (
	// ErrNotFound signals that the addressed post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrUnauthorized signals a missing or rejected admin credential. The
	// caller should prompt for new credentials rather than retry.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response other than not-found or unauthorized.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePost struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// UpdatePost carries a partial update: nil fields are left untouched.
type UpdatePost struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Author   *string   `json:"author,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	ImageURL *string   `json:"imageUrl,omitempty"`
}

type ListOptions struct {
	Search   string
	Category string
}

type Client struct {
	baseURL  string
	httpc    *http.Client
	username string
	password string
	cache    *postCache
	cacheTTL time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithBasicAuth sets the admin credential used on mutating calls.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithCacheTTL overrides the related-posts cache lifetime.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: 10 * time.Second},
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = newPostCache(c.cacheTTL, func(ctx context.Context) ([]Post, error) {
		return c.Posts(ctx, ListOptions{})
	})
	return c
}

// Posts lists posts, optionally narrowed by a search term and a category.
// An empty category or the CategoryAll sentinel is not forwarded.
func (c *Client) Posts(ctx context.Context, opts ListOptions) ([]Post, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Category != "" && opts.Category != CategoryAll {
		query.Set("category", opts.Category)
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/api/blog/posts", query, nil, &posts, false); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) PostByID(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/blog/posts/"+url.PathEscape(id), nil, nil, &post, false); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/blog/posts/categories", nil, nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreatePost(ctx context.Context, in CreatePost) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/blog/posts", nil, in, &post, true); err != nil {
		return nil, err
	}
	c.cache.Invalidate()
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, in UpdatePost) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/api/blog/posts/"+url.PathEscape(id), nil, in, &post, true); err != nil {
		return nil, err
	}
	c.cache.Invalidate()
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/blog/posts/"+url.PathEscape(id), nil, nil, nil, true); err != nil {
		return err
	}
	c.cache.Invalidate()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}

	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	if envelope.Message == "" {
		envelope.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
}

// FilterPosts narrows posts to those whose title or content contains search
// as a case-insensitive substring. It intentionally matches the server-side
// search semantics so it can be applied over already-fetched results.
func FilterPosts(posts []Post, search string) []Post {
	if search == "" {
		return posts
	}
	needle := strings.ToLower(search)

	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
