package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/tipsdaniel/blog-api/internal/db"
)

// Store is the persistence contract the manager depends on,
// implemented by db.Repository.
type Store interface {
	Posts(ctx context.Context, search, category *string) ([]db.Post, error)
	PostByID(ctx context.Context, id string) (*db.Post, error)
	Categories(ctx context.Context) ([]string, error)
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, id string, patch db.PostPatch) (*db.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)
}

type Manager struct {
	db Store
}

func NewManager(store Store) *Manager {
	return &Manager{
		db: store,
	}
}

// Posts retrieves posts with an optional case-insensitive substring search
// over title and content and an optional exact category match, sorted by
// createdAt DESC. An empty search is ignored; an empty category or the
// CategoryAll sentinel means no category constraint.
func (m *Manager) Posts(ctx context.Context, search, category string) ([]Post, error) {
	var searchPtr, categoryPtr *string

	if search != "" {
		searchPtr = &search
	}
	if category != "" && category != CategoryAll {
		categoryPtr = &category
	}

	dbPosts, err := m.db.Posts(ctx, searchPtr, categoryPtr)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}

func (m *Manager) PostByID(ctx context.Context, id string) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	post := NewPost(dbPost)
	return &post, nil
}

func (m *Manager) Categories(ctx context.Context) ([]string, error) {
	categories, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return categories, nil
}

// CreatePost validates required fields, applies the author default and
// persists a new post.
func (m *Manager) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}

	author := in.Author
	if author == "" {
		author = DefaultAuthor
	}

	dbPost := &db.Post{
		Title:    in.Title,
		Content:  in.Content,
		Author:   author,
		Category: in.Category,
		Tags:     in.Tags,
		ImageURL: in.ImageURL,
	}

	if err := m.db.CreatePost(ctx, dbPost); err != nil {
		return nil, fmt.Errorf("db create post: %w", err)
	}

	post := NewPost(dbPost)
	return &post, nil
}

// UpdatePost merges the provided fields into the stored post and refreshes
// updatedAt. Returns ErrNotFound for an unknown id.
func (m *Manager) UpdatePost(ctx context.Context, id string, patch PostPatch) (*Post, error) {
	dbPost, err := m.db.UpdatePost(ctx, id, db.PostPatch{
		Title:    patch.Title,
		Content:  patch.Content,
		Author:   patch.Author,
		Category: patch.Category,
		Tags:     patch.Tags,
		ImageURL: patch.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}
	if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(dbPost)
	return &post, nil
}

// DeletePost removes the post. Returns ErrNotFound for an unknown id.
func (m *Manager) DeletePost(ctx context.Context, id string) error {
	deleted, err := m.db.DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
