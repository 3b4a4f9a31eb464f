package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts retrieves posts with optional case-insensitive substring search over
// title and content and optional exact category match.
// Results are sorted by createdAt DESC.
func (r *Repository) Posts(ctx context.Context, search, category *string) ([]Post, error) {
	var posts []Post
	query := r.db.ModelContext(ctx, &posts)

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern), nil
		})
	}

	if category != nil {
		query = query.Where(`"t"."category" = ?`, *category)
	}

	err := query.
		OrderExpr(`"t"."createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostByID(ctx context.Context, id string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."postId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Categories returns the distinct non-empty category values currently in use.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.ModelContext(ctx, (*Post)(nil)).
		ColumnExpr(`DISTINCT "t"."category"`).
		Where(`"t"."category" <> ''`).
		OrderExpr(`"t"."category" ASC`).
		Select(&categories)

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CreatePost assigns the id and both timestamps, then persists the post.
func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// UpdatePost merges non-nil patch fields into the stored post and refreshes
// updatedAt. Returns nil when the post does not exist. Concurrent updates
// race last-write-wins.
func (r *Repository) UpdatePost(ctx context.Context, id string, patch PostPatch) (*Post, error) {
	post, err := r.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Author != nil {
		post.Author = *patch.Author
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.ImageURL != nil {
		post.ImageURL = *patch.ImageURL
	}
	post.UpdatedAt = time.Now()

	if _, err := r.db.ModelContext(ctx, post).WherePK().Update(); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost removes a post, reporting whether a row was deleted.
func (r *Repository) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."postId" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
