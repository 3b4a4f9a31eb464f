package blog

import (
	"time"

	"github.com/tipsdaniel/blog-api/internal/db"
)

// CategoryAll is the sentinel category meaning "no category constraint".
// An empty string is treated the same way.
const CategoryAll = "All"

// DefaultAuthor is attributed to posts created without an explicit author.
const DefaultAuthor = "Admin"

type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	Category  string
	Tags      []string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostInput carries the fields accepted on create. Tags are expected to be
// normalized at the API boundary already.
type PostInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	Tags     []string
	ImageURL string
}

// PostPatch carries a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title    *string
	Content  *string
	Author   *string
	Category *string
	Tags     *[]string
	ImageURL *string
}

func NewPost(p *db.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		Category:  p.Category,
		Tags:      p.Tags,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}
