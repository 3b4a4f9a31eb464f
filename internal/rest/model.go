package rest

import "time"

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

type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Author   string  `json:"author"`
	Category string  `json:"category"`
	Tags     TagList `json:"tags"`
	ImageURL string  `json:"imageUrl"`
}

// UpdatePostRequest carries a partial update: absent fields stay untouched.
type UpdatePostRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Author   *string  `json:"author"`
	Category *string  `json:"category"`
	Tags     *TagList `json:"tags"`
	ImageURL *string  `json:"imageUrl"`
}
