package db

import (
	"time"
)

var Columns = struct {
	Post struct {
		ID, Title, Content, Author, Category, Tags, ImageURL, CreatedAt, UpdatedAt string
	}
}{
	Post: struct {
		ID, Title, Content, Author, Category, Tags, ImageURL, CreatedAt, UpdatedAt string
	}{
		ID:        "postId",
		Title:     "title",
		Content:   "content",
		Author:    "author",
		Category:  "category",
		Tags:      "tags",
		ImageURL:  "imageUrl",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
}

var Tables = struct {
	Post struct {
		Name, Alias string
	}
}{
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID        string    `pg:"postId,pk"`
	Title     string    `pg:"title,use_zero"`
	Content   string    `pg:"content,use_zero"`
	Author    string    `pg:"author,use_zero"`
	Category  string    `pg:"category,use_zero"`
	Tags      []string  `pg:"tags,array"`
	ImageURL  string    `pg:"imageUrl,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
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
