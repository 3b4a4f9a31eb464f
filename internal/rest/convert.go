package rest

import "github.com/tipsdaniel/blog-api/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blog.Post) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		Category:  p.Category,
		Tags:      tags,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPosts(list []blog.Post) []Post {
	return Map(list, NewPost)
}
