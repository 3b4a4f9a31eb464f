package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipsdaniel/blog-api/internal/blog"
)

// Config holds the handler-level settings: the shared admin credential for
// the mutating routes and the origins allowed to call the API.
type Config struct {
	AdminUsername  string
	AdminPassword  string
	AllowedOrigins []string
}

type PostHandler struct {
	uc  *blog.Manager
	cfg Config
	log *slog.Logger
}

func NewPostHandler(uc *blog.Manager, cfg Config, log *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		cfg: cfg,
		log: log,
	}
}

func (h *PostHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"message": message})
}

// Posts handles GET /api/blog/posts
// @Summary List posts
// @Description Retrieves posts with optional case-insensitive substring search over title and content and optional exact category match, sorted by createdAt DESC
// @Tags posts
// @Produce json
// @Param search query string false "Substring to match against title or content"
// @Param category query string false "Exact category filter; empty or 'All' means no filter"
// @Success 200 {array} rest.Post
// @Failure 500 {object} map[string]string
// @Router /api/blog/posts [get]
func (h *PostHandler) Posts(c echo.Context) error {
	search := c.QueryParam("search")
	category := c.QueryParam("category")

	posts, err := h.uc.Posts(c.Request().Context(), search, category)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "error fetching posts")
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// Categories handles GET /api/blog/posts/categories
// @Summary List categories
// @Description Retrieves the distinct non-empty category values currently in use
// @Tags posts
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /api/blog/posts/categories [get]
func (h *PostHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "error fetching categories")
	}

	if categories == nil {
		categories = []string{}
	}
	return c.JSON(http.StatusOK, categories)
}

// PostByID handles GET /api/blog/posts/:id
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/blog/posts/{id} [get]
func (h *PostHandler) PostByID(c echo.Context) error {
	post, err := h.uc.PostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "error fetching post")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /api/blog/posts
// @Summary Create a post
// @Description Creates a post. Title and content are required; author defaults to Admin; tags accept a comma-separated string or an array
// @Tags posts
// @Accept json
// @Produce json
// @Param post body rest.CreatePostRequest true "Post fields"
// @Success 201 {object} rest.Post
// @Failure 400,401,500 {object} map[string]string
// @Router /api/blog/posts [post]
// @Security BasicAuth
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), blog.PostInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if ve, ok := blog.AsValidationError(err); ok {
			return h.handleError(c, err, http.StatusBadRequest, ve.Error())
		}
		return h.handleError(c, err, http.StatusInternalServerError, "error creating post")
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT /api/blog/posts/:id
// @Summary Update a post
// @Description Merges the provided fields into the post and refreshes updatedAt
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body rest.UpdatePostRequest true "Fields to update"
// @Success 200 {object} rest.Post
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/blog/posts/{id} [put]
// @Security BasicAuth
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	patch := blog.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}
	if req.Tags != nil {
		tags := []string(*req.Tags)
		patch.Tags = &tags
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "post not found"})
		}
		return h.handleError(c, err, http.StatusInternalServerError, "error updating post")
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// DeletePost handles DELETE /api/blog/posts/:id
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401,404,500 {object} map[string]string
// @Router /api/blog/posts/{id} [delete]
// @Security BasicAuth
func (h *PostHandler) DeletePost(c echo.Context) error {
	err := h.uc.DeletePost(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "post not found"})
		}
		return h.handleError(c, err, http.StatusInternalServerError, "error deleting post")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}

// Health handles GET /api/health
func (h *PostHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
