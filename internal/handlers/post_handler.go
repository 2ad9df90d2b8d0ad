package handlers

import (
	"errors"
	"net/http"

	"github.com/insyd/notify-server/internal/models"
	"github.com/insyd/notify-server/internal/repositories"
	"github.com/insyd/notify-server/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	fanout         services.FanoutEngine
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, fanout services.FanoutEngine) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		fanout:         fanout,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost publishes a new post and fans out notifications to the roster.
// The post is persisted before fan-out begins, and the response is sent
// only after fan-out completes. If fan-out fails after the post insert
// succeeded, the post remains and the failure surfaces as a 500.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "userId and content are required")
	}

	post := &models.Post{
		UserID:  req.UserID,
		Content: req.Content,
	}

	ctx := c.Request().Context()
	if err := h.postRepository.CreatePost(ctx, post); err != nil {
		return err
	}
	if err := h.fanout.OnPostCreated(ctx, post); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPosts returns all posts newest first, optionally filtered by author
// via the userId query parameter.
func (h *PostHandler) GetPosts(c echo.Context) error {
	ctx := c.Request().Context()

	var posts []models.Post
	var err error
	if userID := c.QueryParam("userId"); userID != "" {
		posts, err = h.postRepository.GetPostsByUserID(ctx, userID)
	} else {
		posts, err = h.postRepository.GetAllPosts(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}
