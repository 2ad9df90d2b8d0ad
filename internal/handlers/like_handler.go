package handlers

import (
	"errors"
	"net/http"

	"github.com/insyd/notify-server/internal/models"
	"github.com/insyd/notify-server/internal/repositories"
	"github.com/insyd/notify-server/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeEventRepository
	postRepository repositories.PostRepository
	fanout         services.FanoutEngine
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeEventRepository, postRepo repositories.PostRepository, fanout services.FanoutEngine) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		fanout:         fanout,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.GET("/posts/:id/likes/count", h.GetLikeCountForPost)
}

// LikePost records a like event and notifies the post author. Liking a
// post is an event, not a counter on the post: liking twice records two
// events. A self-like is accepted but produces no notification.
func (h *LikeHandler) LikePost(c echo.Context) error {
	var req models.LikePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "actorId required")
	}

	ctx := c.Request().Context()
	post, err := h.postRepository.GetPostByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	event := &models.LikeEvent{
		PostID:  post.ID.Hex(),
		ActorID: req.ActorID,
	}
	if err := h.likeRepository.CreateLikeEvent(event); err != nil {
		return err
	}

	if err := h.fanout.OnPostLiked(ctx, post, req.ActorID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// GetLikeCountForPost returns the number of like events for a post
func (h *LikeHandler) GetLikeCountForPost(c echo.Context) error {
	postID := c.Param("id")

	_, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	count, err := h.likeRepository.GetLikeCountByPostID(postID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"postId": postID, "likesCount": count})
}
