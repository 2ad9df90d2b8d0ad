package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/insyd/notify-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PATCH("/notifications/:id/read", h.MarkAsRead)
	g.PATCH("/notifications/read-all", h.MarkAllAsRead)
}

// clampLimit resolves the effective page size: default 50, capped at 100
// regardless of what the client asked for.
func clampLimit(raw string) int64 {
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		return maxNotificationLimit
	}
	return limit
}

// GetNotifications returns a user's notifications, newest first, bounded
// by the clamped limit. Always the newest page only; no cursor support.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	limit := clampLimit(c.QueryParam("limit"))
	notifications, err := h.notificationRepository.ListByUser(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns the unread notification count for a user
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	count, err := h.notificationRepository.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks a single notification as read and returns the updated
// record. Idempotent: re-marking a read notification succeeds unchanged.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	updated, err := h.notificationRepository.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// MarkAllAsRead marks every unread notification of a user as read and
// returns how many records actually transitioned.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	modified, err := h.notificationRepository.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": modified})
}
