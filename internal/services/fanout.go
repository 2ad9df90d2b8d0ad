package services

import (
	"context"
	"fmt"

	"github.com/insyd/notify-server/internal/models"
	"github.com/insyd/notify-server/internal/repositories"
)

// FanoutEngine translates a domain event into zero or more notification
// creation requests. The current implementation is synchronous and inline
// with the triggering request; a queue-backed implementation can replace
// it behind the same interface without changing callers.
type FanoutEngine interface {
	OnPostCreated(ctx context.Context, post *models.Post) error
	OnPostLiked(ctx context.Context, post *models.Post, actorID string) error
}

type syncFanoutEngine struct {
	roster           []string
	notificationRepo repositories.NotificationRepository
}

// NewSyncFanoutEngine creates a FanoutEngine that writes notifications
// inline. The roster is the injected set of fan-out targets; there is no
// follower graph, so every known user except the author is notified.
func NewSyncFanoutEngine(roster []string, notifRepo repositories.NotificationRepository) FanoutEngine {
	return &syncFanoutEngine{
		roster:           roster,
		notificationRepo: notifRepo,
	}
}

// OnPostCreated notifies every roster member except the author.
// All notifications are persisted in a single bulk insert; an empty
// recipient set is a no-op.
func (f *syncFanoutEngine) OnPostCreated(ctx context.Context, post *models.Post) error {
	entity := &models.EntityRef{Kind: "post", ID: post.ID.Hex()}
	title := fmt.Sprintf("%s published a new post", post.UserID)

	notifications := make([]*models.Notification, 0, len(f.roster))
	for _, recipient := range f.roster {
		if recipient == post.UserID {
			continue
		}
		n, err := models.NewNotification(recipient, post.UserID, models.NotificationTypePost, entity, title, post.Content)
		if err != nil {
			return fmt.Errorf("build post notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return f.notificationRepo.InsertMany(ctx, notifications)
}

// OnPostLiked notifies the post author that actorID liked their post.
// A self-like is suppressed: no notification is created.
func (f *syncFanoutEngine) OnPostLiked(ctx context.Context, post *models.Post, actorID string) error {
	if actorID == post.UserID {
		return nil
	}

	entity := &models.EntityRef{Kind: "post", ID: post.ID.Hex()}
	title := fmt.Sprintf("%s liked your post", actorID)

	n, err := models.NewNotification(post.UserID, actorID, models.NotificationTypeLike, entity, title, post.Content)
	if err != nil {
		return fmt.Errorf("build like notification: %w", err)
	}

	// Single-row insert: no batching on the like path.
	return f.notificationRepo.Create(ctx, n)
}
