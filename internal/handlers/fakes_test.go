package handlers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/insyd/notify-server/internal/models"
	"github.com/insyd/notify-server/internal/repositories"
	"github.com/insyd/notify-server/validators"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts []models.Post
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID.Hex() == id {
			post := p
			return &post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePostRepo) GetPostsByUserID(_ context.Context, userID string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sortPostsNewestFirst(out)
	return out, nil
}

func (f *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	out := append([]models.Post{}, f.posts...)
	sortPostsNewestFirst(out)
	return out, nil
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.Hex() > posts[j].ID.Hex()
	})
}

// fakeNotificationRepo is an in-memory NotificationRepository mirroring
// the MongoDB ordering: created_at descending, _id descending on ties.
// failWrites simulates a storage failure on the insert paths.
type fakeNotificationRepo struct {
	notifications []models.Notification
	failWrites    bool
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	if f.failWrites {
		return errors.New("notifications collection unavailable")
	}
	n.ID = primitive.NewObjectID()
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationRepo) InsertMany(_ context.Context, batch []*models.Notification) error {
	if f.failWrites {
		return errors.New("notifications collection unavailable")
	}
	for _, n := range batch {
		n.ID = primitive.NewObjectID()
		f.notifications = append(f.notifications, *n)
	}
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit int64) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID == userID && n.Status == models.NotificationStatusUnread {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) (*models.Notification, error) {
	for i := range f.notifications {
		if f.notifications[i].ID.Hex() == id {
			f.notifications[i].Status = models.NotificationStatusRead
			n := f.notifications[i]
			return &n, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var modified int64
	for i := range f.notifications {
		if f.notifications[i].UserID == userID && f.notifications[i].Status == models.NotificationStatusUnread {
			f.notifications[i].Status = models.NotificationStatusRead
			modified++
		}
	}
	return modified, nil
}

// seed adds a stored notification and returns its id.
func (f *fakeNotificationRepo) seed(userID string, status models.NotificationStatus, createdAt time.Time) string {
	n := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Type:      models.NotificationTypePost,
		ActorID:   "actor",
		Title:     "title",
		Status:    status,
		CreatedAt: createdAt,
	}
	f.notifications = append(f.notifications, n)
	return n.ID.Hex()
}

// fakeLikeEventRepo is an in-memory LikeEventRepository.
type fakeLikeEventRepo struct {
	events []models.LikeEvent
}

func (f *fakeLikeEventRepo) CreateLikeEvent(event *models.LikeEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeLikeEventRepo) GetLikeEventsByPostID(postID string) ([]models.LikeEvent, error) {
	out := []models.LikeEvent{}
	for _, e := range f.events {
		if e.PostID == postID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLikeEventRepo) GetLikeCountByPostID(postID string) (int64, error) {
	events, _ := f.GetLikeEventsByPostID(postID)
	return int64(len(events)), nil
}
