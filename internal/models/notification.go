package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType is the closed set of notification triggers.
type NotificationType string

const (
	NotificationTypePost    NotificationType = "post"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment" // reserved
	NotificationTypeOther   NotificationType = "other"   // reserved
)

// Valid reports whether t is a member of the closed type set.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypePost, NotificationTypeLike, NotificationTypeComment, NotificationTypeOther:
		return true
	}
	return false
}

// NotificationStatus is the read state of a notification.
// The only transition is unread -> read.
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// MaxBodyLength bounds the body excerpt stored on a notification.
const MaxBodyLength = 80

// EntityRef is a lightweight pointer from a notification back to the
// object that triggered it. It is a denormalized snapshot, not an
// enforced foreign key: the referenced object may be deleted later.
type EntityRef struct {
	Kind string `json:"kind" bson:"kind"`
	ID   string `json:"id" bson:"id"`
}

// Notification represents a per-user notification stored in MongoDB
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"` // recipient
	Type      NotificationType   `json:"type" bson:"type"`
	ActorID   string             `json:"actorId" bson:"actor_id"`
	Entity    *EntityRef         `json:"entity" bson:"entity"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	Status    NotificationStatus `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// NewNotification constructs an unread notification, enforcing the closed
// type set and the recipient/actor/title requirements at construction time
// rather than at storage write. Body is truncated to MaxBodyLength.
func NewNotification(userID, actorID string, typ NotificationType, entity *EntityRef, title, body string) (*Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("notification recipient is required")
	}
	if actorID == "" {
		return nil, fmt.Errorf("notification actor is required")
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid notification type %q", typ)
	}
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}
	return &Notification{
		UserID:    userID,
		Type:      typ,
		ActorID:   actorID,
		Entity:    entity,
		Title:     title,
		Body:      TruncateBody(body),
		Status:    NotificationStatusUnread,
		CreatedAt: time.Now(),
	}, nil
}

// TruncateBody bounds an excerpt to MaxBodyLength characters. Counting
// runes rather than bytes keeps multi-byte content intact and never
// splits a character at the boundary.
func TruncateBody(body string) string {
	runes := []rune(body)
	if len(runes) > MaxBodyLength {
		return string(runes[:MaxBodyLength])
	}
	return body
}
