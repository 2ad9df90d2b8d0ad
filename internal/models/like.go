package models

import "time"

// LikeEvent records a like action against a post (PostgreSQL).
// A like is an event, not a counter: duplicate likes from the same actor
// are allowed and simply produce another row.
type LikeEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	PostID    string    `json:"postId" gorm:"index"` // MongoDB ObjectID as hex string
	ActorID   string    `json:"actorId" gorm:"index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
