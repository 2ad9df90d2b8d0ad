package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a published post stored in MongoDB.
// Posts are immutable once created and are never deleted in this scope.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"` // author
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// CreatePostRequest defines the request body for publishing a new post
type CreatePostRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
}

// LikePostRequest defines the request body for liking a post
type LikePostRequest struct {
	ActorID string `json:"actorId" validate:"required"`
}
