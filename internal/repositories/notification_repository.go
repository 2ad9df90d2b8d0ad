package repositories

import (
	"context"
	"fmt"

	"github.com/insyd/notify-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	InsertMany(ctx context.Context, notifications []*models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// MongoNotificationRepository implements NotificationRepository for MongoDB
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// notificationSort orders newest first; _id descending breaks ties between
// notifications sharing an identical timestamp (one fan-out batch).
var notificationSort = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// Create inserts a single notification
func (r *MongoNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// InsertMany bulk-inserts the fan-out batch in a single round trip.
// An empty batch is a no-op, not an error.
func (r *MongoNotificationRepository) InsertMany(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	docs := make([]interface{}, len(notifications))
	for i, n := range notifications {
		n.ID = primitive.NewObjectID()
		docs[i] = n
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert notifications: %w", err)
	}
	return nil
}

// ListByUser retrieves up to limit notifications for a recipient, newest first
func (r *MongoNotificationRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(notificationSort).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for a recipient
func (r *MongoNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"status":  models.NotificationStatusUnread,
	})
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

// MarkRead sets a notification's status to read and returns the updated
// record. Marking an already-read notification again succeeds unchanged.
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{"status": models.NotificationStatusRead}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Notification
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return &updated, nil
}

// MarkAllRead transitions every unread notification of a recipient to read
// in one bulk update and returns the number of records actually modified.
func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	filter := bson.M{"user_id": userID, "status": models.NotificationStatusUnread}
	update := bson.M{"$set": bson.M{"status": models.NotificationStatusRead}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return res.ModifiedCount, nil
}
