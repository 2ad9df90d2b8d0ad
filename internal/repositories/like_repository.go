package repositories

import (
	"github.com/google/uuid"
	"github.com/insyd/notify-server/internal/models"
	"gorm.io/gorm"
)

// LikeEventRepository defines the interface for like event operations
type LikeEventRepository interface {
	CreateLikeEvent(event *models.LikeEvent) error
	GetLikeEventsByPostID(postID string) ([]models.LikeEvent, error)
	GetLikeCountByPostID(postID string) (int64, error)
}

// PostgresLikeEventRepository implements LikeEventRepository for PostgreSQL
type PostgresLikeEventRepository struct {
	db *gorm.DB
}

// NewPostgresLikeEventRepository creates a new PostgresLikeEventRepository
func NewPostgresLikeEventRepository(db *gorm.DB) *PostgresLikeEventRepository {
	return &PostgresLikeEventRepository{db: db}
}

// CreateLikeEvent appends a like event row. No uniqueness is enforced:
// concurrent duplicate likes each produce their own row.
func (r *PostgresLikeEventRepository) CreateLikeEvent(event *models.LikeEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return r.db.Create(event).Error
}

// GetLikeEventsByPostID retrieves all like events for a specific post
func (r *PostgresLikeEventRepository) GetLikeEventsByPostID(postID string) ([]models.LikeEvent, error) {
	var events []models.LikeEvent
	if err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetLikeCountByPostID retrieves the number of like events for a specific post
func (r *PostgresLikeEventRepository) GetLikeCountByPostID(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.LikeEvent{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
