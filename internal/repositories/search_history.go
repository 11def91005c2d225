package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"gorm.io/gorm"
)

type SearchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

func (r *SearchHistoryRepository) Create(ctx context.Context, userID uuid.UUID, keywords, industry string, numIdeas int) (*models.SearchHistory, error) {
	entry := &models.SearchHistory{
		UserID:   userID,
		Keywords: keywords,
		Industry: industry,
		NumIdeas: numIdeas,
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByUser returns the most recent entries first. limit <= 0 means no limit.
func (r *SearchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.SearchHistory, error) {
	entries := make([]models.SearchHistory, 0)
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}
