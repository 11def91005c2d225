package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const topN = 5

type IndustryCount struct {
	Industry *string `json:"industry" gorm:"column:industry"`
	Count    int64   `json:"count" gorm:"column:total"`
}

type KeywordCount struct {
	Keyword string `json:"keyword" gorm:"column:keyword"`
	Count   int64  `json:"count" gorm:"column:total"`
}

type UserSummary struct {
	TotalIdeas    int64     `json:"total_ideas"`
	FavoriteIdeas int64     `json:"favorite_ideas"`
	UserID        uuid.UUID `json:"user_id"`
}

type PlatformSummary struct {
	TotalUsers        int64           `json:"total_users"`
	TotalIdeas        int64           `json:"total_ideas"`
	PopularIndustries []IndustryCount `json:"popular_industries"`
}

type Trends struct {
	PopularKeywords   []KeywordCount  `json:"popular_keywords"`
	PopularIndustries []IndustryCount `json:"popular_industries"`
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) UserSummary(ctx context.Context, userID uuid.UUID) (UserSummary, error) {
	out := UserSummary{UserID: userID}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Idea{}).
		Where("user_id = ?", userID).
		Count(&out.TotalIdeas).Error; err != nil {
		return UserSummary{}, err
	}
	if err := db.Model(&models.Idea{}).
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Count(&out.FavoriteIdeas).Error; err != nil {
		return UserSummary{}, err
	}
	return out, nil
}

// Platform aggregates over every user. The three reads are independent and
// run concurrently.
func (r *AnalyticsRepository) Platform(ctx context.Context) (PlatformSummary, error) {
	var out PlatformSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.User{}).Count(&out.TotalUsers).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Idea{}).Count(&out.TotalIdeas).Error
	})
	g.Go(func() error {
		rows, err := countByIndustry(r.db.WithContext(gctx).Model(&models.Idea{}), topN)
		out.PopularIndustries = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return PlatformSummary{}, err
	}
	return out, nil
}

// IndustryBreakdown counts the user's ideas per industry, NULL included.
func (r *AnalyticsRepository) IndustryBreakdown(ctx context.Context, userID uuid.UUID) ([]IndustryCount, error) {
	q := r.db.WithContext(ctx).Model(&models.Idea{}).Where("user_id = ?", userID)
	return countByIndustry(q, 0)
}

// Trends returns the user's most frequent search keywords and industries.
func (r *AnalyticsRepository) Trends(ctx context.Context, userID uuid.UUID) (Trends, error) {
	db := r.db.WithContext(ctx)

	keywords := make([]KeywordCount, 0)
	err := db.Model(&models.SearchHistory{}).
		Select("keywords AS keyword, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("keywords").
		Order("total DESC").
		Limit(topN).
		Scan(&keywords).Error
	if err != nil {
		return Trends{}, err
	}

	industries, err := countByIndustry(
		db.Model(&models.SearchHistory{}).Where("user_id = ?", userID),
		topN,
	)
	if err != nil {
		return Trends{}, err
	}

	if keywords == nil {
		keywords = []KeywordCount{}
	}
	return Trends{PopularKeywords: keywords, PopularIndustries: industries}, nil
}

// countByIndustry groups q by its industry column, largest group first.
// limit <= 0 returns every group.
func countByIndustry(q *gorm.DB, limit int) ([]IndustryCount, error) {
	rows := make([]IndustryCount, 0)
	q = q.Select("industry, COUNT(*) AS total").
		Group("industry").
		Order("total DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []IndustryCount{}
	}
	return rows, nil
}
