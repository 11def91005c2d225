package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"gorm.io/gorm"
)

// IdeaRepository scopes every read and write to the owning user. An idea that
// exists but belongs to someone else is reported as ErrNotFound.
type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

func (r *IdeaRepository) Create(ctx context.Context, userID uuid.UUID, in models.IdeaCreate) (*models.Idea, error) {
	idea := &models.Idea{
		UserID:          userID,
		Title:           in.Title,
		Description:     in.Description,
		BusinessModel:   in.BusinessModel,
		TargetAudience:  in.TargetAudience,
		SwotAnalysis:    in.SwotAnalysis,
		MarketPotential: in.MarketPotential,
		Industry:        in.Industry,
		Keywords:        in.Keywords,
	}
	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

// ListByUser returns a page of the user's ideas, newest first.
func (r *IdeaRepository) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]models.Idea, error) {
	ideas := make([]models.Idea, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&ideas).Error
	return ideas, err
}

func (r *IdeaRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Idea, error) {
	ideas := make([]models.Idea, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("created_at DESC").
		Find(&ideas).Error
	return ideas, err
}

func (r *IdeaRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&idea).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &idea, nil
}

// Update applies the set fields of u. An empty update returns the idea as is.
func (r *IdeaRepository) Update(ctx context.Context, id, userID uuid.UUID, u models.IdeaUpdate) (*models.Idea, error) {
	idea, err := r.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if u.Empty() {
		return idea, nil
	}

	err = r.db.WithContext(ctx).
		Model(idea).
		Where("user_id = ?", userID).
		Updates(u.Columns()).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id, userID)
}

func (r *IdeaRepository) ToggleFavorite(ctx context.Context, id, userID uuid.UUID) (*models.Idea, error) {
	idea, err := r.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(idea).
		Where("user_id = ?", userID).
		Update("is_favorite", !idea.IsFavorite).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id, userID)
}

func (r *IdeaRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Idea{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
