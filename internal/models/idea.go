package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Idea struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     *string   `json:"description" gorm:"type:text"`
	BusinessModel   *string   `json:"business_model" gorm:"type:text"`
	TargetAudience  *string   `json:"target_audience" gorm:"type:text"`
	SwotAnalysis    *string   `json:"swot_analysis" gorm:"type:text"`
	MarketPotential *string   `json:"market_potential" gorm:"type:text"`
	Industry        *string   `json:"industry" gorm:"size:100;index"`
	Keywords        *string   `json:"keywords" gorm:"size:500"`
	IsFavorite      bool      `json:"is_favorite" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
