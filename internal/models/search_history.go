package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchHistory is an append-only record of one generation request.
type SearchHistory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Keywords  string    `json:"keywords" gorm:"size:500"`
	Industry  string    `json:"industry" gorm:"size:100"`
	NumIdeas  int       `json:"num_ideas"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}

func (s *SearchHistory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
