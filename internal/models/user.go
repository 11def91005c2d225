package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Username       string          `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email          *string         `json:"email" gorm:"size:255;uniqueIndex"` // optional, NULLs do not collide
	HashedPassword string          `json:"-" gorm:"size:255"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	Ideas          []Idea          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	SearchHistory  []SearchHistory `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
