package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Briefing struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"not null;uniqueIndex"` // public addressing key, generated once at creation
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:BriefingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Responses   []Response `json:"responses,omitempty" gorm:"foreignKey:BriefingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (b *Briefing) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
