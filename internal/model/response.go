package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Response struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	BriefingID      string    `json:"briefing_id" gorm:"type:uuid;not null;index"`
	Answers         AnswerMap `json:"answers" gorm:"type:jsonb;not null"` // keyed by Question.ID
	RespondentEmail *string   `json:"respondent_email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
