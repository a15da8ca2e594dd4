package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionType is the closed set of input kinds a briefing question can take.
type QuestionType string

const (
	ShortText      QuestionType = "SHORT_TEXT"
	LongText       QuestionType = "LONG_TEXT"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	Email          QuestionType = "EMAIL"
	Number         QuestionType = "NUMBER"
)

// Valid reports whether t is one of the five known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case ShortText, LongText, MultipleChoice, Email, Number:
		return true
	}
	return false
}

type Question struct {
	ID         string       `json:"id" gorm:"type:uuid;primaryKey"`
	BriefingID string       `json:"briefing_id" gorm:"type:uuid;not null;index"`
	Text       string       `json:"text" gorm:"type:text;not null"`
	Type       QuestionType `json:"type" gorm:"not null"`
	Options    StringList   `json:"options,omitempty" gorm:"type:jsonb"` // meaningful only for MULTIPLE_CHOICE
	Required   bool         `json:"required" gorm:"not null"`
	OrderIndex int          `json:"order_index" gorm:"not null"` // 0-based, gapless within a briefing
	CreatedAt  time.Time    `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
