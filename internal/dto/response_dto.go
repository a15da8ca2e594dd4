package dto

import (
	"time"

	"github.com/jvictorino/briefly/internal/model"
)

// ResponseReceiptDTO acknowledges a stored response.
type ResponseReceiptDTO struct {
	ID         string    `json:"id"`
	BriefingID string    `json:"briefing_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnswerViewDTO is one answer joined to its question for the results view.
// Value renders as a JSON string for text answers and as an array of strings
// for multiple-choice answers.
type AnswerViewDTO struct {
	QuestionID   string            `json:"question_id"`
	QuestionText string            `json:"question_text"`
	QuestionType string            `json:"question_type"`
	Value        model.AnswerValue `json:"value"`
}

// ResponseDetailDTO is one respondent's full answer set, answers in question
// authoring order with unanswered questions omitted.
type ResponseDetailDTO struct {
	ID              string          `json:"id"`
	RespondentEmail *string         `json:"respondent_email,omitempty"`
	Answers         []AnswerViewDTO `json:"answers"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BriefingResultsDTO is the operator's read-only results view for one briefing.
type BriefingResultsDTO struct {
	Briefing      BriefingResponseDTO `json:"briefing"`
	ResponseCount int                 `json:"response_count"`
	Responses     []ResponseDetailDTO `json:"responses"`
}
