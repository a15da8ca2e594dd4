package dto

import "time"

// QuestionCreateDTO is used within BriefingCreateDTO for briefing authoring.
// Question order follows array position; order_index is assigned server-side.
type QuestionCreateDTO struct {
	Text     string   `json:"text" binding:"required,min=5"`
	Type     string   `json:"type" binding:"required,oneof=SHORT_TEXT LONG_TEXT MULTIPLE_CHOICE EMAIL NUMBER"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// BriefingCreateDTO is the operator's request to create a briefing with all
// its questions. At least one question is required.
type BriefingCreateDTO struct {
	Title       string              `json:"title" binding:"required,min=3"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuestionResponseDTO is used for displaying question details.
type QuestionResponseDTO struct {
	ID         string   `json:"id"`
	BriefingID string   `json:"briefing_id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	Required   bool     `json:"required"`
	OrderIndex int      `json:"order_index"`
}

// BriefingResponseDTO is used for displaying full briefing details, questions
// in authoring order.
type BriefingResponseDTO struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// BriefingSummaryDTO is used for the operator's dashboard listing.
type BriefingSummaryDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	ResponseCount int       `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
}
