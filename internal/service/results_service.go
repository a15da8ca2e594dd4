package service

import (
	"github.com/jinzhu/copier"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/internal/repository"
	"github.com/jvictorino/briefly/pkg/fault"
	"github.com/rs/zerolog/log"
)

// ResultsService assembles the operator's read-only results view: a briefing,
// its raw response count, and every response's answers joined to the
// questions in authoring order.
type ResultsService interface {
	GetResults(slug string) (*dto.BriefingResultsDTO, error)
}

type resultsService struct {
	briefingRepo repository.BriefingRepository
	responseRepo repository.ResponseRepository
}

func NewResultsService(briefingRepo repository.BriefingRepository, responseRepo repository.ResponseRepository) ResultsService {
	return &resultsService{briefingRepo: briefingRepo, responseRepo: responseRepo}
}

func (s *resultsService) GetResults(slug string) (*dto.BriefingResultsDTO, error) {
	briefing, err := s.briefingRepo.FindBySlug(slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("GetResults: failed to fetch briefing")
		return nil, fault.NewInternalError("error fetching briefing", err)
	}
	if briefing == nil {
		return nil, fault.ErrNotFound
	}

	responses, err := s.responseRepo.FindByBriefingID(briefing.ID)
	if err != nil {
		log.Error().Err(err).Str("briefingID", briefing.ID).Msg("GetResults: failed to fetch responses")
		return nil, fault.NewInternalError("error fetching responses", err)
	}

	var briefingDTO dto.BriefingResponseDTO
	if err := copier.Copy(&briefingDTO, briefing); err != nil {
		log.Error().Err(err).Msg("GetResults: failed to copy Briefing model to DTO")
		return nil, fault.NewInternalError("error preparing results", err)
	}

	details := make([]dto.ResponseDetailDTO, 0, len(responses))
	for _, response := range responses {
		details = append(details, dto.ResponseDetailDTO{
			ID:              response.ID,
			RespondentEmail: response.RespondentEmail,
			Answers:         joinAnswers(briefing.Questions, response.Answers),
			CreatedAt:       response.CreatedAt,
		})
	}

	return &dto.BriefingResultsDTO{
		Briefing:      briefingDTO,
		ResponseCount: len(responses),
		Responses:     details,
	}, nil
}

// joinAnswers walks the questions in order_index order and picks each one's
// answer; unanswered questions are simply absent from the result.
func joinAnswers(questions []model.Question, answers model.AnswerMap) []dto.AnswerViewDTO {
	views := make([]dto.AnswerViewDTO, 0, len(answers))
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		views = append(views, dto.AnswerViewDTO{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			QuestionType: string(q.Type),
			Value:        value,
		})
	}
	return views
}
