package service

import (
	"encoding/json"

	"github.com/jinzhu/copier"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/internal/repository"
	"github.com/jvictorino/briefly/internal/validation"
	"github.com/jvictorino/briefly/pkg/fault"
	"github.com/rs/zerolog/log"
)

type PublicBriefingService interface {
	GetBriefingBySlug(slug string) (*dto.BriefingResponseDTO, error)
	// SubmitResponse validates a flat answer payload (question id -> value,
	// plus the reserved respondent_email key) against the briefing's question
	// list and stores it.
	SubmitResponse(slug string, payload map[string]json.RawMessage) (*dto.ResponseReceiptDTO, error)
}

type publicBriefingService struct {
	briefingRepo repository.BriefingRepository
	responseRepo repository.ResponseRepository
}

func NewPublicBriefingService(briefingRepo repository.BriefingRepository, responseRepo repository.ResponseRepository) PublicBriefingService {
	return &publicBriefingService{briefingRepo: briefingRepo, responseRepo: responseRepo}
}

func (s *publicBriefingService) GetBriefingBySlug(slug string) (*dto.BriefingResponseDTO, error) {
	briefing, err := s.briefingRepo.FindBySlug(slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to fetch briefing by slug")
		return nil, fault.NewInternalError("error fetching briefing", err)
	}
	if briefing == nil {
		return nil, fault.ErrNotFound
	}

	var resp dto.BriefingResponseDTO
	if err := copier.Copy(&resp, briefing); err != nil {
		log.Error().Err(err).Msg("Failed to copy Briefing model to BriefingResponseDTO")
		return nil, fault.NewInternalError("error preparing briefing response", err)
	}
	return &resp, nil
}

func (s *publicBriefingService) SubmitResponse(slug string, payload map[string]json.RawMessage) (*dto.ResponseReceiptDTO, error) {
	briefing, err := s.briefingRepo.FindBySlug(slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("SubmitResponse: failed to fetch briefing")
		return nil, fault.NewInternalError("error fetching briefing", err)
	}
	if briefing == nil {
		return nil, fault.ErrNotFound
	}

	answers, respondentEmail, fieldErrs := validation.Build(briefing.Questions).Validate(payload)
	if len(fieldErrs) > 0 {
		log.Info().Str("slug", slug).Int("fieldErrors", len(fieldErrs)).Msg("SubmitResponse: payload rejected by validation")
		return nil, fault.NewValidationError("response payload failed validation", fieldErrs)
	}

	response := model.Response{
		BriefingID:      briefing.ID,
		Answers:         answers,
		RespondentEmail: respondentEmail,
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Str("briefingID", briefing.ID).Msg("SubmitResponse: failed to store response")
		return nil, fault.NewInternalError("database error storing response", err)
	}
	log.Info().Str("briefingID", briefing.ID).Str("responseID", response.ID).Int("answers", len(answers)).Msg("Response stored")

	return &dto.ResponseReceiptDTO{
		ID:         response.ID,
		BriefingID: response.BriefingID,
		CreatedAt:  response.CreatedAt,
	}, nil
}
