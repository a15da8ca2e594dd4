package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/internal/repository"
	"github.com/jvictorino/briefly/internal/slug"
	"github.com/jvictorino/briefly/pkg/fault"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminBriefingService interface {
	CreateBriefing(req dto.BriefingCreateDTO) (*dto.BriefingResponseDTO, error)
	ListBriefings() ([]dto.BriefingSummaryDTO, error)
	DeleteBriefing(id string) error
}

type adminBriefingService struct {
	briefingRepo repository.BriefingRepository
	slugGen      *slug.Generator
}

func NewAdminBriefingService(briefingRepo repository.BriefingRepository, slugGen *slug.Generator) AdminBriefingService {
	return &adminBriefingService{briefingRepo: briefingRepo, slugGen: slugGen}
}

// CreateBriefing persists a briefing with its question batch. Questions keep
// their authoring order: order_index is the array position, 0-based and
// gapless. The slug is generated here, once, and never regenerated.
func (s *adminBriefingService) CreateBriefing(req dto.BriefingCreateDTO) (*dto.BriefingResponseDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		qType := model.QuestionType(qDto.Type)
		if !qType.Valid() {
			return nil, fault.NewClientError(fmt.Sprintf("unknown question type %q for question %d", qDto.Type, i), nil)
		}

		var options model.StringList
		if qType == model.MultipleChoice {
			for _, opt := range qDto.Options {
				if strings.TrimSpace(opt) != "" {
					options = append(options, opt)
				}
			}
			if len(options) == 0 {
				return nil, fault.NewClientError(fmt.Sprintf("multiple choice question %d needs at least one option", i), nil)
			}
		}

		questions = append(questions, model.Question{
			Text:       qDto.Text,
			Type:       qType,
			Options:    options,
			Required:   qDto.Required,
			OrderIndex: i,
		})
	}

	briefing := model.Briefing{
		Title:       req.Title,
		Slug:        s.slugGen.Generate(req.Title),
		Description: req.Description,
		Questions:   questions,
	}

	if err := s.briefingRepo.Create(&briefing); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create briefing in database")
		return nil, fault.NewInternalError("database error creating briefing", err)
	}
	log.Info().Str("briefingID", briefing.ID).Str("slug", briefing.Slug).Int("questions", len(questions)).Msg("Briefing created")

	createdWithQuestions, err := s.briefingRepo.FindBySlug(briefing.Slug)
	if err != nil || createdWithQuestions == nil {
		log.Error().Err(err).Str("briefingID", briefing.ID).Msg("Failed to re-fetch newly created briefing for response")
		var fallbackResp dto.BriefingResponseDTO
		copier.Copy(&fallbackResp, &briefing)
		return &fallbackResp, nil
	}

	var resp dto.BriefingResponseDTO
	if err := copier.Copy(&resp, createdWithQuestions); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Briefing model to BriefingResponseDTO")
		return nil, fault.NewInternalError("error preparing response data", err)
	}
	return &resp, nil
}

func (s *adminBriefingService) ListBriefings() ([]dto.BriefingSummaryDTO, error) {
	briefingsWithCounts, err := s.briefingRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list briefings with counts from repository")
		return nil, fault.NewInternalError("error fetching briefings", err)
	}

	dtos := make([]dto.BriefingSummaryDTO, 0, len(briefingsWithCounts))
	for _, bwc := range briefingsWithCounts {
		dtos = append(dtos, dto.BriefingSummaryDTO{
			ID:            bwc.Briefing.ID,
			Title:         bwc.Briefing.Title,
			Slug:          bwc.Briefing.Slug,
			Description:   bwc.Briefing.Description,
			QuestionCount: bwc.QuestionCount,
			ResponseCount: bwc.ResponseCount,
			CreatedAt:     bwc.Briefing.CreatedAt,
		})
	}
	return dtos, nil
}

// DeleteBriefing removes the briefing row; dependent questions and responses
// are cascaded by the storage layer's referential integrity constraints.
func (s *adminBriefingService) DeleteBriefing(id string) error {
	if err := s.briefingRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.ErrNotFound
		}
		log.Error().Err(err).Str("briefingID", id).Msg("Failed to delete briefing")
		return fault.NewInternalError("database error deleting briefing", err)
	}
	log.Info().Str("briefingID", id).Msg("Briefing deleted")
	return nil
}
