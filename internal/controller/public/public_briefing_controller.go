package public

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jvictorino/briefly/internal/controller"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/service"
	"github.com/rs/zerolog/log"
)

type PublicBriefingController struct {
	briefingService service.PublicBriefingService
}

func NewPublicBriefingController(briefingService service.PublicBriefingService) *PublicBriefingController {
	return &PublicBriefingController{briefingService: briefingService}
}

// GetBriefing godoc
// @Summary (Public) Fetch a published briefing by slug
// @Description Returns the briefing and its questions in authoring order so a respondent can fill it in. No authentication.
// @Tags Public - Briefings
// @Produce json
// @Param slug path string true "Briefing slug"
// @Success 200 {object} dto.BriefingResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No briefing at this slug"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /briefings/{slug} [get]
func (c *PublicBriefingController) GetBriefing(ctx *gin.Context) {
	slug := ctx.Param("slug")
	briefing, err := c.briefingService.GetBriefingBySlug(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Public GetBriefing: briefing not found or service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, briefing)
}

// SubmitResponse godoc
// @Summary (Public) Submit answers for a briefing
// @Description Accepts a flat JSON object keyed by question id, plus the reserved optional respondent_email key. Every field is validated against the briefing's questions; all failures are reported together.
// @Tags Public - Briefings
// @Accept json
// @Produce json
// @Param slug path string true "Briefing slug"
// @Param answers body object true "Answer payload: question id to string or array of strings, optional respondent_email"
// @Success 201 {object} dto.ResponseReceiptDTO "Response stored"
// @Failure 400 {object} dto.ValidationErrorResponse "One or more answers failed validation"
// @Failure 404 {object} dto.ErrorResponse "No briefing at this slug"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /briefings/{slug}/responses [post]
func (c *PublicBriefingController) SubmitResponse(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var payload map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Public SubmitResponse: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	receipt, err := c.briefingService.SubmitResponse(slug, payload)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Public SubmitResponse: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, receipt)
}
