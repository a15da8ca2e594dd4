package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jvictorino/briefly/config"
	"github.com/jvictorino/briefly/internal/controller"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/middleware"
	"github.com/jvictorino/briefly/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminBriefingController struct {
	briefingService service.AdminBriefingService
	resultsService  service.ResultsService
	cfg             *config.Config
}

func NewAdminBriefingController(briefingService service.AdminBriefingService, resultsService service.ResultsService, cfg *config.Config) *AdminBriefingController {
	return &AdminBriefingController{
		briefingService: briefingService,
		resultsService:  resultsService,
		cfg:             cfg,
	}
}

// Login godoc
// @Summary (Admin) Exchange operator credentials for a bearer token
// @Description Compares credentials against the configured operator account and issues a short-lived JWT for the dashboard.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Operator email and password"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Wrong credentials"
// @Router /admin/login [post]
func (c *AdminBriefingController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(c.cfg.Auth.OperatorEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.cfg.Auth.OperatorPassword)) == 1
	if !emailOK || !passwordOK {
		log.Warn().Str("email", req.Email).Msg("Admin Login: rejected credentials")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Wrong email or password"})
		return
	}

	token, err := middleware.SignOperatorToken([]byte(c.cfg.Auth.JWTSecret), req.Email, c.cfg.Auth.TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("Admin Login: failed to sign token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to issue token"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{Token: token, ExpiresIn: int64(c.cfg.Auth.TokenTTL.Seconds())})
}

// CreateBriefing godoc
// @Summary (Admin) Create a new briefing with its questions
// @Description Creates a briefing and its ordered question list in one shot. Question order follows array position. A public slug is generated from the title.
// @Tags Admin - Briefings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param briefing_data body dto.BriefingCreateDTO true "Briefing title, description and at least one question"
// @Success 201 {object} dto.BriefingResponseDTO "Briefing created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/briefings [post]
func (c *AdminBriefingController) CreateBriefing(ctx *gin.Context) {
	var req dto.BriefingCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateBriefing: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	briefingResp, err := c.briefingService.CreateBriefing(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateBriefing: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, briefingResp)
}

// ListBriefings godoc
// @Summary (Admin) List all briefings
// @Description All briefings, newest first, with raw question and response counts.
// @Tags Admin - Briefings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BriefingSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/briefings [get]
func (c *AdminBriefingController) ListBriefings(ctx *gin.Context) {
	briefings, err := c.briefingService.ListBriefings()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListBriefings: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, briefings)
}

// DeleteBriefing godoc
// @Summary (Admin) Delete a briefing
// @Description Deletes the briefing; its questions and responses are removed by the storage layer's cascade constraints.
// @Tags Admin - Briefings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Briefing ID"
// @Success 204 "Briefing deleted"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Briefing not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/briefings/{id} [delete]
func (c *AdminBriefingController) DeleteBriefing(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.briefingService.DeleteBriefing(id); err != nil {
		log.Warn().Err(err).Str("briefingID", id).Msg("Admin DeleteBriefing: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetResults godoc
// @Summary (Admin) View collected responses for a briefing
// @Description Read-only aggregation: the briefing, its response count, and each response's answers in question authoring order.
// @Tags Admin - Briefings
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Briefing slug"
// @Success 200 {object} dto.BriefingResultsDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Briefing not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/briefings/{slug}/results [get]
func (c *AdminBriefingController) GetResults(ctx *gin.Context) {
	slug := ctx.Param("slug")
	results, err := c.resultsService.GetResults(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Admin GetResults: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
