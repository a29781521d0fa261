package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// FeedbackController handles feedback operations
type FeedbackController struct {
	feedbackService services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// List returns all feedback entries
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and message"
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback}
// @Router /feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	entries, err := c.feedbackService.List(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ListMine returns the authenticated user's feedback entries
// @Summary List my feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback}
// @Router /feedback/mine [get]
func (c *FeedbackController) ListMine(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	entries, err := c.feedbackService.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Create submits a feedback entry
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=models.Feedback}
// @Router /feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.feedbackService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", entry.ID).Msg("Feedback submitted")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(entry))
}

// Respond attaches an admin response to a feedback entry
// @Summary Respond to feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback ID"
// @Param request body dto.RespondFeedbackRequest true "Response"
// @Success 200 {object} dto.APIResponse{data=models.Feedback}
// @Failure 403 {object} dto.APIResponse "Only admins can respond"
// @Router /feedback/{id}/respond [patch]
func (c *FeedbackController) Respond(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.RespondFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.feedbackService.Respond(ctx.Request.Context(), user, ctx.Param("id"), req.Response)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", entry.ID).Msg("Feedback response recorded")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}
