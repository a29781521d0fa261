package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// PollController handles poll operations
type PollController struct {
	pollService services.PollService
	logger      zerolog.Logger
}

// NewPollController creates a new PollController
func NewPollController(pollService services.PollService, logger zerolog.Logger) *PollController {
	return &PollController{
		pollService: pollService,
		logger:      logger,
	}
}

// List returns polls with their current tallies
// @Summary List polls
// @Tags polls
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against question and option labels"
// @Success 200 {object} dto.APIResponse{data=[]models.Poll}
// @Router /polls [get]
func (c *PollController) List(ctx *gin.Context) {
	polls, err := c.pollService.List(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(polls))
}

// Create opens a new poll
// @Summary Create a poll
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePollRequest true "Poll question and options"
// @Success 201 {object} dto.APIResponse{data=models.Poll}
// @Failure 403 {object} dto.APIResponse "Students cannot create polls"
// @Router /polls [post]
func (c *PollController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreatePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	poll, err := c.pollService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", poll.ID).Msg("Poll created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(poll))
}

// Vote casts the authenticated user's vote. Each user votes at most
// once per poll.
// @Summary Vote on a poll
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Poll ID"
// @Param request body dto.VoteRequest true "Chosen option"
// @Success 200 {object} dto.APIResponse{data=models.Poll}
// @Failure 409 {object} dto.APIResponse "Already voted"
// @Router /polls/{id}/vote [post]
func (c *PollController) Vote(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	poll, err := c.pollService.Vote(ctx.Request.Context(), user, ctx.Param("id"), req.OptionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("pollId", poll.ID).
		Str("optionId", req.OptionID).
		Msg("Vote recorded")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(poll))
}
