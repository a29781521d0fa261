package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// GrowController handles the GrowTogether gamification endpoints:
// achievements, leaderboard, activity feed and challenges.
type GrowController struct {
	growService services.GrowService
	logger      zerolog.Logger
}

// NewGrowController creates a new GrowController
func NewGrowController(growService services.GrowService, logger zerolog.Logger) *GrowController {
	return &GrowController{
		growService: growService,
		logger:      logger,
	}
}

// Achievements returns the achievement catalog
// @Summary List achievements
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and description"
// @Param category query string false "academic, extracurricular, skill, leadership, community or all"
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement}
// @Router /grow/achievements [get]
func (c *GrowController) Achievements(ctx *gin.Context) {
	achievements, err := c.growService.Achievements(ctx.Request.Context(),
		ctx.Query("search"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements))
}

// Leaderboard returns ranked entries for the requested scope
// @Summary Get the leaderboard
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Param scope query string false "overall, weekly or monthly (default overall)"
// @Success 200 {object} dto.APIResponse{data=[]models.LeaderboardEntry}
// @Router /grow/leaderboard [get]
func (c *GrowController) Leaderboard(ctx *gin.Context) {
	scope := dto.LeaderboardScope(ctx.DefaultQuery("scope", string(dto.ScopeOverall)))
	if !scope.Valid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid leaderboard scope")
		errorDetail = errorDetail.WithDetails("Scope must be overall, weekly or monthly")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entries, err := c.growService.Leaderboard(ctx.Request.Context(), scope)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Activities returns the recent activity feed
// @Summary List recent activities
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Activity}
// @Router /grow/activities [get]
func (c *GrowController) Activities(ctx *gin.Context) {
	activities, err := c.growService.Activities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activities))
}

// Challenges returns challenges with the requesting user's join state
// @Summary List challenges
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and description"
// @Param category query string false "academic, extracurricular, skill, leadership, community or all"
// @Success 200 {object} dto.APIResponse{data=[]dto.ChallengeResponse}
// @Router /grow/challenges [get]
func (c *GrowController) Challenges(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	challenges, err := c.growService.Challenges(ctx.Request.Context(),
		user.ID, ctx.Query("search"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(challenges))
}

// JoinChallenge adds the authenticated user to a challenge
// @Summary Join a challenge
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChallengeResponse}
// @Failure 409 {object} dto.APIResponse "Already joined or challenge full"
// @Router /grow/challenges/{id}/join [post]
func (c *GrowController) JoinChallenge(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	challenge, err := c.growService.JoinChallenge(ctx.Request.Context(), user, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("challengeId", challenge.ID).
		Str("userId", user.ID).
		Msg("Challenge joined")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(challenge))
}

// LeaveChallenge removes the authenticated user from a challenge
// @Summary Leave a challenge
// @Tags grow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChallengeResponse}
// @Failure 409 {object} dto.APIResponse "Not joined"
// @Router /grow/challenges/{id}/leave [post]
func (c *GrowController) LeaveChallenge(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	challenge, err := c.growService.LeaveChallenge(ctx.Request.Context(), user, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("challengeId", challenge.ID).
		Str("userId", user.ID).
		Msg("Challenge left")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(challenge))
}
