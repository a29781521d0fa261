package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List returns announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and body"
// @Param category query string false "exam, event, holiday, general or all"
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	announcements, err := c.announcementService.List(ctx.Request.Context(), ctx.Query("search"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// Create publishes a new announcement
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Failure 403 {object} dto.APIResponse "Students cannot post announcements"
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("id", announcement.ID).
		Str("category", string(announcement.Category)).
		Str("author", user.Name).
		Msg("Announcement created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(announcement))
}
