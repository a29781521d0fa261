package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// TimetableController handles personal timetable operations
type TimetableController struct {
	timetableService services.TimetableService
	logger           zerolog.Logger
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService, logger zerolog.Logger) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
		logger:           logger,
	}
}

// List returns the authenticated user's timetable entries
// @Summary List my timetable
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableEntry}
// @Router /timetable [get]
func (c *TimetableController) List(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	entries, err := c.timetableService.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Create adds a timetable entry for the authenticated user
// @Summary Add a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TimetableEntryRequest true "Entry"
// @Success 201 {object} dto.APIResponse{data=models.TimetableEntry}
// @Router /timetable [post]
func (c *TimetableController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.TimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.timetableService.Create(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(entry))
}

// Update replaces one of the authenticated user's timetable entries
// @Summary Update a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body dto.TimetableEntryRequest true "Entry"
// @Success 200 {object} dto.APIResponse{data=models.TimetableEntry}
// @Failure 404 {object} dto.APIResponse "Entry not found or not owned by the user"
// @Router /timetable/{id} [put]
func (c *TimetableController) Update(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.TimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.timetableService.Update(ctx.Request.Context(), user.ID, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}

// Delete removes one of the authenticated user's timetable entries
// @Summary Delete a timetable entry
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.APIResponse
// @Router /timetable/{id} [delete]
func (c *TimetableController) Delete(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.timetableService.Delete(ctx.Request.Context(), user.ID, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Entry deleted"}))
}
