package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// ComplaintController handles complaint operations
type ComplaintController struct {
	complaintService services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// List returns complaints filtered by search, category and status
// @Summary List complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and description"
// @Param category query string false "water, cleaning, electricity, internet, other or all"
// @Param status query string false "pending, in-progress, resolved or all"
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint}
// @Router /complaints [get]
func (c *ComplaintController) List(ctx *gin.Context) {
	complaints, err := c.complaintService.List(ctx.Request.Context(),
		ctx.Query("search"), ctx.Query("category"), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaints))
}

// ListMine returns the authenticated user's own complaints
// @Summary List my complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint}
// @Router /complaints/mine [get]
func (c *ComplaintController) ListMine(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	complaints, err := c.complaintService.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaints))
}

// Create files a new complaint with status pending
// @Summary File a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} dto.APIResponse{data=models.Complaint}
// @Router /complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.complaintService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("id", complaint.ID).
		Str("category", string(complaint.Category)).
		Msg("Complaint filed")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(complaint))
}

// UpdateStatus moves a complaint through its lifecycle
// @Summary Update complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Complaint}
// @Failure 403 {object} dto.APIResponse "Only staff and admins can update status"
// @Router /complaints/{id}/status [patch]
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.complaintService.UpdateStatus(ctx.Request.Context(),
		user, ctx.Param("id"), models.ComplaintStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("id", complaint.ID).
		Str("status", string(complaint.Status)).
		Msg("Complaint status updated")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint))
}
