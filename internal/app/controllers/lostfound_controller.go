package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// LostFoundController handles lost and found operations
type LostFoundController struct {
	lostFoundService services.LostFoundService
	logger           zerolog.Logger
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(lostFoundService services.LostFoundService, logger zerolog.Logger) *LostFoundController {
	return &LostFoundController{
		lostFoundService: lostFoundService,
		logger:           logger,
	}
}

// List returns lost and found items
// @Summary List lost and found items
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name, description and location"
// @Param category query string false "electronics, books, clothing, accessories, other or all"
// @Param type query string false "lost, found or all"
// @Success 200 {object} dto.APIResponse{data=[]models.LostFoundItem}
// @Router /lostfound [get]
func (c *LostFoundController) List(ctx *gin.Context) {
	items, err := c.lostFoundService.List(ctx.Request.Context(),
		ctx.Query("search"), ctx.Query("category"), ctx.Query("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Create posts a lost or found item
// @Summary Report a lost or found item
// @Tags lostfound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLostFoundRequest true "Item"
// @Success 201 {object} dto.APIResponse{data=models.LostFoundItem}
// @Router /lostfound [post]
func (c *LostFoundController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateLostFoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	item, err := c.lostFoundService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("id", item.ID).
		Str("type", string(item.Type)).
		Msg("Lost and found item reported")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// Resolve marks an item as returned to its owner
// @Summary Resolve a lost and found item
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.LostFoundItem}
// @Failure 403 {object} dto.APIResponse "Only staff and admins can resolve items"
// @Router /lostfound/{id}/resolve [patch]
func (c *LostFoundController) Resolve(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	item, err := c.lostFoundService.Resolve(ctx.Request.Context(), user, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("id", item.ID).Msg("Lost and found item resolved")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}
