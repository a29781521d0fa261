package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/navigation"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// NavigationController serves the role-dependent menu
type NavigationController struct{}

// NewNavigationController creates a new NavigationController
func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

// Menu returns the navigation items visible to the authenticated user's
// role, in display order.
// @Summary Get the navigation menu
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]navigation.Item}
// @Router /navigation [get]
func (c *NavigationController) Menu(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(navigation.MenuFor(user.Role)))
}
