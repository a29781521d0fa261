// Package routes wires controllers to URL paths
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar3327/Campus-link/internal/app/controllers"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	announcementController *controllers.AnnouncementController,
	complaintController *controllers.ComplaintController,
	lostFoundController *controllers.LostFoundController,
	pollController *controllers.PollController,
	eventController *controllers.EventController,
	feedbackController *controllers.FeedbackController,
	timetableController *controllers.TimetableController,
	growController *controllers.GrowController,
	userController *controllers.UserController,
	navigationController *controllers.NavigationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Profile)
		authenticated.GET("/navigation", navigationController.Menu)

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.List)

			// Posting is limited to staff and admins
			announcementsStaffProtected := announcements.Group("")
			announcementsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
			{
				announcementsStaffProtected.POST("", announcementController.Create)
			}
		}

		complaints := authenticated.Group("/complaints")
		{
			complaints.GET("", complaintController.List)
			complaints.GET("/mine", complaintController.ListMine)
			complaints.POST("", complaintController.Create)

			complaintsStaffProtected := complaints.Group("")
			complaintsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
			{
				complaintsStaffProtected.PATCH("/:id/status", complaintController.UpdateStatus)
			}
		}

		lostFound := authenticated.Group("/lostfound")
		{
			lostFound.GET("", lostFoundController.List)
			lostFound.POST("", lostFoundController.Create)

			lostFoundStaffProtected := lostFound.Group("")
			lostFoundStaffProtected.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
			{
				lostFoundStaffProtected.PATCH("/:id/resolve", lostFoundController.Resolve)
			}
		}

		polls := authenticated.Group("/polls")
		{
			polls.GET("", pollController.List)
			polls.POST("/:id/vote", pollController.Vote)

			pollsStaffProtected := polls.Group("")
			pollsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
			{
				pollsStaffProtected.POST("", pollController.Create)
			}
		}

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.List)
			events.POST("/:id/rsvp", eventController.RSVP)

			eventsStaffProtected := events.Group("")
			eventsStaffProtected.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
			{
				eventsStaffProtected.POST("", eventController.Create)
			}
		}

		feedback := authenticated.Group("/feedback")
		{
			feedback.GET("", feedbackController.List)
			feedback.GET("/mine", feedbackController.ListMine)
			feedback.POST("", feedbackController.Create)

			feedbackAdminProtected := feedback.Group("")
			feedbackAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				feedbackAdminProtected.PATCH("/:id/respond", feedbackController.Respond)
			}
		}

		timetable := authenticated.Group("/timetable")
		{
			timetable.GET("", timetableController.List)
			timetable.POST("", timetableController.Create)
			timetable.PUT("/:id", timetableController.Update)
			timetable.DELETE("/:id", timetableController.Delete)
		}

		grow := authenticated.Group("/grow")
		{
			grow.GET("/achievements", growController.Achievements)
			grow.GET("/leaderboard", growController.Leaderboard)
			grow.GET("/activities", growController.Activities)
			grow.GET("/challenges", growController.Challenges)
			grow.POST("/challenges/:id/join", growController.JoinChallenge)
			grow.POST("/challenges/:id/leave", growController.LeaveChallenge)
		}

		usersAdminProtected := authenticated.Group("/users")
		usersAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			usersAdminProtected.GET("", userController.List)
		}
	}
}
