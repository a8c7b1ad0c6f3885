// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "tripcraft/swagger" // Import generated swagger docs

	"tripcraft/internal/authz"
	"tripcraft/internal/handler"
	"tripcraft/internal/middleware"
	"tripcraft/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	PlanHandler       *handler.PlanTemplateHandler
	TripHandler       *handler.TripHandler
	InvitationHandler *handler.ShareInvitationHandler
	JWTManager        auth.TokenManager
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Plan template routes. Browsing and reading are public; authoring
		// requires authentication.
		plans := v1.Group("/plans")
		{
			plans.GET("", cfg.PlanHandler.ListPlans)
			plans.GET("/:id", cfg.PlanHandler.GetPlan)
		}
		plansAuthed := v1.Group("/plans")
		plansAuthed.Use(middleware.Auth(cfg.JWTManager))
		{
			plansAuthed.POST("", cfg.PlanHandler.CreatePlan)
			plansAuthed.PUT("/:id", cfg.PlanHandler.UpdatePlan)
			plansAuthed.DELETE("/:id", cfg.PlanHandler.DeletePlan)
			plansAuthed.POST("/:id/cover-upload-url", cfg.PlanHandler.CoverUploadURL)
		}

		// Published trips marketplace (public)
		v1.GET("/trips/published", cfg.TripHandler.ListPublished)

		// Trip routes (protected)
		trips := v1.Group("/trips")
		trips.Use(middleware.Auth(cfg.JWTManager))
		{
			trips.POST("", cfg.TripHandler.CreateTrip)
			trips.GET("", cfg.TripHandler.ListMyTrips)

			// Trip routes requiring trip membership
			tripWithID := trips.Group("/:tripId")
			{
				tripWithID.GET("", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripView), cfg.TripHandler.GetTrip)
				tripWithID.PUT("", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripUpdate), cfg.TripHandler.UpdateTrip)
				tripWithID.DELETE("", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripDelete), cfg.TripHandler.DeleteTrip)

				tripWithID.POST("/members", middleware.TripAuthz(cfg.Authorizer, authz.ActionMemberAdd), cfg.TripHandler.AddMember)

				// Append-only collaboration subdocuments
				tripWithID.POST("/messages", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripAppend), cfg.TripHandler.AddMessage)
				tripWithID.POST("/tickets", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripAppend), cfg.TripHandler.AddTicket)
				tripWithID.POST("/notes", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripAppend), cfg.TripHandler.AddNote)
				tripWithID.POST("/feeds", middleware.TripAuthz(cfg.Authorizer, authz.ActionTripAppend), cfg.TripHandler.AddFeedEntry)

				// Trip invitations
				invitations := tripWithID.Group("/invitations")
				{
					invitations.POST("", middleware.TripAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.InvitationHandler.CreateInvitation)
					invitations.GET("", middleware.TripAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.InvitationHandler.ListTripInvitations)
					invitations.DELETE("/:id", middleware.TripMember(cfg.Authorizer), cfg.InvitationHandler.CancelInvitation)
				}
			}
		}

		// Invitation code resolution is public so invitees can preview before
		// signing in; acting on one requires authentication.
		v1.GET("/invitations/:code", cfg.InvitationHandler.GetInvitation)

		invitationActions := v1.Group("/invitations")
		invitationActions.Use(middleware.Auth(cfg.JWTManager))
		{
			invitationActions.POST("/:code/accept", cfg.InvitationHandler.AcceptInvitation)
			invitationActions.POST("/:code/reject", cfg.InvitationHandler.RejectInvitation)
		}
	}

	return r
}
