package middleware

import (
	"tripcraft/internal/authz"
	"tripcraft/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing trip data
const (
	TripIDKey   = "tripID"
	TripRoleKey = "tripRole"
)

// TripAuthz returns a middleware that checks trip authorization.
// It validates that the user is a member of the trip and has permission for the action.
func TripAuthz(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get user ID from context (set by Auth middleware)
		userID := GetUserID(c)
		if userID == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		// Get trip ID from path parameter
		tripIDStr := c.Param("tripId")
		if tripIDStr == "" {
			response.BadRequest(c, "trip id is required")
			c.Abort()
			return
		}

		// A malformed id can never reference an existing trip
		tripID, err := primitive.ObjectIDFromHex(tripIDStr)
		if err != nil {
			response.NotFound(c, "trip not found")
			c.Abort()
			return
		}

		// Check authorization
		allowed, err := authorizer.CanPerform(c.Request.Context(), userID, tripID, action)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		// Get and store user's role on the trip
		role, _ := authorizer.GetUserRole(c.Request.Context(), userID, tripID)

		// Store trip ID and role in context for handlers
		c.Set(TripIDKey, tripID)
		c.Set(TripRoleKey, role)

		c.Next()
	}
}

// TripMember returns a middleware that only checks trip membership (any role).
func TripMember(authorizer authz.Authorizer) gin.HandlerFunc {
	return TripAuthz(authorizer, authz.ActionTripView)
}

// GetTripID retrieves the trip ID from the context.
func GetTripID(c *gin.Context) (primitive.ObjectID, bool) {
	tripID, exists := c.Get(TripIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	return tripID.(primitive.ObjectID), true
}

// GetTripRole retrieves the user's trip role from the context.
func GetTripRole(c *gin.Context) string {
	role, exists := c.Get(TripRoleKey)
	if !exists {
		return ""
	}
	return role.(string)
}
