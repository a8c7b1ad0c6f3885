// Package authz provides authorization interfaces and implementations.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions.
const (
	ActionTripView     = "trip:view"
	ActionTripUpdate   = "trip:update"
	ActionTripDelete   = "trip:delete"
	ActionMemberAdd    = "member:add"
	ActionMemberInvite = "member:invite"
	ActionTripAppend   = "trip:append"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks tripcraft/internal/authz Authorizer

// Authorizer defines the interface for authorization checks on trips.
type Authorizer interface {
	// CanPerform checks if a user can perform an action on a trip.
	CanPerform(ctx context.Context, userID string, tripID primitive.ObjectID, action string) (bool, error)

	// GetUserRole returns the user's role on a trip, or empty string if not a member.
	GetUserRole(ctx context.Context, userID string, tripID primitive.ObjectID) (string, error)

	// IsMember checks if a user is a member of a trip.
	IsMember(ctx context.Context, userID string, tripID primitive.ObjectID) (bool, error)
}
