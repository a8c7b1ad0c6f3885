package authz

import (
	"context"
	"errors"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripMemberFinder is the interface required by LocalAuthorizer to look up
// trip membership. This decouples the authorizer from the full repository.
type TripMemberFinder interface {
	FindMember(ctx context.Context, tripID primitive.ObjectID, userID string) (*models.TripMember, error)
}

// LocalAuthorizer implements Authorizer using the trip's embedded members.
type LocalAuthorizer struct {
	memberFinder TripMemberFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(memberFinder TripMemberFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		memberFinder: memberFinder,
	}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionTripView:     {models.RoleOwner, models.RoleAdmin, models.RoleEdit, models.RoleViewer},
	ActionTripUpdate:   {models.RoleOwner, models.RoleAdmin, models.RoleEdit},
	ActionTripDelete:   {models.RoleOwner},
	ActionMemberAdd:    {models.RoleOwner, models.RoleAdmin},
	ActionMemberInvite: {models.RoleOwner, models.RoleAdmin},
	ActionTripAppend:   {models.RoleOwner, models.RoleAdmin, models.RoleEdit},
}

// CanPerform checks if a user can perform an action on a trip.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, userID string, tripID primitive.ObjectID, action string) (bool, error) {
	member, err := a.memberFinder.FindMember(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTripMember) {
			return false, nil // Expected: not a member
		}
		return false, err // Unexpected: propagate error
	}

	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false, nil // Unknown action
	}

	for _, role := range allowedRoles {
		if member.Role == role {
			return true, nil
		}
	}

	return false, nil
}

// GetUserRole returns the user's role on a trip, or empty string if not a member.
func (a *LocalAuthorizer) GetUserRole(ctx context.Context, userID string, tripID primitive.ObjectID) (string, error) {
	member, err := a.memberFinder.FindMember(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTripMember) {
			return "", nil
		}
		return "", err
	}
	return member.Role, nil
}

// IsMember checks if a user is a member of a trip.
func (a *LocalAuthorizer) IsMember(ctx context.Context, userID string, tripID primitive.ObjectID) (bool, error) {
	member, err := a.memberFinder.FindMember(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTripMember) {
			return false, nil
		}
		return false, err
	}
	return member != nil, nil
}
