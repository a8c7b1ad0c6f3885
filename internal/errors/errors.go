// Package errors provides custom error types for the application.
package errors

import "errors"

// Validation errors
var (
	ErrCreatorRequired   = errors.New("creator_id is required to create a trip")
	ErrInvalidDayNumbers = errors.New("day numbers must be unique and contiguous starting at 1")
	ErrOwnerRoleReserved = errors.New("only the trip creator may hold the owner role")
	ErrInvalidRole       = errors.New("invalid role, must be admin, edit or viewer")
)

// Not-found errors. Malformed ids resolve to these as well, so callers
// cannot tell a syntactically invalid id from an absent document.
var (
	ErrPlanTemplateNotFound = errors.New("plan template not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrInvitationNotFound   = errors.New("invitation not found")
)

// Authorization errors
var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrNotTripMember           = errors.New("you are not a member of this trip")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// Conflict errors
var (
	ErrAlreadyMember            = errors.New("user is already a trip member")
	ErrPlanTemplateInUse        = errors.New("plan template is referenced by existing trips")
	ErrInvitationResolved       = errors.New("invitation has already been resolved")
	ErrInvalidPublishTransition = errors.New("invalid publish status transition")
)

// Expiry errors
var (
	ErrInvitationExpired = errors.New("invitation has expired")
)
