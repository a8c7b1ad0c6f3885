package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationStatus is the stored state of a share invitation. Expiry is
// derived from expires_at at read time and never stored.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// InvitationExpiryDays is the default invitation lifetime.
const InvitationExpiryDays = 7

// ShareInvitation is a time-limited, code-addressed offer of membership on
// a trip. It stays queryable after resolution for history.
type ShareInvitation struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TripID        primitive.ObjectID `json:"trip_id" bson:"trip_id" example:"507f1f77bcf86cd799439012"`
	Code          string             `json:"invitation_code" bson:"invitation_code" example:"hXp3vQ9kTmAz"`
	SenderUserID  string             `json:"sender_user_id" bson:"sender_user_id" example:"u-8f2d1c"`
	SenderName    string             `json:"sender_name" bson:"sender_name" example:"Alice"`
	Role          string             `json:"role" bson:"role" example:"edit"`
	Status        InvitationStatus   `json:"status" bson:"status" example:"pending"`
	InviteeUserID string             `json:"invitee_user_id,omitempty" bson:"invitee_user_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	ExpiresAt     time.Time          `json:"expires_at" bson:"expires_at"`
	AcceptedAt    *time.Time         `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
	RejectedAt    *time.Time         `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
	NotifiedAt    *time.Time         `json:"notified_at,omitempty" bson:"notified_at,omitempty"`
}

// IsExpiredAt reports whether the invitation is expired when evaluated at
// the given instant. An invitation is expired from the moment now reaches
// expires_at, regardless of stored status.
func (i *ShareInvitation) IsExpiredAt(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// ShareInvitationView is the client-facing shape of an invitation: enough
// to render an acceptance prompt, nothing more.
type ShareInvitationView struct {
	ID         primitive.ObjectID `json:"id"`
	TripID     primitive.ObjectID `json:"trip_id"`
	Code       string             `json:"invitation_code"`
	SenderName string             `json:"sender_name"`
	Role       string             `json:"role"`
	Status     InvitationStatus   `json:"status"`
	ExpiresAt  time.Time          `json:"expires_at"`
	IsExpired  bool               `json:"is_expired"`
	ShareLink  string             `json:"share_link" example:"/invite/hXp3vQ9kTmAz"`
}

// ClientView builds the serialized view, deriving is_expired at the given
// instant and attaching the shareable relative link.
func (i *ShareInvitation) ClientView(now time.Time) *ShareInvitationView {
	return &ShareInvitationView{
		ID:         i.ID,
		TripID:     i.TripID,
		Code:       i.Code,
		SenderName: i.SenderName,
		Role:       i.Role,
		Status:     i.Status,
		ExpiresAt:  i.ExpiresAt,
		IsExpired:  i.IsExpiredAt(now),
		ShareLink:  "/invite/" + i.Code,
	}
}

// CreateInvitationRequest is the payload for creating a share invitation.
// The trip id comes from the route; the sender from the authenticated
// context. A malformed expires_at falls back to the 7-day default.
type CreateInvitationRequest struct {
	Role           string `json:"role" binding:"omitempty,oneof=admin edit viewer" example:"edit"`
	ExpiresAt      string `json:"expires_at" binding:"omitempty" example:"2025-07-01T00:00:00Z"`
	RecipientEmail string `json:"recipient_email" binding:"omitempty,email" example:"bob@example.com"`
}

// InvitationListResponse is the response for listing a trip's invitations.
type InvitationListResponse struct {
	Items []ShareInvitation `json:"items"`
}

// AcceptInvitationResponse is the response for accepting an invitation.
type AcceptInvitationResponse struct {
	Message string             `json:"message" example:"invitation accepted"`
	TripID  string             `json:"trip_id" example:"507f1f77bcf86cd799439012"`
	Role    string             `json:"role" example:"edit"`
	Status  InvitationStatus   `json:"status" example:"accepted"`
	ID      primitive.ObjectID `json:"id"`
}
