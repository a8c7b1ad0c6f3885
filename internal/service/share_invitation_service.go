package service

import (
	"context"
	"errors"
	"log"
	"time"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/queue"
	"tripcraft/internal/repository"
	"tripcraft/pkg/invitecode"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxCodeAttempts bounds collision retries against the unique code index.
const maxCodeAttempts = 5

// ShareInvitationService handles business logic for share invitations.
type ShareInvitationService struct {
	invitationRepo repository.ShareInvitationRepository
	tripRepo       repository.TripRepository
	mailQueue      queue.Queue
}

// NewShareInvitationService creates a new ShareInvitationService. The mail
// queue is optional; without one, invitations are created silently.
func NewShareInvitationService(
	invitationRepo repository.ShareInvitationRepository,
	tripRepo repository.TripRepository,
	mailQueue queue.Queue,
) *ShareInvitationService {
	return &ShareInvitationService{
		invitationRepo: invitationRepo,
		tripRepo:       tripRepo,
		mailQueue:      mailQueue,
	}
}

// canInvite reports whether the user may issue invitations for the trip:
// the creator always can, otherwise an owner or admin member.
func canInvite(trip *models.Trip, userID string) bool {
	if trip.CreatorID == userID {
		return true
	}
	member := trip.Member(userID)
	if member == nil {
		return false
	}
	return member.Role == models.RoleOwner || member.Role == models.RoleAdmin
}

// CreateInvitation creates a share invitation for a trip. The role defaults
// to edit, expiry to seven days; a malformed expiry string falls back to the
// default rather than failing the request. Code collisions against the
// unique index are retried with fresh codes.
func (s *ShareInvitationService) CreateInvitation(ctx context.Context, tripID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !canInvite(trip, actor.ID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	role := req.Role
	if role == "" {
		role = models.RoleEdit
	}

	var expiresAt time.Time
	if req.ExpiresAt != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, req.ExpiresAt); parseErr == nil {
			expiresAt = parsed.UTC()
		}
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().UTC().AddDate(0, 0, models.InvitationExpiryDays)
	}

	var invitation *models.ShareInvitation
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, codeErr := invitecode.Generate()
		if codeErr != nil {
			return nil, codeErr
		}

		invitation = &models.ShareInvitation{
			TripID:       tripID,
			Code:         code,
			SenderUserID: actor.ID,
			SenderName:   actor.Name,
			Role:         role,
			Status:       models.InvitationPending,
			ExpiresAt:    expiresAt,
		}

		err = s.invitationRepo.Create(ctx, invitation)
		if err == nil {
			break
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	if req.RecipientEmail != "" && s.mailQueue != nil {
		job := queue.InviteEmailJob{
			InvitationID: invitation.ID,
			Recipient:    req.RecipientEmail,
			SenderName:   actor.Name,
			TripName:     trip.Name,
			Code:         invitation.Code,
			ShareLink:    "/invite/" + invitation.Code,
			ExpiresAt:    invitation.ExpiresAt,
		}
		if enqueueErr := s.mailQueue.Enqueue(job); enqueueErr != nil {
			// Mail is best-effort; the invitation itself stands.
			log.Printf("Failed to enqueue invitation mail for %s: %v", invitation.ID.Hex(), enqueueErr)
		}
	}

	return invitation, nil
}

// GetByCode resolves a share code into the client-facing view. Expiry is
// derived at call time; resolved and expired invitations still resolve so
// the client can show their state.
func (s *ShareInvitationService) GetByCode(ctx context.Context, code string) (*models.ShareInvitationView, error) {
	invitation, err := s.invitationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return invitation.ClientView(time.Now().UTC()), nil
}

// Accept accepts a pending invitation and adds the caller to the trip.
//
// A repeat accept by the recorded invitee of an already-accepted invitation
// is treated as recovery from a crash between the status flip and the
// membership write: membership is re-ensured and the call succeeds. Any
// other caller hitting a resolved invitation gets a conflict.
func (s *ShareInvitationService) Accept(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if invitation.Status == models.InvitationAccepted && invitation.InviteeUserID == actor.ID {
		if err := s.ensureMembership(ctx, invitation, actor); err != nil {
			return nil, err
		}
		return acceptResponse(invitation), nil
	}

	if invitation.IsExpiredAt(now) {
		return nil, apperrors.ErrInvitationExpired
	}
	if invitation.Status != models.InvitationPending {
		return nil, apperrors.ErrInvitationResolved
	}

	flipped, err := s.invitationRepo.MarkAccepted(ctx, invitation.ID, actor.ID, now)
	if err != nil {
		return nil, err
	}
	if !flipped {
		// Lost a race with a concurrent resolution
		return nil, apperrors.ErrInvitationResolved
	}

	invitation.Status = models.InvitationAccepted
	invitation.InviteeUserID = actor.ID
	invitation.AcceptedAt = &now

	if err := s.ensureMembership(ctx, invitation, actor); err != nil {
		return nil, err
	}

	return acceptResponse(invitation), nil
}

// ensureMembership adds the actor to the invitation's trip with the invited
// role if not already a member. Existing membership, whatever the role, is
// left untouched.
func (s *ShareInvitationService) ensureMembership(ctx context.Context, invitation *models.ShareInvitation, actor models.Actor) error {
	_, err := s.tripRepo.FindMember(ctx, invitation.TripID, actor.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotTripMember) {
		return err
	}

	member := &models.TripMember{
		UserID:    actor.ID,
		Name:      actor.Name,
		AvatarURL: actor.AvatarURL,
		Role:      invitation.Role,
	}
	return s.tripRepo.AddMember(ctx, invitation.TripID, member)
}

func acceptResponse(invitation *models.ShareInvitation) *models.AcceptInvitationResponse {
	return &models.AcceptInvitationResponse{
		Message: "invitation accepted",
		TripID:  invitation.TripID.Hex(),
		Role:    invitation.Role,
		Status:  invitation.Status,
		ID:      invitation.ID,
	}
}

// Reject declines a pending invitation. The invitation stays queryable with
// its rejected status; no membership is touched.
func (s *ShareInvitationService) Reject(ctx context.Context, code string, actor models.Actor) error {
	invitation, err := s.invitationRepo.FindByCode(ctx, code)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if invitation.IsExpiredAt(now) {
		return apperrors.ErrInvitationExpired
	}
	if invitation.Status != models.InvitationPending {
		return apperrors.ErrInvitationResolved
	}

	flipped, err := s.invitationRepo.MarkRejected(ctx, invitation.ID, now)
	if err != nil {
		return err
	}
	if !flipped {
		return apperrors.ErrInvitationResolved
	}

	return nil
}

// Cancel removes an invitation from a trip. The sender can always cancel
// their own invitation; otherwise the caller must be the creator or an
// owner/admin member. Resolved invitations can be cancelled too, which just
// erases them from the trip's history.
func (s *ShareInvitationService) Cancel(ctx context.Context, tripID, invitationID primitive.ObjectID, userID string) error {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.TripID != tripID {
		return apperrors.ErrInvitationNotFound
	}

	if invitation.SenderUserID != userID {
		trip, err := s.tripRepo.FindByID(ctx, tripID)
		if err != nil {
			return err
		}
		if !canInvite(trip, userID) {
			return apperrors.ErrInsufficientPermissions
		}
	}

	return s.invitationRepo.Delete(ctx, invitationID)
}

// ListByTrip returns all invitations for a trip, resolved ones included.
func (s *ShareInvitationService) ListByTrip(ctx context.Context, tripID primitive.ObjectID) (*models.InvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return &models.InvitationListResponse{
		Items: invitations,
	}, nil
}

// MarkNotified records that the invitation email was delivered. Called by
// the mail processor after a successful send.
func (s *ShareInvitationService) MarkNotified(ctx context.Context, id primitive.ObjectID) error {
	return s.invitationRepo.MarkNotified(ctx, id, time.Now().UTC())
}
