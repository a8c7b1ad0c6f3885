package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_share_invitation_repository.go -package=mocks tripcraft/internal/repository ShareInvitationRepository

// ShareInvitationRepository defines the interface for share invitation data
// operations. Status flips are guarded on the pending state so an invitation
// transitions out of pending at most once, even under concurrent resolution.
type ShareInvitationRepository interface {
	Create(ctx context.Context, invitation *models.ShareInvitation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShareInvitation, error)
	FindByCode(ctx context.Context, code string) (*models.ShareInvitation, error)
	FindByTripID(ctx context.Context, tripID primitive.ObjectID) ([]models.ShareInvitation, error)
	MarkAccepted(ctx context.Context, id primitive.ObjectID, inviteeUserID string, at time.Time) (bool, error)
	MarkRejected(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error)
	MarkNotified(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// shareInvitationRepository implements ShareInvitationRepository using MongoDB.
type shareInvitationRepository struct {
	collection *mongo.Collection
}

// NewShareInvitationRepository creates a new ShareInvitationRepository.
func NewShareInvitationRepository(db *mongo.Database) ShareInvitationRepository {
	return &shareInvitationRepository{
		collection: db.Collection("share_invitations"),
	}
}

// Create inserts a new invitation. The caller supplies the code and expiry;
// a duplicate code surfaces as a duplicate-key error for collision retry
// against the unique invitation_code index.
func (r *shareInvitationRepository) Create(ctx context.Context, invitation *models.ShareInvitation) error {
	invitation.ID = primitive.NewObjectID()
	invitation.CreatedAt = time.Now().UTC()

	if invitation.Status == "" {
		invitation.Status = models.InvitationPending
	}
	if invitation.Role == "" {
		invitation.Role = models.RoleEdit
	}
	if invitation.ExpiresAt.IsZero() {
		invitation.ExpiresAt = invitation.CreatedAt.AddDate(0, 0, models.InvitationExpiryDays)
	}

	_, err := r.collection.InsertOne(ctx, invitation)
	return err
}

// FindByID retrieves an invitation by ID.
func (r *shareInvitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShareInvitation, error) {
	var invitation models.ShareInvitation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindByCode retrieves an invitation by its share code. Absence is a
// normal, expected outcome.
func (r *shareInvitationRepository) FindByCode(ctx context.Context, code string) (*models.ShareInvitation, error) {
	var invitation models.ShareInvitation
	err := r.collection.FindOne(ctx, bson.M{"invitation_code": code}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindByTripID returns all invitations for a trip, resolved ones included;
// invitations remain queryable for history.
func (r *shareInvitationRepository) FindByTripID(ctx context.Context, tripID primitive.ObjectID) ([]models.ShareInvitation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.ShareInvitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	if invitations == nil {
		invitations = []models.ShareInvitation{}
	}

	return invitations, nil
}

// MarkAccepted flips a pending invitation to accepted, recording the
// invitee and acceptance time. Returns false when the invitation was not
// pending anymore (or does not exist) so callers can report a distinct
// already-resolved outcome.
func (r *shareInvitationRepository) MarkAccepted(ctx context.Context, id primitive.ObjectID, inviteeUserID string, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "status": models.InvitationPending}
	update := bson.M{
		"$set": bson.M{
			"status":          models.InvitationAccepted,
			"invitee_user_id": inviteeUserID,
			"accepted_at":     at,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}

// MarkRejected flips a pending invitation to rejected.
func (r *shareInvitationRepository) MarkRejected(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "status": models.InvitationPending}
	update := bson.M{
		"$set": bson.M{
			"status":      models.InvitationRejected,
			"rejected_at": at,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}

// MarkNotified stamps the delivery time after the invitation email went out.
func (r *shareInvitationRepository) MarkNotified(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{"notified_at": at}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}

// Delete removes an invitation. No status restriction is imposed here.
func (r *shareInvitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}
