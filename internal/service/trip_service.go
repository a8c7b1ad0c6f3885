package service

import (
	"context"
	"errors"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripService handles business logic for trip operations.
type TripService struct {
	tripRepo repository.TripRepository
	planRepo repository.PlanTemplateRepository
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo repository.TripRepository, planRepo repository.PlanTemplateRepository) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		planRepo: planRepo,
	}
}

// CreateTrip creates a trip for the authenticated caller. The creator is
// always seeded as the single owner member; additional members come from the
// request with non-owner roles. When a template is referenced, its itinerary
// fields are copied into the trip once and never re-synced afterwards.
func (s *TripService) CreateTrip(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
	if actor.ID == "" {
		return nil, apperrors.ErrCreatorRequired
	}
	if !models.ValidateDayNumbers(req.Days) {
		return nil, apperrors.ErrInvalidDayNumbers
	}

	trip := &models.Trip{
		CreatorID:   actor.ID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   models.ParseDateOnly(req.StartDate),
		EndDate:     models.ParseDateOnly(req.EndDate),
		Days:        models.DaysFromInput(req.Days),
		Tags:        req.Tags,
		Description: req.Description,
	}

	if req.PlanID != "" {
		planID, err := primitive.ObjectIDFromHex(req.PlanID)
		if err != nil {
			return nil, apperrors.ErrPlanTemplateNotFound
		}
		plan, err := s.planRepo.FindByID(ctx, planID)
		if err != nil {
			return nil, err
		}
		trip.PlanID = &plan.ID
		s.seedFromPlan(trip, plan)
	}

	members, err := buildMembers(actor, req.Members)
	if err != nil {
		return nil, err
	}
	trip.Members = members

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// seedFromPlan copies template content into fields the caller left empty.
func (s *TripService) seedFromPlan(trip *models.Trip, plan *models.PlanTemplate) {
	if trip.Destination == "" {
		trip.Destination = plan.Destination
	}
	if trip.StartDate == nil {
		trip.StartDate = plan.StartDate
	}
	if trip.EndDate == nil {
		trip.EndDate = plan.EndDate
	}
	if len(trip.Days) == 0 {
		trip.Days = plan.Days
	}
	if len(trip.Tags) == 0 {
		trip.Tags = plan.Tags
	}
	if trip.Description == "" {
		trip.Description = plan.Description
	}
}

// buildMembers seeds the creator as owner and appends the requested members.
// The owner role is reserved for the creator; duplicate user ids collapse to
// their first occurrence.
func buildMembers(actor models.Actor, requested []models.TripMember) ([]models.TripMember, error) {
	members := []models.TripMember{{
		UserID:    actor.ID,
		Name:      actor.Name,
		AvatarURL: actor.AvatarURL,
		Role:      models.RoleOwner,
	}}

	seen := map[string]bool{actor.ID: true}
	for _, m := range requested {
		if seen[m.UserID] {
			continue
		}
		if m.Role == models.RoleOwner {
			return nil, apperrors.ErrOwnerRoleReserved
		}
		if m.Role == "" {
			m.Role = models.RoleEdit
		}
		seen[m.UserID] = true
		members = append(members, m)
	}

	return members, nil
}

// GetTrip retrieves a trip with its template reference populated.
func (s *TripService) GetTrip(ctx context.Context, tripID primitive.ObjectID) (*models.TripWithPlan, error) {
	return s.tripRepo.FindByIDPopulated(ctx, tripID)
}

// ListUserTrips returns the trips the user created or belongs to.
func (s *TripService) ListUserTrips(ctx context.Context, userID string, page, limit int) (*models.TripListResponse, error) {
	limit, skip := normalizePage(page, limit)

	trips, err := s.tripRepo.FindByUser(ctx, userID, int64(limit), int64(skip), true)
	if err != nil {
		return nil, err
	}

	return &models.TripListResponse{
		Items: trips,
		Pagination: models.Pagination{
			Limit:      limit,
			Skip:       skip,
			TotalItems: len(trips),
		},
	}, nil
}

// ListPublished returns the public marketplace page of published trips.
func (s *TripService) ListPublished(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.TripListResponse, error) {
	limit, skip := normalizePage(page, limit)

	trips, err := s.tripRepo.FindPublished(ctx, filter, int64(limit), int64(skip), sortBy, true)
	if err != nil {
		return nil, err
	}

	return &models.TripListResponse{
		Items: trips,
		Pagination: models.Pagination{
			Limit:      limit,
			Skip:       skip,
			TotalItems: len(trips),
		},
	}, nil
}

// UpdateTrip applies a merge patch. A publish status change must follow the
// publish lifecycle; restating the current status is a no-op, not an error.
func (s *TripService) UpdateTrip(ctx context.Context, tripID primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error) {
	if req.Days != nil && !models.ValidateDayNumbers(*req.Days) {
		return nil, apperrors.ErrInvalidDayNumbers
	}

	if req.PublishStatus != nil {
		trip, err := s.tripRepo.FindByID(ctx, tripID)
		if err != nil {
			return nil, err
		}
		next := *req.PublishStatus
		if next != trip.PublishStatus && !trip.PublishStatus.CanTransitionTo(next) {
			return nil, apperrors.ErrInvalidPublishTransition
		}
	}

	if _, err := s.tripRepo.Update(ctx, tripID, req); err != nil {
		return nil, err
	}

	return s.tripRepo.FindByIDPopulated(ctx, tripID)
}

// DeleteTrip removes a trip. Only the creator may delete, regardless of
// other members' roles.
func (s *TripService) DeleteTrip(ctx context.Context, tripID primitive.ObjectID, userID string) error {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.CreatorID != userID {
		return apperrors.ErrInsufficientPermissions
	}

	return s.tripRepo.Delete(ctx, tripID)
}

// AddMember appends a member to the trip. Membership is keyed on user id;
// adding an existing member is a conflict, and the owner role cannot be
// granted after creation.
func (s *TripService) AddMember(ctx context.Context, tripID primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error) {
	if req.Role == models.RoleOwner {
		return nil, apperrors.ErrOwnerRoleReserved
	}

	_, err := s.tripRepo.FindMember(ctx, tripID, req.UserID)
	if err == nil {
		return nil, apperrors.ErrAlreadyMember
	}
	if !errors.Is(err, apperrors.ErrNotTripMember) {
		return nil, err
	}

	member := &models.TripMember{
		UserID:    req.UserID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
	}
	if member.Role == "" {
		member.Role = models.RoleEdit
	}

	if err := s.tripRepo.AddMember(ctx, tripID, member); err != nil {
		return nil, err
	}

	return member, nil
}

// AddMessage appends a chat message attributed to the authenticated sender.
func (s *TripService) AddMessage(ctx context.Context, tripID primitive.ObjectID, senderID string, req *models.AddMessageRequest) (*models.TripMessage, error) {
	message := &models.TripMessage{
		ID:       req.ID,
		SenderID: senderID,
		Content:  req.Content,
		Type:     req.Type,
	}

	if err := s.tripRepo.AddMessage(ctx, tripID, message); err != nil {
		return nil, err
	}

	return message, nil
}

// AddTicket appends a booking record.
func (s *TripService) AddTicket(ctx context.Context, tripID primitive.ObjectID, req *models.AddTicketRequest) (*models.TripTicket, error) {
	ticket := &models.TripTicket{
		ID:      req.ID,
		Type:    req.Type,
		Title:   req.Title,
		Details: req.Details,
	}

	if err := s.tripRepo.AddTicket(ctx, tripID, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// AddNote appends a free-text note.
func (s *TripService) AddNote(ctx context.Context, tripID primitive.ObjectID, req *models.AddNoteRequest) (*models.TripNote, error) {
	note := &models.TripNote{
		ID:      req.ID,
		Content: req.Content,
	}

	if err := s.tripRepo.AddNote(ctx, tripID, note); err != nil {
		return nil, err
	}

	return note, nil
}

// AddFeedEntry appends an activity-feed entry.
func (s *TripService) AddFeedEntry(ctx context.Context, tripID primitive.ObjectID, req *models.AddFeedEntryRequest) (*models.TripFeedEntry, error) {
	entry := &models.TripFeedEntry{
		ID:      req.ID,
		Content: req.Content,
	}

	if err := s.tripRepo.AddFeedEntry(ctx, tripID, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
