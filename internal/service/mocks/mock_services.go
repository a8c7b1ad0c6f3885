// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"tripcraft/internal/models"
	"tripcraft/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPlanTemplateService is a mock implementation of PlanTemplateServicer.
type MockPlanTemplateService struct {
	CreatePlanFunc     func(ctx context.Context, req *models.CreatePlanTemplateRequest) (*models.PlanTemplate, error)
	GetPlanFunc        func(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error)
	ListPlansFunc      func(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.PlanTemplateListResponse, error)
	UpdatePlanFunc     func(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (*models.PlanTemplate, error)
	DeletePlanFunc     func(ctx context.Context, id primitive.ObjectID) error
	CoverUploadURLFunc func(ctx context.Context, id primitive.ObjectID, contentType string) (*models.CoverUploadResponse, error)
}

func (m *MockPlanTemplateService) CreatePlan(ctx context.Context, req *models.CreatePlanTemplateRequest) (*models.PlanTemplate, error) {
	if m.CreatePlanFunc != nil {
		return m.CreatePlanFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPlanTemplateService) GetPlan(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error) {
	if m.GetPlanFunc != nil {
		return m.GetPlanFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPlanTemplateService) ListPlans(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.PlanTemplateListResponse, error) {
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc(ctx, filter, page, limit, sortBy)
	}
	return nil, nil
}

func (m *MockPlanTemplateService) UpdatePlan(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (*models.PlanTemplate, error) {
	if m.UpdatePlanFunc != nil {
		return m.UpdatePlanFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPlanTemplateService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	if m.DeletePlanFunc != nil {
		return m.DeletePlanFunc(ctx, id)
	}
	return nil
}

func (m *MockPlanTemplateService) CoverUploadURL(ctx context.Context, id primitive.ObjectID, contentType string) (*models.CoverUploadResponse, error) {
	if m.CoverUploadURLFunc != nil {
		return m.CoverUploadURLFunc(ctx, id, contentType)
	}
	return nil, nil
}

// MockTripService is a mock implementation of TripServicer.
type MockTripService struct {
	CreateTripFunc    func(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error)
	GetTripFunc       func(ctx context.Context, tripID primitive.ObjectID) (*models.TripWithPlan, error)
	ListUserTripsFunc func(ctx context.Context, userID string, page, limit int) (*models.TripListResponse, error)
	ListPublishedFunc func(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.TripListResponse, error)
	UpdateTripFunc    func(ctx context.Context, tripID primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error)
	DeleteTripFunc    func(ctx context.Context, tripID primitive.ObjectID, userID string) error
	AddMemberFunc     func(ctx context.Context, tripID primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error)
	AddMessageFunc    func(ctx context.Context, tripID primitive.ObjectID, senderID string, req *models.AddMessageRequest) (*models.TripMessage, error)
	AddTicketFunc     func(ctx context.Context, tripID primitive.ObjectID, req *models.AddTicketRequest) (*models.TripTicket, error)
	AddNoteFunc       func(ctx context.Context, tripID primitive.ObjectID, req *models.AddNoteRequest) (*models.TripNote, error)
	AddFeedEntryFunc  func(ctx context.Context, tripID primitive.ObjectID, req *models.AddFeedEntryRequest) (*models.TripFeedEntry, error)
}

func (m *MockTripService) CreateTrip(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
	if m.CreateTripFunc != nil {
		return m.CreateTripFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID primitive.ObjectID) (*models.TripWithPlan, error) {
	if m.GetTripFunc != nil {
		return m.GetTripFunc(ctx, tripID)
	}
	return nil, nil
}

func (m *MockTripService) ListUserTrips(ctx context.Context, userID string, page, limit int) (*models.TripListResponse, error) {
	if m.ListUserTripsFunc != nil {
		return m.ListUserTripsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockTripService) ListPublished(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.TripListResponse, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx, filter, page, limit, sortBy)
	}
	return nil, nil
}

func (m *MockTripService) UpdateTrip(ctx context.Context, tripID primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error) {
	if m.UpdateTripFunc != nil {
		return m.UpdateTripFunc(ctx, tripID, req)
	}
	return nil, nil
}

func (m *MockTripService) DeleteTrip(ctx context.Context, tripID primitive.ObjectID, userID string) error {
	if m.DeleteTripFunc != nil {
		return m.DeleteTripFunc(ctx, tripID, userID)
	}
	return nil
}

func (m *MockTripService) AddMember(ctx context.Context, tripID primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error) {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, tripID, req)
	}
	return nil, nil
}

func (m *MockTripService) AddMessage(ctx context.Context, tripID primitive.ObjectID, senderID string, req *models.AddMessageRequest) (*models.TripMessage, error) {
	if m.AddMessageFunc != nil {
		return m.AddMessageFunc(ctx, tripID, senderID, req)
	}
	return nil, nil
}

func (m *MockTripService) AddTicket(ctx context.Context, tripID primitive.ObjectID, req *models.AddTicketRequest) (*models.TripTicket, error) {
	if m.AddTicketFunc != nil {
		return m.AddTicketFunc(ctx, tripID, req)
	}
	return nil, nil
}

func (m *MockTripService) AddNote(ctx context.Context, tripID primitive.ObjectID, req *models.AddNoteRequest) (*models.TripNote, error) {
	if m.AddNoteFunc != nil {
		return m.AddNoteFunc(ctx, tripID, req)
	}
	return nil, nil
}

func (m *MockTripService) AddFeedEntry(ctx context.Context, tripID primitive.ObjectID, req *models.AddFeedEntryRequest) (*models.TripFeedEntry, error) {
	if m.AddFeedEntryFunc != nil {
		return m.AddFeedEntryFunc(ctx, tripID, req)
	}
	return nil, nil
}

// MockShareInvitationService is a mock implementation of ShareInvitationServicer.
type MockShareInvitationService struct {
	CreateInvitationFunc func(ctx context.Context, tripID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error)
	GetByCodeFunc        func(ctx context.Context, code string) (*models.ShareInvitationView, error)
	AcceptFunc           func(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error)
	RejectFunc           func(ctx context.Context, code string, actor models.Actor) error
	CancelFunc           func(ctx context.Context, tripID, invitationID primitive.ObjectID, userID string) error
	ListByTripFunc       func(ctx context.Context, tripID primitive.ObjectID) (*models.InvitationListResponse, error)
	MarkNotifiedFunc     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockShareInvitationService) CreateInvitation(ctx context.Context, tripID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
	if m.CreateInvitationFunc != nil {
		return m.CreateInvitationFunc(ctx, tripID, actor, req)
	}
	return nil, nil
}

func (m *MockShareInvitationService) GetByCode(ctx context.Context, code string) (*models.ShareInvitationView, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockShareInvitationService) Accept(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, code, actor)
	}
	return nil, nil
}

func (m *MockShareInvitationService) Reject(ctx context.Context, code string, actor models.Actor) error {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, code, actor)
	}
	return nil
}

func (m *MockShareInvitationService) Cancel(ctx context.Context, tripID, invitationID primitive.ObjectID, userID string) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, tripID, invitationID, userID)
	}
	return nil
}

func (m *MockShareInvitationService) ListByTrip(ctx context.Context, tripID primitive.ObjectID) (*models.InvitationListResponse, error) {
	if m.ListByTripFunc != nil {
		return m.ListByTripFunc(ctx, tripID)
	}
	return nil, nil
}

func (m *MockShareInvitationService) MarkNotified(ctx context.Context, id primitive.ObjectID) error {
	if m.MarkNotifiedFunc != nil {
		return m.MarkNotifiedFunc(ctx, id)
	}
	return nil
}
