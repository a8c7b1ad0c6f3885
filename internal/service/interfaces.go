// Package service contains business logic for the application.
package service

import (
	"context"

	"tripcraft/internal/models"
	"tripcraft/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanTemplateServicer defines the interface for plan template operations.
type PlanTemplateServicer interface {
	CreatePlan(ctx context.Context, req *models.CreatePlanTemplateRequest) (*models.PlanTemplate, error)
	GetPlan(ctx context.Context, id primitive.ObjectID) (*models.PlanTemplate, error)
	ListPlans(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.PlanTemplateListResponse, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, req *models.UpdatePlanTemplateRequest) (*models.PlanTemplate, error)
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
	CoverUploadURL(ctx context.Context, id primitive.ObjectID, contentType string) (*models.CoverUploadResponse, error)
}

// TripServicer defines the interface for trip operations.
type TripServicer interface {
	CreateTrip(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID primitive.ObjectID) (*models.TripWithPlan, error)
	ListUserTrips(ctx context.Context, userID string, page, limit int) (*models.TripListResponse, error)
	ListPublished(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.TripListResponse, error)
	UpdateTrip(ctx context.Context, tripID primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error)
	DeleteTrip(ctx context.Context, tripID primitive.ObjectID, userID string) error
	AddMember(ctx context.Context, tripID primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error)
	AddMessage(ctx context.Context, tripID primitive.ObjectID, senderID string, req *models.AddMessageRequest) (*models.TripMessage, error)
	AddTicket(ctx context.Context, tripID primitive.ObjectID, req *models.AddTicketRequest) (*models.TripTicket, error)
	AddNote(ctx context.Context, tripID primitive.ObjectID, req *models.AddNoteRequest) (*models.TripNote, error)
	AddFeedEntry(ctx context.Context, tripID primitive.ObjectID, req *models.AddFeedEntryRequest) (*models.TripFeedEntry, error)
}

// ShareInvitationServicer defines the interface for share invitation operations.
type ShareInvitationServicer interface {
	CreateInvitation(ctx context.Context, tripID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error)
	GetByCode(ctx context.Context, code string) (*models.ShareInvitationView, error)
	Accept(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error)
	Reject(ctx context.Context, code string, actor models.Actor) error
	Cancel(ctx context.Context, tripID, invitationID primitive.ObjectID, userID string) error
	ListByTrip(ctx context.Context, tripID primitive.ObjectID) (*models.InvitationListResponse, error)
	MarkNotified(ctx context.Context, id primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ PlanTemplateServicer    = (*PlanTemplateService)(nil)
	_ TripServicer            = (*TripService)(nil)
	_ ShareInvitationServicer = (*ShareInvitationService)(nil)
)
