package service

import (
	"context"
	"testing"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"
	repomocks "tripcraft/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTripService(ctrl *gomock.Controller) (*TripService, *repomocks.MockTripRepository, *repomocks.MockPlanTemplateRepository) {
	tripRepo := repomocks.NewMockTripRepository(ctrl)
	planRepo := repomocks.NewMockPlanTemplateRepository(ctrl)
	return NewTripService(tripRepo, planRepo), tripRepo, planRepo
}

func testActor() models.Actor {
	return models.Actor{
		ID:        "u-8f2d1c",
		Name:      "Alice",
		AvatarURL: "https://cdn.example.com/a.png",
	}
}

func TestNewTripService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTripService(ctrl)

	assert.NotNil(t, service)
}

func TestTripService_CreateTrip(t *testing.T) {
	t.Run("seeds the creator as sole owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, trip *models.Trip) error {
				trip.ID = primitive.NewObjectID()
				return nil
			})

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name: "Our Sanya trip",
		})

		require.NoError(t, err)
		require.Len(t, trip.Members, 1)
		assert.Equal(t, "u-8f2d1c", trip.Members[0].UserID)
		assert.Equal(t, models.RoleOwner, trip.Members[0].Role)
		assert.Equal(t, "u-8f2d1c", trip.CreatorID)
	})

	t.Run("collapses duplicate members and defaults role to edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name: "Our Sanya trip",
			Members: []models.TripMember{
				{UserID: "u-41ac99", Name: "Bob"},
				{UserID: "u-41ac99", Name: "Bob again", Role: models.RoleViewer},
				{UserID: "u-8f2d1c", Name: "Alice duplicate", Role: models.RoleViewer},
			},
		})

		require.NoError(t, err)
		require.Len(t, trip.Members, 2)
		assert.Equal(t, models.RoleOwner, trip.Members[0].Role)
		assert.Equal(t, "u-41ac99", trip.Members[1].UserID)
		assert.Equal(t, models.RoleEdit, trip.Members[1].Role)
	})

	t.Run("rejects requested owner role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name: "Our Sanya trip",
			Members: []models.TripMember{
				{UserID: "u-41ac99", Name: "Bob", Role: models.RoleOwner},
			},
		})

		assert.Nil(t, trip)
		assert.Equal(t, apperrors.ErrOwnerRoleReserved, err)
	})

	t.Run("requires an authenticated creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		trip, err := service.CreateTrip(context.Background(), models.Actor{}, &models.CreateTripRequest{
			Name: "Our Sanya trip",
		})

		assert.Nil(t, trip)
		assert.Equal(t, apperrors.ErrCreatorRequired, err)
	})

	t.Run("copies template fields into empty trip fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, planRepo := newTripService(ctrl)

		planID := primitive.NewObjectID()
		start := models.ParseDateOnly("2025-06-01")
		plan := &models.PlanTemplate{
			ID:          planID,
			Destination: "Sanya",
			StartDate:   start,
			Days:        []models.PlanDay{{DayNumber: 1, Title: "Arrival"}},
			Tags:        []string{"beach"},
			Description: "Template description",
		}

		planRepo.EXPECT().
			FindByID(gomock.Any(), planID).
			Return(plan, nil)
		tripRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name:        "Our Sanya trip",
			PlanID:      planID.Hex(),
			Description: "My own words",
		})

		require.NoError(t, err)
		require.NotNil(t, trip.PlanID)
		assert.Equal(t, planID, *trip.PlanID)
		assert.Equal(t, "Sanya", trip.Destination)
		assert.Equal(t, start, trip.StartDate)
		assert.Len(t, trip.Days, 1)
		// Caller-provided fields win over template content
		assert.Equal(t, "My own words", trip.Description)
	})

	t.Run("treats malformed template id as missing template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name:   "Our Sanya trip",
			PlanID: "not-a-hex-id",
		})

		assert.Nil(t, trip)
		assert.Equal(t, apperrors.ErrPlanTemplateNotFound, err)
	})

	t.Run("rejects non-contiguous day numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		trip, err := service.CreateTrip(context.Background(), testActor(), &models.CreateTripRequest{
			Name: "Our Sanya trip",
			Days: []models.PlanDayInput{{DayNumber: 2}},
		})

		assert.Nil(t, trip)
		assert.Equal(t, apperrors.ErrInvalidDayNumbers, err)
	})
}

func TestTripService_GetTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tripRepo, _ := newTripService(ctrl)

	tripID := primitive.NewObjectID()
	populated := &models.TripWithPlan{
		Trip:        models.Trip{ID: tripID, Name: "Our Sanya trip"},
		PlanDetails: &models.PlanTemplate{Name: "Sanya template"},
	}

	tripRepo.EXPECT().
		FindByIDPopulated(gomock.Any(), tripID).
		Return(populated, nil)

	result, err := service.GetTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, "Sanya template", result.PlanDetails.Name)
}

func TestTripService_ListUserTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tripRepo, _ := newTripService(ctrl)

	trips := []models.TripWithPlan{
		{Trip: models.Trip{Name: "A"}},
		{Trip: models.Trip{Name: "B"}},
	}

	tripRepo.EXPECT().
		FindByUser(gomock.Any(), "u-8f2d1c", int64(20), int64(20), true).
		Return(trips, nil)

	result, err := service.ListUserTrips(context.Background(), "u-8f2d1c", 2, 0)

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 20, result.Pagination.Skip)
}

func TestTripService_ListPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tripRepo, _ := newTripService(ctrl)

	filter := repository.PlanTemplateFilter{Destination: "Sanya"}

	tripRepo.EXPECT().
		FindPublished(gomock.Any(), filter, int64(10), int64(0), models.SortRating, true).
		Return([]models.TripWithPlan{{Trip: models.Trip{Name: "Published"}}}, nil)

	result, err := service.ListPublished(context.Background(), filter, 1, 10, models.SortRating)

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestTripService_UpdateTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("applies plain patch without a status lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		name := "Renamed"
		req := &models.UpdateTripRequest{Name: &name}

		tripRepo.EXPECT().
			Update(gomock.Any(), tripID, req).
			Return(true, nil)
		tripRepo.EXPECT().
			FindByIDPopulated(gomock.Any(), tripID).
			Return(&models.TripWithPlan{Trip: models.Trip{ID: tripID, Name: name}}, nil)

		result, err := service.UpdateTrip(context.Background(), tripID, req)

		require.NoError(t, err)
		assert.Equal(t, name, result.Name)
	})

	t.Run("allows a valid publish transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		next := models.PublishPendingReview
		req := &models.UpdateTripRequest{PublishStatus: &next}

		tripRepo.EXPECT().
			FindByID(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, PublishStatus: models.PublishDraft}, nil)
		tripRepo.EXPECT().
			Update(gomock.Any(), tripID, req).
			Return(true, nil)
		tripRepo.EXPECT().
			FindByIDPopulated(gomock.Any(), tripID).
			Return(&models.TripWithPlan{Trip: models.Trip{ID: tripID, PublishStatus: next}}, nil)

		result, err := service.UpdateTrip(context.Background(), tripID, req)

		require.NoError(t, err)
		assert.Equal(t, models.PublishPendingReview, result.PublishStatus)
	})

	t.Run("rejects an invalid publish transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		next := models.PublishPublished
		req := &models.UpdateTripRequest{PublishStatus: &next}

		tripRepo.EXPECT().
			FindByID(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, PublishStatus: models.PublishDraft}, nil)

		result, err := service.UpdateTrip(context.Background(), tripID, req)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrInvalidPublishTransition, err)
	})

	t.Run("restating the current publish status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		next := models.PublishDraft
		req := &models.UpdateTripRequest{PublishStatus: &next}

		tripRepo.EXPECT().
			FindByID(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, PublishStatus: models.PublishDraft}, nil)
		tripRepo.EXPECT().
			Update(gomock.Any(), tripID, req).
			Return(false, nil)
		tripRepo.EXPECT().
			FindByIDPopulated(gomock.Any(), tripID).
			Return(&models.TripWithPlan{Trip: models.Trip{ID: tripID, PublishStatus: models.PublishDraft}}, nil)

		result, err := service.UpdateTrip(context.Background(), tripID, req)

		require.NoError(t, err)
		assert.Equal(t, models.PublishDraft, result.PublishStatus)
	})

	t.Run("rejects invalid day numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		days := []models.PlanDayInput{{DayNumber: 1}, {DayNumber: 3}}
		req := &models.UpdateTripRequest{Days: &days}

		result, err := service.UpdateTrip(context.Background(), tripID, req)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrInvalidDayNumbers, err)
	})
}

func TestTripService_DeleteTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("creator can delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			FindByID(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, CreatorID: "u-8f2d1c"}, nil)
		tripRepo.EXPECT().
			Delete(gomock.Any(), tripID).
			Return(nil)

		err := service.DeleteTrip(context.Background(), tripID, "u-8f2d1c")

		assert.NoError(t, err)
	})

	t.Run("non-creator member cannot delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			FindByID(gomock.Any(), tripID).
			Return(&models.Trip{
				ID:        tripID,
				CreatorID: "u-8f2d1c",
				Members: []models.TripMember{
					{UserID: "u-41ac99", Role: models.RoleAdmin},
				},
			}, nil)

		err := service.DeleteTrip(context.Background(), tripID, "u-41ac99")

		assert.Equal(t, apperrors.ErrInsufficientPermissions, err)
	})
}

func TestTripService_AddMember(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("adds a new member with default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			FindMember(gomock.Any(), tripID, "u-41ac99").
			Return(nil, apperrors.ErrNotTripMember)
		tripRepo.EXPECT().
			AddMember(gomock.Any(), tripID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, member *models.TripMember) error {
				assert.Equal(t, models.RoleEdit, member.Role)
				return nil
			})

		member, err := service.AddMember(context.Background(), tripID, &models.AddMemberRequest{
			UserID: "u-41ac99",
			Name:   "Bob",
		})

		require.NoError(t, err)
		assert.Equal(t, models.RoleEdit, member.Role)
	})

	t.Run("rejects an existing member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			FindMember(gomock.Any(), tripID, "u-41ac99").
			Return(&models.TripMember{UserID: "u-41ac99", Role: models.RoleViewer}, nil)

		member, err := service.AddMember(context.Background(), tripID, &models.AddMemberRequest{
			UserID: "u-41ac99",
			Name:   "Bob",
		})

		assert.Nil(t, member)
		assert.Equal(t, apperrors.ErrAlreadyMember, err)
	})

	t.Run("owner role cannot be granted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTripService(ctrl)

		member, err := service.AddMember(context.Background(), tripID, &models.AddMemberRequest{
			UserID: "u-41ac99",
			Name:   "Bob",
			Role:   models.RoleOwner,
		})

		assert.Nil(t, member)
		assert.Equal(t, apperrors.ErrOwnerRoleReserved, err)
	})
}

func TestTripService_Appends(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("message carries the authenticated sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			AddMessage(gomock.Any(), tripID, gomock.Any()).
			Return(nil)

		message, err := service.AddMessage(context.Background(), tripID, "u-8f2d1c", &models.AddMessageRequest{
			Content: "见面在机场",
			Type:    "text",
		})

		require.NoError(t, err)
		assert.Equal(t, "u-8f2d1c", message.SenderID)
	})

	t.Run("ticket append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			AddTicket(gomock.Any(), tripID, gomock.Any()).
			Return(nil)

		ticket, err := service.AddTicket(context.Background(), tripID, &models.AddTicketRequest{
			Type:  "flight",
			Title: "Beijing to Sanya",
		})

		require.NoError(t, err)
		assert.Equal(t, "flight", ticket.Type)
	})

	t.Run("note append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			AddNote(gomock.Any(), tripID, gomock.Any()).
			Return(nil)

		note, err := service.AddNote(context.Background(), tripID, &models.AddNoteRequest{
			Content: "Bring sunscreen",
		})

		require.NoError(t, err)
		assert.Equal(t, "Bring sunscreen", note.Content)
	})

	t.Run("feed append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, tripRepo, _ := newTripService(ctrl)

		tripRepo.EXPECT().
			AddFeedEntry(gomock.Any(), tripID, gomock.Any()).
			Return(nil)

		entry, err := service.AddFeedEntry(context.Background(), tripID, &models.AddFeedEntryRequest{
			Content: "Alice updated the itinerary",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice updated the itinerary", entry.Content)
	})
}
