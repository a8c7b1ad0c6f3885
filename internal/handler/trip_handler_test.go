package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/middleware"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"
	"tripcraft/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setActor is a helper middleware to set the caller profile in context
func setActor(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, actor.ID)
		c.Set(middleware.UserNameKey, actor.Name)
		c.Set(middleware.UserAvatarKey, actor.AvatarURL)
		c.Next()
	}
}

// setTripID is a helper middleware to set the trip ID in context
func setTripID(tripID primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TripIDKey, tripID)
		c.Next()
	}
}

func aliceActor() models.Actor {
	return models.Actor{ID: "u-8f2d1c", Name: "Alice", AvatarURL: "https://cdn.example.com/a.png"}
}

func TestNewTripHandler(t *testing.T) {
	mockService := &mocks.MockTripService{}
	handler := NewTripHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestTripHandler_CreateTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	tests := []struct {
		name           string
		authed         bool
		body           interface{}
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful create",
			authed: true,
			body:   models.CreateTripRequest{Name: "Our Sanya trip"},
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
					return &models.Trip{
						ID:        tripID,
						CreatorID: actor.ID,
						Name:      req.Name,
						Members: []models.TripMember{
							{UserID: actor.ID, Name: actor.Name, Role: models.RoleOwner},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "u-8f2d1c", data["creator_id"])
				members := data["members"].([]interface{})
				assert.Len(t, members, 1)
			},
		},
		{
			name:           "unauthenticated",
			authed:         false,
			body:           models.CreateTripRequest{Name: "Our Sanya trip"},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON body",
			authed:         true,
			body:           "not json",
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "referenced template missing",
			authed: true,
			body:   models.CreateTripRequest{Name: "Our Sanya trip", PlanID: primitive.NewObjectID().Hex()},
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
					return nil, apperrors.ErrPlanTemplateNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "owner role requested for a member",
			authed: true,
			body:   models.CreateTripRequest{Name: "Our Sanya trip"},
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
					return nil, apperrors.ErrOwnerRoleReserved
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			authed: true,
			body:   models.CreateTripRequest{Name: "Our Sanya trip"},
			mockSetup: func(m *mocks.MockTripService) {
				m.CreateTripFunc = func(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			handler := NewTripHandler(mockService)

			router := gin.New()
			if tt.authed {
				router.POST("/trips", setActor(aliceActor()), handler.CreateTrip)
			} else {
				router.POST("/trips", handler.CreateTrip)
			}

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTripHandler_ListMyTrips(t *testing.T) {
	t.Run("returns the caller's trips", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			ListUserTripsFunc: func(ctx context.Context, userID string, page, limit int) (*models.TripListResponse, error) {
				assert.Equal(t, "u-8f2d1c", userID)
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return &models.TripListResponse{Items: []models.TripWithPlan{}}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.GET("/trips", setActor(aliceActor()), handler.ListMyTrips)

		req := httptest.NewRequest(http.MethodGet, "/trips?page=2&limit=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewTripHandler(&mocks.MockTripService{})

		router := gin.New()
		router.GET("/trips", handler.ListMyTrips)

		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTripHandler_ListPublished(t *testing.T) {
	t.Run("public browse with filters", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			ListPublishedFunc: func(ctx context.Context, filter repository.PlanTemplateFilter, page, limit int, sortBy string) (*models.TripListResponse, error) {
				assert.Equal(t, "Sanya", filter.Destination)
				assert.Equal(t, []string{"beach"}, filter.Tags)
				assert.Equal(t, "recency", sortBy)
				return &models.TripListResponse{Items: []models.TripWithPlan{}}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.GET("/trips/published", handler.ListPublished)

		req := httptest.NewRequest(http.MethodGet, "/trips/published?destination=Sanya&tags=beach&sort=recency", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTripHandler_GetTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("successful get with populated template", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			GetTripFunc: func(ctx context.Context, id primitive.ObjectID) (*models.TripWithPlan, error) {
				return &models.TripWithPlan{
					Trip:        models.Trip{ID: id, Name: "Our Sanya trip"},
					PlanDetails: &models.PlanTemplate{Name: "Sanya template"},
				}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.GET("/trips/:tripId", setActor(aliceActor()), setTripID(tripID), handler.GetTrip)

		req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "Sanya template", data["plan_details"].(map[string]interface{})["name"])
	})

	t.Run("trip deleted between authz and read", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			GetTripFunc: func(ctx context.Context, id primitive.ObjectID) (*models.TripWithPlan, error) {
				return nil, apperrors.ErrTripNotFound
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.GET("/trips/:tripId", setActor(aliceActor()), setTripID(tripID), handler.GetTrip)

		req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing trip id in context", func(t *testing.T) {
		handler := NewTripHandler(&mocks.MockTripService{})

		router := gin.New()
		router.GET("/trips/:tripId", handler.GetTrip)

		req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTripHandler_UpdateTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
	}{
		{
			name: "successful update",
			body: gin.H{"name": "Renamed"},
			mockSetup: func(m *mocks.MockTripService) {
				m.UpdateTripFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error) {
					return &models.TripWithPlan{Trip: models.Trip{ID: id, Name: *req.Name}}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown publish status rejected by binding",
			body:           gin.H{"publish_status": "live"},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid publish transition",
			body: gin.H{"publish_status": "published"},
			mockSetup: func(m *mocks.MockTripService) {
				m.UpdateTripFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error) {
					return nil, apperrors.ErrInvalidPublishTransition
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "trip not found",
			body: gin.H{"name": "Renamed"},
			mockSetup: func(m *mocks.MockTripService) {
				m.UpdateTripFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateTripRequest) (*models.TripWithPlan, error) {
					return nil, apperrors.ErrTripNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			handler := NewTripHandler(mockService)

			router := gin.New()
			router.PUT("/trips/:tripId", setActor(aliceActor()), setTripID(tripID), handler.UpdateTrip)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPut, "/trips/"+tripID.Hex(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTripHandler_DeleteTrip(t *testing.T) {
	tripID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
	}{
		{
			name: "creator deletes the trip",
			mockSetup: func(m *mocks.MockTripService) {
				m.DeleteTripFunc = func(ctx context.Context, id primitive.ObjectID, userID string) error {
					assert.Equal(t, "u-8f2d1c", userID)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non-creator is forbidden",
			mockSetup: func(m *mocks.MockTripService) {
				m.DeleteTripFunc = func(ctx context.Context, id primitive.ObjectID, userID string) error {
					return apperrors.ErrInsufficientPermissions
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "trip not found",
			mockSetup: func(m *mocks.MockTripService) {
				m.DeleteTripFunc = func(ctx context.Context, id primitive.ObjectID, userID string) error {
					return apperrors.ErrTripNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			handler := NewTripHandler(mockService)

			router := gin.New()
			router.DELETE("/trips/:tripId", setActor(aliceActor()), setTripID(tripID), handler.DeleteTrip)

			req := httptest.NewRequest(http.MethodDelete, "/trips/"+tripID.Hex(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTripHandler_AddMember(t *testing.T) {
	tripID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockTripService)
		expectedStatus int
	}{
		{
			name: "successful add",
			body: models.AddMemberRequest{UserID: "u-41ac99", Name: "Bob"},
			mockSetup: func(m *mocks.MockTripService) {
				m.AddMemberFunc = func(ctx context.Context, id primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error) {
					return &models.TripMember{UserID: req.UserID, Name: req.Name, Role: models.RoleEdit}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "already a member",
			body: models.AddMemberRequest{UserID: "u-41ac99", Name: "Bob"},
			mockSetup: func(m *mocks.MockTripService) {
				m.AddMemberFunc = func(ctx context.Context, id primitive.ObjectID, req *models.AddMemberRequest) (*models.TripMember, error) {
					return nil, apperrors.ErrAlreadyMember
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "owner role rejected by binding",
			body:           models.AddMemberRequest{UserID: "u-41ac99", Name: "Bob", Role: "owner"},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing user id",
			body:           models.AddMemberRequest{Name: "Bob"},
			mockSetup:      func(m *mocks.MockTripService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTripService{}
			tt.mockSetup(mockService)

			handler := NewTripHandler(mockService)

			router := gin.New()
			router.POST("/trips/:tripId/members", setActor(aliceActor()), setTripID(tripID), handler.AddMember)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/members", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTripHandler_Appends(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("message is attributed to the caller", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			AddMessageFunc: func(ctx context.Context, id primitive.ObjectID, senderID string, req *models.AddMessageRequest) (*models.TripMessage, error) {
				assert.Equal(t, "u-8f2d1c", senderID)
				return &models.TripMessage{SenderID: senderID, Content: req.Content, Type: req.Type}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.POST("/trips/:tripId/messages", setActor(aliceActor()), setTripID(tripID), handler.AddMessage)

		body, _ := json.Marshal(models.AddMessageRequest{Content: "hello", Type: "text"})
		req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/messages", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ticket append", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			AddTicketFunc: func(ctx context.Context, id primitive.ObjectID, req *models.AddTicketRequest) (*models.TripTicket, error) {
				return &models.TripTicket{Type: req.Type, Title: req.Title}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.POST("/trips/:tripId/tickets", setActor(aliceActor()), setTripID(tripID), handler.AddTicket)

		body, _ := json.Marshal(models.AddTicketRequest{Type: "flight", Title: "Beijing to Sanya"})
		req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/tickets", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("note requires content", func(t *testing.T) {
		handler := NewTripHandler(&mocks.MockTripService{})

		router := gin.New()
		router.POST("/trips/:tripId/notes", setActor(aliceActor()), setTripID(tripID), handler.AddNote)

		body, _ := json.Marshal(models.AddNoteRequest{})
		req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/notes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("feed append", func(t *testing.T) {
		mockService := &mocks.MockTripService{
			AddFeedEntryFunc: func(ctx context.Context, id primitive.ObjectID, req *models.AddFeedEntryRequest) (*models.TripFeedEntry, error) {
				return &models.TripFeedEntry{Content: req.Content}, nil
			},
		}

		handler := NewTripHandler(mockService)

		router := gin.New()
		router.POST("/trips/:tripId/feeds", setActor(aliceActor()), setTripID(tripID), handler.AddFeedEntry)

		body, _ := json.Marshal(models.AddFeedEntryRequest{Content: "Alice updated the itinerary"})
		req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/feeds", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
