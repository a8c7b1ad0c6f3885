package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewShareInvitationHandler(t *testing.T) {
	mockService := &mocks.MockShareInvitationService{}
	handler := NewShareInvitationHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestShareInvitationHandler_CreateInvitation(t *testing.T) {
	tripID := primitive.NewObjectID()
	invitationID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockShareInvitationService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful create",
			body: models.CreateInvitationRequest{Role: "viewer", RecipientEmail: "bob@example.com"},
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CreateInvitationFunc = func(ctx context.Context, tID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
					assert.Equal(t, tripID, tID)
					assert.Equal(t, "u-8f2d1c", actor.ID)
					return &models.ShareInvitation{
						ID:           invitationID,
						TripID:       tID,
						Code:         "hXp3vQ9kTmAz",
						SenderUserID: actor.ID,
						Role:         req.Role,
						Status:       models.InvitationPending,
						ExpiresAt:    time.Now().UTC().AddDate(0, 0, 7),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "hXp3vQ9kTmAz", data["invitation_code"])
				assert.Equal(t, "pending", data["status"])
			},
		},
		{
			name:           "owner role rejected by binding",
			body:           models.CreateInvitationRequest{Role: "owner"},
			mockSetup:      func(m *mocks.MockShareInvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed recipient email",
			body:           models.CreateInvitationRequest{RecipientEmail: "not-an-email"},
			mockSetup:      func(m *mocks.MockShareInvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "caller may not invite",
			body: models.CreateInvitationRequest{},
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CreateInvitationFunc = func(ctx context.Context, tID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
					return nil, apperrors.ErrInsufficientPermissions
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "trip not found",
			body: models.CreateInvitationRequest{},
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CreateInvitationFunc = func(ctx context.Context, tID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
					return nil, apperrors.ErrTripNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error",
			body: models.CreateInvitationRequest{},
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CreateInvitationFunc = func(ctx context.Context, tID primitive.ObjectID, actor models.Actor, req *models.CreateInvitationRequest) (*models.ShareInvitation, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockShareInvitationService{}
			tt.mockSetup(mockService)

			handler := NewShareInvitationHandler(mockService)

			router := gin.New()
			router.POST("/trips/:tripId/invitations", setActor(aliceActor()), setTripID(tripID), handler.CreateInvitation)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.Hex()+"/invitations", bytes.NewBuffer(body))
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

func TestShareInvitationHandler_ListTripInvitations(t *testing.T) {
	tripID := primitive.NewObjectID()

	t.Run("lists all invitations including resolved", func(t *testing.T) {
		mockService := &mocks.MockShareInvitationService{
			ListByTripFunc: func(ctx context.Context, tID primitive.ObjectID) (*models.InvitationListResponse, error) {
				return &models.InvitationListResponse{
					Items: []models.ShareInvitation{
						{TripID: tID, Status: models.InvitationPending},
						{TripID: tID, Status: models.InvitationRejected},
					},
				}, nil
			},
		}

		handler := NewShareInvitationHandler(mockService)

		router := gin.New()
		router.GET("/trips/:tripId/invitations", setActor(aliceActor()), setTripID(tripID), handler.ListTripInvitations)

		req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.Hex()+"/invitations", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		data := resp["data"].(map[string]interface{})
		assert.Len(t, data["items"], 2)
	})
}

func TestShareInvitationHandler_CancelInvitation(t *testing.T) {
	tripID := primitive.NewObjectID()
	invitationID := primitive.NewObjectID()

	tests := []struct {
		name           string
		path           string
		mockSetup      func(*mocks.MockShareInvitationService)
		expectedStatus int
	}{
		{
			name: "successful cancel",
			path: "/trips/" + tripID.Hex() + "/invitations/" + invitationID.Hex(),
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CancelFunc = func(ctx context.Context, tID, iID primitive.ObjectID, userID string) error {
					assert.Equal(t, invitationID, iID)
					assert.Equal(t, "u-8f2d1c", userID)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed invitation id reads as missing",
			path:           "/trips/" + tripID.Hex() + "/invitations/zzz",
			mockSetup:      func(m *mocks.MockShareInvitationService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "invitation not found",
			path: "/trips/" + tripID.Hex() + "/invitations/" + invitationID.Hex(),
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CancelFunc = func(ctx context.Context, tID, iID primitive.ObjectID, userID string) error {
					return apperrors.ErrInvitationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "caller may not cancel",
			path: "/trips/" + tripID.Hex() + "/invitations/" + invitationID.Hex(),
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.CancelFunc = func(ctx context.Context, tID, iID primitive.ObjectID, userID string) error {
					return apperrors.ErrInsufficientPermissions
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockShareInvitationService{}
			tt.mockSetup(mockService)

			handler := NewShareInvitationHandler(mockService)

			router := gin.New()
			router.DELETE("/trips/:tripId/invitations/:id", setActor(aliceActor()), setTripID(tripID), handler.CancelInvitation)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestShareInvitationHandler_GetInvitation(t *testing.T) {
	t.Run("resolves a code without authentication", func(t *testing.T) {
		mockService := &mocks.MockShareInvitationService{
			GetByCodeFunc: func(ctx context.Context, code string) (*models.ShareInvitationView, error) {
				assert.Equal(t, "hXp3vQ9kTmAz", code)
				return &models.ShareInvitationView{
					Code:       code,
					SenderName: "Alice",
					Status:     models.InvitationPending,
					IsExpired:  false,
					ShareLink:  "/invite/" + code,
				}, nil
			},
		}

		handler := NewShareInvitationHandler(mockService)

		router := gin.New()
		router.GET("/invitations/:code", handler.GetInvitation)

		req := httptest.NewRequest(http.MethodGet, "/invitations/hXp3vQ9kTmAz", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, false, data["is_expired"])
		assert.Equal(t, "/invite/hXp3vQ9kTmAz", data["share_link"])
	})

	t.Run("unknown code", func(t *testing.T) {
		mockService := &mocks.MockShareInvitationService{
			GetByCodeFunc: func(ctx context.Context, code string) (*models.ShareInvitationView, error) {
				return nil, apperrors.ErrInvitationNotFound
			},
		}

		handler := NewShareInvitationHandler(mockService)

		router := gin.New()
		router.GET("/invitations/:code", handler.GetInvitation)

		req := httptest.NewRequest(http.MethodGet, "/invitations/unknown", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShareInvitationHandler_AcceptInvitation(t *testing.T) {
	tripID := primitive.NewObjectID()

	tests := []struct {
		name           string
		authed         bool
		mockSetup      func(*mocks.MockShareInvitationService)
		expectedStatus int
	}{
		{
			name:   "successful accept",
			authed: true,
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.AcceptFunc = func(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
					assert.Equal(t, "u-8f2d1c", actor.ID)
					return &models.AcceptInvitationResponse{
						Message: "invitation accepted",
						TripID:  tripID.Hex(),
						Role:    models.RoleEdit,
						Status:  models.InvitationAccepted,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthenticated",
			authed:         false,
			mockSetup:      func(m *mocks.MockShareInvitationService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired invitation",
			authed: true,
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.AcceptFunc = func(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
					return nil, apperrors.ErrInvitationExpired
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "already resolved",
			authed: true,
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.AcceptFunc = func(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
					return nil, apperrors.ErrInvitationResolved
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "unknown code",
			authed: true,
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.AcceptFunc = func(ctx context.Context, code string, actor models.Actor) (*models.AcceptInvitationResponse, error) {
					return nil, apperrors.ErrInvitationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockShareInvitationService{}
			tt.mockSetup(mockService)

			handler := NewShareInvitationHandler(mockService)

			router := gin.New()
			if tt.authed {
				router.POST("/invitations/:code/accept", setActor(aliceActor()), handler.AcceptInvitation)
			} else {
				router.POST("/invitations/:code/accept", handler.AcceptInvitation)
			}

			req := httptest.NewRequest(http.MethodPost, "/invitations/hXp3vQ9kTmAz/accept", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestShareInvitationHandler_RejectInvitation(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockShareInvitationService)
		expectedStatus int
	}{
		{
			name: "successful reject",
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.RejectFunc = func(ctx context.Context, code string, actor models.Actor) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "expired invitation",
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.RejectFunc = func(ctx context.Context, code string, actor models.Actor) error {
					return apperrors.ErrInvitationExpired
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "already resolved",
			mockSetup: func(m *mocks.MockShareInvitationService) {
				m.RejectFunc = func(ctx context.Context, code string, actor models.Actor) error {
					return apperrors.ErrInvitationResolved
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockShareInvitationService{}
			tt.mockSetup(mockService)

			handler := NewShareInvitationHandler(mockService)

			router := gin.New()
			router.POST("/invitations/:code/reject", setActor(aliceActor()), handler.RejectInvitation)

			req := httptest.NewRequest(http.MethodPost, "/invitations/hXp3vQ9kTmAz/reject", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
