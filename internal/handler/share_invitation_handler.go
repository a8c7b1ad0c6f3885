package handler

import (
	"errors"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/middleware"
	"tripcraft/internal/models"
	"tripcraft/internal/service"
	"tripcraft/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShareInvitationHandler handles HTTP requests for share invitation operations.
type ShareInvitationHandler struct {
	service service.ShareInvitationServicer
}

// NewShareInvitationHandler creates a new ShareInvitationHandler.
func NewShareInvitationHandler(service service.ShareInvitationServicer) *ShareInvitationHandler {
	return &ShareInvitationHandler{service: service}
}

// CreateInvitation godoc
// @Summary      Create share invitation
// @Description  Issue a code-addressed invitation to join a trip. Requires creator, owner or admin.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                          true  "Trip ID"
// @Param        body    body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201     {object}  response.Response{data=models.ShareInvitation}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/invitations [post]
func (h *ShareInvitationHandler) CreateInvitation(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	actor := middleware.GetActor(c)

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.service.CreateInvitation(c.Request.Context(), tripID, actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientPermissions) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, invitation)
}

// ListTripInvitations godoc
// @Summary      List trip invitations
// @Description  List all invitations for a trip, resolved ones included
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.InvitationListResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/invitations [get]
func (h *ShareInvitationHandler) ListTripInvitations(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	result, err := h.service.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// CancelInvitation godoc
// @Summary      Cancel invitation
// @Description  Remove an invitation from a trip. Sender, creator, owner or admin only.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Param        id      path      string  true  "Invitation ID"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/invitations/{id} [delete]
func (h *ShareInvitationHandler) CancelInvitation(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// A malformed id can never reference an existing invitation
		response.NotFound(c, "invitation not found")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), tripID, invitationID, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientPermissions) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "invitation cancelled"})
}

// GetInvitation godoc
// @Summary      Resolve invitation code
// @Description  Resolve a share code into the invitation's public view. No authentication required.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        code  path      string  true  "Invitation code"
// @Success      200   {object}  response.Response{data=models.ShareInvitationView}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /invitations/{code} [get]
func (h *ShareInvitationHandler) GetInvitation(c *gin.Context) {
	view, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, view)
}

// AcceptInvitation godoc
// @Summary      Accept invitation
// @Description  Accept a pending invitation and join the trip with the invited role
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        code  path      string  true  "Invitation code"
// @Success      200   {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{code}/accept [post]
func (h *ShareInvitationHandler) AcceptInvitation(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.ID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	result, err := h.service.Accept(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvitationExpired) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvitationResolved) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// RejectInvitation godoc
// @Summary      Reject invitation
// @Description  Decline a pending invitation. The invitation stays queryable with its rejected status.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        code  path      string  true  "Invitation code"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{code}/reject [post]
func (h *ShareInvitationHandler) RejectInvitation(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.ID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.Reject(c.Request.Context(), c.Param("code"), actor); err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvitationExpired) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvitationResolved) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "invitation rejected"})
}
