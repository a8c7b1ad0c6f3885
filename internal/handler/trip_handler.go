package handler

import (
	"errors"
	"strconv"
	"strings"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/middleware"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"
	"tripcraft/internal/service"
	"tripcraft/pkg/response"

	"github.com/gin-gonic/gin"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	service service.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service service.TripServicer) *TripHandler {
	return &TripHandler{service: service}
}

// CreateTrip godoc
// @Summary      Create trip
// @Description  Create a trip, optionally instantiated from a plan template. The caller becomes the owner.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTripRequest  true  "Trip details"
// @Success      201   {object}  response.Response{data=models.Trip}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.ID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trip, err := h.service.CreateTrip(c.Request.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDayNumbers) || errors.Is(err, apperrors.ErrOwnerRoleReserved) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, trip)
}

// ListMyTrips godoc
// @Summary      List my trips
// @Description  List trips the authenticated user created or belongs to
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20, max: 100)"
// @Success      200    {object}  response.Response{data=models.TripListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /trips [get]
func (h *TripHandler) ListMyTrips(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListUserTrips(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListPublished godoc
// @Summary      List published trips
// @Description  Browse the public marketplace of published trips
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        destination  query     string  false  "Destination substring filter"
// @Param        tags         query     string  false  "Comma-separated tag filter"
// @Param        page         query     int     false  "Page number (default: 1)"
// @Param        limit        query     int     false  "Items per page (default: 20, max: 100)"
// @Param        sort         query     string  false  "Sort key: recency or rating"
// @Success      200          {object}  response.Response{data=models.TripListResponse}
// @Failure      500          {object}  response.Response
// @Router       /trips/published [get]
func (h *TripHandler) ListPublished(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.PlanTemplateFilter{
		Destination: c.Query("destination"),
	}
	if tags := c.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	result, err := h.service.ListPublished(c.Request.Context(), filter, page, limit, c.Query("sort"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetTrip godoc
// @Summary      Get trip
// @Description  Retrieve a trip with its plan template populated. Requires membership.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.TripWithPlan}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	trip, err := h.service.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trip)
}

// UpdateTrip godoc
// @Summary      Update trip
// @Description  Apply a merge patch to a trip. Publish status changes must follow the publish lifecycle.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                    true  "Trip ID"
// @Param        body    body      models.UpdateTripRequest  true  "Fields to update"
// @Success      200     {object}  response.Response{data=models.TripWithPlan}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trip, err := h.service.UpdateTrip(c.Request.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDayNumbers) || errors.Is(err, apperrors.ErrInvalidPublishTransition) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trip)
}

// DeleteTrip godoc
// @Summary      Delete trip
// @Description  Delete a trip. Only the creator may delete.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	userID := middleware.GetUserID(c)

	if err := h.service.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
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

	response.Success(c, gin.H{"message": "trip deleted"})
}

// AddMember godoc
// @Summary      Add trip member
// @Description  Add a collaborator to a trip. The owner role cannot be granted.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                   true  "Trip ID"
// @Param        body    body      models.AddMemberRequest  true  "Member details"
// @Success      201     {object}  response.Response{data=models.TripMember}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/members [post]
func (h *TripHandler) AddMember(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrOwnerRoleReserved) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, member)
}

// AddMessage godoc
// @Summary      Append trip message
// @Description  Append a chat message to the trip, attributed to the caller
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                    true  "Trip ID"
// @Param        body    body      models.AddMessageRequest  true  "Message content"
// @Success      201     {object}  response.Response{data=models.TripMessage}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/messages [post]
func (h *TripHandler) AddMessage(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.service.AddMessage(c.Request.Context(), tripID, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, message)
}

// AddTicket godoc
// @Summary      Append trip ticket
// @Description  Append a booking record to the trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                   true  "Trip ID"
// @Param        body    body      models.AddTicketRequest  true  "Ticket details"
// @Success      201     {object}  response.Response{data=models.TripTicket}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tickets [post]
func (h *TripHandler) AddTicket(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.AddTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := h.service.AddTicket(c.Request.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, ticket)
}

// AddNote godoc
// @Summary      Append trip note
// @Description  Append a free-text note to the trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                 true  "Trip ID"
// @Param        body    body      models.AddNoteRequest  true  "Note content"
// @Success      201     {object}  response.Response{data=models.TripNote}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/notes [post]
func (h *TripHandler) AddNote(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	note, err := h.service.AddNote(c.Request.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, note)
}

// AddFeedEntry godoc
// @Summary      Append trip feed entry
// @Description  Append an activity-feed entry to the trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                      true  "Trip ID"
// @Param        body    body      models.AddFeedEntryRequest  true  "Feed entry content"
// @Success      201     {object}  response.Response{data=models.TripFeedEntry}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/feeds [post]
func (h *TripHandler) AddFeedEntry(c *gin.Context) {
	tripID, exists := middleware.GetTripID(c)
	if !exists {
		response.BadRequest(c, "trip id not found in context")
		return
	}

	var req models.AddFeedEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.AddFeedEntry(c.Request.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, entry)
}
