// Package handler contains HTTP request handlers.
package handler

import (
	"errors"
	"strconv"
	"strings"

	apperrors "tripcraft/internal/errors"
	"tripcraft/internal/models"
	"tripcraft/internal/repository"
	"tripcraft/internal/service"
	"tripcraft/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanTemplateHandler handles HTTP requests for plan template operations.
type PlanTemplateHandler struct {
	service service.PlanTemplateServicer
}

// NewPlanTemplateHandler creates a new PlanTemplateHandler.
func NewPlanTemplateHandler(service service.PlanTemplateServicer) *PlanTemplateHandler {
	return &PlanTemplateHandler{service: service}
}

// CoverUploadRequest is the payload for requesting a cover upload URL.
type CoverUploadRequest struct {
	ContentType string `json:"contentType" binding:"omitempty,max=100" example:"image/png"`
}

// CreatePlan godoc
// @Summary      Create plan template
// @Description  Create a reusable trip plan template
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreatePlanTemplateRequest  true  "Plan template details"
// @Success      201   {object}  response.Response{data=models.PlanTemplate}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /plans [post]
func (h *PlanTemplateHandler) CreatePlan(c *gin.Context) {
	var req models.CreatePlanTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	plan, err := h.service.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDayNumbers) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, plan)
}

// ListPlans godoc
// @Summary      List plan templates
// @Description  Browse plan templates with optional destination and tag filters
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        destination  query     string  false  "Destination substring filter"
// @Param        tags         query     string  false  "Comma-separated tag filter"
// @Param        page         query     int     false  "Page number (default: 1)"
// @Param        limit        query     int     false  "Items per page (default: 20, max: 100)"
// @Param        sort         query     string  false  "Sort key: recency or rating"
// @Success      200          {object}  response.Response{data=models.PlanTemplateListResponse}
// @Failure      500          {object}  response.Response
// @Router       /plans [get]
func (h *PlanTemplateHandler) ListPlans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.PlanTemplateFilter{
		Destination: c.Query("destination"),
	}
	if tags := c.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	result, err := h.service.ListPlans(c.Request.Context(), filter, page, limit, c.Query("sort"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetPlan godoc
// @Summary      Get plan template
// @Description  Retrieve a single plan template by id
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id  path      string  true  "Plan template ID"
// @Success      200 {object}  response.Response{data=models.PlanTemplate}
// @Failure      404 {object}  response.Response
// @Failure      500 {object}  response.Response
// @Router       /plans/{id} [get]
func (h *PlanTemplateHandler) GetPlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// A malformed id can never reference an existing plan
		response.NotFound(c, "plan template not found")
		return
	}

	plan, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, plan)
}

// UpdatePlan godoc
// @Summary      Update plan template
// @Description  Apply a merge patch to a plan template
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Plan template ID"
// @Param        body  body      models.UpdatePlanTemplateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.PlanTemplate}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /plans/{id} [put]
func (h *PlanTemplateHandler) UpdatePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, "plan template not found")
		return
	}

	var req models.UpdatePlanTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	plan, err := h.service.UpdatePlan(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDayNumbers) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, plan)
}

// DeletePlan godoc
// @Summary      Delete plan template
// @Description  Delete a plan template that no trip references
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id  path      string  true  "Plan template ID"
// @Success      200 {object}  response.Response
// @Failure      401 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Failure      409 {object}  response.Response
// @Failure      500 {object}  response.Response
// @Security     BearerAuth
// @Router       /plans/{id} [delete]
func (h *PlanTemplateHandler) DeletePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, "plan template not found")
		return
	}

	if err := h.service.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPlanTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrPlanTemplateInUse) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "plan template deleted"})
}

// CoverUploadURL godoc
// @Summary      Request cover upload URL
// @Description  Issue a pre-signed URL for uploading the template's cover image
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      string              true   "Plan template ID"
// @Param        body  body      CoverUploadRequest  false  "Upload content type"
// @Success      200   {object}  response.Response{data=models.CoverUploadResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /plans/{id}/cover-upload-url [post]
func (h *PlanTemplateHandler) CoverUploadURL(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.NotFound(c, "plan template not found")
		return
	}

	var req CoverUploadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.service.CoverUploadURL(c.Request.Context(), id, req.ContentType)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
