package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/missions"
	"github.com/cliptokk/api/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// MissionHandler handles mission endpoints
type MissionHandler struct {
	service     *missions.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(service *missions.Service, auditLogger *audit.Service, m *metrics.Metrics) *MissionHandler {
	return &MissionHandler{
		service:     service,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Create a mission
// @Description Publish a clipping mission with a budget and a per-1000-views rate
// @Tags Missions
// @Accept json
// @Produce json
// @Param request body models.CreateMissionRequest true "Mission data"
// @Success 201 {object} models.MissionResponse "Mission created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Only creators can publish missions"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /missions [post]
func (h *MissionHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.CreateMissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mission, err := h.service.Create(ctx, userID, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogMissionCreate(context.Background(), userID, mission.ID, ipAddress, userAgent)
	h.metrics.RecordMissionCreated()

	return c.JSON(http.StatusCreated, mission)
}

// Get godoc
// @Summary Get a mission
// @Tags Missions
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} models.MissionResponse
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Router /missions/{id} [get]
func (h *MissionHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Mission ID must be a positive integer",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mission, err := h.service.GetByID(ctx, id)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, mission)
}

// List godoc
// @Summary List missions
// @Description Browse missions with optional status and category filters
// @Tags Missions
// @Produce json
// @Param status query string false "Filter by status (active, paused, completed)"
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.MissionListResponse
// @Router /missions [get]
func (h *MissionHandler) List(c echo.Context) error {
	var req models.MissionSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.List(ctx, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ListMine returns the authenticated creator's missions
func (h *MissionHandler) ListMine(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.ListByCreator(ctx, userID)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Update godoc
// @Summary Update a mission
// @Description Update mission fields or move it between active and paused
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Param request body models.UpdateMissionRequest true "Fields to update"
// @Success 200 {object} models.MissionResponse
// @Failure 403 {object} models.ErrorResponse "Not the mission owner"
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Failure 409 {object} models.ErrorResponse "Completed missions cannot change"
// @Security BearerAuth
// @Router /missions/{id} [patch]
func (h *MissionHandler) Update(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Mission ID must be a positive integer",
		})
	}

	var req models.UpdateMissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mission, err := h.service.Update(ctx, userID, id, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, mission)
}
