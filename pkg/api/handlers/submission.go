package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/models"
	"github.com/cliptokk/api/pkg/submissions"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SubmissionHandler handles clip submission endpoints
type SubmissionHandler struct {
	service     *submissions.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service *submissions.Service, auditLogger *audit.Service, m *metrics.Metrics) *SubmissionHandler {
	return &SubmissionHandler{
		service:     service,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Submit a clip
// @Description Submit a TikTok clip to a mission. One submission per mission per clipper.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body models.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} models.SubmissionResponse "Submission created"
// @Failure 400 {object} models.ErrorResponse "Invalid request or URL"
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Failure 409 {object} models.AlreadySubmittedResponse "Already submitted to this mission"
// @Security BearerAuth
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.CreateSubmissionRequest
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

	sub, err := h.service.Create(ctx, userID, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogSubmissionCreate(context.Background(), userID, sub.ID, ipAddress, userAgent)
	h.metrics.RecordSubmissionCreated()

	return c.JSON(http.StatusCreated, sub)
}

// Get returns one submission by ID
func (h *SubmissionHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Submission ID must be a positive integer",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sub, err := h.service.GetByID(ctx, id)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, sub)
}

// ListMine returns the authenticated clipper's submissions
func (h *SubmissionHandler) ListMine(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ListByMission returns submissions to a given mission
func (h *SubmissionHandler) ListByMission(c echo.Context) error {
	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || missionID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Mission ID must be a positive integer",
		})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.ListByMission(ctx, missionID, page, limit)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
