package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/email"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/milestones"
	"github.com/cliptokk/api/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// MilestoneHandler handles palier declaration and review endpoints
type MilestoneHandler struct {
	db           *ent.Client
	service      *milestones.Service
	auditLogger  *audit.Service
	emailService *email.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewMilestoneHandler creates a new milestone handler
func NewMilestoneHandler(db *ent.Client, service *milestones.Service, auditLogger *audit.Service, emailService *email.Service, m *metrics.Metrics) *MilestoneHandler {
	return &MilestoneHandler{
		db:           db,
		service:      service,
		auditLogger:  auditLogger,
		emailService: emailService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// Declare godoc
// @Summary Declare a view milestone
// @Description Declare that a submission reached a palier (10000, 100000 or 1000000 views)
// @Tags Milestones
// @Accept json
// @Produce json
// @Param request body models.DeclareMilestoneRequest true "Milestone declaration"
// @Success 201 {object} models.MilestoneResponse "Declaration recorded, pending review"
// @Failure 400 {object} models.ErrorResponse "Invalid palier or views below palier"
// @Failure 404 {object} models.ErrorResponse "No submission to this mission"
// @Failure 409 {object} models.ErrorResponse "Palier already declared"
// @Security BearerAuth
// @Router /milestones [post]
func (h *MilestoneHandler) Declare(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.DeclareMilestoneRequest
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

	ms, err := h.service.Declare(ctx, userID, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	h.metrics.RecordMilestoneDeclared()

	return c.JSON(http.StatusCreated, ms)
}

// ListMine returns the authenticated clipper's milestone declarations
func (h *MilestoneHandler) ListMine(c echo.Context) error {
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

// ListPending returns pending declarations for admin review, oldest first
func (h *MilestoneHandler) ListPending(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.ListPending(ctx, page, limit)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Approve godoc
// @Summary Approve a milestone declaration
// @Description Credit the clipper and record mission spend. First admin decision wins.
// @Tags Milestones
// @Produce json
// @Param id path int true "Milestone ID"
// @Success 200 {object} models.MilestoneResponse "Milestone approved"
// @Failure 404 {object} models.ErrorResponse "Milestone not found"
// @Failure 409 {object} models.ErrorResponse "Already decided by another admin"
// @Security BearerAuth
// @Router /admin/milestones/{id}/approve [post]
func (h *MilestoneHandler) Approve(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Milestone ID must be a positive integer",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.Approve(ctx, adminID, id)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogMilestoneDecision(context.Background(), adminID, id, true, result.Earnings, ipAddress, userAgent)
	h.metrics.RecordMilestoneDecision(true, result.Earnings)
	go h.notifyClipper(result.Milestone, true, result.Earnings, "")

	return c.JSON(http.StatusOK, result.Milestone)
}

// Reject godoc
// @Summary Reject a milestone declaration
// @Tags Milestones
// @Accept json
// @Produce json
// @Param id path int true "Milestone ID"
// @Param request body models.RejectMilestoneRequest false "Rejection reason"
// @Success 200 {object} models.MilestoneResponse "Milestone rejected"
// @Failure 404 {object} models.ErrorResponse "Milestone not found"
// @Failure 409 {object} models.ErrorResponse "Already decided by another admin"
// @Security BearerAuth
// @Router /admin/milestones/{id}/reject [post]
func (h *MilestoneHandler) Reject(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Milestone ID must be a positive integer",
		})
	}

	var req models.RejectMilestoneRequest
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

	ms, err := h.service.Reject(ctx, adminID, id, req.Reason)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogMilestoneDecision(context.Background(), adminID, id, false, 0, ipAddress, userAgent)
	h.metrics.RecordMilestoneDecision(false, 0)
	go h.notifyClipper(*ms, false, 0, req.Reason)

	return c.JSON(http.StatusOK, ms)
}

// notifyClipper emails the declaration outcome. Runs detached from the request.
func (h *MilestoneHandler) notifyClipper(ms models.MilestoneResponse, approved bool, amount float64, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, ms.UserID)
	if err != nil {
		return
	}

	if approved {
		_ = h.emailService.SendMilestoneApprovedEmail(u.Email, u.Pseudo, ms.MissionTitle, ms.Palier, amount)
		return
	}
	_ = h.emailService.SendMilestoneRejectedEmail(u.Email, u.Pseudo, ms.MissionTitle, reason)
}
