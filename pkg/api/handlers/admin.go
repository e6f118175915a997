package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/export"
	"github.com/cliptokk/api/pkg/models"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the admin back-office endpoints
type AdminHandler struct {
	db            *ent.Client
	analytics     *analytics.Service
	auditLogger   *audit.Service
	exportService *export.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *ent.Client, analyticsSvc *analytics.Service, auditLogger *audit.Service, exportService *export.Service) *AdminHandler {
	return &AdminHandler{
		db:            db,
		analytics:     analyticsSvc,
		auditLogger:   auditLogger,
		exportService: exportService,
	}
}

// Overview godoc
// @Summary Platform overview
// @Description Global counters: users, missions, pending reviews, views, payouts
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AdminOverviewResponse
// @Security BearerAuth
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	overview, err := h.analytics.AdminOverview(ctx)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}

// ListUsers godoc
// @Summary List users
// @Tags Admin
// @Produce json
// @Param role query string false "Filter by role (creator, clipper, admin)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.UserListResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	query := h.db.User.Query().Where(user.DeletedAtIsNil())
	if role := c.QueryParam("role"); role != "" {
		query = query.Where(user.RoleEQ(user.Role(role)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	users, err := query.
		Order(ent.Desc(user.FieldCreatedAt)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	data := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		resp := models.UserResponse{
			ID:            u.ID,
			Email:         u.Email,
			Pseudo:        u.Pseudo,
			Role:          string(u.Role),
			TotalEarnings: u.TotalEarnings,
			EmailVerified: u.EmailVerified,
			CreatedAt:     u.CreatedAt.Format(time.RFC3339),
		}
		if u.TiktokUsername != nil {
			resp.TiktokUsername = *u.TiktokUsername
		}
		if u.AvatarURL != nil {
			resp.AvatarURL = *u.AvatarURL
		}
		if u.PayoutPhone != nil {
			resp.PayoutPhone = *u.PayoutPhone
		}
		data = append(data, resp)
	}

	totalPages := (total + limit - 1) / limit
	return c.JSON(http.StatusOK, models.UserListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	})
}

// AuditLogs godoc
// @Summary Recent audit logs
// @Tags Admin
// @Produce json
// @Param user_id query int false "Only logs for this user"
// @Param limit query int false "Number of entries (default 50)"
// @Success 200 {array} models.AuditLogResponse
// @Security BearerAuth
// @Router /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		logs []*ent.AuditLog
		err  error
	)
	if userParam := c.QueryParam("user_id"); userParam != "" {
		userID, convErr := strconv.Atoi(userParam)
		if convErr != nil || userID <= 0 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_user_id",
				Message: "user_id must be a positive integer",
			})
		}
		logs, err = h.auditLogger.GetUserLogs(ctx, userID, limit)
	} else {
		logs, err = h.auditLogger.GetRecentLogs(ctx, limit)
	}
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	data := make([]models.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		entry := models.AuditLogResponse{
			ID:          l.ID,
			Action:      string(l.Action),
			Severity:    string(l.Severity),
			Description: l.Description,
			IPAddress:   l.IPAddress,
			CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		}
		if l.UserID != nil {
			entry.UserID = *l.UserID
		}
		data = append(data, entry)
	}

	return c.JSON(http.StatusOK, data)
}

// ExportSubmissions godoc
// @Summary Export submissions
// @Description Generate an XLSX of submissions and earnings for the period
// @Tags Admin
// @Produce json
// @Param period query string false "7d, 30d, 90d, month or all (default all)"
// @Success 200 {object} export.Result "Workbook stored, URL returned"
// @Security BearerAuth
// @Router /admin/exports/submissions [post]
func (h *AdminHandler) ExportSubmissions(c echo.Context) error {
	period, err := analytics.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
	}

	// Workbook generation can take a while on large tables
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	result, err := h.exportService.SubmissionsWorkbook(ctx, period)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
