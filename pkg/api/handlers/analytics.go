package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/models"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles stats and leaderboard endpoints
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func parsePeriodParam(c echo.Context) (analytics.Period, error) {
	return analytics.ParsePeriod(c.QueryParam("period"))
}

// Leaderboard godoc
// @Summary Clipper leaderboard
// @Description Top clippers by approved earnings for the requested period
// @Tags Analytics
// @Produce json
// @Param period query string false "7d, 30d, 90d, month or all (default all)"
// @Param limit query int false "Number of entries (default 20, max 100)"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} models.ErrorResponse "Unknown period"
// @Router /leaderboard [get]
func (h *AnalyticsHandler) Leaderboard(c echo.Context) error {
	period, err := parsePeriodParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	board, err := h.service.Leaderboard(ctx, period, limit)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, board)
}

// ClipperStats godoc
// @Summary Clipper statistics
// @Description Views, earnings and approval rate for the authenticated clipper
// @Tags Analytics
// @Produce json
// @Param period query string false "7d, 30d, 90d, month or all (default all)"
// @Success 200 {object} models.ClipperStatsResponse
// @Security BearerAuth
// @Router /analytics/clipper [get]
func (h *AnalyticsHandler) ClipperStats(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	period, err := parsePeriodParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.service.ClipperStats(ctx, userID, period)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// MissionStats godoc
// @Summary Mission statistics
// @Tags Analytics
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} models.MissionStatsResponse
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Security BearerAuth
// @Router /missions/{id}/stats [get]
func (h *AnalyticsHandler) MissionStats(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Mission ID must be a positive integer",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.service.MissionStats(ctx, id)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// CreatorDashboard godoc
// @Summary Creator dashboard
// @Description Mission totals, pending reviews and wallet position for the authenticated creator
// @Tags Analytics
// @Produce json
// @Param period query string false "7d, 30d, 90d, month or all (default all)"
// @Success 200 {object} models.CreatorDashboardResponse
// @Security BearerAuth
// @Router /analytics/creator [get]
func (h *AnalyticsHandler) CreatorDashboard(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	period, err := parsePeriodParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_period",
			Message: err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dashboard, err := h.service.CreatorDashboard(ctx, userID, period)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}
