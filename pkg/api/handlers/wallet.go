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
	"github.com/cliptokk/api/pkg/wallet"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	service     *wallet.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(service *wallet.Service, auditLogger *audit.Service, m *metrics.Metrics) *WalletHandler {
	return &WalletHandler{
		service:     service,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Balance godoc
// @Summary Wallet balance
// @Description Available, pending, and paid-out buckets for the authenticated user
// @Tags Wallet
// @Produce json
// @Success 200 {object} models.WalletBalanceResponse
// @Security BearerAuth
// @Router /wallet/balance [get]
func (h *WalletHandler) Balance(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	balance, err := h.service.Balance(ctx, userID)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}

// History godoc
// @Summary Wallet transaction history
// @Tags Wallet
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.WalletHistoryResponse
// @Security BearerAuth
// @Router /wallet/history [get]
func (h *WalletHandler) History(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	history, err := h.service.History(ctx, userID, page, limit)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, history)
}

// Recharge godoc
// @Summary Recharge wallet
// @Description Create a Stripe Checkout session to fund the wallet
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body models.RechargeRequest true "Amount in EUR"
// @Success 200 {object} models.RechargeResponse "Checkout session created"
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Security BearerAuth
// @Router /wallet/recharge [post]
func (h *WalletHandler) Recharge(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.RechargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	// Stripe round-trips live inside this call
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	session, err := h.service.CreateRecharge(ctx, userID, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	h.metrics.RecordWalletRecharge()

	return c.JSON(http.StatusOK, session)
}

// Payout godoc
// @Summary Request a payout
// @Description Pay out available balance through Stripe Connect. Requires a valid payout phone.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body models.PayoutRequest true "Amount and contact phone"
// @Success 200 {object} models.PayoutResponse "Payout accepted"
// @Failure 400 {object} models.ErrorResponse "Below minimum, bad phone, or insufficient balance"
// @Security BearerAuth
// @Router /wallet/payout [post]
func (h *WalletHandler) Payout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.PayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	payout, err := h.service.RequestPayout(ctx, userID, req)
	if err != nil {
		return errors.DomainErrorResponse(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogWalletPayout(context.Background(), userID, payout.TransactionID, payout.Amount, ipAddress, userAgent)
	h.metrics.RecordPayoutRequested()

	return c.JSON(http.StatusOK, payout)
}
