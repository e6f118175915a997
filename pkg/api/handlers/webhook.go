package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/cliptokk/api/pkg/models"
	"github.com/cliptokk/api/pkg/payments"
	"github.com/labstack/echo/v4"
)

// StripeWebhookHandler receives Stripe events for wallet settlement
type StripeWebhookHandler struct {
	payments *payments.Service
}

// NewStripeWebhookHandler creates a new webhook handler
func NewStripeWebhookHandler(paymentsService *payments.Service) *StripeWebhookHandler {
	return &StripeWebhookHandler{payments: paymentsService}
}

// Handle godoc
// @Summary Stripe webhook
// @Description Settles wallet recharges and records reversed transfers. Signature verified.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Bad payload or signature"
// @Router /webhooks/stripe [post]
func (h *StripeWebhookHandler) Handle(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.payments.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		log.Printf("⚠️ Stripe webhook rejected: %v", err)
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: "Event could not be processed",
		})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
