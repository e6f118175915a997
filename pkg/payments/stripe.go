// Package payments wraps the Stripe integration: Checkout sessions for
// wallet recharges, Connect transfers for clipper payouts and the webhook
// dispatcher that settles both.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/transfer"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Service handles Stripe payment operations
type Service struct {
	db     *ent.Client
	config *StripeConfig
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// NewService creates a new payments service
func NewService(db *ent.Client, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		db:     db,
		config: config,
	}
}

// CreateRechargeSession creates a one-off payment Checkout session funding a
// creator's wallet. transactionID is the pending recharge row the webhook
// will settle.
func (s *Service) CreateRechargeSession(ctx context.Context, userID int, transactionID int, amount float64) (*stripe.CheckoutSession, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID, err := s.ensureCustomer(ctx, u)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Wallet recharge"),
					},
					UnitAmount: stripe.Int64(int64(amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"user_id":        fmt.Sprintf("%d", userID),
			"transaction_id": fmt.Sprintf("%d", transactionID),
			"kind":           "wallet_recharge",
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess, nil
}

// EnsureConnectAccount returns the clipper's Stripe Connect account ID,
// creating an Express account on first payout.
func (s *Service) EnsureConnectAccount(ctx context.Context, userID int) (string, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if u.StripeAccountID != nil && *u.StripeAccountID != "" {
		return *u.StripeAccountID, nil
	}

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(u.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
		},
	}
	acct, err := account.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create connect account: %w", err)
	}

	_, err = s.db.User.UpdateOneID(userID).
		SetStripeAccountID(acct.ID).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save connect account id: %w", err)
	}

	return acct.ID, nil
}

// CreateTransfer moves payout funds to a clipper's Connect account.
func (s *Service) CreateTransfer(ctx context.Context, accountID string, amount float64, transactionID int) (*stripe.Transfer, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(int64(amount * 100)),
		Currency:    stripe.String(string(stripe.CurrencyEUR)),
		Destination: stripe.String(accountID),
		Metadata: map[string]string{
			"transaction_id": fmt.Sprintf("%d", transactionID),
		},
	}
	tr, err := transfer.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}
	return tr, nil
}

// HandleWebhook verifies and dispatches a Stripe webhook event.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "transfer.reversed":
		return s.handleTransferReversed(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted settles a pending wallet recharge.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if sess.Metadata["kind"] != "wallet_recharge" {
		return nil
	}

	txIDStr, ok := sess.Metadata["transaction_id"]
	if !ok {
		return fmt.Errorf("transaction_id not found in metadata")
	}
	var txID int
	fmt.Sscanf(txIDStr, "%d", &txID)

	// Settling twice is a no-op: only a still-pending row flips.
	n, err := s.db.WalletTransaction.Update().
		Where(
			wallettransaction.ID(txID),
			wallettransaction.StatusEQ(wallettransaction.StatusPending),
		).
		SetStatus(wallettransaction.StatusCompleted).
		SetReference(sess.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle recharge: %w", err)
	}
	if n == 0 {
		log.Printf("⚠️  Recharge transaction %d already settled", txID)
		return nil
	}

	log.Printf("✅ Wallet recharge settled: transaction_id=%d, session=%s", txID, sess.ID)
	return nil
}

// handleTransferReversed marks the matching payout failed so the funds
// reappear as available balance.
func (s *Service) handleTransferReversed(ctx context.Context, event stripe.Event) error {
	var tr stripe.Transfer
	if err := json.Unmarshal(event.Data.Raw, &tr); err != nil {
		return fmt.Errorf("failed to unmarshal transfer: %w", err)
	}

	txIDStr, ok := tr.Metadata["transaction_id"]
	if !ok {
		return fmt.Errorf("transaction_id not found in transfer metadata")
	}
	var txID int
	fmt.Sscanf(txIDStr, "%d", &txID)

	n, err := s.db.WalletTransaction.Update().
		Where(wallettransaction.ID(txID)).
		SetStatus(wallettransaction.StatusFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark payout failed: %w", err)
	}
	if n > 0 {
		log.Printf("❌ Payout reversed: transaction_id=%d, transfer=%s", txID, tr.ID)
	}
	return nil
}

func (s *Service) ensureCustomer(ctx context.Context, u *ent.User) (string, error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(u.Email),
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", u.ID),
		},
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	_, err = s.db.User.UpdateOneID(u.ID).
		SetStripeCustomerID(cust.ID).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save customer ID: %w", err)
	}

	return cust.ID, nil
}
