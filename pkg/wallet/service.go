// Package wallet keeps the per-user money ledger: balance buckets derived
// from transactions, recharge via Stripe Checkout and payouts via Connect
// transfers.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/earnings"
	"github.com/cliptokk/api/pkg/models"
	"github.com/cliptokk/api/pkg/payments"
	"github.com/cliptokk/api/pkg/phone"
	"github.com/cliptokk/api/pkg/submissions"
)

// Limits bound recharge and payout amounts.
type Limits struct {
	MinPayout   float64
	MaxRecharge float64
}

// Service handles wallet business logic
type Service struct {
	db       *ent.Client
	cache    *cache.Client
	payments *payments.Service
	limits   Limits
}

// NewService creates a new wallet service
func NewService(db *ent.Client, cache *cache.Client, payments *payments.Service, limits Limits) *Service {
	return &Service{
		db:       db,
		cache:    cache,
		payments: payments,
		limits:   limits,
	}
}

// Balance derives the three buckets from the ledger. Available is settled
// earnings and recharges minus funds already leaving through payouts;
// Pending estimates what undecided milestone declarations would pay at
// their mission's rate; Paid is money that left the platform.
func (s *Service) Balance(ctx context.Context, userID int) (*models.WalletBalanceResponse, error) {
	cacheKey := fmt.Sprintf("wallet:%d:balance", userID)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var resp models.WalletBalanceResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	txs, err := s.db.WalletTransaction.Query().
		Where(wallettransaction.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	available, paid := ledgerBuckets(txs)

	pending, err := s.pendingEstimate(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &models.WalletBalanceResponse{
		Available: earnings.Round2(available),
		Pending:   earnings.Round2(pending),
		Paid:      earnings.Round2(paid),
		Total:     earnings.Round2(available + pending + paid),
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = s.cache.Set(ctx, cacheKey, data, 1*time.Minute)
	}

	return resp, nil
}

// History returns the user's ledger entries, newest first.
func (s *Service) History(ctx context.Context, userID, page, limit int) (*models.WalletHistoryResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.WalletTransaction.Query().
		Where(wallettransaction.UserID(userID))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	txs, err := query.
		Limit(limit).
		Offset((page - 1) * limit).
		Order(ent.Desc(wallettransaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	totalPages := (total + limit - 1) / limit
	data := make([]models.WalletTransactionResponse, len(txs))
	for i, tx := range txs {
		data[i] = models.WalletTransactionResponse{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Status:      string(tx.Status),
			Reference:   tx.Reference,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}

	return &models.WalletHistoryResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// CreateRecharge opens a Stripe Checkout session funding the wallet. A
// pending ledger row is written first; the webhook settles it.
func (s *Service) CreateRecharge(ctx context.Context, userID int, req models.RechargeRequest) (*models.RechargeResponse, error) {
	if req.Amount <= 0 {
		return nil, domain.NewValidationError("amount must be positive")
	}
	if req.Amount > s.limits.MaxRecharge {
		return nil, domain.NewValidationError(fmt.Sprintf("amount cannot exceed %.2f EUR", s.limits.MaxRecharge))
	}

	tx, err := s.db.WalletTransaction.Create().
		SetUserID(userID).
		SetType(wallettransaction.TypeRecharge).
		SetAmount(earnings.Round2(req.Amount)).
		SetStatus(wallettransaction.StatusPending).
		SetDescription("Wallet recharge via Stripe").
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	sess, err := s.payments.CreateRechargeSession(ctx, userID, tx.ID, req.Amount)
	if err != nil {
		// The pending row stays; it never counts toward any balance bucket.
		return nil, domain.NewInternalError(err)
	}

	s.invalidate(ctx, userID)

	return &models.RechargeResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// RequestPayout validates balance and phone before any network call, then
// transfers the amount to the clipper's Connect account. Approved
// submissions flip to paid in the same transaction as the ledger row.
func (s *Service) RequestPayout(ctx context.Context, userID int, req models.PayoutRequest) (*models.PayoutResponse, error) {
	if req.Amount < s.limits.MinPayout {
		return nil, domain.NewValidationError(fmt.Sprintf("minimum payout is %.2f EUR", s.limits.MinPayout))
	}

	normalized, err := phone.NormalizePayoutPhone(req.Phone)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid payout phone: %v", err))
	}

	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Amount > balance.Available {
		return nil, domain.NewInsufficientBalanceError(balance.Available)
	}

	accountID, err := s.payments.EnsureConnectAccount(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	dbTx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	// Re-derive the balance from the ledger inside the transaction: the
	// pre-check above reads a cached balance, and two payout requests
	// racing each other could both pass it.
	ledger, err := dbTx.WalletTransaction.Query().
		Where(wallettransaction.UserID(userID)).
		All(ctx)
	if err != nil {
		dbTx.Rollback()
		return nil, domain.NewInternalError(err)
	}
	available, _ := ledgerBuckets(ledger)
	if req.Amount > earnings.Round2(available) {
		dbTx.Rollback()
		return nil, domain.NewInsufficientBalanceError(earnings.Round2(available))
	}

	payoutTx, err := dbTx.WalletTransaction.Create().
		SetUserID(userID).
		SetType(wallettransaction.TypePayout).
		SetAmount(earnings.Round2(req.Amount)).
		SetStatus(wallettransaction.StatusPending).
		SetDescription(fmt.Sprintf("Payout to %s", normalized)).
		Save(ctx)
	if err != nil {
		dbTx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if _, err := submissions.MarkPaid(ctx, dbTx, userID); err != nil {
		dbTx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if _, err := dbTx.User.UpdateOneID(userID).SetPayoutPhone(normalized).Save(ctx); err != nil {
		dbTx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	// The transfer happens after commit: a reversal webhook restores the
	// balance by marking the ledger row failed.
	transfer, err := s.payments.CreateTransfer(ctx, accountID, req.Amount, payoutTx.ID)
	if err != nil {
		_, uerr := s.db.WalletTransaction.UpdateOneID(payoutTx.ID).
			SetStatus(wallettransaction.StatusFailed).
			Save(ctx)
		if uerr != nil {
			return nil, domain.NewInternalError(fmt.Errorf("transfer failed (%v) and ledger update failed: %w", err, uerr))
		}
		s.invalidate(ctx, userID)
		return nil, domain.NewInternalError(err)
	}

	completed, err := s.db.WalletTransaction.UpdateOneID(payoutTx.ID).
		SetStatus(wallettransaction.StatusCompleted).
		SetReference(transfer.ID).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.invalidate(ctx, userID)

	return &models.PayoutResponse{
		TransactionID: completed.ID,
		Amount:        completed.Amount,
		Status:        string(completed.Status),
	}, nil
}

// ledgerBuckets folds transactions into the available and paid buckets.
// Earnings and recharges count once settled; pending payouts already
// reserve the funds.
func ledgerBuckets(txs []*ent.WalletTransaction) (available, paid float64) {
	for _, tx := range txs {
		switch tx.Type {
		case wallettransaction.TypeEarning, wallettransaction.TypeRecharge:
			if tx.Status == wallettransaction.StatusCompleted {
				available += tx.Amount
			}
		case wallettransaction.TypePayout:
			switch tx.Status {
			case wallettransaction.StatusPending:
				available -= tx.Amount
			case wallettransaction.StatusCompleted:
				available -= tx.Amount
				paid += tx.Amount
			}
		}
	}
	return available, paid
}

// pendingEstimate sums what the user's pending milestone declarations would
// pay if approved, at each mission's rate.
func (s *Service) pendingEstimate(ctx context.Context, userID int) (float64, error) {
	pending, err := s.db.ClipSubmission.Query().
		Where(
			clipsubmission.UserID(userID),
			clipsubmission.StatusEQ(clipsubmission.StatusPending),
		).
		WithMission().
		All(ctx)
	if err != nil {
		return 0, domain.NewInternalError(err)
	}

	var total float64
	for _, ms := range pending {
		if ms.Edges.Mission == nil {
			continue
		}
		total += earnings.Amount(ms.ViewsDeclared, ms.Edges.Mission.PricePer1kViews)
	}
	return total, nil
}

func (s *Service) invalidate(ctx context.Context, userID int) {
	_ = s.cache.DeletePattern(ctx, fmt.Sprintf("wallet:%d:*", userID))
}
