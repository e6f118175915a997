package models

// WalletBalanceResponse represents the three earnings buckets of a wallet.
// Available is approved-but-unpaid, Pending awaits admin review, Paid has
// left the platform.
type WalletBalanceResponse struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
	Paid      float64 `json:"paid"`
	Total     float64 `json:"total"`
}

// WalletTransactionResponse represents a ledger entry in API responses
type WalletTransactionResponse struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// WalletHistoryResponse represents a paginated transaction history
type WalletHistoryResponse struct {
	Data       []WalletTransactionResponse `json:"data"`
	Pagination PaginationInfo              `json:"pagination"`
}

// RechargeRequest represents a creator funding their wallet
type RechargeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// RechargeResponse carries the Stripe Checkout URL for the recharge
type RechargeResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PayoutRequest represents a clipper requesting a payout of available funds
type PayoutRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Phone  string  `json:"phone" validate:"required"`
}

// PayoutResponse confirms a payout request was accepted
type PayoutResponse struct {
	TransactionID int     `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}
