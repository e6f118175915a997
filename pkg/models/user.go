package models

// UpdateProfileRequest represents a request to update user profile
type UpdateProfileRequest struct {
	Pseudo         *string `json:"pseudo,omitempty" validate:"omitempty,min=2,max=30"`
	TiktokUsername *string `json:"tiktok_username,omitempty" validate:"omitempty,min=2,max=30"`
	PayoutPhone    *string `json:"payout_phone,omitempty"`
}

// UserResponse represents a user in responses
type UserResponse struct {
	ID             int     `json:"id"`
	Email          string  `json:"email"`
	Pseudo         string  `json:"pseudo"`
	Role           string  `json:"role"`
	TiktokUsername string  `json:"tiktok_username,omitempty"`
	AvatarURL      string  `json:"avatar_url,omitempty"`
	PayoutPhone    string  `json:"payout_phone,omitempty"`
	TotalEarnings  float64 `json:"total_earnings"`
	EmailVerified  bool    `json:"email_verified"`
	CreatedAt      string  `json:"created_at"`
}

// UserListResponse represents a paginated admin user listing
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// AuditLogResponse represents one audit trail entry
type AuditLogResponse struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Action      string `json:"action"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}
