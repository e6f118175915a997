package models

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Pseudo   string `json:"pseudo" validate:"required,min=2,max=30"`
	Role     string `json:"role" validate:"required,oneof=creator clipper"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses. Home is the
// role-specific landing path the frontend should redirect to after
// login; it is computed server-side so clients never hardcode role
// routing.
type UserInfo struct {
	ID                  int     `json:"id"`
	Email               string  `json:"email"`
	Pseudo              string  `json:"pseudo"`
	Role                string  `json:"role"`
	Home                string  `json:"home"`
	TiktokUsername      string  `json:"tiktok_username,omitempty"`
	AvatarURL           string  `json:"avatar_url,omitempty"`
	TotalEarnings       float64 `json:"total_earnings"`
	EmailVerified       bool    `json:"email_verified"`
	OnboardingCompleted bool    `json:"onboarding_completed"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AlreadySubmittedResponse is the conflict body returned when a clipper
// already has a submission for the mission. SubmissionID points at the
// existing record.
type AlreadySubmittedResponse struct {
	ErrorResponse
	SubmissionID int `json:"submission_id"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
