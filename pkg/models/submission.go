package models

// CreateSubmissionRequest represents a clip submission to a mission
type CreateSubmissionRequest struct {
	MissionID int    `json:"mission_id" validate:"required,gt=0"`
	TiktokURL string `json:"tiktok_url" validate:"required,url"`
}

// SubmissionResponse represents a submission in API responses
type SubmissionResponse struct {
	ID           int     `json:"id"`
	MissionID    int     `json:"mission_id"`
	MissionTitle string  `json:"mission_title,omitempty"`
	UserID       int     `json:"user_id"`
	UserPseudo   string  `json:"user_pseudo,omitempty"`
	TiktokURL    string  `json:"tiktok_url"`
	ViewsCount   int     `json:"views_count"`
	Status       string  `json:"status"`
	Earnings     float64 `json:"earnings"`
	CreatedAt    string  `json:"created_at"`
}

// SubmissionListResponse represents a paginated list of submissions
type SubmissionListResponse struct {
	Data       []SubmissionResponse `json:"data"`
	Pagination PaginationInfo       `json:"pagination"`
}

// DeclareMilestoneRequest represents a clipper declaring a view milestone
// (palier) reached by one of their submissions.
type DeclareMilestoneRequest struct {
	MissionID     int    `json:"mission_id" validate:"required,gt=0"`
	Palier        int    `json:"palier" validate:"required,oneof=10000 100000 1000000"`
	ViewsDeclared int    `json:"views_declared" validate:"required,gt=0"`
	TiktokLink    string `json:"tiktok_link" validate:"required,url"`
}

// MilestoneResponse represents a milestone declaration in API responses
type MilestoneResponse struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	UserPseudo    string  `json:"user_pseudo,omitempty"`
	MissionID     int     `json:"mission_id"`
	MissionTitle  string  `json:"mission_title,omitempty"`
	SubmissionID  int     `json:"submission_id"`
	Palier        int     `json:"palier"`
	ViewsDeclared int     `json:"views_declared"`
	TiktokLink    string  `json:"tiktok_link"`
	Status        string  `json:"status"`
	Earnings      float64 `json:"earnings,omitempty"`
	ReviewedBy    int     `json:"reviewed_by,omitempty"`
	ReviewedAt    string  `json:"reviewed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// MilestoneListResponse represents a paginated list of milestone declarations
type MilestoneListResponse struct {
	Data       []MilestoneResponse `json:"data"`
	Pagination PaginationInfo      `json:"pagination"`
}

// RejectMilestoneRequest carries the optional admin reason for rejection
type RejectMilestoneRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}
