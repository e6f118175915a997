package models

// CreateMissionRequest represents a request to create a clipping mission
type CreateMissionRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=120"`
	Description    string   `json:"description" validate:"required,min=10"`
	PricePer1K     float64  `json:"price_per_1k_views" validate:"required,gt=0"`
	TotalBudget    float64  `json:"total_budget" validate:"required,gt=0"`
	Category       string   `json:"category" validate:"omitempty,max=50"`
	Platforms      []string `json:"platforms" validate:"omitempty,dive,oneof=tiktok instagram youtube"`
	SourceVideoURL string   `json:"source_video_url" validate:"omitempty,url"`
}

// UpdateMissionRequest represents a partial mission update
type UpdateMissionRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=10"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active paused completed"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Platforms   []string `json:"platforms,omitempty" validate:"omitempty,dive,oneof=tiktok instagram youtube"`
}

// MissionSearchRequest represents filtering parameters for mission listing
type MissionSearchRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=active paused completed"`
	Category string `query:"category"`
	Page     int    `query:"page" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=0,max=100"`
}

// MissionResponse represents a mission in API responses
type MissionResponse struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CreatorID       int      `json:"creator_id"`
	CreatorPseudo   string   `json:"creator_pseudo,omitempty"`
	PricePer1K      float64  `json:"price_per_1k_views"`
	TotalBudget     float64  `json:"total_budget"`
	Spent           float64  `json:"spent"`
	RemainingBudget float64  `json:"remaining_budget"`
	Status          string   `json:"status"`
	Category        string   `json:"category,omitempty"`
	Platforms       []string `json:"platforms,omitempty"`
	SourceVideoURL  string   `json:"source_video_url,omitempty"`
	SubmissionCount int      `json:"submission_count"`
	CreatedAt       string   `json:"created_at"`
}

// MissionListResponse represents a paginated list of missions
type MissionListResponse struct {
	Data       []MissionResponse `json:"data"`
	Pagination PaginationInfo    `json:"pagination"`
}
