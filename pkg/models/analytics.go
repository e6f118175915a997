package models

// ClipperStatsResponse aggregates a clipper's performance. Only approved
// and paid submissions count toward views and earnings.
type ClipperStatsResponse struct {
	UserID           int     `json:"user_id"`
	Period           string  `json:"period"`
	TotalViews       int     `json:"total_views"`
	TotalEarnings    float64 `json:"total_earnings"`
	ClipsSubmitted   int     `json:"clips_submitted"`
	ClipsApproved    int     `json:"clips_approved"`
	ApprovalRate     float64 `json:"approval_rate"`
	ActiveMissions   int     `json:"active_missions"`
	AverageViewsClip float64 `json:"average_views_per_clip"`
}

// LeaderboardEntry represents one row of the clipper leaderboard
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        int     `json:"user_id"`
	Pseudo        string  `json:"pseudo"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	TotalViews    int     `json:"total_views"`
	TotalEarnings float64 `json:"total_earnings"`
	ClipsApproved int     `json:"clips_approved"`
}

// LeaderboardResponse represents the ranked clipper leaderboard for a period
type LeaderboardResponse struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// MissionStatsResponse aggregates performance of a single mission for its creator
type MissionStatsResponse struct {
	MissionID        int     `json:"mission_id"`
	TotalViews       int     `json:"total_views"`
	TotalSubmissions int     `json:"total_submissions"`
	ApprovedClips    int     `json:"approved_clips"`
	PendingClips     int     `json:"pending_clips"`
	RejectedClips    int     `json:"rejected_clips"`
	Spent            float64 `json:"spent"`
	RemainingBudget  float64 `json:"remaining_budget"`
	CostPer1KViews   float64 `json:"cost_per_1k_views"`
}

// CreatorDashboardResponse aggregates all of a creator's missions
type CreatorDashboardResponse struct {
	Period         string  `json:"period"`
	ActiveMissions int     `json:"active_missions"`
	TotalMissions  int     `json:"total_missions"`
	TotalViews     int     `json:"total_views"`
	TotalSpent     float64 `json:"total_spent"`
	WalletBalance  float64 `json:"wallet_balance"`
	PendingReviews int     `json:"pending_reviews"`
}

// AdminOverviewResponse is the platform-level dashboard for admins
type AdminOverviewResponse struct {
	TotalUsers         int     `json:"total_users"`
	TotalClippers      int     `json:"total_clippers"`
	TotalCreators      int     `json:"total_creators"`
	ActiveMissions     int     `json:"active_missions"`
	PendingMilestones  int     `json:"pending_milestones"`
	TotalViewsApproved int     `json:"total_views_approved"`
	TotalPaidOut       float64 `json:"total_paid_out"`
}
