// Package analytics aggregates validated activity into clipper stats, the
// leaderboard and mission dashboards. Every money figure funnels through
// the earnings calculator; only approved and paid activity counts.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/earnings"
	"github.com/cliptokk/api/pkg/models"
)

// Service handles aggregation queries
type Service struct {
	db    *ent.Client
	cache *cache.Client

	// now is swappable for deterministic window tests
	now func() time.Time
}

// NewService creates a new analytics service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
		now:   time.Now,
	}
}

// ClipperStats aggregates one clipper's activity over a period.
func (s *Service) ClipperStats(ctx context.Context, userID int, period Period) (*models.ClipperStatsResponse, error) {
	cacheKey := fmt.Sprintf("analytics:clipper:%d:%s", userID, period)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var resp models.ClipperStatsResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	now := s.now()
	start := period.WindowStart(now)

	subQuery := s.db.Submission.Query().Where(submission.UserID(userID))
	if !start.IsZero() {
		subQuery = subQuery.Where(submission.CreatedAtGTE(start))
	}
	subs, err := subQuery.WithMission().All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	resp := &models.ClipperStatsResponse{
		UserID: userID,
		Period: string(period),
	}

	missionSet := map[int]bool{}
	for _, sub := range subs {
		resp.ClipsSubmitted++
		if sub.Status != submission.StatusApproved && sub.Status != submission.StatusPaid {
			continue
		}
		resp.ClipsApproved++
		resp.TotalViews += sub.ViewsCount
		if sub.Edges.Mission != nil {
			resp.TotalEarnings += earnings.Amount(sub.ViewsCount, sub.Edges.Mission.PricePer1kViews)
			if sub.Edges.Mission.Status == mission.StatusActive {
				missionSet[sub.MissionID] = true
			}
		}
	}
	resp.TotalEarnings = earnings.Round2(resp.TotalEarnings)
	resp.ActiveMissions = len(missionSet)
	if resp.ClipsSubmitted > 0 {
		resp.ApprovalRate = earnings.Round2(float64(resp.ClipsApproved) / float64(resp.ClipsSubmitted) * 100)
	}
	if resp.ClipsApproved > 0 {
		resp.AverageViewsClip = earnings.Round2(float64(resp.TotalViews) / float64(resp.ClipsApproved))
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = s.cache.Set(ctx, cacheKey, data, 5*time.Minute)
	}

	return resp, nil
}

// Leaderboard ranks clippers by validated earnings over the period. Ties on
// earnings break by earliest first approval in the window, then by user id,
// so ranks are stable across refreshes.
func (s *Service) Leaderboard(ctx context.Context, period Period, limit int) (*models.LeaderboardResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("analytics:leaderboard:%s:%d", period, limit)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var resp models.LeaderboardResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	now := s.now()
	start := period.WindowStart(now)

	query := s.db.ClipSubmission.Query().
		Where(clipsubmission.StatusEQ(clipsubmission.StatusApproved))
	if !start.IsZero() {
		query = query.Where(clipsubmission.ReviewedAtGTE(start))
	}
	approvals, err := query.WithMission().WithClipper().All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	type agg struct {
		entry         models.LeaderboardEntry
		firstApproval time.Time
	}
	byUser := map[int]*agg{}
	// A clip with several approved paliers counts once, at its highest
	// validated tier; summing per declaration would pay the same views twice.
	bestPerClip := map[int]*ent.ClipSubmission{}
	for _, ms := range approvals {
		if ms.Edges.Mission == nil || ms.Edges.Clipper == nil || ms.ReviewedAt == nil {
			continue
		}
		a, ok := byUser[ms.UserID]
		if !ok {
			avatar := ""
			if ms.Edges.Clipper.AvatarURL != nil {
				avatar = *ms.Edges.Clipper.AvatarURL
			}
			a = &agg{
				entry: models.LeaderboardEntry{
					UserID:    ms.UserID,
					Pseudo:    ms.Edges.Clipper.Pseudo,
					AvatarURL: avatar,
				},
				firstApproval: *ms.ReviewedAt,
			}
			byUser[ms.UserID] = a
		}
		if ms.ReviewedAt.Before(a.firstApproval) {
			a.firstApproval = *ms.ReviewedAt
		}
		if best, ok := bestPerClip[ms.SubmissionID]; !ok || ms.ViewsDeclared > best.ViewsDeclared {
			bestPerClip[ms.SubmissionID] = ms
		}
	}
	for _, ms := range bestPerClip {
		a := byUser[ms.UserID]
		a.entry.TotalViews += ms.ViewsDeclared
		a.entry.TotalEarnings += earnings.Amount(ms.ViewsDeclared, ms.Edges.Mission.PricePer1kViews)
		a.entry.ClipsApproved++
	}

	ranked := make([]*agg, 0, len(byUser))
	for _, a := range byUser {
		a.entry.TotalEarnings = earnings.Round2(a.entry.TotalEarnings)
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].entry.TotalEarnings != ranked[j].entry.TotalEarnings {
			return ranked[i].entry.TotalEarnings > ranked[j].entry.TotalEarnings
		}
		if !ranked[i].firstApproval.Equal(ranked[j].firstApproval) {
			return ranked[i].firstApproval.Before(ranked[j].firstApproval)
		}
		return ranked[i].entry.UserID < ranked[j].entry.UserID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]models.LeaderboardEntry, len(ranked))
	for i, a := range ranked {
		a.entry.Rank = i + 1
		entries[i] = a.entry
	}

	resp := &models.LeaderboardResponse{
		Period:  string(period),
		Entries: entries,
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = s.cache.Set(ctx, cacheKey, data, 5*time.Minute)
	}

	return resp, nil
}

// MissionStats aggregates a single mission for its creator.
func (s *Service) MissionStats(ctx context.Context, missionID int) (*models.MissionStatsResponse, error) {
	m, err := s.db.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("mission")
		}
		return nil, domain.NewInternalError(err)
	}

	subs, err := s.db.Submission.Query().
		Where(submission.MissionID(missionID)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	resp := &models.MissionStatsResponse{
		MissionID:       missionID,
		Spent:           earnings.Round2(m.Spent),
		RemainingBudget: earnings.Round2(m.TotalBudget - m.Spent),
	}
	if resp.RemainingBudget < 0 {
		resp.RemainingBudget = 0
	}

	for _, sub := range subs {
		resp.TotalSubmissions++
		switch sub.Status {
		case submission.StatusApproved, submission.StatusPaid:
			resp.ApprovedClips++
			resp.TotalViews += sub.ViewsCount
		case submission.StatusPending:
			resp.PendingClips++
		case submission.StatusRejected:
			resp.RejectedClips++
		}
	}
	if resp.TotalViews > 0 {
		resp.CostPer1KViews = earnings.Round2(resp.Spent / float64(resp.TotalViews) * 1000)
	}

	return resp, nil
}

// CreatorDashboard aggregates all of a creator's missions for a period.
func (s *Service) CreatorDashboard(ctx context.Context, creatorID int, period Period) (*models.CreatorDashboardResponse, error) {
	now := s.now()
	start := period.WindowStart(now)

	query := s.db.Mission.Query().Where(mission.CreatorID(creatorID))
	if !start.IsZero() {
		query = query.Where(mission.CreatedAtGTE(start))
	}
	ms, err := query.All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	resp := &models.CreatorDashboardResponse{Period: string(period)}
	missionIDs := make([]int, 0, len(ms))
	for _, m := range ms {
		resp.TotalMissions++
		if m.Status == mission.StatusActive {
			resp.ActiveMissions++
		}
		resp.TotalSpent += m.Spent
		missionIDs = append(missionIDs, m.ID)
	}
	resp.TotalSpent = earnings.Round2(resp.TotalSpent)

	if len(missionIDs) > 0 {
		views, err := s.db.Submission.Query().
			Where(
				submission.MissionIDIn(missionIDs...),
				submission.StatusIn(submission.StatusApproved, submission.StatusPaid),
			).
			Select(submission.FieldViewsCount).
			Ints(ctx)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		for _, v := range views {
			resp.TotalViews += v
		}

		pending, err := s.db.ClipSubmission.Query().
			Where(
				clipsubmission.MissionIDIn(missionIDs...),
				clipsubmission.StatusEQ(clipsubmission.StatusPending),
			).
			Count(ctx)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		resp.PendingReviews = pending
	}

	// Wallet balance: settled recharges minus spent budget commitments are
	// tracked in the ledger, so derive from completed transactions.
	txs, err := s.db.WalletTransaction.Query().
		Where(
			wallettransaction.UserID(creatorID),
			wallettransaction.StatusEQ(wallettransaction.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	var balance float64
	for _, tx := range txs {
		switch tx.Type {
		case wallettransaction.TypeRecharge, wallettransaction.TypeEarning:
			balance += tx.Amount
		case wallettransaction.TypePayout:
			balance -= tx.Amount
		}
	}
	resp.WalletBalance = earnings.Round2(balance)

	return resp, nil
}

// AdminOverview is the platform-level dashboard.
func (s *Service) AdminOverview(ctx context.Context) (*models.AdminOverviewResponse, error) {
	resp := &models.AdminOverviewResponse{}
	var err error

	if resp.TotalUsers, err = s.db.User.Query().Where(user.DeletedAtIsNil()).Count(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if resp.TotalClippers, err = s.db.User.Query().Where(user.RoleEQ(user.RoleClipper), user.DeletedAtIsNil()).Count(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if resp.TotalCreators, err = s.db.User.Query().Where(user.RoleEQ(user.RoleCreator), user.DeletedAtIsNil()).Count(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if resp.ActiveMissions, err = s.db.Mission.Query().Where(mission.StatusEQ(mission.StatusActive)).Count(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if resp.PendingMilestones, err = s.db.ClipSubmission.Query().Where(clipsubmission.StatusEQ(clipsubmission.StatusPending)).Count(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}

	views, err := s.db.Submission.Query().
		Where(submission.StatusIn(submission.StatusApproved, submission.StatusPaid)).
		Select(submission.FieldViewsCount).
		Ints(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	for _, v := range views {
		resp.TotalViewsApproved += v
	}

	payouts, err := s.db.WalletTransaction.Query().
		Where(
			wallettransaction.TypeEQ(wallettransaction.TypePayout),
			wallettransaction.StatusEQ(wallettransaction.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	var paid float64
	for _, tx := range payouts {
		paid += tx.Amount
	}
	resp.TotalPaidOut = earnings.Round2(paid)

	return resp, nil
}
