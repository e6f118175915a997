// Package milestones implements palier declarations and the admin
// validation gate. Approval is the only path that turns declared views
// into validated views, earnings and mission spend, and it does all of
// that in one database transaction.
package milestones

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/earnings"
	"github.com/cliptokk/api/pkg/missions"
	"github.com/cliptokk/api/pkg/models"
)

// Paliers are the fixed declarable view tiers.
var Paliers = []int{10000, 100000, 1000000}

// Service handles milestone declaration and review logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new milestone service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// ApprovalResult reports what an approval changed, for notification and
// audit purposes.
type ApprovalResult struct {
	Milestone     models.MilestoneResponse
	Earnings      float64
	MissionStatus string
}

// Declare records a palier declaration for the clipper's own submission to
// the mission. A pending declaration for the same submission and palier is
// a conflict; re-declaring a higher tier is fine.
func (s *Service) Declare(ctx context.Context, userID int, req models.DeclareMilestoneRequest) (*models.MilestoneResponse, error) {
	if !validPalier(req.Palier) {
		return nil, domain.NewValidationError(fmt.Sprintf("palier must be one of %v", Paliers))
	}
	if req.ViewsDeclared < req.Palier {
		return nil, domain.NewValidationError("views_declared must reach the declared palier")
	}
	if !strings.Contains(strings.ToLower(req.TiktokLink), "tiktok.com/") {
		return nil, domain.NewValidationError("tiktok_link must be a tiktok.com link")
	}

	sub, err := s.db.Submission.Query().
		Where(submission.UserID(userID), submission.MissionID(req.MissionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("submission")
		}
		return nil, domain.NewInternalError(err)
	}

	exists, err := s.db.ClipSubmission.Query().
		Where(
			clipsubmission.SubmissionID(sub.ID),
			clipsubmission.PalierEQ(req.Palier),
			clipsubmission.StatusIn(clipsubmission.StatusPending, clipsubmission.StatusApproved),
		).
		Exist(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if exists {
		return nil, domain.NewConflictError("This palier is already declared for your clip")
	}

	created, err := s.db.ClipSubmission.Create().
		SetUserID(userID).
		SetMissionID(req.MissionID).
		SetSubmissionID(sub.ID).
		SetPalier(req.Palier).
		SetViewsDeclared(req.ViewsDeclared).
		SetTiktokLink(req.TiktokLink).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	resp := s.toResponse(created, "", "", 0)
	return &resp, nil
}

// Approve applies an admin's approval. The conditional pending check, the
// submission view validation, the wallet earning and the mission spend all
// commit together or not at all. Zero rows on the conditional update means
// another admin decided first.
func (s *Service) Approve(ctx context.Context, adminID, milestoneID int) (*ApprovalResult, error) {
	ms, err := s.db.ClipSubmission.Query().
		Where(clipsubmission.ID(milestoneID)).
		WithMission().
		WithClipper().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("milestone")
		}
		return nil, domain.NewInternalError(err)
	}
	if ms.Edges.Mission == nil {
		return nil, domain.NewInternalError(fmt.Errorf("milestone %d has no mission", milestoneID))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to start transaction: %w", err))
	}

	now := time.Now()

	// First admin decision wins: only a still-pending row can flip.
	n, err := tx.ClipSubmission.Update().
		Where(clipsubmission.ID(milestoneID), clipsubmission.StatusEQ(clipsubmission.StatusPending)).
		SetStatus(clipsubmission.StatusApproved).
		SetReviewedBy(adminID).
		SetReviewedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to update milestone: %w", err))
	}
	if n == 0 {
		tx.Rollback()
		return nil, domain.NewAlreadyDecidedError()
	}

	// The clip's worth is derived from its validated views. Views already
	// credited through an earlier palier approval must not pay again, so
	// only the delta over the submission's current validated views is
	// credited here.
	sub, err := tx.Submission.Get(ctx, ms.SubmissionID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to load submission: %w", err))
	}
	validated := 0
	if sub.Status == submission.StatusApproved || sub.Status == submission.StatusPaid {
		validated = sub.ViewsCount
	}
	rate := ms.Edges.Mission.PricePer1kViews
	amount := earnings.Round2(earnings.Amount(ms.ViewsDeclared, rate) - earnings.Amount(validated, rate))
	if amount < 0 {
		amount = 0
	}

	// Validated views back-propagate to the submission; they never regress.
	newViews := ms.ViewsDeclared
	if newViews < validated {
		newViews = validated
	}
	subUpdate := tx.Submission.UpdateOneID(ms.SubmissionID).SetViewsCount(newViews)
	if sub.Status != submission.StatusPaid {
		subUpdate.SetStatus(submission.StatusApproved)
	}
	if _, err := subUpdate.Save(ctx); err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(fmt.Errorf("failed to validate submission: %w", err))
	}

	if amount > 0 {
		_, err = tx.WalletTransaction.Create().
			SetUserID(ms.UserID).
			SetType(wallettransaction.TypeEarning).
			SetAmount(amount).
			SetStatus(wallettransaction.StatusCompleted).
			SetReference(fmt.Sprintf("milestone:%d", milestoneID)).
			SetDescription(fmt.Sprintf("Palier %d on %q", ms.Palier, ms.Edges.Mission.Title)).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, domain.NewInternalError(fmt.Errorf("failed to record earning: %w", err))
		}

		_, err = tx.User.UpdateOneID(ms.UserID).
			AddTotalEarnings(amount).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, domain.NewInternalError(fmt.Errorf("failed to update clipper earnings: %w", err))
		}
	}

	updatedMission, err := missions.RecordSpend(ctx, tx, ms.MissionID, amount)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to commit approval: %w", err))
	}

	s.invalidateCaches(ctx, ms.UserID)

	approved, err := s.db.ClipSubmission.Get(ctx, milestoneID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	pseudo := ""
	if ms.Edges.Clipper != nil {
		pseudo = ms.Edges.Clipper.Pseudo
	}
	return &ApprovalResult{
		Milestone:     s.toResponse(approved, ms.Edges.Mission.Title, pseudo, amount),
		Earnings:      amount,
		MissionStatus: string(updatedMission.Status),
	}, nil
}

// Reject applies an admin's rejection. Only the declaration flips; the
// underlying submission, wallet and mission are untouched.
func (s *Service) Reject(ctx context.Context, adminID, milestoneID int, reason string) (*models.MilestoneResponse, error) {
	n, err := s.db.ClipSubmission.Update().
		Where(clipsubmission.ID(milestoneID), clipsubmission.StatusEQ(clipsubmission.StatusPending)).
		SetStatus(clipsubmission.StatusRejected).
		SetReviewedBy(adminID).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if n == 0 {
		// Either missing or already decided; distinguish for the client
		exists, eerr := s.db.ClipSubmission.Query().Where(clipsubmission.ID(milestoneID)).Exist(ctx)
		if eerr == nil && !exists {
			return nil, domain.NewNotFoundError("milestone")
		}
		return nil, domain.NewAlreadyDecidedError()
	}

	rejected, err := s.db.ClipSubmission.Get(ctx, milestoneID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	resp := s.toResponse(rejected, "", "", 0)
	return &resp, nil
}

// ListPending returns pending declarations for admin review, oldest first
// so the queue drains fairly.
func (s *Service) ListPending(ctx context.Context, page, limit int) (*models.MilestoneListResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.ClipSubmission.Query().
		Where(clipsubmission.StatusEQ(clipsubmission.StatusPending))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	results, err := query.
		WithMission().
		WithClipper().
		Limit(limit).
		Offset((page - 1) * limit).
		Order(ent.Asc(clipsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return s.toListResponse(results, page, limit, total), nil
}

// ListByUser returns a clipper's declarations, newest first.
func (s *Service) ListByUser(ctx context.Context, userID, page, limit int) (*models.MilestoneListResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	query := s.db.ClipSubmission.Query().
		Where(clipsubmission.UserID(userID))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	results, err := query.
		WithMission().
		Limit(limit).
		Offset((page - 1) * limit).
		Order(ent.Desc(clipsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return s.toListResponse(results, page, limit, total), nil
}

func (s *Service) toListResponse(results []*ent.ClipSubmission, page, limit, total int) *models.MilestoneListResponse {
	totalPages := (total + limit - 1) / limit
	data := make([]models.MilestoneResponse, len(results))
	for i, ms := range results {
		title := ""
		rate := 0.0
		if ms.Edges.Mission != nil {
			title = ms.Edges.Mission.Title
			rate = ms.Edges.Mission.PricePer1kViews
		}
		pseudo := ""
		if ms.Edges.Clipper != nil {
			pseudo = ms.Edges.Clipper.Pseudo
		}
		amount := 0.0
		if ms.Status == clipsubmission.StatusApproved {
			amount = earnings.Amount(ms.ViewsDeclared, rate)
		}
		data[i] = s.toResponse(ms, title, pseudo, amount)
	}
	return &models.MilestoneListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}

func (s *Service) invalidateCaches(ctx context.Context, userID int) {
	_ = s.cache.DeletePattern(ctx, "analytics:*")
	_ = s.cache.DeletePattern(ctx, fmt.Sprintf("wallet:%d:*", userID))
	_ = s.cache.DeletePattern(ctx, "missions:list:*")
}

func (s *Service) toResponse(ms *ent.ClipSubmission, missionTitle, userPseudo string, amount float64) models.MilestoneResponse {
	resp := models.MilestoneResponse{
		ID:            ms.ID,
		UserID:        ms.UserID,
		UserPseudo:    userPseudo,
		MissionID:     ms.MissionID,
		MissionTitle:  missionTitle,
		SubmissionID:  ms.SubmissionID,
		Palier:        ms.Palier,
		ViewsDeclared: ms.ViewsDeclared,
		TiktokLink:    ms.TiktokLink,
		Status:        string(ms.Status),
		Earnings:      amount,
		CreatedAt:     ms.CreatedAt.Format(time.RFC3339),
	}
	if ms.ReviewedBy != nil {
		resp.ReviewedBy = *ms.ReviewedBy
	}
	if ms.ReviewedAt != nil {
		resp.ReviewedAt = ms.ReviewedAt.Format(time.RFC3339)
	}
	return resp
}

func validPalier(p int) bool {
	for _, tier := range Paliers {
		if p == tier {
			return true
		}
	}
	return false
}
