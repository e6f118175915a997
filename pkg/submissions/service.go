// Package submissions handles clip submissions against missions, including
// the one-submission-per-mission-per-clipper guard.
package submissions

import (
	"context"
	"strings"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/predicate"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/earnings"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/models"
)

// Service handles submission business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new submission service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// Create records a clip submission. A clipper gets exactly one submission
// per mission: a pre-check returns the existing submission's ID for a clean
// conflict response, and the unique (user_id, mission_id) index backstops
// the race between two concurrent inserts.
func (s *Service) Create(ctx context.Context, userID int, req models.CreateSubmissionRequest) (*models.SubmissionResponse, error) {
	if !isTikTokURL(req.TiktokURL) {
		return nil, domain.NewValidationError("tiktok_url must be a tiktok.com link")
	}

	m, err := s.db.Mission.Get(ctx, req.MissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("mission")
		}
		return nil, domain.NewInternalError(err)
	}
	if m.Status != mission.StatusActive {
		return nil, domain.NewConflictError("Mission is not accepting submissions")
	}

	existing, err := s.db.Submission.Query().
		Where(submission.UserID(userID), submission.MissionID(req.MissionID)).
		First(ctx)
	if err == nil {
		return nil, domain.NewAlreadySubmittedError(existing.ID)
	}
	if !ent.IsNotFound(err) {
		return nil, domain.NewInternalError(err)
	}

	created, err := s.db.Submission.Create().
		SetMissionID(req.MissionID).
		SetUserID(userID).
		SetTiktokURL(req.TiktokURL).
		Save(ctx)
	if err != nil {
		// Lost the race against a concurrent insert: surface the same
		// conflict the pre-check would have produced.
		if ent.IsConstraintError(err) {
			if winner, qerr := s.db.Submission.Query().
				Where(submission.UserID(userID), submission.MissionID(req.MissionID)).
				First(ctx); qerr == nil {
				return nil, domain.NewAlreadySubmittedError(winner.ID)
			}
			return nil, domain.NewConflictError("You already submitted a clip for this mission")
		}
		return nil, domain.NewInternalError(err)
	}

	resp := s.toResponse(created, m.Title, "", m.PricePer1kViews)
	return &resp, nil
}

// GetByID returns a single submission. Clippers see their own, the mission's
// creator sees submissions to their missions, admins see everything.
func (s *Service) GetByID(ctx context.Context, id int) (*models.SubmissionResponse, error) {
	sub, err := s.db.Submission.Query().
		Where(submission.ID(id)).
		WithMission().
		WithClipper().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("submission")
		}
		return nil, domain.NewInternalError(err)
	}

	resp := s.responseWithEdges(sub)
	return &resp, nil
}

// ListByUser returns a clipper's submissions, newest first.
func (s *Service) ListByUser(ctx context.Context, userID, page, limit int) (*models.SubmissionListResponse, error) {
	return s.list(ctx, page, limit, submission.UserID(userID))
}

// ListByMission returns submissions to one mission, newest first.
func (s *Service) ListByMission(ctx context.Context, missionID, page, limit int) (*models.SubmissionListResponse, error) {
	return s.list(ctx, page, limit, submission.MissionID(missionID))
}

func (s *Service) list(ctx context.Context, page, limit int, preds ...predicate.Submission) (*models.SubmissionListResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Submission.Query()
	for _, p := range preds {
		query = query.Where(p)
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	results, err := query.
		WithMission().
		WithClipper().
		Limit(limit).
		Offset((page - 1) * limit).
		Order(ent.Desc(submission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	totalPages := (total + limit - 1) / limit
	data := make([]models.SubmissionResponse, len(results))
	for i, sub := range results {
		data[i] = s.responseWithEdges(sub)
	}

	return &models.SubmissionListResponse{
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

// MarkPaid flips approved submissions of a user to paid inside an existing
// transaction. Used by the payout flow; callers own commit and rollback.
func MarkPaid(ctx context.Context, tx *ent.Tx, userID int) (int, error) {
	return tx.Submission.Update().
		Where(submission.UserID(userID), submission.StatusEQ(submission.StatusApproved)).
		SetStatus(submission.StatusPaid).
		Save(ctx)
}

func (s *Service) responseWithEdges(sub *ent.Submission) models.SubmissionResponse {
	missionTitle := ""
	rate := 0.0
	if sub.Edges.Mission != nil {
		missionTitle = sub.Edges.Mission.Title
		rate = sub.Edges.Mission.PricePer1kViews
	}
	pseudo := ""
	if sub.Edges.Clipper != nil {
		pseudo = sub.Edges.Clipper.Pseudo
	}
	resp := s.toResponse(sub, missionTitle, pseudo, rate)
	return resp
}

func (s *Service) toResponse(sub *ent.Submission, missionTitle, userPseudo string, ratePer1K float64) models.SubmissionResponse {
	resp := models.SubmissionResponse{
		ID:           sub.ID,
		MissionID:    sub.MissionID,
		MissionTitle: missionTitle,
		UserID:       sub.UserID,
		UserPseudo:   userPseudo,
		TiktokURL:    sub.TiktokURL,
		ViewsCount:   sub.ViewsCount,
		Status:       string(sub.Status),
		CreatedAt:    sub.CreatedAt.Format(time.RFC3339),
	}
	// Earnings only exist once views are validated
	if sub.Status == submission.StatusApproved || sub.Status == submission.StatusPaid {
		resp.Earnings = earnings.Amount(sub.ViewsCount, ratePer1K)
	}
	return resp
}

func isTikTokURL(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "tiktok.com/") &&
		(strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://"))
}
