// Package missions manages creator-funded clipping missions: creation,
// listing with cached filters, lifecycle status and budget spend tracking.
package missions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/models"
)

// Service handles mission business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new mission service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// Create creates a new mission owned by the given creator.
func (s *Service) Create(ctx context.Context, creatorID int, req models.CreateMissionRequest) (*models.MissionResponse, error) {
	creator, err := s.db.User.Get(ctx, creatorID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, domain.NewInternalError(err)
	}
	if creator.Role != user.RoleCreator && creator.Role != user.RoleAdmin {
		return nil, domain.NewForbiddenError("Only creators can launch missions")
	}

	if req.PricePer1K > req.TotalBudget {
		return nil, domain.NewValidationError("price_per_1k_views cannot exceed total_budget")
	}

	builder := s.db.Mission.Create().
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetCreatorID(creatorID).
		SetPricePer1kViews(req.PricePer1K).
		SetTotalBudget(req.TotalBudget).
		SetSourceVideoURL(req.SourceVideoURL)
	if req.Category != "" {
		builder = builder.SetCategory(req.Category)
	}
	if len(req.Platforms) > 0 {
		builder = builder.SetPlatforms(req.Platforms)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.invalidateListCache(ctx)

	resp := s.toResponse(m, creator.Pseudo, 0)
	return &resp, nil
}

// GetByID retrieves a single mission with its submission count.
func (s *Service) GetByID(ctx context.Context, id int) (*models.MissionResponse, error) {
	m, err := s.db.Mission.Query().
		Where(mission.ID(id)).
		WithCreator().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("mission")
		}
		return nil, domain.NewInternalError(err)
	}

	count, err := s.db.Submission.Query().
		Where(submission.MissionID(id)).
		Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	pseudo := ""
	if m.Edges.Creator != nil {
		pseudo = m.Edges.Creator.Pseudo
	}
	resp := s.toResponse(m, pseudo, count)
	return &resp, nil
}

// List returns missions matching the filters, newest first, cached for a
// short window since the marketplace page is the hottest read path.
func (s *Service) List(ctx context.Context, req models.MissionSearchRequest) (*models.MissionListResponse, error) {
	// Set defaults
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	cacheKey := fmt.Sprintf("missions:list:%s:%s:%d:%d", req.Status, req.Category, req.Page, req.Limit)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var response models.MissionListResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	query := s.db.Mission.Query()
	if req.Status != "" {
		query = query.Where(mission.StatusEQ(mission.Status(req.Status)))
	}
	if req.Category != "" {
		query = query.Where(mission.CategoryEQ(req.Category))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	results, err := query.
		WithCreator().
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	data := make([]models.MissionResponse, len(results))
	for i, m := range results {
		pseudo := ""
		if m.Edges.Creator != nil {
			pseudo = m.Edges.Creator.Pseudo
		}
		data[i] = s.toResponse(m, pseudo, 0)
	}

	response := &models.MissionListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}

	// Cache the response for 2 minutes
	if responseJSON, err := json.Marshal(response); err == nil {
		_ = s.cache.Set(ctx, cacheKey, responseJSON, 2*time.Minute)
	}

	return response, nil
}

// ListByCreator returns all missions owned by a creator, newest first.
func (s *Service) ListByCreator(ctx context.Context, creatorID int) ([]models.MissionResponse, error) {
	results, err := s.db.Mission.Query().
		Where(mission.CreatorID(creatorID)).
		Order(ent.Desc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	data := make([]models.MissionResponse, len(results))
	for i, m := range results {
		data[i] = s.toResponse(m, "", 0)
	}
	return data, nil
}

// Update applies a partial update. Only the owning creator or an admin may
// modify a mission; budget and rate are immutable after creation.
func (s *Service) Update(ctx context.Context, actorID int, missionID int, req models.UpdateMissionRequest) (*models.MissionResponse, error) {
	m, err := s.db.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("mission")
		}
		return nil, domain.NewInternalError(err)
	}

	if err := s.requireOwnerOrAdmin(ctx, actorID, m.CreatorID); err != nil {
		return nil, err
	}

	if m.Status == mission.StatusCompleted {
		return nil, domain.NewConflictError("Mission already completed")
	}

	builder := m.Update()
	if req.Title != nil {
		builder = builder.SetTitle(*req.Title)
	}
	if req.Description != nil {
		builder = builder.SetDescription(*req.Description)
	}
	if req.Status != nil {
		builder = builder.SetStatus(mission.Status(*req.Status))
	}
	if req.Category != nil {
		builder = builder.SetCategory(*req.Category)
	}
	if len(req.Platforms) > 0 {
		builder = builder.SetPlatforms(req.Platforms)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.invalidateListCache(ctx)

	resp := s.toResponse(updated, "", 0)
	return &resp, nil
}

// RecordSpend increments a mission's spent amount inside an existing
// transaction and completes the mission once the budget is exhausted.
// Callers own commit and rollback.
func RecordSpend(ctx context.Context, tx *ent.Tx, missionID int, amount float64) (*ent.Mission, error) {
	m, err := tx.Mission.Get(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mission: %w", err)
	}

	builder := tx.Mission.UpdateOne(m).AddSpent(amount)
	if m.Spent+amount >= m.TotalBudget {
		builder = builder.SetStatus(mission.StatusCompleted)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record spend: %w", err)
	}
	return updated, nil
}

func (s *Service) requireOwnerOrAdmin(ctx context.Context, actorID, ownerID int) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.db.User.Get(ctx, actorID)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if actor.Role != user.RoleAdmin {
		return domain.NewForbiddenError("You do not own this mission")
	}
	return nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, "missions:list:*")
}

// toResponse converts an Ent mission to a response model
func (s *Service) toResponse(m *ent.Mission, creatorPseudo string, submissionCount int) models.MissionResponse {
	remaining := m.TotalBudget - m.Spent
	if remaining < 0 {
		remaining = 0
	}
	return models.MissionResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		CreatorID:       m.CreatorID,
		CreatorPseudo:   creatorPseudo,
		PricePer1K:      m.PricePer1kViews,
		TotalBudget:     m.TotalBudget,
		Spent:           m.Spent,
		RemainingBudget: remaining,
		Status:          string(m.Status),
		Category:        m.Category,
		Platforms:       m.Platforms,
		SourceVideoURL:  m.SourceVideoURL,
		SubmissionCount: submissionCount,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
