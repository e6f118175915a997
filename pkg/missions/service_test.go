package missions

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err, "Failed to create cache client")

	return NewService(client, cacheClient), client
}

func createTestUser(t *testing.T, client *ent.Client, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("%s-%d@example.com", role, len(t.Name()))).
		SetPasswordHash("x").
		SetPseudo(string(role) + "-user").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestMission(t *testing.T, s *Service, creatorID int) *models.MissionResponse {
	m, err := s.Create(context.Background(), creatorID, models.CreateMissionRequest{
		Title:       "Clip my gaming stream",
		Description: "Cut the best moments from last night's stream",
		PricePer1K:  0.12,
		TotalBudget: 100,
		Category:    "gaming",
		Platforms:   []string{"tiktok"},
	})
	require.NoError(t, err)
	return m
}

func TestCreate(t *testing.T) {
	service, client := setupTestService(t)
	creator := createTestUser(t, client, user.RoleCreator)
	clipper := createTestUser(t, client, user.RoleClipper)

	t.Run("Success - creator launches mission", func(t *testing.T) {
		m := createTestMission(t, service, creator.ID)
		assert.Equal(t, "active", m.Status)
		assert.Equal(t, 0.12, m.PricePer1K)
		assert.Equal(t, 100.0, m.RemainingBudget)
		assert.Equal(t, 0.0, m.Spent)
	})

	t.Run("Failure - clipper cannot launch mission", func(t *testing.T) {
		_, err := service.Create(context.Background(), clipper.ID, models.CreateMissionRequest{
			Title:       "Not allowed",
			Description: "Clippers submit, they do not fund",
			PricePer1K:  0.10,
			TotalBudget: 50,
		})
		require.Error(t, err)
	})

	t.Run("Failure - rate exceeding budget", func(t *testing.T) {
		_, err := service.Create(context.Background(), creator.ID, models.CreateMissionRequest{
			Title:       "Broken economics",
			Description: "One thousand views would drain everything",
			PricePer1K:  200,
			TotalBudget: 50,
		})
		require.Error(t, err)
	})
}

func TestList(t *testing.T) {
	service, client := setupTestService(t)
	creator := createTestUser(t, client, user.RoleCreator)

	for i := 0; i < 3; i++ {
		createTestMission(t, service, creator.ID)
	}
	// One paused mission
	m := createTestMission(t, service, creator.ID)
	paused := "paused"
	_, err := service.Update(context.Background(), creator.ID, m.ID, models.UpdateMissionRequest{Status: &paused})
	require.NoError(t, err)

	t.Run("Success - filter by status", func(t *testing.T) {
		result, err := service.List(context.Background(), models.MissionSearchRequest{Status: "active"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Pagination.Total)
		for _, mission := range result.Data {
			assert.Equal(t, "active", mission.Status)
		}
	})

	t.Run("Success - pagination", func(t *testing.T) {
		result, err := service.List(context.Background(), models.MissionSearchRequest{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, 4, result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNext)
	})
}

func TestUpdate(t *testing.T) {
	service, client := setupTestService(t)
	creator := createTestUser(t, client, user.RoleCreator)
	other := createTestUser(t, client, user.RoleClipper)
	m := createTestMission(t, service, creator.ID)

	t.Run("Failure - non-owner cannot update", func(t *testing.T) {
		paused := "paused"
		_, err := service.Update(context.Background(), other.ID, m.ID, models.UpdateMissionRequest{Status: &paused})
		require.Error(t, err)
	})

	t.Run("Success - owner pauses mission", func(t *testing.T) {
		paused := "paused"
		updated, err := service.Update(context.Background(), creator.ID, m.ID, models.UpdateMissionRequest{Status: &paused})
		require.NoError(t, err)
		assert.Equal(t, "paused", updated.Status)
	})

	t.Run("Failure - completed mission is frozen", func(t *testing.T) {
		completed := "completed"
		_, err := service.Update(context.Background(), creator.ID, m.ID, models.UpdateMissionRequest{Status: &completed})
		require.NoError(t, err)

		title := "Too late"
		_, err = service.Update(context.Background(), creator.ID, m.ID, models.UpdateMissionRequest{Title: &title})
		require.Error(t, err)
	})
}

func TestRecordSpend(t *testing.T) {
	service, client := setupTestService(t)
	creator := createTestUser(t, client, user.RoleCreator)
	ctx := context.Background()

	t.Run("Success - spend accrues within budget", func(t *testing.T) {
		m := createTestMission(t, service, creator.ID)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		updated, err := RecordSpend(ctx, tx, m.ID, 4.20)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, 4.20, updated.Spent)
		assert.Equal(t, "active", string(updated.Status))
	})

	t.Run("Success - exhausting budget completes mission", func(t *testing.T) {
		m := createTestMission(t, service, creator.ID)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		updated, err := RecordSpend(ctx, tx, m.ID, 100)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, "completed", string(updated.Status))
	})

	t.Run("Success - rollback leaves mission untouched", func(t *testing.T) {
		m := createTestMission(t, service, creator.ID)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		_, err = RecordSpend(ctx, tx, m.ID, 50)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		fresh, err := service.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, fresh.Spent)
	})
}
