package jobs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/cache"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMonitor(t *testing.T) (*BudgetMonitor, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	return NewBudgetMonitor(client, cacheClient, analytics.NewService(client, cacheClient), nil, nil), client
}

func createMission(t *testing.T, db *ent.Client, creatorID int, budget, spent float64, status mission.Status) *ent.Mission {
	m, err := db.Mission.Create().
		SetTitle("Clip my stream").
		SetDescription("Best moments only").
		SetPricePer1kViews(0.10).
		SetTotalBudget(budget).
		SetSpent(spent).
		SetStatus(status).
		SetCreatorID(creatorID).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func TestCompleteExhaustedMissions(t *testing.T) {
	monitor, db := setupMonitor(t)
	ctx := context.Background()

	creator, err := db.User.Create().
		SetEmail("creator@cliptokk.com").
		SetPseudo("creator").
		SetPasswordHash("x").
		SetRole(user.RoleCreator).
		Save(ctx)
	require.NoError(t, err)

	exhausted := createMission(t, db, creator.ID, 100, 100, mission.StatusActive)
	overspent := createMission(t, db, creator.ID, 50, 62.40, mission.StatusActive)
	healthy := createMission(t, db, creator.ID, 200, 80, mission.StatusActive)
	paused := createMission(t, db, creator.ID, 10, 10, mission.StatusPaused)

	completed, err := monitor.CompleteExhaustedMissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	for _, tc := range []struct {
		id   int
		want mission.Status
	}{
		{exhausted.ID, mission.StatusCompleted},
		{overspent.ID, mission.StatusCompleted},
		{healthy.ID, mission.StatusActive},
		{paused.ID, mission.StatusPaused},
	} {
		m, err := db.Mission.Get(ctx, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.Status, "mission %d", tc.id)
	}

	// Second sweep is a no-op
	completed, err = monitor.CompleteExhaustedMissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, completed)
}

func TestWarmLeaderboards(t *testing.T) {
	monitor, _ := setupMonitor(t)

	err := monitor.WarmLeaderboards(context.Background())
	assert.NoError(t, err)
}
