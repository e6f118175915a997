package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	return NewService(client, cacheClient), client
}

func mkUser(t *testing.T, client *ent.Client, email string, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetPseudo(email[:5]).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func mkMission(t *testing.T, client *ent.Client, creatorID int, rate float64) *ent.Mission {
	m, err := client.Mission.Create().
		SetTitle("Mission").
		SetDescription("Clips wanted here").
		SetCreatorID(creatorID).
		SetPricePer1kViews(rate).
		SetTotalBudget(1000).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func mkSubmission(t *testing.T, client *ent.Client, missionID, userID, views int, status submission.Status) *ent.Submission {
	s, err := client.Submission.Create().
		SetMissionID(missionID).
		SetUserID(userID).
		SetTiktokURL(fmt.Sprintf("https://www.tiktok.com/@u%d/video/%d", userID, missionID)).
		SetViewsCount(views).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

func TestClipperStats_OnlyValidatedActivityCounts(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	clipper := mkUser(t, client, "clipper@example.com", user.RoleClipper)

	m1 := mkMission(t, client, creator.ID, 0.12)
	m2 := mkMission(t, client, creator.ID, 0.20)
	m3 := mkMission(t, client, creator.ID, 0.50)
	m4 := mkMission(t, client, creator.ID, 0.50)

	mkSubmission(t, client, m1.ID, clipper.ID, 35000, submission.StatusApproved)
	mkSubmission(t, client, m2.ID, clipper.ID, 10000, submission.StatusPaid)
	// Pending and rejected clips must not contribute views or earnings
	mkSubmission(t, client, m3.ID, clipper.ID, 99999, submission.StatusPending)
	mkSubmission(t, client, m4.ID, clipper.ID, 88888, submission.StatusRejected)

	stats, err := service.ClipperStats(ctx, clipper.ID, PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.ClipsSubmitted)
	assert.Equal(t, 2, stats.ClipsApproved)
	assert.Equal(t, 45000, stats.TotalViews)
	// 35000@0.12 = 4.20 plus 10000@0.20 = 2.00
	assert.Equal(t, 6.20, stats.TotalEarnings)
	assert.Equal(t, 50.0, stats.ApprovalRate)
}

func TestLeaderboard_RankingAndTieBreak(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	admin := mkUser(t, client, "admin@example.com", user.RoleAdmin)

	m := mkMission(t, client, creator.ID, 0.10)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return base.AddDate(0, 0, 2) }

	// Three clippers: top earner, then two tied on earnings where the one
	// approved earlier must rank higher despite the larger user id.
	type row struct {
		email    string
		views    int
		reviewed time.Time
	}
	rows := []row{
		{"top@example.com", 100000, base.Add(3 * time.Hour)},
		{"late@example.com", 50000, base.Add(2 * time.Hour)},
		{"early@example.com", 50000, base.Add(1 * time.Hour)},
	}

	ids := make([]int, len(rows))
	for i, r := range rows {
		clipper := mkUser(t, client, r.email, user.RoleClipper)
		ids[i] = clipper.ID
		sub := mkSubmission(t, client, m.ID, clipper.ID, r.views, submission.StatusApproved)
		_, err := client.ClipSubmission.Create().
			SetUserID(clipper.ID).
			SetMissionID(m.ID).
			SetSubmissionID(sub.ID).
			SetPalier(10000).
			SetViewsDeclared(r.views).
			SetTiktokLink("https://www.tiktok.com/@u/video/1").
			SetStatus("approved").
			SetReviewedBy(admin.ID).
			SetReviewedAt(r.reviewed).
			Save(ctx)
		require.NoError(t, err)
	}

	board, err := service.Leaderboard(ctx, Period7d, 10)
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	assert.Equal(t, ids[0], board.Entries[0].UserID, "highest earnings first")
	assert.Equal(t, 10.0, board.Entries[0].TotalEarnings)

	// Tied at 5.00: earliest approval wins even though its user id is larger
	assert.Equal(t, ids[2], board.Entries[1].UserID)
	assert.Equal(t, ids[1], board.Entries[2].UserID)
	assert.Equal(t, board.Entries[1].TotalEarnings, board.Entries[2].TotalEarnings)

	for i, e := range board.Entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestLeaderboard_ClipWithSeveralPaliersCountsOnce(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	admin := mkUser(t, client, "admin@example.com", user.RoleAdmin)
	clipper := mkUser(t, client, "clipper@example.com", user.RoleClipper)

	m := mkMission(t, client, creator.ID, 0.12)
	sub := mkSubmission(t, client, m.ID, clipper.ID, 120000, submission.StatusApproved)

	// One clip climbed through two paliers. The board must reflect the
	// clip's highest validated tier, not the sum of both approvals.
	for _, d := range []struct {
		palier, views int
	}{
		{10000, 35000},
		{100000, 120000},
	} {
		_, err := client.ClipSubmission.Create().
			SetUserID(clipper.ID).
			SetMissionID(m.ID).
			SetSubmissionID(sub.ID).
			SetPalier(d.palier).
			SetViewsDeclared(d.views).
			SetTiktokLink("https://www.tiktok.com/@u/video/1").
			SetStatus("approved").
			SetReviewedBy(admin.ID).
			SetReviewedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	board, err := service.Leaderboard(ctx, PeriodAll, 10)
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)

	entry := board.Entries[0]
	assert.Equal(t, 1, entry.ClipsApproved)
	assert.Equal(t, 120000, entry.TotalViews)
	// 120000 views at 0.12 per 1000, paid once
	assert.Equal(t, 14.40, entry.TotalEarnings)
}

func TestLeaderboard_WindowExcludesOldApprovals(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	admin := mkUser(t, client, "admin@example.com", user.RoleAdmin)
	clipper := mkUser(t, client, "clipper@example.com", user.RoleClipper)

	m := mkMission(t, client, creator.ID, 0.10)
	sub := mkSubmission(t, client, m.ID, clipper.ID, 50000, submission.StatusApproved)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	_, err := client.ClipSubmission.Create().
		SetUserID(clipper.ID).
		SetMissionID(m.ID).
		SetSubmissionID(sub.ID).
		SetPalier(10000).
		SetViewsDeclared(50000).
		SetTiktokLink("https://www.tiktok.com/@u/video/1").
		SetStatus("approved").
		SetReviewedBy(admin.ID).
		SetReviewedAt(now.AddDate(0, 0, -10)).
		Save(ctx)
	require.NoError(t, err)

	board, err := service.Leaderboard(ctx, Period7d, 10)
	require.NoError(t, err)
	assert.Empty(t, board.Entries, "approval older than the window is excluded")

	all, err := service.Leaderboard(ctx, PeriodAll, 10)
	require.NoError(t, err)
	assert.Len(t, all.Entries, 1)
}

func TestMissionStats(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	m := mkMission(t, client, creator.ID, 0.12)

	c1 := mkUser(t, client, "one@example.com", user.RoleClipper)
	c2 := mkUser(t, client, "two@example.com", user.RoleClipper)
	c3 := mkUser(t, client, "three@example.com", user.RoleClipper)

	mkSubmission(t, client, m.ID, c1.ID, 35000, submission.StatusApproved)
	mkSubmission(t, client, m.ID, c2.ID, 0, submission.StatusPending)
	mkSubmission(t, client, m.ID, c3.ID, 0, submission.StatusRejected)

	_, err := m.Update().SetSpent(4.20).Save(ctx)
	require.NoError(t, err)

	stats, err := service.MissionStats(ctx, m.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSubmissions)
	assert.Equal(t, 1, stats.ApprovedClips)
	assert.Equal(t, 1, stats.PendingClips)
	assert.Equal(t, 1, stats.RejectedClips)
	assert.Equal(t, 35000, stats.TotalViews)
	assert.Equal(t, 4.20, stats.Spent)
	// 4.20 spent over 35000 views = 0.12 per 1000
	assert.Equal(t, 0.12, stats.CostPer1KViews)
}

func TestCreatorDashboard(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	clipper := mkUser(t, client, "clipper@example.com", user.RoleClipper)

	t.Run("Success - no activity yet", func(t *testing.T) {
		dash, err := service.CreatorDashboard(ctx, creator.ID, PeriodAll)
		require.NoError(t, err)
		assert.Equal(t, 0, dash.TotalMissions)
		assert.Equal(t, 0, dash.TotalViews)
	})

	t.Run("Success - approved views aggregate per mission", func(t *testing.T) {
		m := mkMission(t, client, creator.ID, 0.12)
		other := mkUser(t, client, "other@example.com", user.RoleClipper)
		mkSubmission(t, client, m.ID, clipper.ID, 35000, submission.StatusApproved)
		mkSubmission(t, client, m.ID, other.ID, 99999, submission.StatusPending)

		dash, err := service.CreatorDashboard(ctx, creator.ID, PeriodAll)
		require.NoError(t, err)
		assert.Equal(t, 1, dash.TotalMissions)
		assert.Equal(t, 35000, dash.TotalViews)
	})
}

func TestAdminOverview(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	creator := mkUser(t, client, "creator@example.com", user.RoleCreator)
	mkUser(t, client, "admin@example.com", user.RoleAdmin)
	clipper := mkUser(t, client, "clipper@example.com", user.RoleClipper)
	m := mkMission(t, client, creator.ID, 0.12)
	mkSubmission(t, client, m.ID, clipper.ID, 35000, submission.StatusApproved)

	overview, err := service.AdminOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalUsers)
	assert.Equal(t, 1, overview.TotalClippers)
	assert.Equal(t, 1, overview.TotalCreators)
	assert.Equal(t, 1, overview.ActiveMissions)
	assert.Equal(t, 35000, overview.TotalViewsApproved)
}
