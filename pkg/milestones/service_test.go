package milestones

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/ent/wallettransaction"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

type fixture struct {
	service *Service
	client  *ent.Client
	admin   *ent.User
	creator *ent.User
	clipper *ent.User
	mission *ent.Mission
	sub     *ent.Submission
}

func setup(t *testing.T) *fixture {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	ctx := context.Background()
	mkUser := func(email string, role user.Role) *ent.User {
		u, err := client.User.Create().
			SetEmail(email).
			SetPasswordHash("x").
			SetPseudo(email[:6]).
			SetRole(role).
			Save(ctx)
		require.NoError(t, err)
		return u
	}

	f := &fixture{
		service: NewService(client, cacheClient),
		client:  client,
		admin:   mkUser("admin@example.com", user.RoleAdmin),
		creator: mkUser("creator@example.com", user.RoleCreator),
		clipper: mkUser("clipper@example.com", user.RoleClipper),
	}

	f.mission, err = client.Mission.Create().
		SetTitle("Clip the podcast").
		SetDescription("Best 30 second moments").
		SetCreatorID(f.creator.ID).
		SetPricePer1kViews(0.12).
		SetTotalBudget(100).
		Save(ctx)
	require.NoError(t, err)

	f.sub, err = client.Submission.Create().
		SetMissionID(f.mission.ID).
		SetUserID(f.clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@clipper/video/7301234567890123456").
		Save(ctx)
	require.NoError(t, err)

	return f
}

func (f *fixture) declare(t *testing.T, palier, views int) *models.MilestoneResponse {
	ms, err := f.service.Declare(context.Background(), f.clipper.ID, models.DeclareMilestoneRequest{
		MissionID:     f.mission.ID,
		Palier:        palier,
		ViewsDeclared: views,
		TiktokLink:    "https://www.tiktok.com/@clipper/video/7301234567890123456",
	})
	require.NoError(t, err)
	return ms
}

func TestDeclare(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	t.Run("Success - valid palier declaration", func(t *testing.T) {
		ms := f.declare(t, 10000, 35000)
		assert.Equal(t, "pending", ms.Status)
		assert.Equal(t, f.sub.ID, ms.SubmissionID)
	})

	t.Run("Failure - same palier declared twice", func(t *testing.T) {
		_, err := f.service.Declare(ctx, f.clipper.ID, models.DeclareMilestoneRequest{
			MissionID:     f.mission.ID,
			Palier:        10000,
			ViewsDeclared: 40000,
			TiktokLink:    "https://www.tiktok.com/@clipper/video/7301234567890123456",
		})
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Success - higher palier still open", func(t *testing.T) {
		ms := f.declare(t, 100000, 120000)
		assert.Equal(t, 100000, ms.Palier)
	})

	t.Run("Failure - palier not in the fixed tiers", func(t *testing.T) {
		_, err := f.service.Declare(ctx, f.clipper.ID, models.DeclareMilestoneRequest{
			MissionID:     f.mission.ID,
			Palier:        50000,
			ViewsDeclared: 60000,
			TiktokLink:    "https://www.tiktok.com/@clipper/video/7301234567890123456",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - declared views below palier", func(t *testing.T) {
		_, err := f.service.Declare(ctx, f.clipper.ID, models.DeclareMilestoneRequest{
			MissionID:     f.mission.ID,
			Palier:        1000000,
			ViewsDeclared: 900000,
			TiktokLink:    "https://www.tiktok.com/@clipper/video/7301234567890123456",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - no submission to the mission", func(t *testing.T) {
		stranger, err := f.client.User.Create().
			SetEmail("stranger@example.com").
			SetPasswordHash("x").
			SetPseudo("stranger").
			SetRole(user.RoleClipper).
			Save(ctx)
		require.NoError(t, err)

		_, err = f.service.Declare(ctx, stranger.ID, models.DeclareMilestoneRequest{
			MissionID:     f.mission.ID,
			Palier:        10000,
			ViewsDeclared: 15000,
			TiktokLink:    "https://www.tiktok.com/@stranger/video/1",
		})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestApprove(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ms := f.declare(t, 10000, 35000)

	result, err := f.service.Approve(ctx, f.admin.ID, ms.ID)
	require.NoError(t, err)

	t.Run("earnings follow the per-1k rate", func(t *testing.T) {
		// 35000 views at 0.12 EUR per 1000 views
		assert.Equal(t, 4.20, result.Earnings)
		assert.Equal(t, "approved", result.Milestone.Status)
		assert.Equal(t, f.admin.ID, result.Milestone.ReviewedBy)
	})

	t.Run("declared views back-propagate to the submission", func(t *testing.T) {
		sub, err := f.client.Submission.Get(ctx, f.sub.ID)
		require.NoError(t, err)
		assert.Equal(t, 35000, sub.ViewsCount)
		assert.Equal(t, submission.StatusApproved, sub.Status)
	})

	t.Run("wallet earning recorded", func(t *testing.T) {
		txs, err := f.client.WalletTransaction.Query().
			Where(wallettransaction.UserID(f.clipper.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, wallettransaction.TypeEarning, txs[0].Type)
		assert.Equal(t, 4.20, txs[0].Amount)
		assert.Equal(t, wallettransaction.StatusCompleted, txs[0].Status)
	})

	t.Run("clipper total and mission spend move together", func(t *testing.T) {
		clipper, err := f.client.User.Get(ctx, f.clipper.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.20, clipper.TotalEarnings)

		mission, err := f.client.Mission.Get(ctx, f.mission.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.20, mission.Spent)
		assert.Equal(t, "active", string(mission.Status))
	})
}

func TestApprove_SecondPalierCreditsDelta(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.declare(t, 10000, 35000)
	result, err := f.service.Approve(ctx, f.admin.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.20, result.Earnings)

	// The 100k palier on the same clip pays only the views the 10k
	// approval has not already paid: 120000 at 0.12 is 14.40 total,
	// minus the 4.20 already credited.
	second := f.declare(t, 100000, 120000)
	result, err = f.service.Approve(ctx, f.admin.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.20, result.Earnings)

	t.Run("wallet holds one earning per approval, summing to the clip's worth", func(t *testing.T) {
		txs, err := f.client.WalletTransaction.Query().
			Where(wallettransaction.UserID(f.clipper.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 2)

		var total float64
		for _, tx := range txs {
			total += tx.Amount
		}
		assert.Equal(t, 14.40, total)
	})

	t.Run("clipper total and mission spend match the wallet", func(t *testing.T) {
		clipper, err := f.client.User.Get(ctx, f.clipper.ID)
		require.NoError(t, err)
		assert.Equal(t, 14.40, clipper.TotalEarnings)

		mission, err := f.client.Mission.Get(ctx, f.mission.ID)
		require.NoError(t, err)
		assert.Equal(t, 14.40, mission.Spent)
	})

	t.Run("submission carries the highest validated views", func(t *testing.T) {
		sub, err := f.client.Submission.Get(ctx, f.sub.ID)
		require.NoError(t, err)
		assert.Equal(t, 120000, sub.ViewsCount)
		assert.Equal(t, submission.StatusApproved, sub.Status)
	})
}

func TestApprove_FirstAdminWins(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ms := f.declare(t, 10000, 35000)

	_, err := f.service.Approve(ctx, f.admin.ID, ms.ID)
	require.NoError(t, err)

	// A second decision on the same declaration must surface as a conflict,
	// not silently apply twice.
	_, err = f.service.Approve(ctx, f.admin.ID, ms.ID)
	require.Error(t, err)
	assert.True(t, domain.IsAlreadyDecided(err))

	_, err = f.service.Reject(ctx, f.admin.ID, ms.ID, "changed my mind")
	require.Error(t, err)
	assert.True(t, domain.IsAlreadyDecided(err))

	// Earnings were applied exactly once
	clipper, err := f.client.User.Get(ctx, f.clipper.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.20, clipper.TotalEarnings)
}

func TestApprove_ExhaustsBudget(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// 1,000,000 views at 0.12 = 120 EUR, above the 100 EUR budget
	ms := f.declare(t, 1000000, 1000000)

	result, err := f.service.Approve(ctx, f.admin.ID, ms.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", result.MissionStatus)
}

func TestReject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ms := f.declare(t, 10000, 35000)

	rejected, err := f.service.Reject(ctx, f.admin.ID, ms.ID, "views look botted")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	// Rejection leaves everything else untouched
	sub, err := f.client.Submission.Get(ctx, f.sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.ViewsCount)
	assert.Equal(t, submission.StatusPending, sub.Status)

	count, err := f.client.WalletTransaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	clipper, err := f.client.User.Get(ctx, f.clipper.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, clipper.TotalEarnings)
}

func TestReject_UnknownMilestone(t *testing.T) {
	f := setup(t)
	_, err := f.service.Reject(context.Background(), f.admin.ID, 99999, "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListPending(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.declare(t, 10000, 15000)
	second := f.declare(t, 100000, 150000)

	result, err := f.service.ListPending(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, result.Pagination.Total)
	// Oldest first so the review queue drains fairly
	assert.Equal(t, first.ID, result.Data[0].ID)
	assert.Equal(t, second.ID, result.Data[1].ID)

	_, err = f.service.Approve(ctx, f.admin.ID, first.ID)
	require.NoError(t, err)

	result, err = f.service.ListPending(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Total)
}
