package submissions

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/domain"
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
	require.NoError(t, err)

	return NewService(client, cacheClient), client
}

func createUser(t *testing.T, client *ent.Client, email string, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetPseudo(email[:8]).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createMission(t *testing.T, client *ent.Client, creatorID int, rate, budget float64) *ent.Mission {
	m, err := client.Mission.Create().
		SetTitle("Clip this stream").
		SetDescription("Best moments only").
		SetCreatorID(creatorID).
		SetPricePer1kViews(rate).
		SetTotalBudget(budget).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func TestCreate(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := createUser(t, client, "creator@example.com", user.RoleCreator)
	clipper := createUser(t, client, "clipper@example.com", user.RoleClipper)
	m := createMission(t, client, creator.ID, 0.12, 100)

	t.Run("Success - first submission", func(t *testing.T) {
		sub, err := service.Create(ctx, clipper.ID, models.CreateSubmissionRequest{
			MissionID: m.ID,
			TiktokURL: "https://www.tiktok.com/@clipper/video/7301234567890123456",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", sub.Status)
		assert.Equal(t, 0, sub.ViewsCount)
		assert.Equal(t, 0.0, sub.Earnings, "pending submission has no earnings yet")
	})

	t.Run("Failure - duplicate carries existing submission id", func(t *testing.T) {
		existing, err := service.ListByUser(ctx, clipper.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, existing.Data, 1)

		_, err = service.Create(ctx, clipper.ID, models.CreateSubmissionRequest{
			MissionID: m.ID,
			TiktokURL: "https://www.tiktok.com/@clipper/video/7309999999999999999",
		})
		require.Error(t, err)
		assert.True(t, domain.IsAlreadySubmitted(err))

		var dup *domain.AlreadySubmittedError
		require.True(t, domain.AsAlreadySubmitted(err, &dup))
		assert.Equal(t, existing.Data[0].ID, dup.SubmissionID)
	})

	t.Run("Failure - non-tiktok URL rejected", func(t *testing.T) {
		other := createUser(t, client, "other@example.com", user.RoleClipper)
		_, err := service.Create(ctx, other.ID, models.CreateSubmissionRequest{
			MissionID: m.ID,
			TiktokURL: "https://www.youtube.com/watch?v=abc",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - paused mission rejects submissions", func(t *testing.T) {
		paused := createMission(t, client, creator.ID, 0.10, 50)
		_, err := paused.Update().SetStatus("paused").Save(ctx)
		require.NoError(t, err)

		other := createUser(t, client, "late@example.com", user.RoleClipper)
		_, err = service.Create(ctx, other.ID, models.CreateSubmissionRequest{
			MissionID: paused.ID,
			TiktokURL: "https://www.tiktok.com/@late/video/7301111111111111111",
		})
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Failure - unknown mission", func(t *testing.T) {
		_, err := service.Create(ctx, clipper.ID, models.CreateSubmissionRequest{
			MissionID: 99999,
			TiktokURL: "https://www.tiktok.com/@x/video/7301111111111111112",
		})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestDuplicateGuard_UniqueIndexBackstop(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := createUser(t, client, "creator@example.com", user.RoleCreator)
	clipper := createUser(t, client, "clipper@example.com", user.RoleClipper)
	m := createMission(t, client, creator.ID, 0.12, 100)

	// Insert directly, bypassing the service pre-check, then verify the
	// database itself refuses a second row for the same pair.
	first, err := client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@clipper/video/1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@clipper/video/2").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// The service maps the same race to the conflict carrying the winner's id
	_, err = service.Create(ctx, clipper.ID, models.CreateSubmissionRequest{
		MissionID: m.ID,
		TiktokURL: "https://www.tiktok.com/@clipper/video/3",
	})
	var dup *domain.AlreadySubmittedError
	require.True(t, domain.AsAlreadySubmitted(err, &dup))
	assert.Equal(t, first.ID, dup.SubmissionID)
}

func TestListByMission(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	creator := createUser(t, client, "creator@example.com", user.RoleCreator)
	m := createMission(t, client, creator.ID, 0.12, 100)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		clipper := createUser(t, client, email, user.RoleClipper)
		_, err := service.Create(ctx, clipper.ID, models.CreateSubmissionRequest{
			MissionID: m.ID,
			TiktokURL: "https://www.tiktok.com/@u/video/730000000000000000" + string(rune('0'+i)),
		})
		require.NoError(t, err)
	}

	result, err := service.ListByMission(ctx, m.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Pagination.Total)
	for _, sub := range result.Data {
		assert.Equal(t, m.ID, sub.MissionID)
		assert.Equal(t, "Clip this stream", sub.MissionTitle)
	}
}

func TestMarkPaid(t *testing.T) {
	_, client := setupTestService(t)
	ctx := context.Background()
	creator := createUser(t, client, "creator@example.com", user.RoleCreator)
	clipper := createUser(t, client, "clipper@example.com", user.RoleClipper)
	m := createMission(t, client, creator.ID, 0.12, 100)
	m2 := createMission(t, client, creator.ID, 0.15, 100)

	_, err := client.Submission.Create().
		SetMissionID(m.ID).SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@c/video/1").
		SetStatus("approved").SetViewsCount(35000).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Submission.Create().
		SetMissionID(m2.ID).SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@c/video/2").
		Save(ctx)
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	n, err := MarkPaid(ctx, tx, clipper.ID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// Only the approved one flips; the pending one stays pending
	assert.Equal(t, 1, n)
}
