package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type memStore struct {
	key  string
	data []byte
}

func (m *memStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.key = key
	m.data = data
	return "https://cdn.cliptokk.com/" + key, nil
}

func (m *memStore) Delete(context.Context, string) error { return nil }

var _ storage.Store = (*memStore)(nil)

func seed(t *testing.T, client *ent.Client) {
	ctx := context.Background()

	creator, err := client.User.Create().
		SetEmail("creator@cliptokk.com").
		SetPseudo("creator").
		SetPasswordHash("x").
		SetRole(user.RoleCreator).
		Save(ctx)
	require.NoError(t, err)

	clipper, err := client.User.Create().
		SetEmail("clipper@cliptokk.com").
		SetPseudo("clipzilla").
		SetPasswordHash("x").
		SetRole(user.RoleClipper).
		Save(ctx)
	require.NoError(t, err)

	m, err := client.Mission.Create().
		SetTitle("Stream highlights").
		SetDescription("Clip the best moments").
		SetCreatorID(creator.ID).
		SetPricePer1kViews(0.12).
		SetTotalBudget(500).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@clipzilla/video/1").
		SetViewsCount(35000).
		SetStatus(submission.StatusApproved).
		Save(ctx)
	require.NoError(t, err)

	other, err := client.User.Create().
		SetEmail("other@cliptokk.com").
		SetPseudo("other").
		SetPasswordHash("x").
		SetRole(user.RoleClipper).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(other.ID).
		SetTiktokURL("https://www.tiktok.com/@other/video/2").
		SetViewsCount(90000).
		SetStatus(submission.StatusPending).
		Save(ctx)
	require.NoError(t, err)
}

func TestSubmissionsWorkbook(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	seed(t, client)

	store := &memStore{}
	svc := NewService(client, store)

	res, err := svc.SubmissionsWorkbook(context.Background(), analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Contains(t, res.URL, "exports/submissions-all-")

	f, err := excelize.OpenReader(bytes.NewReader(store.data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Clipper", rows[0][1])

	// Approved row carries earnings, pending row does not
	assert.Equal(t, "clipzilla", rows[1][1])
	assert.Equal(t, "4,20", rows[1][6])
	assert.Equal(t, "approved", rows[1][7])
	assert.Equal(t, "0,00", rows[2][6])
}

func TestSubmissionsWorkbookPeriodFilter(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	seed(t, client)

	ctx := context.Background()

	// A submission outside the 7d window
	veteran, err := client.User.Create().
		SetEmail("veteran@cliptokk.com").
		SetPseudo("veteran").
		SetPasswordHash("x").
		SetRole(user.RoleClipper).
		Save(ctx)
	require.NoError(t, err)
	m, err := client.Mission.Query().First(ctx)
	require.NoError(t, err)
	_, err = client.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(veteran.ID).
		SetTiktokURL("https://www.tiktok.com/@veteran/video/3").
		SetViewsCount(1000).
		SetStatus(submission.StatusApproved).
		SetCreatedAt(time.Now().AddDate(0, 0, -60)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(client, &memStore{})
	res, err := svc.SubmissionsWorkbook(ctx, analytics.Period7d)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)

	res, err = svc.SubmissionsWorkbook(ctx, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rows)
}
