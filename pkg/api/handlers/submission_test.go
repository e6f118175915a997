package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/submissions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionFixture(t *testing.T) (*SubmissionHandler, *testEnv, *ent.User, *ent.Mission) {
	env := newTestEnv(t)

	creator := env.createUser(t, "creator@cliptokk.com", "creator", user.RoleCreator)
	clipper := env.createUser(t, "clipper@cliptokk.com", "clipzilla", user.RoleClipper)

	m, err := env.db.Mission.Create().
		SetTitle("Clip my stream").
		SetDescription("Best moments only").
		SetCreatorID(creator.ID).
		SetPricePer1kViews(0.12).
		SetTotalBudget(100).
		Save(context.Background())
	require.NoError(t, err)

	handler := NewSubmissionHandler(
		submissions.NewService(env.db, env.cache),
		audit.NewService(env.db),
		metrics.NewWith(prometheus.NewRegistry()),
	)

	return handler, env, clipper, m
}

func TestSubmissionCreateEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, clipper, m := newSubmissionFixture(t)

		c, rec := newJSONContext(http.MethodPost, "/submissions", fmt.Sprintf(
			`{"mission_id":%d,"tiktok_url":"https://www.tiktok.com/@clipzilla/video/1"}`, m.ID))
		c.Set("user_id", clipper.ID)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "pending", decodeBody(t, rec)["status"])
	})

	t.Run("Failure - duplicate returns existing submission id", func(t *testing.T) {
		handler, _, clipper, m := newSubmissionFixture(t)

		body := fmt.Sprintf(`{"mission_id":%d,"tiktok_url":"https://www.tiktok.com/@clipzilla/video/1"}`, m.ID)
		c, rec := newJSONContext(http.MethodPost, "/submissions", body)
		c.Set("user_id", clipper.ID)
		require.NoError(t, handler.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		firstID := int(decodeBody(t, rec)["id"].(float64))

		c2, rec2 := newJSONContext(http.MethodPost, "/submissions", body)
		c2.Set("user_id", clipper.ID)
		require.NoError(t, handler.Create(c2))
		assert.Equal(t, http.StatusConflict, rec2.Code)

		conflict := decodeBody(t, rec2)
		assert.Equal(t, "ALREADY_SUBMITTED", conflict["error"])
		assert.Equal(t, float64(firstID), conflict["submission_id"])
	})

	t.Run("Failure - non-TikTok URL", func(t *testing.T) {
		handler, _, clipper, m := newSubmissionFixture(t)

		c, rec := newJSONContext(http.MethodPost, "/submissions", fmt.Sprintf(
			`{"mission_id":%d,"tiktok_url":"https://www.youtube.com/watch?v=x"}`, m.ID))
		c.Set("user_id", clipper.ID)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - unknown mission", func(t *testing.T) {
		handler, _, clipper, _ := newSubmissionFixture(t)

		c, rec := newJSONContext(http.MethodPost, "/submissions",
			`{"mission_id":9999,"tiktok_url":"https://www.tiktok.com/@clipzilla/video/1"}`)
		c.Set("user_id", clipper.ID)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmissionListMineEndpoint(t *testing.T) {
	handler, _, clipper, m := newSubmissionFixture(t)

	c, _ := newJSONContext(http.MethodPost, "/submissions", fmt.Sprintf(
		`{"mission_id":%d,"tiktok_url":"https://www.tiktok.com/@clipzilla/video/1"}`, m.ID))
	c.Set("user_id", clipper.ID)
	require.NoError(t, handler.Create(c))

	c2, rec2 := newJSONContext(http.MethodGet, "/submissions/mine", "")
	c2.Set("user_id", clipper.ID)
	require.NoError(t, handler.ListMine(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)

	body := decodeBody(t, rec2)
	assert.Len(t, body["data"], 1)
}
