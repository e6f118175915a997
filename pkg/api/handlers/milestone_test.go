package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/email"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/milestones"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type milestoneFixture struct {
	env        *testEnv
	handler    *MilestoneHandler
	admin      *ent.User
	clipper    *ent.User
	mission    *ent.Mission
	submission *ent.Submission
}

func newMilestoneFixture(t *testing.T) *milestoneFixture {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createUser(t, "admin@cliptokk.com", "admin", user.RoleAdmin)
	creator := env.createUser(t, "creator@cliptokk.com", "creator", user.RoleCreator)
	clipper := env.createUser(t, "clipper@cliptokk.com", "clipzilla", user.RoleClipper)

	m, err := env.db.Mission.Create().
		SetTitle("Clip my stream").
		SetDescription("Best moments only").
		SetCreatorID(creator.ID).
		SetPricePer1kViews(0.12).
		SetTotalBudget(100).
		Save(ctx)
	require.NoError(t, err)

	sub, err := env.db.Submission.Create().
		SetMissionID(m.ID).
		SetUserID(clipper.ID).
		SetTiktokURL("https://www.tiktok.com/@clipzilla/video/1").
		SetStatus(submission.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	handler := NewMilestoneHandler(
		env.db,
		milestones.NewService(env.db, env.cache),
		audit.NewService(env.db),
		email.NewService("noreply@cliptokk.com", "ClipTokk", "http://localhost:3000", ""),
		metrics.NewWith(prometheus.NewRegistry()),
	)

	return &milestoneFixture{
		env:        env,
		handler:    handler,
		admin:      admin,
		clipper:    clipper,
		mission:    m,
		submission: sub,
	}
}

func (f *milestoneFixture) declare(t *testing.T, palier, views int) int {
	body := fmt.Sprintf(
		`{"mission_id":%d,"palier":%d,"views_declared":%d,"tiktok_link":"https://www.tiktok.com/@clipzilla/video/1"}`,
		f.mission.ID, palier, views)
	c, rec := newJSONContext(http.MethodPost, "/milestones", body)
	c.Set("user_id", f.clipper.ID)

	require.NoError(t, f.handler.Declare(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return int(decodeBody(t, rec)["id"].(float64))
}

func TestMilestoneDeclareEndpoint(t *testing.T) {
	t.Run("Success - declaration pending review", func(t *testing.T) {
		f := newMilestoneFixture(t)
		c, rec := newJSONContext(http.MethodPost, "/milestones", fmt.Sprintf(
			`{"mission_id":%d,"palier":10000,"views_declared":12000,"tiktok_link":"https://www.tiktok.com/@clipzilla/video/1"}`,
			f.mission.ID))
		c.Set("user_id", f.clipper.ID)

		require.NoError(t, f.handler.Declare(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, float64(10000), body["palier"])
	})

	t.Run("Failure - palier outside the fixed tiers", func(t *testing.T) {
		f := newMilestoneFixture(t)
		c, rec := newJSONContext(http.MethodPost, "/milestones", fmt.Sprintf(
			`{"mission_id":%d,"palier":50000,"views_declared":60000,"tiktok_link":"https://www.tiktok.com/@clipzilla/video/1"}`,
			f.mission.ID))
		c.Set("user_id", f.clipper.ID)

		require.NoError(t, f.handler.Declare(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - views below palier", func(t *testing.T) {
		f := newMilestoneFixture(t)
		c, rec := newJSONContext(http.MethodPost, "/milestones", fmt.Sprintf(
			`{"mission_id":%d,"palier":100000,"views_declared":90000,"tiktok_link":"https://www.tiktok.com/@clipzilla/video/1"}`,
			f.mission.ID))
		c.Set("user_id", f.clipper.ID)

		require.NoError(t, f.handler.Declare(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMilestoneApproveEndpoint(t *testing.T) {
	t.Run("Success - earnings credited", func(t *testing.T) {
		f := newMilestoneFixture(t)
		msID := f.declare(t, 10000, 35000)

		c, rec := newJSONContext(http.MethodPost, "/admin/milestones/approve", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(msID))
		c.Set("user_id", f.admin.ID)

		require.NoError(t, f.handler.Approve(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "approved", body["status"])
		assert.InDelta(t, 4.20, body["earnings"].(float64), 0.001)

		// Views back-propagated to the submission
		sub, err := f.env.db.Submission.Get(context.Background(), f.submission.ID)
		require.NoError(t, err)
		assert.Equal(t, 35000, sub.ViewsCount)
		assert.Equal(t, submission.StatusApproved, sub.Status)
	})

	t.Run("Failure - second admin gets conflict", func(t *testing.T) {
		f := newMilestoneFixture(t)
		msID := f.declare(t, 10000, 35000)

		c, rec := newJSONContext(http.MethodPost, "/admin/milestones/approve", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(msID))
		c.Set("user_id", f.admin.ID)
		require.NoError(t, f.handler.Approve(c))
		require.Equal(t, http.StatusOK, rec.Code)

		second := env2ndAdmin(t, f.env)
		c2, rec2 := newJSONContext(http.MethodPost, "/admin/milestones/approve", "")
		c2.SetParamNames("id")
		c2.SetParamValues(fmt.Sprint(msID))
		c2.Set("user_id", second.ID)

		require.NoError(t, f.handler.Approve(c2))
		assert.Equal(t, http.StatusConflict, rec2.Code)
	})

	t.Run("Failure - unknown milestone", func(t *testing.T) {
		f := newMilestoneFixture(t)

		c, rec := newJSONContext(http.MethodPost, "/admin/milestones/approve", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")
		c.Set("user_id", f.admin.ID)

		require.NoError(t, f.handler.Approve(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMilestoneRejectEndpoint(t *testing.T) {
	f := newMilestoneFixture(t)
	msID := f.declare(t, 10000, 35000)

	c, rec := newJSONContext(http.MethodPost, "/admin/milestones/reject",
		`{"reason":"View count does not match the clip"}`)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(msID))
	c.Set("user_id", f.admin.ID)

	require.NoError(t, f.handler.Reject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rejected", decodeBody(t, rec)["status"])

	// No earnings were credited
	clipper, err := f.env.db.User.Get(context.Background(), f.clipper.ID)
	require.NoError(t, err)
	assert.Zero(t, clipper.TotalEarnings)
}

func env2ndAdmin(t *testing.T, env *testEnv) *ent.User {
	return env.createUser(t, "admin2@cliptokk.com", "admin2", user.RoleAdmin)
}
