package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/auth"
	"github.com/cliptokk/api/pkg/email"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T, env *testEnv) *AuthHandler {
	return NewAuthHandler(
		env.db,
		env.cfg,
		auth.NewTokenBlacklist(env.cache),
		audit.NewService(env.db),
		email.NewService("noreply@cliptokk.com", "ClipTokk", "http://localhost:3000", ""),
		metrics.NewWith(prometheus.NewRegistry()),
	)
}

func TestRegister(t *testing.T) {
	t.Run("Success - clipper account with home path", func(t *testing.T) {
		env := newTestEnv(t)
		h := newAuthHandler(t, env)

		c, rec := newJSONContext(http.MethodPost, "/auth/register",
			`{"email":"clip@cliptokk.com","password":"supersecret","pseudo":"clipzilla","role":"clipper"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
		userBody := body["user"].(map[string]interface{})
		assert.Equal(t, "clipper", userBody["role"])
		assert.Equal(t, "/dashboard/clipper", userBody["home"])
		assert.Equal(t, false, userBody["email_verified"])
	})

	t.Run("Success - creator lands on creator dashboard", func(t *testing.T) {
		env := newTestEnv(t)
		h := newAuthHandler(t, env)

		c, rec := newJSONContext(http.MethodPost, "/auth/register",
			`{"email":"creator@cliptokk.com","password":"supersecret","pseudo":"streamer","role":"creator"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		userBody := decodeBody(t, rec)["user"].(map[string]interface{})
		assert.Equal(t, "/dashboard/creator", userBody["home"])
	})

	t.Run("Failure - admin role cannot self-register", func(t *testing.T) {
		env := newTestEnv(t)
		h := newAuthHandler(t, env)

		c, rec := newJSONContext(http.MethodPost, "/auth/register",
			`{"email":"evil@cliptokk.com","password":"supersecret","pseudo":"evil","role":"admin"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - duplicate email", func(t *testing.T) {
		env := newTestEnv(t)
		h := newAuthHandler(t, env)
		env.createUser(t, "taken@cliptokk.com", "first", user.RoleClipper)

		c, rec := newJSONContext(http.MethodPost, "/auth/register",
			`{"email":"taken@cliptokk.com","password":"supersecret","pseudo":"second","role":"clipper"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "user_exists", decodeBody(t, rec)["error"])
	})

	t.Run("Failure - short password", func(t *testing.T) {
		env := newTestEnv(t)
		h := newAuthHandler(t, env)

		c, rec := newJSONContext(http.MethodPost, "/auth/register",
			`{"email":"x@cliptokk.com","password":"short","pseudo":"shorty","role":"clipper"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	h := newAuthHandler(t, env)

	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)
	_, err = env.db.User.Create().
		SetEmail("login@cliptokk.com").
		SetPseudo("login").
		SetPasswordHash(hash).
		SetRole(user.RoleClipper).
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodPost, "/auth/login",
			`{"email":"login@cliptokk.com","password":"supersecret"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["token"])
	})

	t.Run("Failure - wrong password", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodPost, "/auth/login",
			`{"email":"login@cliptokk.com","password":"wrong"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid_credentials", decodeBody(t, rec)["error"])
	})

	t.Run("Failure - unknown email", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodPost, "/auth/login",
			`{"email":"nobody@cliptokk.com","password":"supersecret"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - soft-deleted account", func(t *testing.T) {
		deleted, err := env.db.User.Create().
			SetEmail("gone@cliptokk.com").
			SetPseudo("gone").
			SetPasswordHash(hash).
			SetRole(user.RoleClipper).
			SetDeletedAt(time.Now()).
			Save(context.Background())
		require.NoError(t, err)
		_ = deleted

		c, rec := newJSONContext(http.MethodPost, "/auth/login",
			`{"email":"gone@cliptokk.com","password":"supersecret"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	h := newAuthHandler(t, env)
	u := env.createUser(t, "me@cliptokk.com", "myself", user.RoleCreator)

	c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
	c.Set("user_id", u.ID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "myself", body["pseudo"])
	assert.Equal(t, "/dashboard/creator", body["home"])
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	h := newAuthHandler(t, env)
	u := env.createUser(t, "bye@cliptokk.com", "bye", user.RoleClipper)

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role), env.cfg.JWTSecret, env.cfg.JWTExpirationHours)
	require.NoError(t, err)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	c.Set("token", token)
	c.Set("user_id", u.ID)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Token is now blacklisted
	blacklist := auth.NewTokenBlacklist(env.cache)
	revoked, err := blacklist.IsBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestVerifyEmail(t *testing.T) {
	env := newTestEnv(t)
	h := newAuthHandler(t, env)

	u, err := env.db.User.Create().
		SetEmail("pending@cliptokk.com").
		SetPseudo("pending").
		SetPasswordHash("x").
		SetRole(user.RoleClipper).
		SetEmailVerificationToken("valid-token").
		SetEmailVerificationTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/auth/verify-email/valid-token", "")
		c.SetParamNames("token")
		c.SetParamValues("valid-token")

		require.NoError(t, h.VerifyEmail(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		fresh, err := env.db.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		assert.True(t, fresh.EmailVerified)
	})

	t.Run("Failure - unknown token", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/auth/verify-email/bogus", "")
		c.SetParamNames("token")
		c.SetParamValues("bogus")

		require.NoError(t, h.VerifyEmail(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - expired token", func(t *testing.T) {
		_, err := env.db.User.Create().
			SetEmail("late@cliptokk.com").
			SetPseudo("late").
			SetPasswordHash("x").
			SetRole(user.RoleClipper).
			SetEmailVerificationToken("expired-token").
			SetEmailVerificationTokenExpiresAt(time.Now().Add(-time.Hour)).
			Save(context.Background())
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/auth/verify-email/expired-token", "")
		c.SetParamNames("token")
		c.SetParamValues("expired-token")

		require.NoError(t, h.VerifyEmail(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "expired_token", decodeBody(t, rec)["error"])
	})
}
