package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T, env *testEnv) *ProfileHandler {
	store, err := storage.New(storage.Config{Type: "local", LocalDir: t.TempDir()})
	require.NoError(t, err)
	return NewProfileHandler(env.db, store)
}

func TestProfileUpdate(t *testing.T) {
	t.Run("Success - normalizes phone and handle", func(t *testing.T) {
		env := newTestEnv(t)
		h := newProfileHandler(t, env)
		u := env.createUser(t, "clip@cliptokk.com", "clipzilla", user.RoleClipper)

		c, rec := newJSONContext(http.MethodPatch, "/profile",
			`{"tiktok_username":"@clipzilla_tv","payout_phone":"06 12 34 56 78"}`)
		c.Set("user_id", u.ID)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		fresh, err := env.db.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh.TiktokUsername)
		assert.Equal(t, "clipzilla_tv", *fresh.TiktokUsername)
		require.NotNil(t, fresh.PayoutPhone)
		assert.Equal(t, "+33612345678", *fresh.PayoutPhone)
	})

	t.Run("Failure - invalid phone", func(t *testing.T) {
		env := newTestEnv(t)
		h := newProfileHandler(t, env)
		u := env.createUser(t, "clip@cliptokk.com", "clipzilla", user.RoleClipper)

		c, rec := newJSONContext(http.MethodPatch, "/profile",
			`{"payout_phone":"not-a-phone"}`)
		c.Set("user_id", u.ID)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_phone", decodeBody(t, rec)["error"])
	})

	t.Run("Failure - pseudo already taken", func(t *testing.T) {
		env := newTestEnv(t)
		h := newProfileHandler(t, env)
		env.createUser(t, "first@cliptokk.com", "taken", user.RoleClipper)
		u := env.createUser(t, "second@cliptokk.com", "second", user.RoleClipper)

		c, rec := newJSONContext(http.MethodPatch, "/profile", `{"pseudo":"taken"}`)
		c.Set("user_id", u.ID)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUploadAvatar(t *testing.T) {
	buildUpload := func(filename string, payload []byte) (*http.Request, error) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("avatar", filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(payload); err != nil {
			return nil, err
		}
		if err := writer.Close(); err != nil {
			return nil, err
		}
		req := httptest.NewRequest(http.MethodPost, "/profile/avatar", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		return req, nil
	}

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		h := newProfileHandler(t, env)
		u := env.createUser(t, "clip@cliptokk.com", "clipzilla", user.RoleClipper)

		req, err := buildUpload("me.png", []byte("png-bytes"))
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.Set("user_id", u.ID)

		require.NoError(t, h.UploadAvatar(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		fresh, err := env.db.User.Get(context.Background(), u.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh.AvatarURL)
		assert.Contains(t, *fresh.AvatarURL, "avatars/user-")
	})

	t.Run("Failure - unsupported extension", func(t *testing.T) {
		env := newTestEnv(t)
		h := newProfileHandler(t, env)
		u := env.createUser(t, "clip@cliptokk.com", "clipzilla", user.RoleClipper)

		req, err := buildUpload("script.svg", []byte("<svg/>"))
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.Set("user_id", u.ID)

		require.NoError(t, h.UploadAvatar(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unsupported_type", decodeBody(t, rec)["error"])
	})
}
