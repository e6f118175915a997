package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cliptokk/api/config"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/enttest"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// testEnv bundles what most handler tests need
type testEnv struct {
	db    *ent.Client
	cache *cache.Client
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	return &testEnv{
		db:    client,
		cache: cacheClient,
		cfg: &config.Config{
			JWTSecret:          "test-secret",
			JWTExpirationHours: 24,
		},
	}
}

func (env *testEnv) createUser(t *testing.T, email, pseudo string, role user.Role) *ent.User {
	u, err := env.db.User.Create().
		SetEmail(email).
		SetPseudo(pseudo).
		SetPasswordHash("$2a$10$test_hash").
		SetRole(role).
		SetEmailVerified(true).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// newJSONContext builds an echo context carrying a JSON body
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
