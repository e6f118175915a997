package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cliptokk/api/pkg/domain"
	"github.com/cliptokk/api/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder for the
// given HTTP method and path. It returns both the context and the recorder so
// callers can inspect the written response.
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// parseBody is a small helper that unmarshals the recorder body into an
// ErrorResponse, failing the test on any JSON error.
func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestValidationError(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/auth/register")
	err := ValidationError(c, errors.New("field 'email' is required"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error)
	// Internal detail must not leak to the client
	assert.NotContains(t, resp.Message, "email")
}

func TestDatabaseError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/missions")
	err := DatabaseError(c, errors.New("pq: connection refused"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "database_error", resp.Error)
	assert.NotContains(t, resp.Message, "pq:")
}

func TestConflictError_ExposesMessage(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/missions")
	_ = ConflictError(c, "Mission already completed")
	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "Mission already completed", resp.Message)
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found maps to 404",
			err:        domain.NewNotFoundError("mission"),
			wantStatus: http.StatusNotFound,
			wantError:  domain.ErrCodeNotFound,
		},
		{
			name:       "validation maps to 400",
			err:        domain.NewValidationError("views_declared must be positive"),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrCodeValidation,
		},
		{
			name:       "already decided maps to 409",
			err:        domain.NewAlreadyDecidedError(),
			wantStatus: http.StatusConflict,
			wantError:  domain.ErrCodeAlreadyDecided,
		},
		{
			name:       "insufficient balance maps to 400",
			err:        domain.NewInsufficientBalanceError(4.20),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.ErrCodeInsufficientBalance,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  domain.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/v1/milestones/1/approve")
			require.NoError(t, DomainErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, parseBody(t, rec).Error)
		})
	}
}

func TestDomainErrorResponse_AlreadySubmittedCarriesID(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/submissions")
	err := DomainErrorResponse(c, domain.NewAlreadySubmittedError(42))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp models.AlreadySubmittedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrCodeAlreadySubmitted, resp.Error)
	assert.Equal(t, 42, resp.SubmissionID)
}
