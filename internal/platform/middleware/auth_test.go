package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

type stubValidator struct {
	identity domain.Identity
	err      error
}

func (v *stubValidator) ValidateToken(string) (domain.Identity, error) {
	return v.identity, v.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caller := domain.Identity{0x42}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, caller, GetCaller(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		mw := RequireAuth(&stubValidator{identity: caller}, logger)
		req := httptest.NewRequest(http.MethodPost, "/v1/courses", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		mw := RequireAuth(&stubValidator{identity: caller}, logger)
		req := httptest.NewRequest(http.MethodPost, "/v1/courses", nil)
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		mw := RequireAuth(&stubValidator{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")}, logger)
		req := httptest.NewRequest(http.MethodPost, "/v1/courses", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetCallerWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/config", nil)
	assert.True(t, GetCaller(req.Context()).IsZero())
}
