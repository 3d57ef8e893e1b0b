package middlewarectx_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/http/middlewarectx"
	"github.com/glotecht/glossary-api/internal/lib/jwt"
)

func newProtected(maker jwt.Maker) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(middlewarectx.User).(string)
		userID, _ := r.Context().Value(middlewarectx.UserID).(int)
		w.Header().Set("X-Username", username)
		if userID == 42 {
			w.Header().Set("X-User-ID", "42")
		}
		w.WriteHeader(http.StatusOK)
	})
	return middlewarectx.JWTMiddleware(maker, log)(next)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)

	t.Run("valid token populates context", func(t *testing.T) {
		token, err := maker.GenerateToken(42, "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/terms", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newProtected(maker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Header().Get("X-Username"))
		assert.Equal(t, "42", rec.Header().Get("X-User-ID"))
	})

	t.Run("missing header yields json 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/terms", nil)
		rec := httptest.NewRecorder()
		newProtected(maker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "missing or invalid authorization header", body["error"])
	})

	t.Run("invalid token yields json 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/terms", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		newProtected(maker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("browser client is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()
		newProtected(maker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?next=%2Fapi%2Fusers%2F1", rec.Header().Get("Location"))
	})
}
