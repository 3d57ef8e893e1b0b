package login_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/http/handlers/auth/login"
	"github.com/glotecht/glossary-api/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name: "successful login returns token",
			body: `{"email": "admin@example.com", "password": "secret"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "admin@example.com", "secret").
					Return("signed-token", nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"email": "admin@example.com"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email et mot de passe requis",
		},
		{
			name: "wrong credentials",
			body: `{"email": "admin@example.com", "password": "bad"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "admin@example.com", "bad").
					Return("", auth.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Email ou mot de passe incorrect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			handler := login.New(log, svc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.Equal(t, "signed-token", body["token"])
			}
			svc.AssertExpectations(t)
		})
	}
}
