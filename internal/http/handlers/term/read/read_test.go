package read_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/http/handlers/term/read"
	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/storage"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Read(ctx context.Context, id int) (*models.Term, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Term), args.Error(1)
}

func newRouter(svc *ServiceMock) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Get("/api/terms/{id}", read.New(log, svc).ServeHTTP)
	return r
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name: "existing term",
			url:  "/api/terms/7",
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, 7).
					Return(&models.Term{ID: 7, EnglishTerm: "data lake", FrenchTerm: "lac de données"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing term",
			url:  "/api/terms/99",
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, 99).Return(nil, storage.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Term with ID 99 not found.",
		},
		{
			name:       "non-numeric id",
			url:        "/api/terms/abc",
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid term id",
		},
		{
			name: "storage failure",
			url:  "/api/terms/7",
			setupMocks: func(s *ServiceMock) {
				s.On("Read", mock.Anything, 7).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to retrieve term",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.Equal(t, "data lake", body["english_term"])
			}
			svc.AssertExpectations(t)
		})
	}
}
