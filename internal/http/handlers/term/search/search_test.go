package search_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/http/handlers/term/search"
	"github.com/glotecht/glossary-api/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Search(ctx context.Context, query, searchType string) ([]*models.Term, error) {
	args := m.Called(ctx, query, searchType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Term), args.Error(1)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setupMocks func(s *ServiceMock)
		wantLen    int
	}{
		{
			name: "empty query returns empty array",
			url:  "/api/terms/search",
			setupMocks: func(s *ServiceMock) {
				s.On("Search", mock.Anything, "", "").
					Return([]*models.Term{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name: "query and type are forwarded",
			url:  "/api/terms/search?q=lake&type=term",
			setupMocks: func(s *ServiceMock) {
				s.On("Search", mock.Anything, "lake", "term").
					Return([]*models.Term{{ID: 1}, {ID: 2}}, nil).Once()
			},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			handler := search.New(log, svc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			// Списки отдаются голым JSON-массивом, без обёртки
			var body []json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body, tt.wantLen)
			svc.AssertExpectations(t)
		})
	}
}
