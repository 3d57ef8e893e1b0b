package glossary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/glotecht/glossary-api/internal/config"
	"github.com/glotecht/glossary-api/internal/lib/jwt"
	"github.com/glotecht/glossary-api/internal/models"
	authservice "github.com/glotecht/glossary-api/internal/services/auth"
	termservice "github.com/glotecht/glossary-api/internal/services/term"
	userservice "github.com/glotecht/glossary-api/internal/services/user"
	"github.com/glotecht/glossary-api/internal/storage"
)

// repoStub отвечает пустыми данными на все запросы хранилища.
type repoStub struct{}

func (repoStub) SearchTerms(context.Context, string, models.SearchType) ([]*models.Term, error) {
	return nil, nil
}
func (repoStub) ListTerms(context.Context) ([]*models.Term, error)      { return nil, nil }
func (repoStub) ReadTerm(context.Context, int) (*models.Term, error)    { return nil, storage.ErrNotFound }
func (repoStub) CreateTerm(context.Context, models.Term) (int, error)   { return 1, nil }
func (repoStub) UpdateTerm(context.Context, models.Term, int) error     { return nil }
func (repoStub) RemoveTerm(context.Context, int) error                  { return nil }
func (repoStub) ListTermNames(context.Context) ([]models.TermName, error) {
	return nil, nil
}
func (repoStub) ListSemanticLabels(context.Context) ([]models.LabelPair, error) {
	return nil, nil
}
func (repoStub) CreateUser(context.Context, models.User) (int, error) { return 1, nil }
func (repoStub) ReadUser(context.Context, int) (*models.User, error) {
	return nil, storage.ErrNotFound
}
func (repoStub) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, storage.ErrNotFound
}
func (repoStub) ListUsers(context.Context) ([]*models.User, error)  { return nil, nil }
func (repoStub) UpdateUser(context.Context, models.User, int) error { return nil }
func (repoStub) UpdateUserPassword(context.Context, int, string) error {
	return nil
}
func (repoStub) RemoveUser(context.Context, int) error { return nil }

func newTestRouter(enableMutations bool) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{EnableMutations: enableMutations}
	maker := jwt.NewMaker("test-secret", time.Hour)
	repo := repoStub{}

	router := chi.NewRouter()
	RegisterRoutes(router, log, cfg, maker,
		termservice.New(repo, log),
		userservice.New(repo, log),
		authservice.New(repo, maker, log))
	return router
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(false)

	for _, url := range []string{"/api", "/api/terms", "/api/terms/search", "/api/terms/list",
		"/api/terms/semantic-labels", "/api/terms/xml", "/api/terms/csv"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", url)
	}
}

func TestMutationRoutesDisabledByDefault(t *testing.T) {
	router := newTestRouter(false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/terms", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMutationRoutesRequireToken(t *testing.T) {
	router := newTestRouter(true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/terms", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotFoundShapes(t *testing.T) {
	router := newTestRouter(false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
