package term_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glotecht/glossary-api/internal/models"
	"github.com/glotecht/glossary-api/internal/services/term"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) SearchTerms(ctx context.Context, query string, searchType models.SearchType) ([]*models.Term, error) {
	args := m.Called(ctx, query, searchType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Term), args.Error(1)
}

func (m *RepoMock) ListTerms(ctx context.Context) ([]*models.Term, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Term), args.Error(1)
}

func (m *RepoMock) ReadTerm(ctx context.Context, id int) (*models.Term, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Term), args.Error(1)
}

func (m *RepoMock) CreateTerm(ctx context.Context, entry models.Term) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) UpdateTerm(ctx context.Context, entry models.Term, id int) error {
	args := m.Called(ctx, entry, id)
	return args.Error(0)
}

func (m *RepoMock) RemoveTerm(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RepoMock) ListTermNames(ctx context.Context) ([]models.TermName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TermName), args.Error(1)
}

func (m *RepoMock) ListSemanticLabels(ctx context.Context) ([]models.LabelPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabelPair), args.Error(1)
}

func newService(repo *RepoMock) *term.Service {
	return term.New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Search(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		searchType string
		setupMocks func(r *RepoMock)
		wantLen    int
		wantErr    bool
	}{
		{
			name:       "empty query short-circuits without repository call",
			query:      "   ",
			searchType: "term",
			setupMocks: func(_ *RepoMock) {},
			wantLen:    0,
		},
		{
			name:       "query is trimmed and type parsed",
			query:      "  data lake ",
			searchType: "term",
			setupMocks: func(r *RepoMock) {
				r.On("SearchTerms", mock.Anything, "data lake", models.SearchTerm).
					Return([]*models.Term{{ID: 1}}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name:       "unknown type falls back to default search",
			query:      "chain",
			searchType: "bogus",
			setupMocks: func(r *RepoMock) {
				r.On("SearchTerms", mock.Anything, "chain", models.SearchDefault).
					Return([]*models.Term{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name:       "nil result becomes empty slice",
			query:      "nothing",
			searchType: "",
			setupMocks: func(r *RepoMock) {
				r.On("SearchTerms", mock.Anything, "nothing", models.SearchDefault).
					Return([]*models.Term(nil), nil).Once()
			},
			wantLen: 0,
		},
		{
			name:       "repository error",
			query:      "x",
			searchType: "",
			setupMocks: func(r *RepoMock) {
				r.On("SearchTerms", mock.Anything, "x", models.SearchDefault).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)
			svc := newService(repo)

			got, err := svc.Search(context.Background(), tt.query, tt.searchType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Len(t, got, tt.wantLen)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_SemanticLabels(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListSemanticLabels", mock.Anything).Return([]models.LabelPair{
		{EN: "Noun [nom]", FR: "Nom [noun]"},
		{EN: "noun [NOM]", FR: "nom"},
		{EN: "Verb", FR: "Verbe"},
	}, nil).Once()
	svc := newService(repo)

	got, err := svc.SemanticLabels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.LabelPair{
		{EN: "Noun", FR: "Nom"},
		{EN: "Verb", FR: "Verbe"},
	}, got)
	repo.AssertExpectations(t)
}

func TestService_Create(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateTerm", mock.Anything, mock.MatchedBy(func(entry models.Term) bool {
		return entry.EnglishTerm == "data lake" && entry.FrenchTerm == "lac de données"
	})).Return(15, nil).Once()
	svc := newService(repo)

	got, err := svc.Create(context.Background(), models.TermInput{
		DomainEN:    "Big Data",
		DomainFR:    "Big Data",
		EnglishTerm: "  data lake ",
		FrenchTerm:  "lac de données",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, got.ID)
	assert.Equal(t, "data lake", got.EnglishTerm)
	repo.AssertExpectations(t)
}

func TestService_Create_RejectsBlankTerms(t *testing.T) {
	tests := []struct {
		name    string
		input   models.TermInput
		wantErr error
	}{
		{
			name: "whitespace-only english term",
			input: models.TermInput{
				DomainEN:    "Big Data",
				DomainFR:    "Big Data",
				EnglishTerm: "   ",
				FrenchTerm:  "lac de données",
			},
			wantErr: term.ErrEnglishTermRequired,
		},
		{
			name: "whitespace-only french term",
			input: models.TermInput{
				DomainEN:    "Big Data",
				DomainFR:    "Big Data",
				EnglishTerm: "data lake",
				FrenchTerm:  "\t ",
			},
			wantErr: term.ErrFrenchTermRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := newService(repo)

			got, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
			repo.AssertNotCalled(t, "CreateTerm", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_RejectsBlankTerms(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	got, err := svc.Update(context.Background(), models.TermInput{
		DomainEN:    "AI",
		DomainFR:    "IA",
		EnglishTerm: " ",
		FrenchTerm:  "jeton",
	}, 3)
	assert.ErrorIs(t, err, term.ErrEnglishTermRequired)
	assert.Nil(t, got)
	repo.AssertNotCalled(t, "UpdateTerm", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UpdateTerm", mock.Anything, mock.Anything, 3).Return(nil).Once()
	svc := newService(repo)

	got, err := svc.Update(context.Background(), models.TermInput{
		DomainEN:    "AI",
		DomainFR:    "IA",
		EnglishTerm: "token",
		FrenchTerm:  "jeton",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ID)
	repo.AssertExpectations(t)
}

func TestService_List_NilBecomesEmpty(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListTerms", mock.Anything).Return([]*models.Term(nil), nil).Once()
	svc := newService(repo)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
	repo.AssertExpectations(t)
}
