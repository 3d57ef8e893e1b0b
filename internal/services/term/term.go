// Package term содержит бизнес-логику каталога терминов: поиск по типам,
// листинги, справочник семантических меток и мутации записей.
package term

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/glotecht/glossary-api/internal/lib/labels"
	"github.com/glotecht/glossary-api/internal/models"
)

// Ошибки валидации обязательных терминов. Оба термина проверяются после
// очистки от пробелов: строка из одних пробелов считается пустой.
var (
	ErrEnglishTermRequired = errors.New("english term is required")
	ErrFrenchTermRequired  = errors.New("french term is required")
)

// Repository определяет методы для работы с терминами в хранилище.
type Repository interface {
	// SearchTerms возвращает термины, подходящие под запрос для типа поиска.
	SearchTerms(ctx context.Context, query string, searchType models.SearchType) ([]*models.Term, error)
	// ListTerms возвращает весь каталог, упорядоченный по английскому термину.
	ListTerms(ctx context.Context) ([]*models.Term, error)
	// ReadTerm возвращает термин по ID.
	ReadTerm(ctx context.Context, id int) (*models.Term, error)
	// CreateTerm добавляет новый термин и возвращает его ID.
	CreateTerm(ctx context.Context, term models.Term) (int, error)
	// UpdateTerm перезаписывает поля термина по ID.
	UpdateTerm(ctx context.Context, term models.Term, id int) error
	// RemoveTerm удаляет термин по ID.
	RemoveTerm(ctx context.Context, id int) error
	// ListTermNames возвращает пары (EN, FR) в порядке английского термина.
	ListTermNames(ctx context.Context) ([]models.TermName, error)
	// ListSemanticLabels возвращает различные пары меток с заполненными сторонами.
	ListSemanticLabels(ctx context.Context) ([]models.LabelPair, error)
}

// Service реализует бизнес-логику каталога терминов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service поверх репозитория терминов.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Search выполняет поиск по каталогу. Пустой или пробельный запрос — не
// ошибка: возвращается пустой список. Неизвестный тип поиска трактуется
// как поиск по умолчанию (широкий набор полей).
func (s *Service) Search(ctx context.Context, rawQuery, rawType string) ([]*models.Term, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return []*models.Term{}, nil
	}

	searchType := models.ParseSearchType(rawType)
	result, err := s.repo.SearchTerms(ctx, query, searchType)
	if err != nil {
		return nil, err
	}
	s.log.Info("search executed",
		slog.String("query", query),
		slog.String("type", string(searchType)),
		slog.Int("matches", len(result)))
	if result == nil {
		result = []*models.Term{}
	}
	return result, nil
}

// List возвращает весь каталог в порядке возрастания английского термина.
func (s *Service) List(ctx context.Context) ([]*models.Term, error) {
	result, err := s.repo.ListTerms(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Term{}
	}
	return result, nil
}

// Read возвращает термин по его ID.
func (s *Service) Read(ctx context.Context, id int) (*models.Term, error) {
	return s.repo.ReadTerm(ctx, id)
}

// Names возвращает краткий список статей: пары (EN, FR).
func (s *Service) Names(ctx context.Context) ([]models.TermName, error) {
	result, err := s.repo.ListTermNames(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.TermName{}
	}
	return result, nil
}

// SemanticLabels возвращает справочник семантических меток: очищенные от
// хвостовых аннотаций пары без дубликатов по английской метке.
func (s *Service) SemanticLabels(ctx context.Context) ([]models.LabelPair, error) {
	pairs, err := s.repo.ListSemanticLabels(ctx)
	if err != nil {
		return nil, err
	}
	return labels.Dedupe(pairs), nil
}

// Create создает новый термин из входных данных и возвращает созданную запись.
func (s *Service) Create(ctx context.Context, req models.TermInput) (*models.Term, error) {
	entry := entryFromInput(req)
	if err := checkRequiredTerms(entry); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateTerm(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new term", slog.Int("tid", id), slog.String("english_term", entry.EnglishTerm))
	entry.ID = id
	return &entry, nil
}

// Update перезаписывает термин по ID и возвращает обновлённую запись.
func (s *Service) Update(ctx context.Context, req models.TermInput, id int) (*models.Term, error) {
	entry := entryFromInput(req)
	if err := checkRequiredTerms(entry); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTerm(ctx, entry, id); err != nil {
		return nil, err
	}
	s.log.Info("updated term", slog.Int("tid", id))
	entry.ID = id
	return &entry, nil
}

// Remove удаляет термин по ID.
func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.repo.RemoveTerm(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted term", slog.Int("tid", id))
	return nil
}

// checkRequiredTerms проверяет, что оба обязательных термина после очистки
// от пробелов остались непустыми.
func checkRequiredTerms(entry models.Term) error {
	if entry.EnglishTerm == "" {
		return ErrEnglishTermRequired
	}
	if entry.FrenchTerm == "" {
		return ErrFrenchTermRequired
	}
	return nil
}

// entryFromInput собирает модель термина из входных данных запроса.
// Оба термина очищаются от окружающих пробелов.
func entryFromInput(req models.TermInput) models.Term {
	return models.Term{
		DomainEN:                req.DomainEN,
		DomainFR:                req.DomainFR,
		SubdomainsEN:            req.SubdomainsEN,
		SubdomainsFR:            req.SubdomainsFR,
		EnglishTerm:             strings.TrimSpace(req.EnglishTerm),
		FrenchTerm:              strings.TrimSpace(req.FrenchTerm),
		SemanticLabelEN:         req.SemanticLabelEN,
		SemanticLabelFR:         req.SemanticLabelFR,
		VariantEN:               req.VariantEN,
		VariantFR:               req.VariantFR,
		NearSynonymEN:           req.NearSynonymEN,
		NearSynonymFR:           req.NearSynonymFR,
		DefinitionEN:            req.DefinitionEN,
		DefinitionFR:            req.DefinitionFR,
		SyntacticCooccurrenceEN: req.SyntacticCooccurrenceEN,
		SyntacticCooccurrenceFR: req.SyntacticCooccurrenceFR,
		LexicalRelationsEN:      req.LexicalRelationsEN,
		LexicalRelationsFR:      req.LexicalRelationsFR,
		NoteEN:                  req.NoteEN,
		NoteFR:                  req.NoteFR,
		NotToBeConfusedWithEN:   req.NotToBeConfusedWithEN,
		NotToBeConfusedWithFR:   req.NotToBeConfusedWithFR,
		FrequentExpressionEN:    req.FrequentExpressionEN,
		FrequentExpressionFR:    req.FrequentExpressionFR,
		PhraseologyEN:           req.PhraseologyEN,
		PhraseologyFR:           req.PhraseologyFR,
		ContextEN:               req.ContextEN,
		ContextFR:               req.ContextFR,
	}
}
