package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/glotecht/glossary-api/internal/models"
)

// termValues возвращает значения колонок термина в каноническом порядке
// models.TermColumns без tid.
func termValues(t models.Term) []any {
	return []any{
		t.DomainEN, t.DomainFR,
		t.SubdomainsEN, t.SubdomainsFR,
		t.EnglishTerm, t.FrenchTerm,
		t.SemanticLabelEN, t.SemanticLabelFR,
		t.VariantEN, t.VariantFR,
		t.NearSynonymEN, t.NearSynonymFR,
		t.DefinitionEN, t.DefinitionFR,
		t.SyntacticCooccurrenceEN, t.SyntacticCooccurrenceFR,
		t.LexicalRelationsEN, t.LexicalRelationsFR,
		t.NoteEN, t.NoteFR,
		t.NotToBeConfusedWithEN, t.NotToBeConfusedWithFR,
		t.FrequentExpressionEN, t.FrequentExpressionFR,
		t.PhraseologyEN, t.PhraseologyFR,
		t.ContextEN, t.ContextFR,
	}
}

// searchPredicate строит дизъюнкцию ILIKE-условий для типа поиска.
// Подстрока ищется без учёта регистра; для подобластей сопоставление
// выполняется поэлементно внутри JSONB-массивов, а не по массиву-строке.
func searchPredicate(searchType models.SearchType, query string) squirrel.Sqlizer {
	pattern := "%" + escapeLike(query) + "%"

	ilike := func(column string) squirrel.Sqlizer {
		return squirrel.ILike{column: pattern}
	}
	inArray := func(column string) squirrel.Sqlizer {
		return squirrel.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text("+column+") AS elem WHERE elem ILIKE ?)",
			pattern,
		)
	}

	switch searchType {
	case models.SearchTerm:
		return squirrel.Or{ilike("english_term"), ilike("french_term")}
	case models.SearchClass:
		return squirrel.Or{ilike("semantic_label_en"), ilike("semantic_label_fr")}
	case models.SearchSynonym:
		return squirrel.Or{ilike("near_synonym_en"), ilike("near_synonym_fr")}
	case models.SearchSubdomain:
		return squirrel.Or{inArray("subdomains_en"), inArray("subdomains_fr")}
	default:
		// Канонический широкий поиск: термины, домены, метки и определения
		// на обоих языках.
		return squirrel.Or{
			ilike("english_term"), ilike("french_term"),
			ilike("domain_en"), ilike("domain_fr"),
			ilike("semantic_label_en"), ilike("semantic_label_fr"),
			ilike("definition_en"), ilike("definition_fr"),
		}
	}
}

// SearchTerms возвращает термины, подходящие под запрос для данного типа
// поиска, в порядке возрастания английского термина.
func (s *Storage) SearchTerms(ctx context.Context, query string, searchType models.SearchType) ([]*models.Term, error) {
	const op = "storage.SearchTerms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Select(models.TermColumns...).
		From("terms").
		Where(searchPredicate(searchType, query)).
		OrderBy("english_term ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Term
	if err := sqlscan.Select(ctx, s.DB, &result, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListTerms возвращает весь каталог в порядке возрастания английского термина.
// Порядок детерминирован: выгрузки одного состояния каталога воспроизводимы.
func (s *Storage) ListTerms(ctx context.Context) ([]*models.Term, error) {
	const op = "storage.ListTerms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Select(models.TermColumns...).
		From("terms").
		OrderBy("english_term ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Term
	if err := sqlscan.Select(ctx, s.DB, &result, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadTerm возвращает термин по его ID или ErrNotFound.
func (s *Storage) ReadTerm(ctx context.Context, id int) (*models.Term, error) {
	const op = "storage.ReadTerm"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Select(models.TermColumns...).
		From("terms").
		Where(squirrel.Eq{"tid": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result models.Term
	if err := sqlscan.Get(ctx, s.DB, &result, sqlQuery, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// CreateTerm вставляет новый термин в транзакции и возвращает его ID.
// Нарушение уникальности терминов отображается в ErrAlreadyExists.
func (s *Storage) CreateTerm(ctx context.Context, term models.Term) (int, error) {
	const op = "storage.CreateTerm"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Insert("terms").
		Columns(models.TermColumns[1:]...).
		Values(termValues(term)...).
		Suffix("RETURNING tid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, sqlQuery, args...).Scan(&newID)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapConstraintErr(err))
	}
	return newID, nil
}

// UpdateTerm перезаписывает все поля термина по его ID в транзакции.
// Возвращает ErrNotFound, если записи нет, и ErrAlreadyExists при
// конфликте уникальности с другой записью.
func (s *Storage) UpdateTerm(ctx context.Context, term models.Term, id int) error {
	const op = "storage.UpdateTerm"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	builder := psql.Update("terms")
	values := termValues(term)
	for i, column := range models.TermColumns[1:] {
		builder = builder.Set(column, values[i])
	}
	sqlQuery, args, err := builder.Where(squirrel.Eq{"tid": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapConstraintErr(err))
	}
	return nil
}

// RemoveTerm удаляет термин по его ID. Возвращает ErrNotFound, если записи нет.
func (s *Storage) RemoveTerm(ctx context.Context, id int) error {
	const op = "storage.RemoveTerm"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Delete("terms").Where(squirrel.Eq{"tid": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return err
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListTermNames возвращает пары (английский, французский термин)
// в порядке возрастания английского термина.
func (s *Storage) ListTermNames(ctx context.Context) ([]models.TermName, error) {
	const op = "storage.ListTermNames"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Select("english_term", "french_term").
		From("terms").
		OrderBy("english_term ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.TermName
	if err := sqlscan.Select(ctx, s.DB, &result, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSemanticLabels возвращает различные пары семантических меток, у которых
// заполнены обе стороны, в порядке возрастания английской метки. Очистка и
// схлопывание дубликатов выполняются на уровне бизнес-логики.
func (s *Storage) ListSemanticLabels(ctx context.Context) ([]models.LabelPair, error) {
	const op = "storage.ListSemanticLabels"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sqlQuery, args, err := psql.Select("semantic_label_en", "semantic_label_fr").
		Distinct().
		From("terms").
		Where(squirrel.And{
			squirrel.NotEq{"semantic_label_en": nil},
			squirrel.NotEq{"semantic_label_fr": nil},
			squirrel.NotEq{"semantic_label_en": ""},
			squirrel.NotEq{"semantic_label_fr": ""},
		}).
		OrderBy("semantic_label_en ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.LabelPair
	if err := sqlscan.Select(ctx, s.DB, &result, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
