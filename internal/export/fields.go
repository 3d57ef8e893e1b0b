// Package export реализует выгрузку каталога терминов в XML и CSV.
//
// Оба формата обходят один и тот же декларативный список полей: имя поля
// совпадает с json-тегом модели, порядок — с models.TermColumns. Значение
// поля приводится к строке единообразно, поэтому форматы согласованы
// запись-в-запись и поле-в-поле.
package export

import (
	"encoding/json"
	"strconv"

	"github.com/glotecht/glossary-api/internal/models"
)

// Field — одно сериализуемое поле термина.
type Field struct {
	Name  string
	Value func(t *models.Term) any
}

// TermFields — упорядоченный список полей термина для построчных форматов.
// Порядок и имена обязаны совпадать с models.TermColumns; расхождение
// ловится тестом.
var TermFields = []Field{
	{"tid", func(t *models.Term) any { return t.ID }},
	{"domain_en", func(t *models.Term) any { return t.DomainEN }},
	{"domain_fr", func(t *models.Term) any { return t.DomainFR }},
	{"subdomains_en", func(t *models.Term) any { return t.SubdomainsEN }},
	{"subdomains_fr", func(t *models.Term) any { return t.SubdomainsFR }},
	{"english_term", func(t *models.Term) any { return t.EnglishTerm }},
	{"french_term", func(t *models.Term) any { return t.FrenchTerm }},
	{"semantic_label_en", func(t *models.Term) any { return t.SemanticLabelEN }},
	{"semantic_label_fr", func(t *models.Term) any { return t.SemanticLabelFR }},
	{"variant_en", func(t *models.Term) any { return t.VariantEN }},
	{"variant_fr", func(t *models.Term) any { return t.VariantFR }},
	{"near_synonym_en", func(t *models.Term) any { return t.NearSynonymEN }},
	{"near_synonym_fr", func(t *models.Term) any { return t.NearSynonymFR }},
	{"definition_en", func(t *models.Term) any { return t.DefinitionEN }},
	{"definition_fr", func(t *models.Term) any { return t.DefinitionFR }},
	{"syntactic_cooccurrence_en", func(t *models.Term) any { return t.SyntacticCooccurrenceEN }},
	{"syntactic_cooccurrence_fr", func(t *models.Term) any { return t.SyntacticCooccurrenceFR }},
	{"lexical_relations_en", func(t *models.Term) any { return t.LexicalRelationsEN }},
	{"lexical_relations_fr", func(t *models.Term) any { return t.LexicalRelationsFR }},
	{"note_en", func(t *models.Term) any { return t.NoteEN }},
	{"note_fr", func(t *models.Term) any { return t.NoteFR }},
	{"not_to_be_confused_with_en", func(t *models.Term) any { return t.NotToBeConfusedWithEN }},
	{"not_to_be_confused_with_fr", func(t *models.Term) any { return t.NotToBeConfusedWithFR }},
	{"frequent_expression_en", func(t *models.Term) any { return t.FrequentExpressionEN }},
	{"frequent_expression_fr", func(t *models.Term) any { return t.FrequentExpressionFR }},
	{"phraseology_en", func(t *models.Term) any { return t.PhraseologyEN }},
	{"phraseology_fr", func(t *models.Term) any { return t.PhraseologyFR }},
	{"context_en", func(t *models.Term) any { return t.ContextEN }},
	{"context_fr", func(t *models.Term) any { return t.ContextFR }},
}

// FieldNames возвращает имена полей в каноническом порядке.
func FieldNames() []string {
	names := make([]string, len(TermFields))
	for i, f := range TermFields {
		names[i] = f.Name
	}
	return names
}

// renderValue приводит значение поля к строковой форме.
// Второй результат false означает, что поле отсутствует (NULL или пустой
// список) и в форматах с опциональными полями не выводится вовсе.
// Списковые значения выводятся в их JSON-кодировке.
func renderValue(v any) (string, bool) {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val), true
	case string:
		return val, val != ""
	case *string:
		if val == nil || *val == "" {
			return "", false
		}
		return *val, true
	case models.StringList:
		if len(val) == 0 {
			return "", false
		}
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	case models.RelationList:
		if len(val) == 0 {
			return "", false
		}
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return "", false
	}
}
